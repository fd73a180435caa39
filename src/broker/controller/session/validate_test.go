package session

import (
	"context"
	"testing"

	"github.com/eprkit/epr-broker/src/broker/entity"
	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
	"github.com/eprkit/epr-broker/src/broker/internal/ansystest"
	brokererr "github.com/eprkit/epr-broker/src/broker/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modeledTool builds a connected-ready tool whose design carries variables
// and objects for two junctions.
func modeledTool() *ansystest.Tool {
	tool := ansystest.NewTool()
	p := tool.AddProject("qubits", "/projects/qubits")
	p.SetVariables("$project_var")
	d := p.AddDesign("transmon_a", ansys.SolutionEigenmode)
	d.AddSetup("Setup1")
	d.SetVariables("Lj_1", "Lj_2")
	d.SetObjects("Sheets", "jj_rect_1", "jj_rect_2")
	d.SetObjects("Lines", "jj_line_1", "jj_line_2")
	d.SetObjects("Solids", "substrate")
	return tool
}

func connectedController(t *testing.T, tool *ansystest.Tool) Controller {
	t.Helper()
	c := newController(t, tool, nil)
	require.NoError(t, c.Connect(context.Background()))
	return c
}

func TestValidateJunctionsOK(t *testing.T) {
	c := connectedController(t, modeledTool())
	ctx := context.Background()

	require.NoError(t, c.SetJunction(ctx, "j1", entity.JunctionSpec{
		LjVariable: "Lj_1", Rect: "jj_rect_1", Line: "jj_line_1", Length: 100e-6,
	}))
	require.NoError(t, c.SetJunction(ctx, "j2", entity.JunctionSpec{
		LjVariable: "Lj_2", Rect: "jj_rect_2", Line: "jj_line_2", Length: 100e-6,
	}))

	assert.NoError(t, c.ValidateJunctions(ctx))
}

func TestValidateJunctionsMissingRect(t *testing.T) {
	c := connectedController(t, modeledTool())
	ctx := context.Background()

	require.NoError(t, c.SetJunction(ctx, "j1", entity.JunctionSpec{
		LjVariable: "Lj_1", Rect: "jj_rectt_1", Line: "jj_line_1",
	}))

	err := c.ValidateJunctions(ctx)
	require.Error(t, err)

	v, ok := brokererr.FailedValidation(err)
	require.True(t, ok)
	assert.Equal(t, "j1", v.Junction)
	assert.Equal(t, "rect", v.Field)
	assert.Equal(t, "jj_rectt_1", v.Name)
	assert.Equal(t, "jj_rect_1", v.Suggestion)
	assert.Contains(t, err.Error(), "j1")
	assert.Contains(t, err.Error(), "rect")
}

func TestValidateJunctionsMissingVariable(t *testing.T) {
	c := connectedController(t, modeledTool())
	ctx := context.Background()

	require.NoError(t, c.SetJunction(ctx, "j1", entity.JunctionSpec{
		LjVariable: "Lj_99", Rect: "jj_rect_1", Line: "jj_line_1",
	}))

	err := c.ValidateJunctions(ctx)
	require.Error(t, err)

	v, ok := brokererr.FailedValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Lj_variable", v.Field)
	assert.Equal(t, "Lj_99", v.Name)
	assert.True(t, brokererr.IsUserConfig(err))
}

func TestValidateJunctionsFirstFailureAborts(t *testing.T) {
	c := connectedController(t, modeledTool())
	ctx := context.Background()

	// Names sort a1 < b2, so a1's failure must mask b2's.
	require.NoError(t, c.SetJunction(ctx, "a1", entity.JunctionSpec{
		LjVariable: "Lj_missing", Rect: "jj_rect_1", Line: "jj_line_1",
	}))
	require.NoError(t, c.SetJunction(ctx, "b2", entity.JunctionSpec{
		LjVariable: "Lj_also_missing", Rect: "jj_rect_2", Line: "jj_line_2",
	}))

	err := c.ValidateJunctions(ctx)
	require.Error(t, err)
	v, ok := brokererr.FailedValidation(err)
	require.True(t, ok)
	assert.Equal(t, "a1", v.Junction)
}

func TestValidateJunctionsRequiresConnection(t *testing.T) {
	c := newController(t, ansystest.NewTool(), nil)
	err := c.ValidateJunctions(context.Background())
	require.Error(t, err)
	assert.True(t, brokererr.IsNotConnected(err))
}

func TestAllVariableNamesConcatenates(t *testing.T) {
	c := connectedController(t, modeledTool())

	names, err := c.AllVariableNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"$project_var", "Lj_1", "Lj_2"}, names)
}

func TestAllObjectNamesSpansGroups(t *testing.T) {
	c := connectedController(t, modeledTool())

	names, err := c.AllObjectNames(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"jj_rect_1", "jj_rect_2", "jj_line_1", "jj_line_2", "substrate",
	}, names)
}

func TestSetDissipativeChecksLiveObjects(t *testing.T) {
	c := connectedController(t, modeledTool())
	ctx := context.Background()

	require.NoError(t, c.SetDissipative(ctx, entity.KeyDielectricsBulk, []string{"substrate"}))

	err := c.SetDissipative(ctx, entity.KeyDielectricsBulk, []string{"not_an_object"})
	require.Error(t, err)
	assert.True(t, brokererr.IsInvalidInput(err))

	got, err := c.Dissipative().Get(entity.KeyDielectricsBulk)
	require.NoError(t, err)
	assert.Equal(t, []string{"substrate"}, got, "failed write must not clobber the slot")
}

func TestDesignAndModeler(t *testing.T) {
	c := connectedController(t, modeledTool())
	design, modeler := c.DesignAndModeler()
	assert.NotNil(t, design)
	assert.NotNil(t, modeler)

	disconnected := newController(t, ansystest.NewTool(), nil)
	design, modeler = disconnected.DesignAndModeler()
	assert.Nil(t, design)
	assert.Nil(t, modeler)
}
