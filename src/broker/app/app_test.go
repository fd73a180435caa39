package app

import (
	"testing"

	sessionctl "github.com/eprkit/epr-broker/src/broker/controller/session"
	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
	"github.com/eprkit/epr-broker/src/broker/internal/ansystest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModuleGraph(t *testing.T) {
	t.Setenv("EPR_BROKER_CONFIG_DIR", t.TempDir())

	err := fx.ValidateApp(
		Module,
		fx.Provide(func() ansys.Factory { return ansystest.NewTool() }),
	)
	assert.NoError(t, err)
}

func TestModuleConnectsOnStart(t *testing.T) {
	t.Setenv("EPR_BROKER_CONFIG_DIR", t.TempDir())

	tool := ansystest.NewTool()
	project := tool.AddProject("qubits", "/projects/qubits")
	design := project.AddDesign("transmon_a", ansys.SolutionEigenmode)
	design.AddSetup("Setup1")

	var ctl sessionctl.Controller
	app := fxtest.New(t,
		Module,
		fx.Provide(func() ansys.Factory { return tool }),
		fx.Populate(&ctl),
	)

	app.RequireStart()
	require.True(t, ctl.CheckConnected())

	s := ctl.Session()
	assert.Equal(t, "qubits", s.ProjectName)
	assert.Equal(t, "transmon_a", s.DesignName)
	assert.Equal(t, "Setup1", s.SetupName)

	app.RequireStop()
	assert.False(t, ctl.CheckConnected())
	assert.Equal(t, []string{"project", "desktop", "app", "factory"}, tool.Releases)
}
