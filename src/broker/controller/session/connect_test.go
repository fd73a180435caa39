package session

import (
	"context"
	stderr "errors"
	"strings"
	"testing"

	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
	"github.com/eprkit/epr-broker/src/broker/gateway/ansys/ansysmock"
	"github.com/eprkit/epr-broker/src/broker/internal/ansystest"
	brokererr "github.com/eprkit/epr-broker/src/broker/internal/errors"
	"github.com/eprkit/epr-broker/src/broker/repository/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newController(t *testing.T, factory ansys.Factory, sessionCfg map[string]interface{}) Controller {
	t.Helper()
	return newControllerWithLogger(t, factory, sessionCfg, zap.NewNop().Sugar())
}

func newControllerWithLogger(t *testing.T, factory ansys.Factory, sessionCfg map[string]interface{}, logger *zap.SugaredLogger) Controller {
	t.Helper()
	if sessionCfg == nil {
		sessionCfg = map[string]interface{}{}
	}
	provider, err := config.NewStaticProvider(map[string]interface{}{
		"session": sessionCfg,
		"options": map[string]interface{}{"saveMeshStats": true},
	})
	require.NoError(t, err)

	c, err := New(Params{
		Factory:  factory,
		Metadata: metadata.New(tally.NoopScope),
		Logger:   logger,
		Config:   provider,
		Stats:    tally.NoopScope,
	})
	require.NoError(t, err)
	return c
}

// standardTool builds a fake tool with one project, one eigenmode design
// and one existing setup.
func standardTool() *ansystest.Tool {
	tool := ansystest.NewTool()
	p := tool.AddProject("qubits", "/projects/qubits")
	d := p.AddDesign("transmon_a", ansys.SolutionEigenmode)
	d.AddSetup("Setup1")
	return tool
}

func TestConnectHappyPath(t *testing.T) {
	tool := standardTool()
	c := newController(t, tool, map[string]interface{}{"projectName": "qubits"})

	require.NoError(t, c.Connect(context.Background()))

	assert.True(t, c.CheckConnected())
	s := c.Session()
	assert.Equal(t, "qubits", s.ProjectName)
	assert.Equal(t, "/projects/qubits", s.ProjectPath)
	assert.Equal(t, "transmon_a", s.DesignName)
	assert.Equal(t, "Setup1", s.SetupName)
}

func TestConnectAdoptsActiveProject(t *testing.T) {
	tool := standardTool()
	c := newController(t, tool, nil)

	require.NoError(t, c.Connect(context.Background()))

	assert.True(t, c.CheckConnected())
	assert.Equal(t, "qubits", c.Session().ProjectName)
}

func TestConnectNoProject(t *testing.T) {
	tool := ansystest.NewTool()
	c := newController(t, tool, nil)

	require.NoError(t, c.Connect(context.Background()))

	assert.False(t, c.CheckConnected())
	assert.Nil(t, c.Session().Project)
	assert.Nil(t, c.Session().Design)
}

func TestConnectDesignZeroDesigns(t *testing.T) {
	tool := ansystest.NewTool()
	tool.AddProject("empty", "/projects/empty")
	c := newController(t, tool, nil)

	require.NoError(t, c.ConnectProject(context.Background()))
	require.NoError(t, c.ConnectDesign(context.Background(), ""))

	assert.Nil(t, c.Session().Design)
}

func TestConnectDesignNoActiveDesign(t *testing.T) {
	tool := ansystest.NewTool()
	p := tool.AddProject("qubits", "/projects/qubits")
	p.AddDesign("transmon_a", ansys.SolutionEigenmode)
	p.ClearActiveDesign()
	c := newController(t, tool, nil)

	require.NoError(t, c.ConnectProject(context.Background()))
	require.NoError(t, c.ConnectDesign(context.Background(), ""))

	assert.Nil(t, c.Session().Design)
	assert.Empty(t, c.Session().DesignName)
}

func TestConnectDesignNamedMissing(t *testing.T) {
	tool := standardTool()
	c := newController(t, tool, map[string]interface{}{"designName": "not_a_design"})

	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_a_design")

	name, ok := brokererr.NotFoundDesign(err)
	assert.True(t, ok)
	assert.Equal(t, "not_a_design", name)

	// Fail fast: everything acquired so far is torn down, and the setup
	// step never runs against the dead design reference.
	assert.False(t, c.CheckConnected())
	assert.Nil(t, c.Session().Setup)
	assert.Equal(t, []string{"project", "desktop", "app", "factory"}, tool.Releases)
}

func TestConnectDesignOverrideTakesPrecedence(t *testing.T) {
	tool := standardTool()

	// Configured with a bogus name; the explicit override must win.
	c := newController(t, tool, map[string]interface{}{"designName": "bogus"})
	require.NoError(t, c.ConnectProject(context.Background()))
	require.NoError(t, c.ConnectDesign(context.Background(), "transmon_a"))
	assert.Equal(t, "transmon_a", c.Session().DesignName)
	assert.NotNil(t, c.Session().Design)
}

func TestConnectSetupCreatesDefault(t *testing.T) {
	tests := []struct {
		solution ansys.SolutionType
		created  string
	}{
		{ansys.SolutionEigenmode, "eigenmode"},
		{ansys.SolutionDrivenModal, "drivenmodal"},
		{ansys.SolutionDrivenTerminal, "driventerminal"},
		{ansys.SolutionQ3D, "q3d"},
	}
	for _, tt := range tests {
		t.Run(string(tt.solution), func(t *testing.T) {
			tool := ansystest.NewTool()
			p := tool.AddProject("qubits", "/projects/qubits")
			d := p.AddDesign("design_1", tt.solution)

			c := newController(t, tool, nil)
			require.NoError(t, c.Connect(context.Background()))

			assert.Equal(t, []string{tt.created}, d.Created)
			assert.Equal(t, "Setup1", c.Session().SetupName)
			assert.True(t, c.CheckConnected())
		})
	}
}

func TestConnectSetupUnrecognizedSolutionType(t *testing.T) {
	tool := ansystest.NewTool()
	p := tool.AddProject("qubits", "/projects/qubits")
	d := p.AddDesign("design_1", ansys.SolutionType("Transient"))

	c := newController(t, tool, nil)
	require.NoError(t, c.Connect(context.Background()))

	assert.Empty(t, d.Created)
	assert.Nil(t, c.Session().Setup)
	assert.False(t, c.CheckConnected())
}

func TestConnectSetupAdoptsFirstWithWarning(t *testing.T) {
	tool := ansystest.NewTool()
	p := tool.AddProject("qubits", "/projects/qubits")
	d := p.AddDesign("design_1", ansys.SolutionEigenmode)
	d.AddSetup("SetupA")
	d.AddSetup("SetupB")

	core, logs := observer.New(zap.WarnLevel)
	c := newControllerWithLogger(t, tool, nil, zap.New(core).Sugar())

	require.NoError(t, c.Connect(context.Background()))

	assert.Equal(t, "SetupA", c.Session().SetupName)
	found := false
	for _, entry := range logs.All() {
		if entry.Level == zap.WarnLevel && entry.Message != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a warning about adopting the first setup")
}

func TestConnectSetupNamedMissing(t *testing.T) {
	tool := standardTool()
	c := newController(t, tool, map[string]interface{}{"setupName": "NoSuchSetup"})

	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchSetup")
	assert.Contains(t, err.Error(), "correct setup name")

	var snf *brokererr.SetupNotFoundError
	assert.True(t, stderr.As(err, &snf))
	assert.True(t, brokererr.IsUserConfig(err))

	assert.Nil(t, c.Session().Setup)
	assert.False(t, c.CheckConnected())
}

func TestConnectWarnsOnInfoFileFailure(t *testing.T) {
	provider, err := config.NewStaticProvider(map[string]interface{}{
		"session": map[string]interface{}{},
		"options": map[string]interface{}{},
	})
	require.NoError(t, err)

	core, logs := observer.New(zap.WarnLevel)
	c, err := New(Params{
		Factory:  standardTool(),
		Metadata: metadata.New(tally.NoopScope),
		Logger:   zap.New(core).Sugar(),
		Config:   provider,
		Stats:    tally.NoopScope,
		InfoFile: failingInfoFile{},
	})
	require.NoError(t, err)

	require.NoError(t, c.Connect(context.Background()))
	assert.True(t, c.CheckConnected())

	found := false
	for _, entry := range logs.All() {
		if entry.Level == zap.WarnLevel && strings.Contains(entry.Message, "session info file") {
			found = true
		}
	}
	assert.True(t, found, "expected a warning about the failed info file write")
}

type failingInfoFile struct{}

func (failingInfoFile) UpdateField(key string, value string) error {
	return brokererr.New("disk full")
}

func TestGetSetup(t *testing.T) {
	tool := standardTool()
	c := newController(t, tool, nil)
	require.NoError(t, c.ConnectProject(context.Background()))
	require.NoError(t, c.ConnectDesign(context.Background(), ""))

	t.Run("empty name is a no-op", func(t *testing.T) {
		s, err := c.GetSetup(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("missing setup logs but does not error", func(t *testing.T) {
		s, err := c.GetSetup(context.Background(), "NoSuchSetup")
		assert.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("resolves and stores handle and name", func(t *testing.T) {
		s, err := c.GetSetup(context.Background(), "Setup1")
		assert.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "Setup1", c.Session().SetupName)
		assert.Equal(t, s, c.Session().Setup)
	})
}

func TestDisconnectBeforeConnect(t *testing.T) {
	tool := ansystest.NewTool()
	c := newController(t, tool, nil)

	err := c.Disconnect(context.Background())
	require.Error(t, err)
	assert.True(t, brokererr.IsNotConnected(err))
}

func TestDisconnectReleasesInOrder(t *testing.T) {
	tool := standardTool()
	c := newController(t, tool, nil)
	require.NoError(t, c.Connect(context.Background()))
	require.True(t, c.CheckConnected())

	require.NoError(t, c.Disconnect(context.Background()))

	assert.Equal(t, []string{"project", "desktop", "app", "factory"}, tool.Releases)
	assert.False(t, c.CheckConnected())
	assert.Nil(t, c.Session().Project)
}

func TestDisconnectReleaseOrderMock(t *testing.T) {
	ctrl := gomock.NewController(t)

	factory := ansysmock.NewMockFactory(ctrl)
	app := ansysmock.NewMockApp(ctrl)
	desktop := ansysmock.NewMockDesktop(ctrl)
	project := ansysmock.NewMockProject(ctrl)
	design := ansysmock.NewMockDesign(ctrl)
	setup := ansysmock.NewMockSetup(ctrl)

	c := newController(t, factory, nil).(*controller)
	c.session.App = app
	c.session.Desktop = desktop
	c.session.Project = project
	c.session.Design = design
	c.session.Setup = setup

	gomock.InOrder(
		project.EXPECT().Release(gomock.Any()).Return(nil),
		desktop.EXPECT().Release(gomock.Any()).Return(nil),
		app.EXPECT().Release(gomock.Any()).Return(nil),
		factory.EXPECT().Release(gomock.Any()).Return(nil),
	)

	require.NoError(t, c.Disconnect(context.Background()))
}

func TestDisconnectAttemptsEveryRelease(t *testing.T) {
	tool := standardTool()
	tool.ReleaseErr = brokererr.New("release failed")
	c := newController(t, tool, nil)
	require.NoError(t, c.Connect(context.Background()))

	err := c.Disconnect(context.Background())
	require.Error(t, err)
	// All four releases were still attempted.
	assert.Equal(t, []string{"project", "desktop", "app", "factory"}, tool.Releases)
}

func TestProjectPathNormalized(t *testing.T) {
	tool := ansystest.NewTool()
	c := newController(t, tool, map[string]interface{}{"projectPath": "/projects//qubits/./"})
	assert.Equal(t, "/projects/qubits", c.Session().ProjectPath)
}

func TestConnectOnStart(t *testing.T) {
	provider, err := config.NewStaticProvider(map[string]interface{}{
		"session": map[string]interface{}{"connectOnStart": true},
	})
	require.NoError(t, err)
	assert.True(t, ConnectOnStart(provider))

	provider, err = config.NewStaticProvider(map[string]interface{}{
		"session": map[string]interface{}{"connectOnStart": false},
	})
	require.NoError(t, err)
	assert.False(t, ConnectOnStart(provider))
}
