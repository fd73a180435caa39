// Package session implements the broker's session and metadata manager: it
// owns the connection state against the simulation tool, the registered
// junction and port specs, and the dissipative-material lists.
package session

import (
	"context"
	"path/filepath"

	"github.com/eprkit/epr-broker/src/broker/entity"
	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
	"github.com/eprkit/epr-broker/src/broker/internal/projectwatch"
	"github.com/eprkit/epr-broker/src/broker/internal/sessioninfofile"
	"github.com/eprkit/epr-broker/src/broker/model"
	"github.com/eprkit/epr-broker/src/broker/repository/metadata"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// Configuration keys
	_configKeySession = "session"
	_configKeyOptions = "options"

	// Project files carry this extension on disk.
	_projectFileExt = ".aedt"
)

// Controller manages one session against the simulation tool. All
// operations block on the tool's automation interface; the controller
// assumes a single script goroutine driving it and adds no locking of its
// own around the session handles.
type Controller interface {
	// Connection sequencing.
	Connect(ctx context.Context) error
	ConnectProject(ctx context.Context) error
	ConnectDesign(ctx context.Context, designName string) error
	ConnectSetup(ctx context.Context) error
	GetSetup(ctx context.Context, name string) (ansys.Setup, error)
	CheckConnected() bool
	Disconnect(ctx context.Context) error

	// Session state and metadata.
	Session() *entity.Session
	Dissipative() *entity.DissipativeConfig
	SetDissipative(ctx context.Context, key entity.DissipativeKey, names []string) error
	SetJunction(ctx context.Context, name string, spec entity.JunctionSpec) error
	SetPort(ctx context.Context, name string, spec entity.PortSpec) error
	Junctions(ctx context.Context) map[string]entity.JunctionSpec
	Ports(ctx context.Context) map[string]entity.PortSpec

	// Queries over the live model.
	AllVariableNames(ctx context.Context) ([]string, error)
	AllObjectNames(ctx context.Context) ([]string, error)
	HasDesign() bool
	DesignAndModeler() (ansys.Design, ansys.Modeler)
	ValidateJunctions(ctx context.Context) error

	// Serialization.
	Save(ctx context.Context) (*model.Snapshot, error)
	SaveTo(ctx context.Context, path string) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Factory  ansys.Factory
	Metadata metadata.Repository
	Logger   *zap.SugaredLogger
	Config   config.Provider
	Stats    tally.Scope
	InfoFile sessioninfofile.SessionInfoFile `optional:"true"`
	Watcher  projectwatch.Watcher            `optional:"true"`
}

// sessionConfig is the "session" section of the YAML config.
type sessionConfig struct {
	ProjectPath string `yaml:"projectPath"`
	ProjectName string `yaml:"projectName"`
	DesignName  string `yaml:"designName"`
	SetupName   string `yaml:"setupName"`
	// ConnectOnStart makes the app connect during startup.
	ConnectOnStart bool `yaml:"connectOnStart"`
	// Dissipative seeds the four slots before any session is attached.
	Dissipative map[string][]string `yaml:"dissipative"`
}

type controller struct {
	factory     ansys.Factory
	metadata    metadata.Repository
	logger      *zap.SugaredLogger
	stats       tally.Scope
	infoFile    sessioninfofile.SessionInfoFile
	watcher     projectwatch.Watcher
	session     *entity.Session
	dissipative *entity.DissipativeConfig
	options     entity.Options
}

// New creates a session manager. The project path is normalized to the host
// filesystem convention; junction and port tables start empty and persist
// across reconnects.
func New(p Params) (Controller, error) {
	var cfg sessionConfig
	if err := p.Config.Get(_configKeySession).Populate(&cfg); err != nil {
		return nil, err
	}
	var opts entity.Options
	if err := p.Config.Get(_configKeyOptions).Populate(&opts); err != nil {
		return nil, err
	}

	projectPath := cfg.ProjectPath
	if projectPath != "" {
		projectPath = filepath.Clean(projectPath)
	}

	c := &controller{
		factory:  p.Factory,
		metadata: p.Metadata,
		logger:   p.Logger,
		stats:    p.Stats,
		infoFile: p.InfoFile,
		watcher:  p.Watcher,
		session: &entity.Session{
			UUID:        uuid.Must(uuid.NewV4()),
			ProjectPath: projectPath,
			ProjectName: cfg.ProjectName,
			DesignName:  cfg.DesignName,
			SetupName:   cfg.SetupName,
		},
		options: opts,
	}
	c.dissipative = entity.NewDissipativeConfig(p.Logger)
	c.dissipative.Bind(c)

	for _, key := range entity.DissipativeKeys {
		names, ok := cfg.Dissipative[string(key)]
		if !ok {
			continue
		}
		if err := c.dissipative.Set(context.Background(), key, names); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ConnectOnStart reports whether the config asks for a connect at startup.
func ConnectOnStart(provider config.Provider) bool {
	var cfg sessionConfig
	if err := provider.Get(_configKeySession).Populate(&cfg); err != nil {
		return false
	}
	return cfg.ConnectOnStart
}

// Session exposes the current session state.
func (c *controller) Session() *entity.Session { return c.session }

// Dissipative exposes the dissipative config for item-style access.
func (c *controller) Dissipative() *entity.DissipativeConfig { return c.dissipative }

// SetDissipative assigns one dissipative slot, subject to the same key and
// object-existence checks as direct access.
func (c *controller) SetDissipative(ctx context.Context, key entity.DissipativeKey, names []string) error {
	return c.dissipative.Set(ctx, key, names)
}

// SetJunction registers a junction spec under the given name.
func (c *controller) SetJunction(ctx context.Context, name string, spec entity.JunctionSpec) error {
	return c.metadata.SetJunction(ctx, name, spec)
}

// SetPort registers a port spec under the given name.
func (c *controller) SetPort(ctx context.Context, name string, spec entity.PortSpec) error {
	return c.metadata.SetPort(ctx, name, spec)
}

// Junctions returns the registered junction table.
func (c *controller) Junctions(ctx context.Context) map[string]entity.JunctionSpec {
	return c.metadata.Junctions(ctx)
}

// Ports returns the registered port table.
func (c *controller) Ports(ctx context.Context) map[string]entity.PortSpec {
	return c.metadata.Ports(ctx)
}

// HasDesign implements entity.ObjectUniverse.
func (c *controller) HasDesign() bool {
	return c.session.Design != nil
}

// DesignAndModeler is a convenience accessor for the design and its
// modeler. Both are nil while no design is connected.
func (c *controller) DesignAndModeler() (ansys.Design, ansys.Modeler) {
	if c.session.Design == nil {
		return nil, nil
	}
	return c.session.Design, c.session.Design.Modeler()
}

// projectFilePath is the expected on-disk location of the project file.
func (c *controller) projectFilePath() string {
	if c.session.ProjectPath == "" || c.session.ProjectName == "" {
		return ""
	}
	return filepath.Join(c.session.ProjectPath, c.session.ProjectName+_projectFileExt)
}
