// Package ansys defines the outbound contract to the desktop simulation
// tool's automation surface. Every call blocks until the tool replies; the
// handles returned are opaque, non-owning references to objects that live
// inside the external process.
package ansys

import "context"

// SolutionType is the simulation mode of a design.
type SolutionType string

const (
	// SolutionEigenmode solves for resonant modes.
	SolutionEigenmode SolutionType = "Eigenmode"
	// SolutionDrivenModal solves S-parameters in terms of modes.
	SolutionDrivenModal SolutionType = "DrivenModal"
	// SolutionDrivenTerminal solves S-parameters in terms of terminals.
	SolutionDrivenTerminal SolutionType = "DrivenTerminal"
	// SolutionQ3D is the quasi-static extractor mode.
	SolutionQ3D SolutionType = "Q3D"
)

// ObjectGroups are the modeler group categories that together form the
// object-name universe used for metadata validation.
var ObjectGroups = []string{"Non Model", "Solids", "Unclassified", "Sheets", "Lines"}

// Factory opens or attaches to the tool and owns the process-wide binding.
// It is injected into the session manager so tests can substitute a fake
// without process-level side effects.
type Factory interface {
	// Load returns handles for the application, its desktop, and the named
	// project. An empty name and path adopt whatever project is currently
	// active. A missing project yields a nil Project and no error.
	Load(ctx context.Context, projectName string, projectPath string) (App, Desktop, Project, error)
	// Release drops the process-wide binding to the tool. At most one
	// binding per process is considered reliable.
	Release(ctx context.Context) error
}

// App is a handle to the running application.
type App interface {
	Name() string
	Release(ctx context.Context) error
}

// Desktop is a handle to the application's desktop session.
type Desktop interface {
	Name() string
	Release(ctx context.Context) error
}

// Project is a handle to an open project.
type Project interface {
	Name() string
	Path() string
	Designs(ctx context.Context) ([]Design, error)
	ActiveDesign(ctx context.Context) (Design, error)
	Design(ctx context.Context, name string) (Design, error)
	VariableNames(ctx context.Context) ([]string, error)
	Release(ctx context.Context) error
}

// Design is a handle to a design within a project.
type Design interface {
	Name() string
	SolutionType(ctx context.Context) (SolutionType, error)
	SetupNames(ctx context.Context) ([]string, error)
	// Setup resolves a named setup. A nil Setup with a nil error means the
	// tool has no setup by that name.
	Setup(ctx context.Context, name string) (Setup, error)
	CreateEigenmodeSetup(ctx context.Context) (Setup, error)
	CreateDrivenModalSetup(ctx context.Context) (Setup, error)
	CreateDrivenTerminalSetup(ctx context.Context) (Setup, error)
	CreateQ3DSetup(ctx context.Context) (Setup, error)
	VariableNames(ctx context.Context) ([]string, error)
	Modeler() Modeler
	Release(ctx context.Context) error
}

// Setup is a handle to a named simulation setup within a design.
type Setup interface {
	Name() string
	// Kind describes the concrete setup variant for diagnostics.
	Kind() string
	Release(ctx context.Context) error
}

// Modeler is a handle to a design's 3D modeler.
type Modeler interface {
	// ObjectsInGroup lists object names in one group category.
	ObjectsInGroup(ctx context.Context, group string) ([]string, error)
}
