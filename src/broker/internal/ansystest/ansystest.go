// Package ansystest provides an in-memory double of the simulation tool's
// automation surface. It is the substitution seam for everything that would
// otherwise require a live desktop application: tests build a small model
// (projects, designs, setups, object groups) and hand the Tool to the
// session manager as its ansys.Factory.
package ansystest

import (
	"context"
	"fmt"

	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
)

// Tool is a fake ansys.Factory backed by an in-memory model.
type Tool struct {
	projects map[string]*Project
	active   *Project

	// LoadErr, when set, is returned by Load.
	LoadErr error
	// ReleaseErr, when set, is returned by every Release call.
	ReleaseErr error

	// Releases records release calls in order, using the labels
	// "project", "desktop", "app" and "factory".
	Releases []string
}

// NewTool returns an empty fake tool with no open projects.
func NewTool() *Tool {
	return &Tool{projects: make(map[string]*Project)}
}

// AddProject registers an open project; the first one added becomes the
// active project.
func (t *Tool) AddProject(name, path string) *Project {
	p := &Project{tool: t, name: name, path: path}
	t.projects[name] = p
	if t.active == nil {
		t.active = p
	}
	return p
}

// SetActive marks the named project as the tool's active project.
func (t *Tool) SetActive(name string) {
	t.active = t.projects[name]
}

// Load implements ansys.Factory.
func (t *Tool) Load(ctx context.Context, projectName, projectPath string) (ansys.App, ansys.Desktop, ansys.Project, error) {
	if t.LoadErr != nil {
		return nil, nil, nil, t.LoadErr
	}
	app := &handle{tool: t, name: "App", label: "app"}
	desktop := &handle{tool: t, name: "Desktop", label: "desktop"}
	if projectName == "" {
		if t.active == nil {
			return app, desktop, nil, nil
		}
		return app, desktop, t.active, nil
	}
	p, ok := t.projects[projectName]
	if !ok {
		return app, desktop, nil, nil
	}
	return app, desktop, p, nil
}

// Release implements ansys.Factory.
func (t *Tool) Release(ctx context.Context) error {
	t.Releases = append(t.Releases, "factory")
	return t.ReleaseErr
}

// handle implements ansys.App and ansys.Desktop.
type handle struct {
	tool  *Tool
	name  string
	label string
}

func (h *handle) Name() string { return h.name }

func (h *handle) Release(ctx context.Context) error {
	h.tool.Releases = append(h.tool.Releases, h.label)
	return h.tool.ReleaseErr
}

// Project is a fake ansys.Project.
type Project struct {
	tool      *Tool
	name      string
	path      string
	designs   []*Design
	active    *Design
	variables []string
}

// AddDesign registers a design in the project; the first one added becomes
// the active design.
func (p *Project) AddDesign(name string, solution ansys.SolutionType) *Design {
	d := &Design{
		tool:     p.tool,
		name:     name,
		solution: solution,
		modeler:  &Modeler{groups: make(map[string][]string)},
	}
	p.designs = append(p.designs, d)
	if p.active == nil {
		p.active = d
	}
	return d
}

// ClearActiveDesign makes ActiveDesign fail, as the tool does when no
// design has focus.
func (p *Project) ClearActiveDesign() { p.active = nil }

// SetVariables sets the project-scope variable names.
func (p *Project) SetVariables(names ...string) { p.variables = names }

// Name implements ansys.Project.
func (p *Project) Name() string { return p.name }

// Path implements ansys.Project.
func (p *Project) Path() string { return p.path }

// Designs implements ansys.Project.
func (p *Project) Designs(ctx context.Context) ([]ansys.Design, error) {
	out := make([]ansys.Design, len(p.designs))
	for i, d := range p.designs {
		out[i] = d
	}
	return out, nil
}

// ActiveDesign implements ansys.Project.
func (p *Project) ActiveDesign(ctx context.Context) (ansys.Design, error) {
	if p.active == nil {
		return nil, fmt.Errorf("no active design in project %q", p.name)
	}
	return p.active, nil
}

// Design implements ansys.Project.
func (p *Project) Design(ctx context.Context, name string) (ansys.Design, error) {
	for _, d := range p.designs {
		if d.name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("project %q has no design %q", p.name, name)
}

// VariableNames implements ansys.Project.
func (p *Project) VariableNames(ctx context.Context) ([]string, error) {
	return append([]string{}, p.variables...), nil
}

// Release implements ansys.Project.
func (p *Project) Release(ctx context.Context) error {
	p.tool.Releases = append(p.tool.Releases, "project")
	return p.tool.ReleaseErr
}

// Design is a fake ansys.Design.
type Design struct {
	tool      *Tool
	name      string
	solution  ansys.SolutionType
	setups    []*Setup
	variables []string
	modeler   *Modeler

	// Created records which default-setup creation calls ran, using the
	// labels "eigenmode", "drivenmodal", "driventerminal" and "q3d".
	Created []string
}

// AddSetup registers an existing setup on the design.
func (d *Design) AddSetup(name string) *Setup {
	s := &Setup{tool: d.tool, name: name, kind: string(d.solution)}
	d.setups = append(d.setups, s)
	return s
}

// SetVariables sets the design-scope variable names.
func (d *Design) SetVariables(names ...string) { d.variables = names }

// SetObjects sets the object names in one modeler group.
func (d *Design) SetObjects(group string, names ...string) {
	d.modeler.groups[group] = names
}

// Name implements ansys.Design.
func (d *Design) Name() string { return d.name }

// SolutionType implements ansys.Design.
func (d *Design) SolutionType(ctx context.Context) (ansys.SolutionType, error) {
	return d.solution, nil
}

// SetupNames implements ansys.Design.
func (d *Design) SetupNames(ctx context.Context) ([]string, error) {
	names := make([]string, len(d.setups))
	for i, s := range d.setups {
		names[i] = s.name
	}
	return names, nil
}

// Setup implements ansys.Design.
func (d *Design) Setup(ctx context.Context, name string) (ansys.Setup, error) {
	for _, s := range d.setups {
		if s.name == name {
			return s, nil
		}
	}
	return nil, nil
}

// CreateEigenmodeSetup implements ansys.Design.
func (d *Design) CreateEigenmodeSetup(ctx context.Context) (ansys.Setup, error) {
	return d.createDefault("eigenmode")
}

// CreateDrivenModalSetup implements ansys.Design.
func (d *Design) CreateDrivenModalSetup(ctx context.Context) (ansys.Setup, error) {
	return d.createDefault("drivenmodal")
}

// CreateDrivenTerminalSetup implements ansys.Design.
func (d *Design) CreateDrivenTerminalSetup(ctx context.Context) (ansys.Setup, error) {
	return d.createDefault("driventerminal")
}

// CreateQ3DSetup implements ansys.Design.
func (d *Design) CreateQ3DSetup(ctx context.Context) (ansys.Setup, error) {
	return d.createDefault("q3d")
}

func (d *Design) createDefault(label string) (ansys.Setup, error) {
	d.Created = append(d.Created, label)
	s := d.AddSetup(fmt.Sprintf("Setup%d", len(d.setups)+1))
	return s, nil
}

// VariableNames implements ansys.Design.
func (d *Design) VariableNames(ctx context.Context) ([]string, error) {
	return append([]string{}, d.variables...), nil
}

// Modeler implements ansys.Design.
func (d *Design) Modeler() ansys.Modeler { return d.modeler }

// Release implements ansys.Design.
func (d *Design) Release(ctx context.Context) error {
	d.tool.Releases = append(d.tool.Releases, "design")
	return d.tool.ReleaseErr
}

// Setup is a fake ansys.Setup.
type Setup struct {
	tool *Tool
	name string
	kind string
}

// Name implements ansys.Setup.
func (s *Setup) Name() string { return s.name }

// Kind implements ansys.Setup.
func (s *Setup) Kind() string { return s.kind }

// Release implements ansys.Setup.
func (s *Setup) Release(ctx context.Context) error {
	s.tool.Releases = append(s.tool.Releases, "setup")
	return s.tool.ReleaseErr
}

// Modeler is a fake ansys.Modeler serving fixed group contents.
type Modeler struct {
	groups map[string][]string
}

// ObjectsInGroup implements ansys.Modeler.
func (m *Modeler) ObjectsInGroup(ctx context.Context, group string) ([]string, error) {
	return append([]string{}, m.groups[group]...), nil
}
