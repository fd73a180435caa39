// Package model holds the serialization-layer shapes produced by the
// broker. The snapshot is purely structural, four labeled sections plus
// session scalars, with no binary encoding.
package model

// SessionRow carries the session's scalar fields as one labeled series.
type SessionRow struct {
	ProjectPath string `yaml:"project_path" json:"project_path"`
	ProjectName string `yaml:"project_name" json:"project_name"`
	DesignName  string `yaml:"design_name" json:"design_name"`
	SetupName   string `yaml:"setup_name" json:"setup_name"`
}

// JunctionRow is one row of the junction table, keyed by junction name.
type JunctionRow struct {
	LjVariable string  `yaml:"Lj_variable" json:"Lj_variable"`
	CjVariable string  `yaml:"Cj_variable,omitempty" json:"Cj_variable,omitempty"`
	Rect       string  `yaml:"rect" json:"rect"`
	Line       string  `yaml:"line" json:"line"`
	Length     float64 `yaml:"length" json:"length"`
}

// PortRow is one row of the port table, keyed by port name.
type PortRow struct {
	Rect       string  `yaml:"rect" json:"rect"`
	Line       string  `yaml:"line" json:"line"`
	Resistance float64 `yaml:"R" json:"R"`
}

// OptionsRow carries the analysis-facing options section.
type OptionsRow struct {
	SaveMeshStats bool `yaml:"saveMeshStats" json:"saveMeshStats"`
	MaxMeshPasses int  `yaml:"maxMeshPasses" json:"maxMeshPasses"`
}

// Snapshot is the persistable bundle of session metadata, dissipative
// config, options, and the junction and port tables.
type Snapshot struct {
	Session     SessionRow             `yaml:"pinfo" json:"pinfo"`
	Dissipative map[string][]string    `yaml:"dissip" json:"dissip"`
	Options     OptionsRow             `yaml:"options" json:"options"`
	Junctions   map[string]JunctionRow `yaml:"junctions" json:"junctions"`
	Ports       map[string]PortRow     `yaml:"ports" json:"ports"`
}
