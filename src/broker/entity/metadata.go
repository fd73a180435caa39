package entity

// JunctionSpec describes one Josephson junction in the model: the variable
// holding its inductance, the rectangle carrying the lumped boundary, and
// the line spanning the rectangle. Do not use global variable names (names
// starting with $) for LjVariable or CjVariable.
//
// The referenced variables and objects are checked against the live model
// only on explicit validation, never at registration time, since specs are
// often registered before the model is ready.
type JunctionSpec struct {
	// LjVariable is the design or project variable defining the junction
	// inductance on the boundary condition.
	LjVariable string `json:"Lj_variable" yaml:"Lj_variable"`
	// CjVariable optionally names the variable defining the junction
	// capacitance. Experimental.
	CjVariable string `json:"Cj_variable,omitempty" yaml:"Cj_variable,omitempty"`
	// Rect is the rectangle object carrying the lumped boundary condition.
	Rect string `json:"rect" yaml:"rect"`
	// Line is the polyline spanning the rectangle; it fixes the voltage
	// orientation and the sign of the zero-point fluctuation.
	Line string `json:"line" yaml:"line"`
	// Length is the physical length of the rectangle and line, in meters.
	Length float64 `json:"length" yaml:"length"`
}

// PortSpec describes one lumped port, structurally analogous to a junction
// but carrying a resistance instead of an inductance variable.
type PortSpec struct {
	Rect string `json:"rect" yaml:"rect"`
	Line string `json:"line" yaml:"line"`
	// Resistance is the port impedance in ohms.
	Resistance float64 `json:"R" yaml:"R"`
}

// Options are analysis-facing knobs carried by the broker for the benefit
// of downstream consumers of its snapshots. The broker itself only stores
// and serializes them.
type Options struct {
	// SaveMeshStats requests that mesh and convergence statistics be kept
	// with analysis results.
	SaveMeshStats bool `yaml:"saveMeshStats" json:"saveMeshStats"`
	// MaxMeshPasses caps adaptive refinement when a default setup is
	// created by the broker.
	MaxMeshPasses int `yaml:"maxMeshPasses" json:"maxMeshPasses"`
}
