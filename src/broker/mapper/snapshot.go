// Package mapper converts between the broker's domain entities and their
// serialization-layer models.
package mapper

import (
	"fmt"

	"github.com/eprkit/epr-broker/src/broker/entity"
	"github.com/eprkit/epr-broker/src/broker/model"
	"gopkg.in/yaml.v3"
)

// SessionToRow maps a Session entity to its scalar-series model.
func SessionToRow(s *entity.Session) model.SessionRow {
	return model.SessionRow{
		ProjectPath: s.ProjectPath,
		ProjectName: s.ProjectName,
		DesignName:  s.DesignName,
		SetupName:   s.SetupName,
	}
}

// JunctionToRow maps a JunctionSpec entity to its table-row model.
func JunctionToRow(j entity.JunctionSpec) model.JunctionRow {
	return model.JunctionRow{
		LjVariable: j.LjVariable,
		CjVariable: j.CjVariable,
		Rect:       j.Rect,
		Line:       j.Line,
		Length:     j.Length,
	}
}

// RowToJunction maps a junction table row back to its entity.
func RowToJunction(r model.JunctionRow) entity.JunctionSpec {
	return entity.JunctionSpec{
		LjVariable: r.LjVariable,
		CjVariable: r.CjVariable,
		Rect:       r.Rect,
		Line:       r.Line,
		Length:     r.Length,
	}
}

// PortToRow maps a PortSpec entity to its table-row model.
func PortToRow(p entity.PortSpec) model.PortRow {
	return model.PortRow{
		Rect:       p.Rect,
		Line:       p.Line,
		Resistance: p.Resistance,
	}
}

// RowToPort maps a port table row back to its entity.
func RowToPort(r model.PortRow) entity.PortSpec {
	return entity.PortSpec{
		Rect:       r.Rect,
		Line:       r.Line,
		Resistance: r.Resistance,
	}
}

// OptionsToRow maps the Options entity to its model section.
func OptionsToRow(o entity.Options) model.OptionsRow {
	return model.OptionsRow{
		SaveMeshStats: o.SaveMeshStats,
		MaxMeshPasses: o.MaxMeshPasses,
	}
}

// Snapshot assembles the persistable bundle from the broker's current
// state. Junction and port tables are keyed by their assigned names.
func Snapshot(
	session *entity.Session,
	dissipative *entity.DissipativeConfig,
	options entity.Options,
	junctions map[string]entity.JunctionSpec,
	ports map[string]entity.PortSpec,
) *model.Snapshot {
	jrows := make(map[string]model.JunctionRow, len(junctions))
	for name, j := range junctions {
		jrows[name] = JunctionToRow(j)
	}
	prows := make(map[string]model.PortRow, len(ports))
	for name, p := range ports {
		prows[name] = PortToRow(p)
	}
	return &model.Snapshot{
		Session:     SessionToRow(session),
		Dissipative: dissipative.Data(),
		Options:     OptionsToRow(options),
		Junctions:   jrows,
		Ports:       prows,
	}
}

// EncodeSnapshot renders a snapshot as YAML.
func EncodeSnapshot(s *model.Snapshot) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return out, nil
}

// DecodeSnapshot parses a YAML snapshot.
func DecodeSnapshot(data []byte) (*model.Snapshot, error) {
	var s model.Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &s, nil
}
