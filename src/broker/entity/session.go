// Package entity contains the domain types for the EPR broker.
package entity

import (
	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
	"github.com/gofrs/uuid"
)

// Session holds the broker's view of one connection to the simulation tool.
// The handles are opaque, non-owning references into the external process;
// they are populated together by a connect sequence and cleared together by
// disconnect. Name and path fields hold the resolved values reported by the
// tool, which may differ from what the user supplied.
type Session struct {
	UUID uuid.UUID `json:"uuid" zap:"uuid"`

	ProjectPath string `json:"projectPath" zap:"projectPath"`
	ProjectName string `json:"projectName" zap:"projectName"`
	DesignName  string `json:"designName" zap:"designName"`
	SetupName   string `json:"setupName" zap:"setupName"`

	App     ansys.App     `json:"-" zap:"-"`
	Desktop ansys.Desktop `json:"-" zap:"-"`
	Project ansys.Project `json:"-" zap:"-"`
	Design  ansys.Design  `json:"-" zap:"-"`
	Setup   ansys.Setup   `json:"-" zap:"-"`
}

// Connected reports whether all five handles are populated.
func (s *Session) Connected() bool {
	return s.Setup != nil &&
		s.Design != nil &&
		s.Project != nil &&
		s.Desktop != nil &&
		s.App != nil
}

// ClearHandles drops every handle reference. It does not release anything;
// release sequencing belongs to the session manager.
func (s *Session) ClearHandles() {
	s.App = nil
	s.Desktop = nil
	s.Project = nil
	s.Design = nil
	s.Setup = nil
}
