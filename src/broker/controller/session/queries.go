package session

import (
	"context"
	"fmt"

	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
	"github.com/eprkit/epr-broker/src/broker/internal/errors"
)

// AllVariableNames concatenates the project-scope and design-scope variable
// names from the live model. No caching: every call is a fresh round-trip.
func (c *controller) AllVariableNames(ctx context.Context) ([]string, error) {
	if c.session.Project == nil || c.session.Design == nil {
		return nil, &errors.NotConnectedError{}
	}
	projectVars, err := c.session.Project.VariableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing project variables: %w", err)
	}
	designVars, err := c.session.Design.VariableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing design variables: %w", err)
	}
	return append(projectVars, designVars...), nil
}

// AllObjectNames concatenates object names across the five modeler group
// categories. This is the existence-check universe for validation.
func (c *controller) AllObjectNames(ctx context.Context) ([]string, error) {
	if c.session.Design == nil {
		return nil, &errors.NotConnectedError{}
	}
	modeler := c.session.Design.Modeler()
	var objects []string
	for _, group := range ansys.ObjectGroups {
		names, err := modeler.ObjectsInGroup(ctx, group)
		if err != nil {
			return nil, fmt.Errorf("listing objects in group %q: %w", group, err)
		}
		objects = append(objects, names...)
	}
	return objects, nil
}
