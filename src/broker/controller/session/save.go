package session

import (
	"context"
	"fmt"
	"os"

	"github.com/eprkit/epr-broker/src/broker/mapper"
	"github.com/eprkit/epr-broker/src/broker/model"
)

// Save assembles the persistable bundle: session scalars, dissipative
// config, options, and the junction and port tables keyed by name.
func (c *controller) Save(ctx context.Context) (*model.Snapshot, error) {
	return mapper.Snapshot(
		c.session,
		c.dissipative,
		c.options,
		c.metadata.Junctions(ctx),
		c.metadata.Ports(ctx),
	), nil
}

// SaveTo writes the snapshot to path as YAML.
func (c *controller) SaveTo(ctx context.Context, path string) error {
	snapshot, err := c.Save(ctx)
	if err != nil {
		return err
	}
	out, err := mapper.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing snapshot to %q: %w", path, err)
	}
	c.logger.Infof("saved session snapshot to %q", path)
	return nil
}
