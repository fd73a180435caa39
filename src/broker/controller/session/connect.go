package session

import (
	"context"
	"fmt"

	"github.com/eprkit/epr-broker/src/broker/gateway/ansys"
	"github.com/eprkit/epr-broker/src/broker/internal/errors"
	"go.uber.org/multierr"
)

// ConnectProject opens or attaches to the configured project. A missing
// project is not fatal: the session keeps a nil project handle and the
// caller decides how to proceed.
func (c *controller) ConnectProject(ctx context.Context) error {
	c.logger.Info("connecting to the desktop automation interface...")

	app, desktop, project, err := c.factory.Load(ctx, c.session.ProjectName, c.session.ProjectPath)
	if err != nil {
		return fmt.Errorf("loading project %q: %w", c.session.ProjectName, err)
	}
	c.session.App = app
	c.session.Desktop = desktop
	c.session.Project = project

	if project != nil {
		// The tool may normalize names and paths; adopt its view.
		c.session.ProjectName = project.Name()
		c.session.ProjectPath = project.Path()
	}
	return nil
}

// ConnectDesign resolves a design in the connected project. A non-empty
// designName overrides the configured one and must resolve; an empty name
// adopts the tool's active design, degrading to a nil design when there is
// none.
func (c *controller) ConnectDesign(ctx context.Context, designName string) error {
	if designName != "" {
		c.session.DesignName = designName
	}
	if c.session.Project == nil {
		return errors.New("no connected project; call ConnectProject first")
	}

	designs, err := c.session.Project.Designs(ctx)
	if err != nil {
		return fmt.Errorf("listing designs: %w", err)
	}
	if len(designs) == 0 {
		c.session.Design = nil
		c.logger.Info("no designs found in the project")
		return nil
	}

	if c.session.DesignName == "" {
		design, err := c.session.Project.ActiveDesign(ctx)
		if err != nil {
			// No active design; not fatal.
			c.session.Design = nil
			c.logger.Infof("no active design found (or error getting active design): %v", err)
			return nil
		}
		c.session.Design = design
		c.session.DesignName = design.Name()
		c.logDesignOpened(ctx)
		return nil
	}

	design, err := c.session.Project.Design(ctx, c.session.DesignName)
	if err != nil {
		// An explicitly named design that cannot be resolved is a user
		// configuration error; surface it with the original cause.
		c.logger.Errorf("original error: %v", err)
		return &errors.DesignNotFoundError{Name: c.session.DesignName, Cause: err}
	}
	c.session.Design = design
	c.logDesignOpened(ctx)
	return nil
}

func (c *controller) logDesignOpened(ctx context.Context) {
	solution, err := c.session.Design.SolutionType(ctx)
	if err != nil {
		c.logger.Infof("opened design %q (solution type unavailable: %v)", c.session.DesignName, err)
		return
	}
	c.logger.Infof("opened design %q [solution type: %s]", c.session.DesignName, solution)
}

// ConnectSetup resolves the session's setup. When the design has no setups
// at all, a single default one is created for the design's solution type;
// when setups exist but none was named, the first in tool order is adopted
// with a warning. A setup name that was explicitly configured must resolve
// or the connect fails with SetupNotFoundError. A nil design leaves the
// setup nil.
func (c *controller) ConnectSetup(ctx context.Context) error {
	if c.session.Design == nil {
		c.session.Setup = nil
		c.session.SetupName = ""
		return nil
	}

	setupNames, err := c.session.Design.SetupNames(ctx)
	if err != nil {
		return &errors.SetupNotFoundError{Name: c.session.SetupName, Cause: err}
	}

	// An explicitly named setup must resolve; adopted or created names
	// keep the soft log-and-nil contract.
	explicit := c.session.SetupName != ""

	if len(setupNames) == 0 {
		c.logger.Warn("no design setup detected")
		created, err := c.createDefaultSetup(ctx)
		if err != nil {
			return &errors.SetupNotFoundError{Name: c.session.SetupName, Cause: err}
		}
		if created == nil {
			// Unrecognized solution type; leave the setup unset.
			return nil
		}
		c.session.SetupName = created.Name()
		explicit = false
	} else if c.session.SetupName == "" {
		// Tool order is whatever the automation interface returns.
		c.session.SetupName = setupNames[0]
		c.logger.Warnf("no setup name was specified, will use the first setup %q", c.session.SetupName)
	}

	setup, err := c.GetSetup(ctx, c.session.SetupName)
	if err != nil {
		return &errors.SetupNotFoundError{Name: c.session.SetupName, Cause: err}
	}
	if setup == nil && explicit {
		return &errors.SetupNotFoundError{Name: c.session.SetupName}
	}
	return nil
}

// createDefaultSetup issues the creation call matching the design's
// solution type. Exactly one creation call per recognized type; an
// unrecognized type creates nothing and returns nil.
func (c *controller) createDefaultSetup(ctx context.Context) (ansys.Setup, error) {
	solution, err := c.session.Design.SolutionType(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting solution type: %w", err)
	}
	switch solution {
	case ansys.SolutionEigenmode:
		c.logger.Warn("creating eigenmode default setup")
		return c.session.Design.CreateEigenmodeSetup(ctx)
	case ansys.SolutionDrivenModal:
		c.logger.Warn("creating driven modal default setup")
		return c.session.Design.CreateDrivenModalSetup(ctx)
	case ansys.SolutionDrivenTerminal:
		c.logger.Warn("creating driven terminal default setup")
		return c.session.Design.CreateDrivenTerminalSetup(ctx)
	case ansys.SolutionQ3D:
		c.logger.Warn("creating Q3D default setup")
		return c.session.Design.CreateQ3DSetup(ctx)
	}
	c.logger.Warnf("unrecognized solution type %q; no default setup created", solution)
	return nil, nil
}

// GetSetup resolves a setup by name from the current design and stores the
// handle and its resolved name. An empty name is a no-op. A resolution
// failure is logged but not returned as an error; the caller must check
// the result for nil.
func (c *controller) GetSetup(ctx context.Context, name string) (ansys.Setup, error) {
	if name == "" {
		return nil, nil
	}
	if c.session.Design == nil {
		c.logger.Errorf("could not retrieve setup %q: no design is connected", name)
		return nil, nil
	}
	setup, err := c.session.Design.Setup(ctx, name)
	if err != nil || setup == nil {
		c.logger.Errorf("could not retrieve setup %q: did you give the right name? does it exist? (%v)", name, err)
		return nil, nil
	}
	c.session.Setup = setup
	c.session.SetupName = setup.Name()
	c.logger.Infof("opened setup %q (%s)", c.session.SetupName, setup.Kind())
	return setup, nil
}

// Connect establishes the full session: project, then design, then setup.
// A missing project skips the design and setup steps. A design-connect
// failure triggers a best-effort teardown of everything acquired so far and
// fails fast; the setup step is never attempted against a torn-down design.
func (c *controller) Connect(ctx context.Context) error {
	if err := c.ConnectProject(ctx); err != nil {
		c.stats.Counter("connect_failures").Inc(1)
		return err
	}

	if c.session.Project == nil {
		c.logger.Info("connection to the tool NOT established")
		c.logger.Info("project not detected; is a project open in the desktop app?")
		return nil
	}

	if err := c.ConnectDesign(ctx, ""); err != nil {
		c.stats.Counter("connect_failures").Inc(1)
		if terr := c.teardown(ctx); terr != nil {
			c.logger.Warnf("teardown after failed design connect: %v", terr)
		}
		return fmt.Errorf("connecting design: %w", err)
	}

	if err := c.ConnectSetup(ctx); err != nil {
		c.stats.Counter("connect_failures").Inc(1)
		return fmt.Errorf("connecting setup: %w", err)
	}

	if c.session.Project != nil {
		c.session.ProjectName = c.session.Project.Name()
	}
	if c.session.Design != nil {
		c.session.DesignName = c.session.Design.Name()
	}
	c.finalizeConnect()
	return nil
}

// finalizeConnect logs a human-readable summary of the final state and
// publishes it to the session info file and project watcher.
func (c *controller) finalizeConnect() {
	switch {
	case c.session.Project != nil && c.session.Design != nil:
		c.logger.Infof("connected to project %q and design %q", c.session.ProjectName, c.session.DesignName)
	case c.session.Project == nil:
		c.logger.Info("project not detected; is a project open in the desktop app?")
	default:
		c.logger.Infof("connected to project %q; no design detected", c.session.ProjectName)
	}

	if c.session.Project != nil {
		c.stats.Counter("connects").Inc(1)
	}

	if c.infoFile != nil {
		for _, f := range []struct{ key, value string }{
			{"project", c.session.ProjectName},
			{"design", c.session.DesignName},
			{"setup", c.session.SetupName},
		} {
			if err := c.infoFile.UpdateField(f.key, f.value); err != nil {
				c.logger.Warnf("updating session info file field %q: %v", f.key, err)
			}
		}
	}
	if c.watcher != nil {
		if path := c.projectFilePath(); path != "" {
			if err := c.watcher.Watch(path); err != nil {
				c.logger.Warnf("watching project file %q: %v", path, err)
			}
		}
	}
}

// CheckConnected reports whether all five handles are resolved. Pure
// predicate, no side effects.
func (c *controller) CheckConnected() bool {
	return c.session.Connected()
}

// Disconnect releases the project, desktop and app handles and the
// process-wide tool binding, in that fixed order. Calling it while not
// fully connected is a programming error and returns NotConnectedError.
// Every release is attempted; failures are aggregated so no handle is
// skipped.
func (c *controller) Disconnect(ctx context.Context) error {
	if !c.CheckConnected() {
		return &errors.NotConnectedError{}
	}

	err := multierr.Combine(
		c.session.Project.Release(ctx),
		c.session.Desktop.Release(ctx),
		c.session.App.Release(ctx),
		c.factory.Release(ctx),
	)
	if err != nil {
		return fmt.Errorf("disconnecting: %w", err)
	}

	c.session.ClearHandles()
	c.stats.Counter("disconnects").Inc(1)
	if c.watcher != nil {
		if err := c.watcher.Close(); err != nil {
			c.logger.Warnf("closing project watcher: %v", err)
		}
	}
	c.logger.Info("disconnected from the simulation tool")
	return nil
}

// teardown releases whatever handles were acquired, aggregating failures.
// Used after a failed connect; the session always ends with cleared
// handles.
func (c *controller) teardown(ctx context.Context) error {
	var err error
	if c.session.Project != nil {
		err = multierr.Append(err, c.session.Project.Release(ctx))
	}
	if c.session.Desktop != nil {
		err = multierr.Append(err, c.session.Desktop.Release(ctx))
	}
	if c.session.App != nil {
		err = multierr.Append(err, c.session.App.Release(ctx))
	}
	err = multierr.Append(err, c.factory.Release(ctx))
	c.session.ClearHandles()
	return err
}
