// Package metadata stores the user-entered junction and port specs. The
// store is owned by the session manager and outlives individual
// connect/disconnect cycles, so registrations persist across reconnects.
package metadata

import (
	"context"
	"sync"

	"github.com/eprkit/epr-broker/src/broker/entity"
	tally "github.com/uber-go/tally/v4"
)

// Repository is a keyed store for junction and port specs.
type Repository interface {
	SetJunction(ctx context.Context, name string, spec entity.JunctionSpec) error
	Junction(ctx context.Context, name string) (entity.JunctionSpec, bool)
	Junctions(ctx context.Context) map[string]entity.JunctionSpec
	SetPort(ctx context.Context, name string, spec entity.PortSpec) error
	Port(ctx context.Context, name string) (entity.PortSpec, bool)
	Ports(ctx context.Context) map[string]entity.PortSpec
}

type repository struct {
	mu        sync.Mutex
	junctions map[string]entity.JunctionSpec
	ports     map[string]entity.PortSpec
	stats     tally.Scope
}

// New returns an in-memory metadata repository.
func New(stats tally.Scope) Repository {
	return &repository{
		junctions: make(map[string]entity.JunctionSpec),
		ports:     make(map[string]entity.PortSpec),
		stats:     stats,
	}
}

// SetJunction registers or replaces the junction spec under the given name.
// No model-existence check happens here; that is deferred to explicit
// validation since registration may precede model readiness.
func (r *repository) SetJunction(ctx context.Context, name string, spec entity.JunctionSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.junctions[name] = spec
	r.stats.Gauge("registered_junctions").Update(float64(len(r.junctions)))
	return nil
}

// Junction returns the junction spec registered under the given name.
func (r *repository) Junction(ctx context.Context, name string) (entity.JunctionSpec, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.junctions[name]
	return j, ok
}

// Junctions returns a copy of the full junction table.
func (r *repository) Junctions(ctx context.Context) map[string]entity.JunctionSpec {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]entity.JunctionSpec, len(r.junctions))
	for name, j := range r.junctions {
		out[name] = j
	}
	return out
}

// SetPort registers or replaces the port spec under the given name.
func (r *repository) SetPort(ctx context.Context, name string, spec entity.PortSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ports[name] = spec
	r.stats.Gauge("registered_ports").Update(float64(len(r.ports)))
	return nil
}

// Port returns the port spec registered under the given name.
func (r *repository) Port(ctx context.Context, name string) (entity.PortSpec, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.ports[name]
	return p, ok
}

// Ports returns a copy of the full port table.
func (r *repository) Ports(ctx context.Context) map[string]entity.PortSpec {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]entity.PortSpec, len(r.ports))
	for name, p := range r.ports {
		out[name] = p
	}
	return out
}
