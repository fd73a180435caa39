package entity

import (
	"context"
	"fmt"

	"github.com/eprkit/epr-broker/src/broker/internal/errors"
	"go.uber.org/zap"
)

// DissipativeKey names one of the four dissipative slots.
type DissipativeKey string

const (
	// KeyDielectricsBulk lists bulk dielectric volumes.
	KeyDielectricsBulk DissipativeKey = "dielectrics_bulk"
	// KeyDielectricSurfaces lists lossy dielectric surfaces.
	KeyDielectricSurfaces DissipativeKey = "dielectric_surfaces"
	// KeyResistiveSurfaces lists resistive surfaces.
	KeyResistiveSurfaces DissipativeKey = "resistive_surfaces"
	// KeySeams lists seam locations.
	KeySeams DissipativeKey = "seams"
)

// DissipativeKeys is the fixed set of valid slots, in serialization order.
var DissipativeKeys = []DissipativeKey{
	KeyDielectricsBulk,
	KeyDielectricSurfaces,
	KeyResistiveSurfaces,
	KeySeams,
}

// ObjectUniverse answers existence queries against the live model. The
// session manager implements it; tests substitute a fake.
type ObjectUniverse interface {
	// HasDesign reports whether a design is currently attached, i.e.
	// whether the object universe is queryable at all.
	HasDesign() bool
	AllObjectNames(ctx context.Context) ([]string, error)
}

// DissipativeConfig holds the four named lists of lossy model regions.
// Writes are gated: the key must be one of the four known slots, and once a
// universe with an attached design is bound, every supplied name must exist
// among the live model objects at write time.
//
// The per-slot accessor methods mirror a legacy surface and only log a
// deprecation warning before delegating to Set/Get; new code should use
// Set/Get with the key constants.
type DissipativeConfig struct {
	slots    map[DissipativeKey][]string
	universe ObjectUniverse
	logger   *zap.SugaredLogger
}

// NewDissipativeConfig returns an empty config with all four slots nil.
func NewDissipativeConfig(logger *zap.SugaredLogger) *DissipativeConfig {
	return &DissipativeConfig{
		slots:  make(map[DissipativeKey][]string, len(DissipativeKeys)),
		logger: logger,
	}
}

// Bind attaches the object universe used for existence checks on writes.
// Until bound (or while no design is attached) writes skip the existence
// check, matching registration-before-connect usage.
func (d *DissipativeConfig) Bind(u ObjectUniverse) {
	d.universe = u
}

// Set assigns one slot. A nil list clears the slot.
func (d *DissipativeConfig) Set(ctx context.Context, key DissipativeKey, names []string) error {
	if !validDissipativeKey(key) {
		return &errors.ConfigKeyError{Key: string(key), Known: dissipativeKeyStrings()}
	}
	if names != nil && d.universe != nil && d.universe.HasDesign() {
		universe, err := d.universe.AllObjectNames(ctx)
		if err != nil {
			return fmt.Errorf("listing model objects for %q: %w", key, err)
		}
		known := make(map[string]struct{}, len(universe))
		for _, n := range universe {
			known[n] = struct{}{}
		}
		for _, n := range names {
			if _, ok := known[n]; !ok {
				return &errors.ConfigValueError{
					Key:    string(key),
					Reason: fmt.Sprintf("%q is not an object in the project", n),
				}
			}
		}
	}
	d.slots[key] = names
	return nil
}

// Get returns the current value of one slot; nil if unset.
func (d *DissipativeConfig) Get(key DissipativeKey) ([]string, error) {
	if !validDissipativeKey(key) {
		return nil, &errors.ConfigKeyError{Key: string(key), Known: dissipativeKeyStrings()}
	}
	return d.slots[key], nil
}

// Apply assigns multiple slots from untyped data, e.g. a decoded snapshot
// or YAML config. Each value must be nil or a collection of strings; the
// first violation aborts with no partial mutation.
func (d *DissipativeConfig) Apply(ctx context.Context, raw map[string]interface{}) error {
	lists := make(map[DissipativeKey][]string, len(raw))
	for k, v := range raw {
		key := DissipativeKey(k)
		if !validDissipativeKey(key) {
			return &errors.ConfigKeyError{Key: k, Known: dissipativeKeyStrings()}
		}
		if v == nil {
			lists[key] = nil
			continue
		}
		items, ok := v.([]interface{})
		if !ok {
			return &errors.ConfigValueError{Key: k, Reason: "value must be nil or a list of object name strings"}
		}
		names := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return &errors.ConfigValueError{Key: k, Reason: fmt.Sprintf("element %v is not a string", item)}
			}
			names = append(names, s)
		}
		lists[key] = names
	}
	for key, names := range lists {
		if err := d.Set(ctx, key, names); err != nil {
			return err
		}
	}
	return nil
}

// Data returns the four slots keyed by their serialized names.
func (d *DissipativeConfig) Data() map[string][]string {
	out := make(map[string][]string, len(DissipativeKeys))
	for _, key := range DissipativeKeys {
		out[string(key)] = d.slots[key]
	}
	return out
}

// DielectricsBulk is the deprecated accessor for KeyDielectricsBulk.
func (d *DissipativeConfig) DielectricsBulk() []string {
	d.warnDeprecated(KeyDielectricsBulk)
	return d.slots[KeyDielectricsBulk]
}

// DielectricSurfaces is the deprecated accessor for KeyDielectricSurfaces.
func (d *DissipativeConfig) DielectricSurfaces() []string {
	d.warnDeprecated(KeyDielectricSurfaces)
	return d.slots[KeyDielectricSurfaces]
}

// ResistiveSurfaces is the deprecated accessor for KeyResistiveSurfaces.
func (d *DissipativeConfig) ResistiveSurfaces() []string {
	d.warnDeprecated(KeyResistiveSurfaces)
	return d.slots[KeyResistiveSurfaces]
}

// Seams is the deprecated accessor for KeySeams.
func (d *DissipativeConfig) Seams() []string {
	d.warnDeprecated(KeySeams)
	return d.slots[KeySeams]
}

// SetDielectricsBulk is the deprecated setter for KeyDielectricsBulk.
func (d *DissipativeConfig) SetDielectricsBulk(ctx context.Context, names []string) error {
	d.warnDeprecated(KeyDielectricsBulk)
	return d.Set(ctx, KeyDielectricsBulk, names)
}

// SetDielectricSurfaces is the deprecated setter for KeyDielectricSurfaces.
func (d *DissipativeConfig) SetDielectricSurfaces(ctx context.Context, names []string) error {
	d.warnDeprecated(KeyDielectricSurfaces)
	return d.Set(ctx, KeyDielectricSurfaces, names)
}

// SetResistiveSurfaces is the deprecated setter for KeyResistiveSurfaces.
func (d *DissipativeConfig) SetResistiveSurfaces(ctx context.Context, names []string) error {
	d.warnDeprecated(KeyResistiveSurfaces)
	return d.Set(ctx, KeyResistiveSurfaces, names)
}

// SetSeams is the deprecated setter for KeySeams.
func (d *DissipativeConfig) SetSeams(ctx context.Context, names []string) error {
	d.warnDeprecated(KeySeams)
	return d.Set(ctx, KeySeams, names)
}

func (d *DissipativeConfig) warnDeprecated(key DissipativeKey) {
	if d.logger == nil {
		return
	}
	d.logger.Warnf("DEPRECATED: use Set/Get with key %q instead of the per-slot accessor", key)
}

func validDissipativeKey(key DissipativeKey) bool {
	for _, k := range DissipativeKeys {
		if k == key {
			return true
		}
	}
	return false
}

func dissipativeKeyStrings() []string {
	out := make([]string, len(DissipativeKeys))
	for i, k := range DissipativeKeys {
		out[i] = string(k)
	}
	return out
}
