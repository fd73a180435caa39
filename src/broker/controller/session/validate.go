package session

import (
	"context"
	"sort"

	"github.com/eprkit/epr-broker/src/broker/internal/errors"
	"github.com/eprkit/epr-broker/src/broker/internal/namesuggest"
)

// ValidateJunctions asserts that every registered junction references an
// inductance variable present among the live variable names, and rectangle
// and line objects present among the live object names. The check is
// all-or-nothing: the first failure aborts with an error naming the
// junction and field, and the remaining junctions go unchecked.
func (c *controller) ValidateJunctions(ctx context.Context) error {
	variables, err := c.AllVariableNames(ctx)
	if err != nil {
		return err
	}
	objects, err := c.AllObjectNames(ctx)
	if err != nil {
		return err
	}

	variableSet := toSet(variables)
	objectSet := toSet(objects)

	junctions := c.metadata.Junctions(ctx)
	names := make([]string, 0, len(junctions))
	for name := range junctions {
		names = append(names, name)
	}
	// Deterministic order so the first failure is stable.
	sort.Strings(names)

	for _, name := range names {
		jj := junctions[name]
		if _, ok := variableSet[jj.LjVariable]; !ok {
			c.stats.Counter("validation_failures").Inc(1)
			return &errors.ValidationError{
				Junction:   name,
				Field:      "Lj_variable",
				Name:       jj.LjVariable,
				Suggestion: namesuggest.Closest(jj.LjVariable, variables),
			}
		}
		for _, check := range []struct{ field, object string }{
			{"rect", jj.Rect},
			{"line", jj.Line},
		} {
			field, object := check.field, check.object
			if _, ok := objectSet[object]; !ok {
				c.stats.Counter("validation_failures").Inc(1)
				return &errors.ValidationError{
					Junction:   name,
					Field:      field,
					Name:       object,
					Suggestion: namesuggest.Closest(object, objects),
				}
			}
		}
	}
	return nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
