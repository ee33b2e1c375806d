package resolver

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/types"
)

// Cycle is a dependency path that returns to where it started. The first
// and last elements are equal; each element depends on the next one.
type Cycle types.Identifiers

func (c Cycle) String() string {
	return strings.Join(types.Identifiers(c).Strings(), " -> ")
}

// CycleError carries the offending path of a failed resolution
type CycleError struct {
	Cycle Cycle
}

func (e *CycleError) Error() string {
	return e.Cycle.String()
}

func newCycleError(c Cycle) error {
	return errors.Wrap(&CycleError{Cycle: c}, errors.ErrCycleDetected, "Found cycle in dependencies graph").
		WithDetail("cycle", types.Identifiers(c).Strings())
}

// CycleOf extracts the cycle from an error returned by Resolve
func CycleOf(err error) (Cycle, bool) {
	var cycleErr *CycleError
	if stderrors.As(err, &cycleErr) {
		return cycleErr.Cycle, true
	}
	return nil, false
}

// buildCycle walks from the frame's parent up the in-progress chain until it
// meets the frame's node again. The walk collects nodes from the deepest one
// upward, so it is reversed before the closing node is appended.
func buildCycle(f frame, via map[types.Identifier]types.Identifier) Cycle {
	if !f.hasParent {
		return Cycle{f.id, f.id}
	}

	path := types.Identifiers{f.parent}
	for cur := f.parent; cur != f.id; {
		next, ok := via[cur]
		if !ok || len(path) > len(via)+1 {
			// broken chain
			break
		}
		path = append(path, next)
		cur = next
	}

	cycle := make(Cycle, 0, len(path)+1)
	for i := len(path) - 1; i >= 0; i-- {
		cycle = append(cycle, path[i])
	}
	if cycle[0] != f.id {
		cycle = append(Cycle{f.id}, cycle...)
	}
	return append(cycle, f.id)
}
