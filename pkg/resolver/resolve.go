package resolver

import (
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/types"
)

type color int

const (
	unvisited color = iota
	inProgress
	resolved
)

// frame is a work stack entry. parent is the node whose expansion pushed it.
type frame struct {
	id        types.Identifier
	parent    types.Identifier
	hasParent bool
}

// Resolve returns the nodes ordered so that every rule comes after all of
// its predecessors. Rules are emitted once even when reachable through
// several paths. A cycle aborts with a *CycleError wrapped in a
// CYCLE_DETECTED error.
func (g *Graph) Resolve() (types.Identifiers, error) {
	logger := logging.GetLogger("resolver.resolve")

	state := make(map[types.Identifier]color, len(g.nodes))
	via := make(map[types.Identifier]types.Identifier, len(g.nodes))
	order := make(types.Identifiers, 0, len(g.nodes))

	// Roots lead the discovery order. Later nodes are only reached from a
	// root through inverted post edges and are picked up once the roots are
	// done.
	for _, start := range g.nodes {
		if state[start] == resolved {
			continue
		}

		stack := []frame{{id: start}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if state[f.id] == resolved {
				continue
			}

			pending := g.pending(f.id, state)
			if len(pending) == 0 {
				state[f.id] = resolved
				order = append(order, f.id)
				logger.Trace().Str("rule", string(f.id)).Int("position", len(order)).Msg("Resolved")
				continue
			}

			if state[f.id] == inProgress {
				cycle := buildCycle(f, via)
				logger.Debug().Str("cycle", cycle.String()).Msg("Cycle detected")
				return nil, newCycleError(cycle)
			}

			state[f.id] = inProgress
			if f.hasParent {
				via[f.id] = f.parent
			}
			stack = append(stack, f)
			// reverse push so the lexically first predecessor is expanded first
			for i := len(pending) - 1; i >= 0; i-- {
				stack = append(stack, frame{id: pending[i], parent: f.id, hasParent: true})
			}
		}
	}

	logger.Debug().Strs("order", order.Strings()).Msg("Dependency graph resolved")
	return order, nil
}

// pending lists the predecessors of id that are not resolved yet
func (g *Graph) pending(id types.Identifier, state map[types.Identifier]color) types.Identifiers {
	var out types.Identifiers
	for _, p := range g.preds[id] {
		if state[p] != resolved {
			out = append(out, p)
		}
	}
	return out
}

// Resolve builds the graph for roots and linearizes it in one call
func Resolve(roots []types.Identifier, lookup LookupFunc) (types.Identifiers, error) {
	g, err := Build(roots, lookup)
	if err != nil {
		return nil, err
	}
	return g.Resolve()
}
