package resolver

import (
	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/types"
)

// LookupFunc returns the dependency declaration of a rule. It must be
// deterministic for a given identifier during one Build call and return an
// error for identifiers it doesn't know about.
type LookupFunc func(id types.Identifier) (types.DependencyDeclaration, error)

// StaticLookup serves declarations from a map. Identifiers missing from the
// map are treated as leaves with no constraints.
func StaticLookup(decls map[types.Identifier]types.DependencyDeclaration) LookupFunc {
	return func(id types.Identifier) (types.DependencyDeclaration, error) {
		return decls[id], nil
	}
}

// Graph maps each rule to the rules that must be performed before it.
// It is immutable once built.
type Graph struct {
	roots types.Identifiers
	// nodes in discovery order, roots first
	nodes types.Identifiers
	preds map[types.Identifier]types.Identifiers
}

// Build walks deps and post deps transitively from roots and returns the
// resulting graph. The first failing lookup aborts the walk.
func Build(roots []types.Identifier, lookup LookupFunc) (*Graph, error) {
	logger := logging.GetLogger("resolver.build")

	b := &builder{
		lookup: lookup,
		seen:   make(map[types.Identifier]struct{}),
		sets:   make(map[types.Identifier]map[types.Identifier]struct{}),
	}

	uniqueRoots := types.Identifiers(roots).Unique()
	for _, root := range uniqueRoots {
		if err := root.Validate(); err != nil {
			return nil, err
		}
		b.discover(root)
	}

	// nodes grows while the queue is drained
	for i := 0; i < len(b.nodes); i++ {
		if err := b.expand(b.nodes[i]); err != nil {
			return nil, err
		}
	}

	g := &Graph{
		roots: uniqueRoots,
		nodes: b.nodes,
		preds: make(map[types.Identifier]types.Identifiers, len(b.nodes)),
	}
	edges := 0
	for _, id := range b.nodes {
		preds := make(types.Identifiers, 0, len(b.sets[id]))
		for p := range b.sets[id] {
			preds = append(preds, p)
		}
		g.preds[id] = preds.Sorted()
		edges += len(preds)
	}

	logger.Debug().
		Strs("roots", uniqueRoots.Strings()).
		Int("nodes", len(g.nodes)).
		Int("edges", edges).
		Msg("Dependency graph built")

	return g, nil
}

type builder struct {
	lookup LookupFunc
	seen   map[types.Identifier]struct{}
	nodes  types.Identifiers
	sets   map[types.Identifier]map[types.Identifier]struct{}
}

func (b *builder) discover(id types.Identifier) {
	if _, ok := b.seen[id]; ok {
		return
	}
	b.seen[id] = struct{}{}
	b.nodes = append(b.nodes, id)
	b.sets[id] = make(map[types.Identifier]struct{})
}

// addEdge records that node must come after pred
func (b *builder) addEdge(node, pred types.Identifier) {
	b.sets[node][pred] = struct{}{}
}

func (b *builder) expand(id types.Identifier) error {
	decl, err := b.lookup(id)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrUnknownRule) {
			return err
		}
		return errors.Wrapf(err, errors.ErrUnknownRule, "Undefined rule: %s", id).
			WithDetail("rule", string(id))
	}

	for _, dep := range decl.Deps {
		if err := dep.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidIdentifier, "Invalid dependency of `%s`", id)
		}
		b.discover(dep)
		b.addEdge(id, dep)
	}
	for _, post := range decl.PostDeps {
		if err := post.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidIdentifier, "Invalid post dependency of `%s`", id)
		}
		b.discover(post)
		b.addEdge(post, id)
	}
	return nil
}

// Roots returns the requested identifiers, without duplicates
func (g *Graph) Roots() types.Identifiers {
	return append(types.Identifiers(nil), g.roots...)
}

// Nodes returns every identifier in the graph in discovery order
func (g *Graph) Nodes() types.Identifiers {
	return append(types.Identifiers(nil), g.nodes...)
}

// Has reports whether id is a node of the graph
func (g *Graph) Has(id types.Identifier) bool {
	_, ok := g.preds[id]
	return ok
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Predecessors returns the identifiers that must come before id, sorted
func (g *Graph) Predecessors(id types.Identifier) types.Identifiers {
	return append(types.Identifiers(nil), g.preds[id]...)
}
