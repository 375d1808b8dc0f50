package tube

import (
	"log"

	"github.com/alexiusacademia/gotube/internal/surface"
)

// Layout describes the per-surface shapes fixed at setup. It is immutable
// once returned by Setup and safe for concurrent use.
type Layout struct {
	surfaces []surface.Spec
	index    map[string]int
}

// Setup validates the surface metadata and fixes the input, output and
// derivative shapes of every surface.
func Setup(specs []surface.Spec) (*Layout, error) {
	if err := surface.ValidateAll(specs); err != nil {
		return nil, err
	}

	l := &Layout{
		surfaces: make([]surface.Spec, len(specs)),
		index:    make(map[string]int, len(specs)),
	}
	copy(l.surfaces, specs)
	for i, s := range l.surfaces {
		l.index[s.Name] = i
		log.Printf("setup: surface %q, %d nodes, %d elements", s.Name, s.NumNodes(), s.NumElements())
	}
	return l, nil
}

// Surfaces returns the surface names in declaration order.
func (l *Layout) Surfaces() []string {
	names := make([]string, len(l.surfaces))
	for i, s := range l.surfaces {
		names[i] = s.Name
	}
	return names
}

// Spec returns the metadata a surface was declared with.
func (l *Layout) Spec(name string) (surface.Spec, bool) {
	i, ok := l.index[name]
	if !ok {
		return surface.Spec{}, false
	}
	return l.surfaces[i], true
}

// NumElements returns the length of every sequence of the named surface.
func (l *Layout) NumElements(name string) (int, bool) {
	s, ok := l.Spec(name)
	if !ok {
		return 0, false
	}
	return s.NumElements(), true
}

// Inputs returns the input keys of a surface.
func (l *Layout) Inputs(name string) []Key {
	return l.keys(name, InputRoles)
}

// Outputs returns the output keys of a surface.
func (l *Layout) Outputs(name string) []Key {
	return l.keys(name, OutputRoles)
}

// Pairs returns the declared derivative pairs of a surface. Every pair is
// diagonal: entry i of an output depends only on entry i of an input.
func (l *Layout) Pairs(name string) []Pair {
	if _, ok := l.index[name]; !ok {
		return nil
	}
	pairs := make([]Pair, len(Pairs))
	copy(pairs, Pairs)
	return pairs
}

func (l *Layout) keys(name string, roles []Role) []Key {
	if _, ok := l.index[name]; !ok {
		return nil
	}
	ks := make([]Key, len(roles))
	for i, r := range roles {
		ks[i] = Key{Surface: name, Role: r}
	}
	return ks
}

// check verifies that every declared surface has inputs of the declared
// length. It runs before any computation.
func (l *Layout) check(in Inputs) error {
	for _, s := range l.surfaces {
		g, ok := in[s.Name]
		if !ok {
			return &MissingInputError{Surface: s.Name}
		}
		if err := g.checkLength(s.Name, s.NumElements()); err != nil {
			return err
		}
	}
	return nil
}
