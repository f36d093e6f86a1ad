package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownName is returned when a registry lookup misses.
var ErrUnknownName = errors.New("unknown name")

// Registry maps names to values, such as export formats.
type Registry[T any] struct {
	kind    string
	entries map[string]T
}

// NewRegistry returns an empty registry. kind is used in error messages.
func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: map[string]T{}}
}

// Register adds v under name. Empty names are ignored.
func (r *Registry[T]) Register(name string, v T) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	r.entries[name] = v
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the value registered under name. On a miss the error names
// the closest registered entry when one is within a small edit distance.
func (r *Registry[T]) Lookup(name string) (T, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if v, ok := r.entries[key]; ok {
		return v, nil
	}
	var zero T
	if s := r.Suggest(key); s != "" {
		return zero, fmt.Errorf("%w: %s %q (did you mean %q?)", ErrUnknownName, r.kind, name, s)
	}
	return zero, fmt.Errorf("%w: %s %q (known: %s)", ErrUnknownName, r.kind, name, strings.Join(r.Names(), ", "))
}

// Suggest returns the registered name closest to name, or "" when nothing is
// close enough to be a plausible typo.
func (r *Registry[T]) Suggest(name string) string {
	best := ""
	bestDist := suggestLimit(len(name)) + 1
	for _, candidate := range r.Names() {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
