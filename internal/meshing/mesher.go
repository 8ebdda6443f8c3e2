package meshing

import (
	"errors"
	"fmt"
	"strings"

	"voxelgen/internal/world"
)

// ErrUnknownKind is returned by ParseKind for an unrecognised mesher name.
var ErrUnknownKind = errors.New("unknown mesher kind")

// Kind selects a meshing strategy.
type Kind string

const (
	KindNaive  Kind = "naive"
	KindGreedy Kind = "greedy"
)

// Builder turns a chunk into geometry.
type Builder func(c *world.Chunk) *Geometry

// ParseKind accepts "naive" or "greedy", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindNaive, KindGreedy:
		return k, nil
	default:
		return "", fmt.Errorf("meshing: %q: %w", s, ErrUnknownKind)
	}
}

// Builder returns the mesher for k. Unknown kinds fall back to greedy.
func (k Kind) Builder() Builder {
	if k == KindNaive {
		return BuildNaive
	}
	return BuildGreedy
}

func (k Kind) String() string { return string(k) }
