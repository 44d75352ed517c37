// Package heuristic provides the distance estimates used by informed grid
// searches and by request prioritization.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/core"
)

// ErrUnknownKind indicates a Kind value outside the declared set.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Weights used by WeightedDiagonal.
const (
	StraightCost = 1
	DiagonalCost = 2
)

// Kind selects a distance estimate.
type Kind int

const (
	// None disables the estimate; informed searches degrade to uninformed ones.
	None Kind = iota
	// Manhattan is |dx| + |dy|.
	Manhattan
	// Euclidean is the straight-line distance truncated to an integer.
	Euclidean
	// SquaredEuclidean is dx² + dy².
	SquaredEuclidean
	// Diagonal is max(|dx|, |dy|) (Chebyshev).
	Diagonal
	// WeightedDiagonal is DiagonalCost*min(|dx|,|dy|) + StraightCost*||dx|-|dy||.
	WeightedDiagonal
)

var kindNames = [...]string{
	None:             "none",
	Manhattan:        "manhattan",
	Euclidean:        "euclidean",
	SquaredEuclidean: "squared_euclidean",
	Diagonal:         "diagonal",
	WeightedDiagonal: "weighted_diagonal",
}

// Func estimates the distance between two cells.
type Func func(a, b core.Point) int

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= None && int(k) < len(kindNames)
}

// String returns the snake_case name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("heuristic(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind resolves a name produced by String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// Calculate returns the kind's estimate between a and b.
// Panics with an error wrapping ErrUnknownKind for undeclared kinds.
func Calculate(kind Kind, a, b core.Point) int {
	dx := core.Abs(a.X - b.X)
	dy := core.Abs(a.Y - b.Y)

	switch kind {
	case None:
		return 0
	case Manhattan:
		return dx + dy
	case Euclidean:
		return int(math.Sqrt(float64(dx*dx + dy*dy)))
	case SquaredEuclidean:
		return dx*dx + dy*dy
	case Diagonal:
		return max(dx, dy)
	case WeightedDiagonal:
		return DiagonalCost*min(dx, dy) + StraightCost*core.Abs(dx-dy)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownKind, int(kind)))
	}
}

// For returns kind as a Func, or nil for None.
// Panics with an error wrapping ErrUnknownKind for undeclared kinds.
func For(kind Kind) Func {
	if !kind.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownKind, int(kind)))
	}
	if kind == None {
		return nil
	}

	return func(a, b core.Point) int { return Calculate(kind, a, b) }
}
