package core

import "errors"

// ErrBadStepCosts indicates a StepCosts value with a non-positive component.
var ErrBadStepCosts = errors.New("core: step costs must be positive")

// Default movement weights: cardinal = 10, diagonal = 14 (≈10√2).
const (
	DefaultStraightCost = 10
	DefaultDiagonalCost = 14
)

// StepCosts is the integer price of a single grid move. The diagonal weighting
// is a caller policy; the engine only requires both values to be positive.
type StepCosts struct {
	Straight int
	Diagonal int
}

// DefaultStepCosts returns the octile weighting {10, 14}.
func DefaultStepCosts() StepCosts {
	return StepCosts{Straight: DefaultStraightCost, Diagonal: DefaultDiagonalCost}
}

// Validate returns ErrBadStepCosts if either component is not positive.
func (c StepCosts) Validate() error {
	if c.Straight <= 0 || c.Diagonal <= 0 {
		return ErrBadStepCosts
	}

	return nil
}

// Cost prices the unit step (dx, dy). Orthogonal steps cost Straight,
// diagonal ones cost Diagonal.
func (c StepCosts) Cost(dx, dy int) int {
	if dx != 0 && dy != 0 {
		return c.Diagonal
	}

	return c.Straight
}

// Max returns the larger of the two step prices.
func (c StepCosts) Max() int {
	if c.Diagonal > c.Straight {
		return c.Diagonal
	}

	return c.Straight
}
