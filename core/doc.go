// Package core provides the value types shared by every gridpath package.
//
// What:
//
//   - Point and Rect: integer cell coordinates and half-open rectangular
//     regions.
//   - Direction, Directions4 and Directions8: unit steps in the fixed
//     neighbour order E, S, W, N, then SE, SW, NW, NE.
//   - StepCosts: the integer price of a straight and a diagonal move.
//     DefaultStepCosts is the octile pair {10, 14}.
//   - Expand and Reverse: helpers for turning jump-point segments and
//     parent chains into cell paths.
//
// Why:
//
//   - One set of coordinate and cost types keeps the grid, searches,
//     reprocessors and the request engine free of conversions.
//   - Everything here is a plain value; nothing allocates or locks.
package core
