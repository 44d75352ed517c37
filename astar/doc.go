// Package astar implements A* search over a gridmap.Grid.
//
// Priority is g + Straight*h: accumulated step cost plus the heuristic
// estimate scaled into the same units. The open list is a bucket queue
// whose ties prefer the smaller estimate, so the search runs straight at
// the goal across open ground.
//
// With SetNeedsOptimalSolution(false) any node of the lowest bucket may be
// expanded next, trading exactness for O(1) extraction. With a nil
// heuristic the search is Dijkstra's algorithm.
//
// Heuristics and step costs:
//
//	– heuristic.Diagonal with costs {10, 14} is admissible under Conn8.
//	– heuristic.Manhattan is admissible under Conn4.
//	– Other kinds trade optimality for fewer expansions.
package astar
