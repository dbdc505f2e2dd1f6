package core

// Manhattan returns the Manhattan distance |ax-bx| + |ay-by| between two
// coordinate pairs. This is the cost model for every edge in the network:
// the cost of a link is the Manhattan distance between its endpoint stops.
// Complexity: O(1).
func Manhattan(ax, ay, bx, by int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dy := ay - by
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}
