package qnn

// Argmax returns the index of the largest value. On ties the lowest index
// wins. An empty slice yields -1.
func Argmax[A Accumulator](v []A) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
