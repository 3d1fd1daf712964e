package agglo

// CompareHistories reports whether two merge histories are equivalent.
// Merge order is compared positionally, but each recorded pair is compared
// as an unordered pair: step m of got matches step m of want if they name
// the same two cluster IDs in either order.
func CompareHistories(got, want [][2]int) bool {
	if len(got) != len(want) {
		return false
	}
	for m := range got {
		g, w := got[m], want[m]
		if g != w && (g != [2]int{w[1], w[0]}) {
			return false
		}
	}
	return true
}
