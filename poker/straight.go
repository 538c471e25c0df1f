package poker

// wheelRanks is A-2-3-4-5 in ascending sort order.
var wheelRanks = [HandSize]Rank{Two, Three, Four, Five, Ace}

// isFlush reports whether all cards share one suit.
func isFlush(sorted Hand) bool {
	for _, c := range sorted[1:] {
		if c.suit != sorted[0].suit {
			return false
		}
	}
	return true
}

// isWheel reports whether the rank-sorted hand is exactly A-2-3-4-5.
func isWheel(sorted Hand) bool {
	for i, c := range sorted {
		if c.rank != wheelRanks[i] {
			return false
		}
	}
	return true
}

// straightTop returns the top rank of the straight formed by the rank-sorted
// hand. The wheel plays the ace low, so its top rank is Five.
func straightTop(sorted Hand) (Rank, bool) {
	if isWheel(sorted) {
		return Five, true
	}
	for i := 1; i < HandSize; i++ {
		if sorted[i].rank.Weight()-sorted[i-1].rank.Weight() != 1 {
			return 0, false
		}
	}
	return sorted[HandSize-1].rank, true
}
