package search

// rareNeedleBytes returns the offsets of the two rarest bytes of the needle
// according to byteRank, smallest offset first. The two offsets differ for
// needles longer than one byte. On equal rank the earlier offset wins.
func rareNeedleBytes(needle []byte) (int, int) {
	if len(needle) <= 1 {
		return 0, 0
	}

	rare1, rare1i := needle[0], 0
	rare2, rare2i := needle[1], 1
	if rank(rare2) < rank(rare1) {
		rare1, rare2 = rare2, rare1
		rare1i, rare2i = rare2i, rare1i
	}

	for i := 2; i < len(needle); i++ {
		b := needle[i]
		if rank(b) < rank(rare1) {
			rare2, rare2i = rare1, rare1i
			rare1, rare1i = b, i
		} else if b != rare1 && rank(b) < rank(rare2) {
			rare2, rare2i = b, i
		}
	}

	if rare2i < rare1i {
		return rare2i, rare1i
	}
	return rare1i, rare2i
}

func rank(b byte) uint8 {
	return byteRank[b]
}
