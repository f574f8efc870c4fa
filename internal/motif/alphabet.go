package motif

// Alphabet is the nucleotide alphabet in MEME column order.
const Alphabet = "ACGT"

// Column returns the matrix column of base, or false if base is not in Alphabet.
func Column(base byte) (int, bool) {
	switch base {
	case 'A':
		return 0, true
	case 'C':
		return 1, true
	case 'G':
		return 2, true
	case 'T':
		return 3, true
	}
	return -1, false
}
