package fuzzy

// Distance returns the Levenshtein edit distance between source and target:
// the minimum number of single-rune insertions, deletions, and substitutions
// transforming source into target. Comparison is exact (no case folding);
// substitution costs 1 unless the runes are equal.
func Distance(source, target string) int {
	s := []rune(source)
	t := []rune(target)

	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}

	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(t); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(s); i++ {
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			d[i][j] = min(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[len(s)][len(t)]
}
