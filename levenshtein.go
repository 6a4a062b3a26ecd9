package minnow

// Index lookup and scoring treat two terms as a fuzzy match when their edit
// distance is below this threshold.
const fuzzyThreshold = 3

// termPair is the memoization key. The pair is stored with the
// lexicographically smaller string first: the metric is symmetric, so
// normalizing the order doubles the hit rate.
type termPair struct {
	a, b string
}

// Levenshtein computes edit distances and memoizes every result. The cache
// is never evicted; values are a pure function of the input pair.
type Levenshtein struct {
	cache map[termPair]int
}

func NewLevenshtein() *Levenshtein {
	return &Levenshtein{cache: make(map[termPair]int)}
}

// Distance returns the minimum number of single-character insertions,
// deletions and substitutions transforming a into b.
func (l *Levenshtein) Distance(a, b string) int {
	if a == b {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	key := termPair{a, b}
	if d, ok := l.cache[key]; ok {
		return d
	}
	d := levenshtein(a, b)
	l.cache[key] = d
	return d
}

// levenshtein fills the standard dynamic-programming table with unit cost
// for every operation, keeping two rows at a time.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	cols := len(ra) + 1
	prev := make([]int, cols)
	curr := make([]int, cols)
	for j := 0; j < cols; j++ {
		prev[j] = j
	}
	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j < cols; j++ {
			cost := 1
			if ra[j-1] == rb[i-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[cols-1]
}
