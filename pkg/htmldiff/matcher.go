package htmldiff

import "sort"

// autoJunkMinLength is the length of b from which autojunk kicks in.
const autoJunkMinLength = 200

// OpTag identifies the kind of an Opcode.
type OpTag byte

const (
	// OpEqual means a[I1:I2] == b[J1:J2].
	OpEqual OpTag = 'e'

	// OpDelete means a[I1:I2] should be deleted. J1 == J2.
	OpDelete OpTag = 'd'

	// OpInsert means b[J1:J2] should be inserted at a[I1]. I1 == I2.
	OpInsert OpTag = 'i'

	// OpReplace means a[I1:I2] should be replaced by b[J1:J2].
	OpReplace OpTag = 'r'
)

// String returns the lowercase name of the tag.
func (t OpTag) String() string {
	switch t {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Opcode describes how a[I1:I2] maps to b[J1:J2].
type Opcode struct {
	Tag OpTag
	I1  int
	I2  int
	J1  int
	J2  int
}

// Match is a common run: a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// span is a pending pair of ranges for the matching-block worklist.
type span struct {
	alo, ahi int
	blo, bhi int
}

// Matcher aligns two sequences of token texts using longest matching blocks
// in the manner of Ratcliff and Obershelp. Junk elements of b anchor a match
// only when no non-junk element matches; otherwise they are absorbed at the
// edges of one.
//
// A Matcher is not safe for concurrent use; build one per comparison.
type Matcher struct {
	a, b     []string
	isJunk   JunkFunc
	autoJunk bool

	b2j      map[string][]int
	junk2j   map[string][]int
	bPopular map[string]struct{}

	matchingBlocks []Match
	opcodes        []Opcode
}

// NewMatcher prepares a comparison of a against b.
// A nil isJunk treats nothing as junk. autoJunk additionally drops tokens
// that occur in more than 1% of a long b from the index.
func NewMatcher(a, b []string, isJunk JunkFunc, autoJunk bool) *Matcher {
	if isJunk == nil {
		isJunk = NoJunk
	}
	m := &Matcher{a: a, b: b, isJunk: isJunk, autoJunk: autoJunk}
	m.indexB()
	return m
}

// indexB builds the token -> positions index for b. Junk tokens go to a
// separate index and popular tokens are dropped.
func (m *Matcher) indexB() {
	b2j := make(map[string][]int)
	for j, tok := range m.b {
		b2j[tok] = append(b2j[tok], j)
	}

	m.junk2j = make(map[string][]int)
	for tok, positions := range b2j {
		if m.isJunk(tok) {
			m.junk2j[tok] = positions
		}
	}
	for tok := range m.junk2j {
		delete(b2j, tok)
	}

	m.bPopular = make(map[string]struct{})
	if n := len(m.b); m.autoJunk && n >= autoJunkMinLength {
		limit := n/100 + 1
		for tok, positions := range b2j {
			if len(positions) > limit {
				m.bPopular[tok] = struct{}{}
			}
		}
		for tok := range m.bPopular {
			delete(b2j, tok)
		}
	}

	m.b2j = b2j
}

func (m *Matcher) isBJunk(tok string) bool {
	_, ok := m.junk2j[tok]
	return ok
}

// findLongestMatch returns the longest junk-free block common to a[alo:ahi]
// and b[blo:bhi], preferring the earliest start in a, then in b. When no
// junk-free block exists the longest run of junk is used instead. The block
// is then grown over equal non-junk neighbours and finally over equal junk
// neighbours. Size is zero when nothing matches.
func (m *Matcher) findLongestMatch(alo, ahi, blo, bhi int) Match {
	besti, bestj, bestsize := m.longestRun(m.b2j, alo, ahi, blo, bhi)
	if bestsize == 0 {
		besti, bestj, bestsize = m.longestRun(m.junk2j, alo, ahi, blo, bhi)
	}

	// Popular tokens are not indexed, so grow over them here.
	for besti > alo && bestj > blo && !m.isBJunk(m.b[bestj-1]) &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		!m.isBJunk(m.b[bestj+bestsize]) &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	// Absorb identical junk on both sides.
	for besti > alo && bestj > blo && m.isBJunk(m.b[bestj-1]) &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		m.isBJunk(m.b[bestj+bestsize]) &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// longestRun finds the longest block of a[alo:ahi] and b[blo:bhi] made of
// tokens present in index. Positions in index must be ascending.
func (m *Matcher) longestRun(index map[string][]int, alo, ahi, blo, bhi int) (int, int, int) {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the longest match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range index[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}

// MatchingBlocks returns the maximal matching blocks in ascending order.
// Adjacent blocks are merged. The last element is always the sentinel
// {len(a), len(b), 0}.
func (m *Matcher) MatchingBlocks() []Match {
	if m.matchingBlocks != nil {
		return m.matchingBlocks
	}

	var matched []Match
	queue := []span{{alo: 0, ahi: len(m.a), blo: 0, bhi: len(m.b)}}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		match := m.findLongestMatch(cur.alo, cur.ahi, cur.blo, cur.bhi)
		if match.Size == 0 {
			continue
		}
		matched = append(matched, match)

		i, j, k := match.A, match.B, match.Size
		if cur.alo < i && cur.blo < j {
			queue = append(queue, span{alo: cur.alo, ahi: i, blo: cur.blo, bhi: j})
		}
		if i+k < cur.ahi && j+k < cur.bhi {
			queue = append(queue, span{alo: i + k, ahi: cur.ahi, blo: j + k, bhi: cur.bhi})
		}
	}

	sort.Slice(matched, func(x, y int) bool {
		if matched[x].A != matched[y].A {
			return matched[x].A < matched[y].A
		}
		return matched[x].B < matched[y].B
	})

	blocks := make([]Match, 0, len(matched)+1)
	i1, j1, k1 := 0, 0, 0
	for _, block := range matched {
		if i1+k1 == block.A && j1+k1 == block.B {
			k1 += block.Size
			continue
		}
		if k1 > 0 {
			blocks = append(blocks, Match{A: i1, B: j1, Size: k1})
		}
		i1, j1, k1 = block.A, block.B, block.Size
	}
	if k1 > 0 {
		blocks = append(blocks, Match{A: i1, B: j1, Size: k1})
	}
	blocks = append(blocks, Match{A: len(m.a), B: len(m.b), Size: 0})

	m.matchingBlocks = blocks
	return blocks
}

// Opcodes returns the edit script turning a into b. The opcodes cover both
// sequences contiguously from index 0; a gap in both sequences between two
// matches is a single OpReplace, never a delete next to an insert.
func (m *Matcher) Opcodes() []Opcode {
	if m.opcodes != nil {
		return m.opcodes
	}

	blocks := m.MatchingBlocks()
	opcodes := make([]Opcode, 0, 2*len(blocks))
	i, j := 0, 0
	for _, block := range blocks {
		var tag OpTag
		switch {
		case i < block.A && j < block.B:
			tag = OpReplace
		case i < block.A:
			tag = OpDelete
		case j < block.B:
			tag = OpInsert
		}
		if tag != 0 {
			opcodes = append(opcodes, Opcode{Tag: tag, I1: i, I2: block.A, J1: j, J2: block.B})
		}
		i, j = block.A+block.Size, block.B+block.Size
		if block.Size > 0 {
			opcodes = append(opcodes, Opcode{Tag: OpEqual, I1: block.A, I2: i, J1: block.B, J2: j})
		}
	}

	m.opcodes = opcodes
	return opcodes
}

// Ratio returns a similarity score in [0, 1] for opcodes over sequences of
// lenA and lenB elements: 2*M/T where M is the number of elements inside
// OpEqual ranges and T is lenA+lenB. Two empty sequences score 1.
func Ratio(opcodes []Opcode, lenA, lenB int) float64 {
	total := lenA + lenB
	if total == 0 {
		return 1.0
	}
	matches := 0
	for _, op := range opcodes {
		if op.Tag == OpEqual {
			matches += op.I2 - op.I1
		}
	}
	return 2.0 * float64(matches) / float64(total)
}
