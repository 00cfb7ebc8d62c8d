package textview

// Comparer is an equality relation on views with a consistent hash, suitable
// for keying hash-based containers by view content.
type Comparer interface {
	Equal(a, b View) bool
	Hash(v View) uint64
}

// OrdinalComparer compares views byte by byte.
var OrdinalComparer Comparer = comparer{cmp: Ordinal}

// IgnoreCaseComparer compares views under simple Unicode case folding.
var IgnoreCaseComparer Comparer = comparer{cmp: IgnoreCase}

type comparer struct {
	cmp Comparison
}

func (c comparer) Equal(a, b View) bool {
	return a.EqualsView(b, c.cmp)
}

func (c comparer) Hash(v View) uint64 {
	if c.cmp == IgnoreCase {
		return v.hashFold()
	}
	return v.Hash()
}
