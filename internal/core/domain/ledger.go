package domain

// Ledger records the last observed modification time (UnixNano) of every file
// that contributed to a stylesheet. Entries are added or overwritten, never removed.
//
// Equal timestamps are treated as unchanged content: two writes landing inside the
// same mtime resolution window are indistinguishable.
type Ledger struct {
	mtimes map[InternedString]int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{mtimes: make(map[InternedString]int64)}
}

// Get returns the stored timestamp for path.
func (l *Ledger) Get(path string) (int64, bool) {
	mtime, ok := l.mtimes[NewInternedString(path)]
	return mtime, ok
}

// Observe records mtime for path and reports whether it differs from the stored value.
// A path seen for the first time always counts as changed.
func (l *Ledger) Observe(path string, mtime int64) bool {
	key := NewInternedString(path)
	if stored, ok := l.mtimes[key]; ok && stored == mtime {
		return false
	}
	l.mtimes[key] = mtime
	return true
}

// Len returns the number of tracked paths.
func (l *Ledger) Len() int {
	return len(l.mtimes)
}
