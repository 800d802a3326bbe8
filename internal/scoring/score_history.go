package scoring

// ScoreHistory holds every round recorded so far.
type ScoreHistory struct {
	Entries []ScoreHistoryEntry
}

// ScoreHistoryEntry represents a single finished round.
type ScoreHistoryEntry struct {
	Difficulty int
	Width      int
	Height     int
	Seconds    int
	Won        bool
	Timestamp  string
}

// Filter returns a copy of the entries matching keep.
func (sh ScoreHistory) Filter(keep func(ScoreHistoryEntry) bool) []ScoreHistoryEntry {
	out := []ScoreHistoryEntry{}
	for _, e := range sh.Entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
