package scoring

import (
	"sort"
	"time"
)

// Scoreboard keeps the finished rounds of one process run. Nothing is
// written to disk.
type Scoreboard struct {
	history ScoreHistory
	now     func() time.Time
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{now: time.Now}
}

// Record appends a finished round and returns the stored entry.
func (s *Scoreboard) Record(difficulty, width, height, seconds int, won bool) ScoreHistoryEntry {
	entry := ScoreHistoryEntry{
		Difficulty: difficulty,
		Width:      width,
		Height:     height,
		Seconds:    seconds,
		Won:        won,
		Timestamp:  s.now().Format(time.RFC3339),
	}
	s.history.Entries = append(s.history.Entries, entry)
	return entry
}

func (s *Scoreboard) Played() int {
	return len(s.history.Entries)
}

func (s *Scoreboard) Wins() int {
	n := 0
	for _, e := range s.history.Entries {
		if e.Won {
			n++
		}
	}
	return n
}

// Best returns the fastest win for a difficulty level, or nil.
func (s *Scoreboard) Best(difficulty int) *ScoreHistoryEntry {
	top := s.Top(1, difficulty)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}

// Top returns up to n wins for a difficulty level, fastest first. Ties
// keep recording order.
func (s *Scoreboard) Top(n, difficulty int) []ScoreHistoryEntry {
	wins := s.history.Filter(func(e ScoreHistoryEntry) bool {
		return e.Won && e.Difficulty == difficulty
	})
	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].Seconds < wins[j].Seconds
	})
	if len(wins) < n {
		return wins
	}
	return wins[:n]
}

// GotBestTime reports whether entry is at least as fast as every earlier
// win at the same level.
func (s *Scoreboard) GotBestTime(entry ScoreHistoryEntry) bool {
	if !entry.Won {
		return false
	}
	for _, e := range s.history.Entries {
		if e.Won && e.Difficulty == entry.Difficulty && e.Seconds < entry.Seconds {
			return false
		}
	}
	return true
}
