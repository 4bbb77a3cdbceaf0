// Package rank assembles the leaderboard shown on the leaderboard page:
// the signed-in student plus their friends, ordered by level and XP.
package rank

import (
	"sort"

	"github.com/astrolearn/astrolearn-client/internal/platform"
)

type Row struct {
	StudentID  string
	Name       string
	Level      int
	XP         int
	DaysStreak int
	Position   int
	You        bool
}

// Build merges the student and their friends into one board, sorted by
// level descending then XP descending, with 1-based positions. The
// friends feed carries no XP, so friends rank on level alone; ties keep
// input order.
func Build(self platform.StudentProfile, friends []platform.Friend) []Row {
	rows := make([]Row, 0, len(friends)+1)
	for _, f := range friends {
		rows = append(rows, Row{
			StudentID:  f.ID,
			Name:       f.Name,
			Level:      f.Level,
			DaysStreak: f.DaysStreak,
		})
	}
	rows = append(rows, Row{
		StudentID:  self.ID,
		Name:       self.Name,
		Level:      self.Level,
		XP:         self.XP,
		DaysStreak: self.DaysStreak,
		You:        true,
	})
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Level != rows[j].Level {
			return rows[i].Level > rows[j].Level
		}
		return rows[i].XP > rows[j].XP
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}
