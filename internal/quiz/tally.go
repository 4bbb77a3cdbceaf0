package quiz

import (
	"fmt"
	"math"
)

// Tally is the running score for one session. Correct and Seen only
// grow; the session freezes the tally once Seen reaches Total.
type Tally struct {
	Correct int
	Seen    int
	Total   int
}

func (t *Tally) record(correct bool) {
	t.Seen++
	if correct {
		t.Correct++
	}
}

// Complete reports whether every fetched question has a recorded result.
func (t Tally) Complete() bool {
	return t.Seen == t.Total
}

// Accuracy is the raw correct ratio. A zero-question session scores 0.
func (t Tally) Accuracy() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total)
}

// Percent is the display form, rounded. Use Accuracy for anything
// programmatic.
func (t Tally) Percent() int {
	return int(math.Round(t.Accuracy() * 100))
}

func (t Tally) String() string {
	return fmt.Sprintf("%d/%d (%d%%)", t.Correct, t.Total, t.Percent())
}
