package quiz

import "testing"

func TestTallyAccuracy(t *testing.T) {
	cases := []struct {
		correct, total int
		accuracy       float64
		percent        int
	}{
		{0, 0, 0, 0},
		{0, 5, 0, 0},
		{2, 5, 0.4, 40},
		{5, 5, 1, 100},
		{1, 3, 1.0 / 3.0, 33},
		{2, 3, 2.0 / 3.0, 67},
	}
	for _, c := range cases {
		tl := Tally{Correct: c.correct, Total: c.total}
		if got := tl.Accuracy(); got != c.accuracy {
			t.Errorf("%d/%d: accuracy=%v want %v", c.correct, c.total, got, c.accuracy)
		}
		if got := tl.Percent(); got != c.percent {
			t.Errorf("%d/%d: percent=%d want %d", c.correct, c.total, got, c.percent)
		}
	}
}

func TestTallyCompletion(t *testing.T) {
	tl := Tally{Total: 2}
	if tl.Complete() {
		t.Fatalf("fresh tally should not be complete")
	}
	tl.record(true)
	if tl.Complete() {
		t.Fatalf("one of two seen should not be complete")
	}
	tl.record(false)
	if !tl.Complete() {
		t.Fatalf("all seen should be complete")
	}
	if tl.Correct != 1 || tl.Seen != 2 {
		t.Fatalf("unexpected tally %+v", tl)
	}
	// Zero-question session completes immediately.
	if !(Tally{}).Complete() {
		t.Fatalf("empty tally should be complete")
	}
}
