package rank

import (
	"testing"

	"github.com/astrolearn/astrolearn-client/internal/platform"
)

func TestBuildOrdersByLevelThenXP(t *testing.T) {
	self := platform.StudentProfile{ID: "me", Name: "Me", Level: 4, XP: 120}
	friends := []platform.Friend{
		{ID: "f1", Name: "High", Level: 7},
		{ID: "f2", Name: "Low", Level: 2},
		{ID: "f3", Name: "SameLevel", Level: 4},
	}
	rows := Build(self, friends)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	wantOrder := []string{"f1", "me", "f3", "f2"}
	for i, id := range wantOrder {
		if rows[i].StudentID != id {
			t.Fatalf("position %d: got %q want %q", i+1, rows[i].StudentID, id)
		}
		if rows[i].Position != i+1 {
			t.Fatalf("position field %d: got %d", i+1, rows[i].Position)
		}
	}
	// Self outranks a same-level friend on XP (friends carry none).
	if !rows[1].You {
		t.Fatalf("expected self at position 2")
	}
}

func TestBuildSelfOnly(t *testing.T) {
	rows := Build(platform.StudentProfile{ID: "me", Name: "Me", Level: 1}, nil)
	if len(rows) != 1 || rows[0].Position != 1 || !rows[0].You {
		t.Fatalf("unexpected board %+v", rows)
	}
}

func TestBuildLevelTieKeepsInputOrder(t *testing.T) {
	self := platform.StudentProfile{ID: "me", Level: 3}
	friends := []platform.Friend{
		{ID: "a", Level: 3},
		{ID: "b", Level: 3},
	}
	rows := Build(self, friends)
	// self has XP 0 like the friends: stable sort keeps a, b, me.
	wantOrder := []string{"a", "b", "me"}
	for i, id := range wantOrder {
		if rows[i].StudentID != id {
			t.Fatalf("position %d: got %q want %q", i+1, rows[i].StudentID, id)
		}
	}
}
