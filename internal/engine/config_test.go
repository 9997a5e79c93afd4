package engine

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"1", Easy},
		{"Medium", Medium},
		{" 2 ", Medium},
		{"HARD", Hard},
		{"3", Hard},
	}
	for _, tc := range cases {
		got, err := ParseDifficulty(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got=%v want=%v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "4", "expert"} {
		if _, err := ParseDifficulty(bad); !errors.Is(err, ErrUnknownDifficulty) {
			t.Fatalf("%q: expected ErrUnknownDifficulty, got %v", bad, err)
		}
	}
}

func TestDifficultyDepth(t *testing.T) {
	if Easy.Depth() != 1 || Medium.Depth() != 2 || Hard.Depth() != 3 {
		t.Fatalf("depths: %d %d %d", Easy.Depth(), Medium.Depth(), Hard.Depth())
	}
	if ConfigFor(Hard).Depth != 3 {
		t.Fatalf("ConfigFor(Hard).Depth = %d", ConfigFor(Hard).Depth)
	}
}

func TestNewDefaultsDepth(t *testing.T) {
	e := New(Config{})
	if e.Depth() != Medium.Depth() {
		t.Fatalf("zero depth should default to medium, got %d", e.Depth())
	}
	if e.Evaluator().Mirror {
		t.Fatalf("mirror tables should be off by default")
	}
}
