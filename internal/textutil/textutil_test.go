package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "ATTACKATDAWN", "ATTACKATDAWN"},
		{"lowercase", "attack at dawn", "ATTACKATDAWN"},
		{"punctuation and digits", "Attack at dawn, 05:00!", "ATTACKATDAWN"},
		{"empty", "", ""},
		{"no letters", "123 !?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLetterCounts(t *testing.T) {
	counts := LetterCounts("AABZ")
	if counts[0] != 2 {
		t.Errorf("count of A = %d, want 2", counts[0])
	}
	if counts[1] != 1 {
		t.Errorf("count of B = %d, want 1", counts[1])
	}
	if counts[25] != 1 {
		t.Errorf("count of Z = %d, want 1", counts[25])
	}
	if counts[2] != 0 {
		t.Errorf("count of C = %d, want 0", counts[2])
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ABC", "", 3},
		{"", "ABC", 3},
		{"ABC", "ABC", 0},
		{"ABC", "ABD", 1},
		{"ABC", "AXBC", 1},
		{"ABCD", "ABD", 1},
		{"KITTEN", "SITTING", 3},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestWithinDistance(t *testing.T) {
	if !WithinDistance("BETWEEN", "BETWEEN", 0) {
		t.Error("identical strings should be within distance 0")
	}
	if !WithinDistance("BETWEEN", "BETWEAN", 1) {
		t.Error("single substitution should be within distance 1")
	}
	if WithinDistance("BETWEEN", "BETWEANX", 1) {
		t.Error("two edits should not be within distance 1")
	}
	if WithinDistance("AB", "ABCDE", 2) {
		t.Error("length difference above maxDist should short-circuit to false")
	}
}
