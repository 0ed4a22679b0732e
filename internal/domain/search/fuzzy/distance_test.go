package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		source string
		target string
		want   int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "", 1},
		{"kitten", "sitting", 3},
		{"smith", "smyth", 1},
		{"same", "same", 0},
		{"Lakeside", "lakeside", 1},
		{"flaw", "lawn", 2},
		{"кабинет", "кабинеты", 1},
	}
	for _, tc := range tests {
		if got := Distance(tc.source, tc.target); got != tc.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.source, tc.target, got, tc.want)
		}
	}
}

func TestDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "Lakeside Dental", "555-0100"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"Apple Dental", "Apply Dental"},
		{"short", "a much longer string"},
	}
	for _, p := range pairs {
		a, b := Distance(p[0], p[1]), Distance(p[1], p[0])
		if a != b {
			t.Errorf("Distance(%q, %q) = %d but reversed = %d", p[0], p[1], a, b)
		}
	}
}
