package cmd

import "testing"

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"work", "work"},
		{"deep, focused", `"deep, focused"`},
		{`say "hi"`, `"say ""hi"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := csvEscape(tt.in); got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryList(t *testing.T) {
	want := "work, leisure, sport, food, study, sleep, other"
	if got := categoryList(); got != want {
		t.Errorf("categoryList() = %q, want %q", got, want)
	}
}
