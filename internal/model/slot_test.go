package model_test

import (
	"testing"

	"github.com/akorolev/quarterday/internal/model"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   model.Category
		wantOK bool
	}{
		{"work", model.CategoryWork, true},
		{"sleep", model.CategorySleep, true},
		{"other", model.CategoryOther, true},
		{"Work", model.CategoryOther, false},
		{"hustle", model.CategoryOther, false},
		{"", model.CategoryOther, false},
	}
	for _, tt := range tests {
		got, ok := model.ParseCategory(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want model.View
	}{
		{"tracker", model.ViewTracker},
		{"stats", model.ViewStats},
		{"advice", model.ViewAdvice},
		{"dashboard", model.ViewTracker},
		{"", model.ViewTracker},
	}
	for _, tt := range tests {
		if got := model.ParseView(tt.in); got != tt.want {
			t.Errorf("ParseView(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
