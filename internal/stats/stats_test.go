package stats_test

import (
	"testing"

	"github.com/akorolev/quarterday/internal/model"
	"github.com/akorolev/quarterday/internal/stats"
)

func slot(id, activity string, cat model.Category) model.TimeSlot {
	return model.TimeSlot{ID: id, Time: id, Activity: activity, Category: cat}
}

func TestAggregateSkipsWhitespace(t *testing.T) {
	slots := []model.TimeSlot{
		slot("08:00", "Work", model.CategoryWork),
		slot("08:15", "  ", model.CategoryWork),
		slot("08:30", "Run", model.CategorySport),
	}

	rows := stats.Aggregate(slots)
	if len(rows) != 2 {
		t.Fatalf("Aggregate returned %d rows, want 2", len(rows))
	}
	if rows[0].Category != model.CategoryWork || rows[0].Count != 1 {
		t.Errorf("rows[0] = %+v, want {work 1}", rows[0])
	}
	if rows[1].Category != model.CategorySport || rows[1].Count != 1 {
		t.Errorf("rows[1] = %+v, want {sport 1}", rows[1])
	}
}

func TestAggregateEmpty(t *testing.T) {
	if rows := stats.Aggregate(nil); len(rows) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", rows)
	}
	blank := []model.TimeSlot{slot("09:00", "\t\n", model.CategoryStudy)}
	if rows := stats.Aggregate(blank); len(rows) != 0 {
		t.Errorf("Aggregate(blank) = %v, want empty", rows)
	}
}

func TestAggregateFirstOccurrenceOrder(t *testing.T) {
	slots := []model.TimeSlot{
		slot("07:00", "Breakfast", model.CategoryFood),
		slot("09:00", "Standup", model.CategoryWork),
		slot("09:15", "Review", model.CategoryWork),
		slot("12:00", "Lunch", model.CategoryFood),
		slot("19:00", "Gym", model.CategorySport),
	}

	rows := stats.Aggregate(slots)
	wantOrder := []model.Category{model.CategoryFood, model.CategoryWork, model.CategorySport}
	wantCount := []int{2, 2, 1}
	if len(rows) != len(wantOrder) {
		t.Fatalf("Aggregate returned %d rows, want %d", len(rows), len(wantOrder))
	}
	for i := range rows {
		if rows[i].Category != wantOrder[i] || rows[i].Count != wantCount[i] {
			t.Errorf("rows[%d] = %+v, want {%s %d}", i, rows[i], wantOrder[i], wantCount[i])
		}
	}
}

func TestTotalLogged(t *testing.T) {
	slots := []model.TimeSlot{
		slot("08:00", "Work", model.CategoryWork),
		slot("08:15", "", model.CategoryOther),
		slot("08:30", " ", model.CategoryOther),
		slot("08:45", "Coffee", model.CategoryFood),
	}
	if got := stats.TotalLogged(slots); got != 2 {
		t.Errorf("TotalLogged = %d, want 2", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		slots int
		want  string
	}{
		{0, "0m"},
		{1, "15m"},
		{3, "45m"},
		{4, "1h 0m"},
		{5, "1h 15m"},
		{96, "24h 0m"},
	}
	for _, tt := range tests {
		if got := stats.FormatDuration(tt.slots); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.slots, got, tt.want)
		}
	}
}

func TestFormatShare(t *testing.T) {
	tests := []struct {
		count, total int
		want         string
	}{
		{0, 0, "0.0%"},
		{1, 4, "25.0%"},
		{2, 3, "66.7%"},
		{3, 3, "100.0%"},
	}
	for _, tt := range tests {
		if got := stats.FormatShare(tt.count, tt.total); got != tt.want {
			t.Errorf("FormatShare(%d, %d) = %q, want %q", tt.count, tt.total, got, tt.want)
		}
	}
}
