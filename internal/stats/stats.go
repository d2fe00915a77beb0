// Package stats derives presentation views from a day's slot collection.
package stats

import (
	"fmt"
	"strings"

	"github.com/akorolev/quarterday/internal/grid"
	"github.com/akorolev/quarterday/internal/model"
)

// CategoryCount is one row of the category distribution.
type CategoryCount struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

// logged reports whether a slot carries a real activity. Whitespace-only
// text counts as unlogged.
func logged(slot model.TimeSlot) bool {
	return strings.TrimSpace(slot.Activity) != ""
}

// Aggregate counts logged slots per category. Categories with no logged
// slots are omitted; rows appear in order of first occurrence while scanning
// slots in ascending time order. Pure, recomputed on every call.
func Aggregate(slots []model.TimeSlot) []CategoryCount {
	counts := map[model.Category]int{}
	var order []model.Category
	for _, slot := range slots {
		if !logged(slot) {
			continue
		}
		if _, seen := counts[slot.Category]; !seen {
			order = append(order, slot.Category)
		}
		counts[slot.Category]++
	}

	rows := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		rows = append(rows, CategoryCount{Category: c, Count: counts[c]})
	}
	return rows
}

// TotalLogged returns the number of slots with a real activity.
func TotalLogged(slots []model.TimeSlot) int {
	n := 0
	for _, slot := range slots {
		if logged(slot) {
			n++
		}
	}
	return n
}

// FormatDuration renders a slot count as logged time, e.g. 5 slots → "1h 15m".
func FormatDuration(slotCount int) string {
	minutes := slotCount * grid.SlotMinutes
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatShare renders a row's share of the logged total, e.g. "25.0%".
func FormatShare(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)*100/float64(total))
}
