// Package grid generates and addresses the canonical 15-minute slot grid
// covering one calendar day.
package grid

import (
	"fmt"
	"time"

	"github.com/akorolev/quarterday/internal/model"
)

const (
	// SlotMinutes is the length of one slot.
	SlotMinutes = 15
	// SlotsPerDay is the fixed number of slots in a day (24h × 4).
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// Empty returns the canonical day grid: SlotsPerDay slots from 00:00 to
// 23:45 in ascending order, each unlogged with the default category.
// Deterministic; calling it twice yields structurally identical output.
func Empty() []model.TimeSlot {
	slots := make([]model.TimeSlot, 0, SlotsPerDay)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += SlotMinutes {
			id := fmt.Sprintf("%02d:%02d", h, m)
			slots = append(slots, model.TimeSlot{
				ID:       id,
				Time:     id,
				Activity: "",
				Category: model.CategoryOther,
			})
		}
	}
	return slots
}

// ValidID reports whether id is one of the canonical slot ids.
func ValidID(id string) bool {
	t, err := time.Parse("15:04", id)
	if err != nil {
		return false
	}
	return t.Format("15:04") == id && t.Minute()%SlotMinutes == 0
}

// ParseSlotID normalises user input like "8:00" to the canonical "08:00"
// form. Minutes must land on a quarter boundary.
func ParseSlotID(s string) (string, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if t.Minute()%SlotMinutes != 0 {
		return "", fmt.Errorf("invalid time %q: minutes must be a multiple of %d", s, SlotMinutes)
	}
	return t.Format("15:04"), nil
}

// SlotIDAt floors a wall-clock time to the id of the slot containing it.
func SlotIDAt(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()-t.Minute()%SlotMinutes)
}

// DateKey formats t as the "YYYY-MM-DD" persistence partition key. Callers
// compute it once per run and pass it down explicitly.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
