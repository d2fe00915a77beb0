// Package storage persists day-keyed activity logs, advice text and the
// active view in a local key-value store under ~/.qday/data.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"github.com/akorolev/quarterday/internal/grid"
	"github.com/akorolev/quarterday/internal/model"
)

// ErrInvalidSlotID is returned when an update targets a slot id that is not
// one of the canonical grid ids.
var ErrInvalidSlotID = errors.New("invalid slot id")

const activeViewKey = "active_tab"

// BaseDir returns the root data directory (~/.qday/data).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".qday", "data"), nil
}

// Store owns the persisted state for all days. Single writer, synchronous
// writes; every mutation is flushed before the call returns.
type Store struct {
	d   *diskv.Diskv
	log *zap.Logger
}

// Open creates a Store rooted at basePath. A nil logger disables diagnostics.
func Open(basePath string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("storage error creating base directory: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		log: log,
	}, nil
}

// keyToPathTransform shards keys by their prefix: slot logs and advice each
// get a subdirectory, everything else stays at the root.
func keyToPathTransform(key string) *diskv.PathKey {
	if rest, ok := strings.CutPrefix(key, "slots_"); ok {
		return &diskv.PathKey{Path: []string{"slots"}, FileName: rest + ".json"}
	}
	if rest, ok := strings.CutPrefix(key, "advice_"); ok {
		return &diskv.PathKey{Path: []string{"advice"}, FileName: rest + ".txt"}
	}
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	if len(pk.Path) == 1 {
		switch pk.Path[0] {
		case "slots":
			return "slots_" + strings.TrimSuffix(pk.FileName, ".json")
		case "advice":
			return "advice_" + strings.TrimSuffix(pk.FileName, ".txt")
		}
	}
	return pk.FileName
}

func slotsKey(dateKey string) string  { return "slots_" + dateKey }
func adviceKey(dateKey string) string { return "advice_" + dateKey }

// LoadDay returns the persisted DayLog for dateKey, or a fresh empty grid if
// none exists. Absence of data is the "new day" case, not an error. Stored
// data is validated and repaired: slots are merged onto a fresh canonical
// grid by id, unknown ids are dropped, missing ids stay empty, and unknown
// categories fall back to the default.
func (s *Store) LoadDay(dateKey string) (model.DayLog, error) {
	fresh := model.DayLog{Date: dateKey, Slots: grid.Empty()}

	key := slotsKey(dateKey)
	if !s.d.Has(key) {
		return fresh, nil
	}

	raw, err := s.d.Read(key)
	if err != nil {
		return model.DayLog{}, fmt.Errorf("storage error reading %s: %w", key, err)
	}

	var stored []model.TimeSlot
	if err := json.Unmarshal(raw, &stored); err != nil {
		// Back up the corrupt value and start the day over.
		backupKey := key + ".corrupt"
		if werr := s.d.Write(backupKey, raw); werr != nil {
			s.log.Warn("could not back up corrupt day log", zap.String("key", key), zap.Error(werr))
		}
		s.log.Warn("corrupt day log replaced with empty grid",
			zap.String("key", key), zap.String("backup", backupKey), zap.Error(err))
		return fresh, nil
	}

	repaired := 0
	index := make(map[string]int, len(fresh.Slots))
	for i, slot := range fresh.Slots {
		index[slot.ID] = i
	}
	for _, slot := range stored {
		i, ok := index[slot.ID]
		if !ok {
			repaired++
			continue
		}
		cat, known := model.ParseCategory(string(slot.Category))
		if !known {
			repaired++
		}
		fresh.Slots[i].Activity = slot.Activity
		fresh.Slots[i].Category = cat
	}
	if repaired > 0 || len(stored) != grid.SlotsPerDay {
		s.log.Debug("day log repaired on load",
			zap.String("date", dateKey),
			zap.Int("stored", len(stored)),
			zap.Int("anomalies", repaired))
	}
	return fresh, nil
}

// saveDay persists the slot collection for dateKey.
func (s *Store) saveDay(dateKey string, slots []model.TimeSlot) error {
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling day log: %w", err)
	}
	if err := s.d.Write(slotsKey(dateKey), data); err != nil {
		return fmt.Errorf("storage error writing day log %s: %w", dateKey, err)
	}
	return nil
}

// UpdateSlot replaces the activity and category of exactly one slot and
// persists the result before returning. All other slots are unchanged.
func (s *Store) UpdateSlot(dateKey, slotID, activity string, category model.Category) (model.DayLog, error) {
	if !grid.ValidID(slotID) {
		return model.DayLog{}, fmt.Errorf("%w: %q", ErrInvalidSlotID, slotID)
	}

	day, err := s.LoadDay(dateKey)
	if err != nil {
		return model.DayLog{}, err
	}
	for i := range day.Slots {
		if day.Slots[i].ID == slotID {
			day.Slots[i].Activity = activity
			day.Slots[i].Category = category
			break
		}
	}
	if err := s.saveDay(dateKey, day.Slots); err != nil {
		return model.DayLog{}, err
	}
	return day, nil
}

// ResetDay replaces the entire slot collection with a fresh empty grid and
// persists it. Irreversible.
func (s *Store) ResetDay(dateKey string) (model.DayLog, error) {
	day := model.DayLog{Date: dateKey, Slots: grid.Empty()}
	if err := s.saveDay(dateKey, day.Slots); err != nil {
		return model.DayLog{}, err
	}
	return day, nil
}

// Advice returns the stored advice text for dateKey, or "" if none exists.
func (s *Store) Advice(dateKey string) (string, error) {
	key := adviceKey(dateKey)
	if !s.d.Has(key) {
		return "", nil
	}
	raw, err := s.d.Read(key)
	if err != nil {
		return "", fmt.Errorf("storage error reading %s: %w", key, err)
	}
	return string(raw), nil
}

// SaveAdvice stores the advice text for dateKey.
func (s *Store) SaveAdvice(dateKey, text string) error {
	if err := s.d.Write(adviceKey(dateKey), []byte(text)); err != nil {
		return fmt.Errorf("storage error writing advice %s: %w", dateKey, err)
	}
	return nil
}

// ActiveView returns the last persisted view, defaulting to the tracker when
// nothing valid is stored.
func (s *Store) ActiveView() model.View {
	if !s.d.Has(activeViewKey) {
		return model.ViewTracker
	}
	raw, err := s.d.Read(activeViewKey)
	if err != nil {
		s.log.Warn("could not read active view", zap.Error(err))
		return model.ViewTracker
	}
	return model.ParseView(strings.TrimSpace(string(raw)))
}

// SaveActiveView persists the active view. Global, not date-scoped.
func (s *Store) SaveActiveView(v model.View) error {
	if err := s.d.Write(activeViewKey, []byte(v)); err != nil {
		return fmt.Errorf("storage error writing active view: %w", err)
	}
	return nil
}
