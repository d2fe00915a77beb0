// Package advice turns a day's activity log into a generative-text prompt
// and normalises the service response into something always displayable.
package advice

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/akorolev/quarterday/internal/model"
	"github.com/akorolev/quarterday/internal/storage"
)

// Fixed user-facing messages. The advisor never surfaces raw errors; callers
// always receive one of these or the generated text itself.
const (
	MsgLogFirst = "Start logging your activities to get personal advice!"
	MsgNoAdvice = "Could not get advice right now. Please try again later."
	MsgFailure  = "Something went wrong talking to the AI service. Make sure your API key is active."
	MsgBusy     = "An advice request is already in progress."
)

// Generator produces text from a prompt. Implemented by gemini.Client and
// mocked in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor builds advice requests from the stored day log and records the
// result as the day's advice.
type Advisor struct {
	gen      Generator
	store    *storage.Store
	log      *zap.Logger
	language string

	busy atomic.Bool
}

// New creates an Advisor. language names the language the advice should be
// written in; a nil logger disables diagnostics.
func New(gen Generator, store *storage.Store, language string, log *zap.Logger) *Advisor {
	if log == nil {
		log = zap.NewNop()
	}
	if language == "" {
		language = "English"
	}
	return &Advisor{gen: gen, store: store, log: log, language: language}
}

// FilterLogged returns the slots carrying a real activity, in their original
// ascending time order. Whitespace-only activities are unlogged.
func FilterLogged(slots []model.TimeSlot) []model.TimeSlot {
	var out []model.TimeSlot
	for _, slot := range slots {
		if strings.TrimSpace(slot.Activity) != "" {
			out = append(out, slot)
		}
	}
	return out
}

// BuildPrompt renders the instruction template around the logged slots.
func BuildPrompt(logged []model.TimeSlot, language string) string {
	lines := make([]string, 0, len(logged))
	for _, slot := range logged {
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", slot.Time, slot.Category, strings.TrimSpace(slot.Activity)))
	}

	return fmt.Sprintf(`Analyze my daily schedule (15-minute intervals) and give short, useful advice on improving productivity and balance. Write the answer in %s, formatted as Markdown.

Here is my activity list:
%s`, language, strings.Join(lines, "\n"))
}

// Request generates advice for the given day and stores it as the day's
// advice record. It never returns an error: empty logs short-circuit with a
// fixed message and no external call, and service failures collapse into a
// fixed message with the cause logged for diagnostics only.
func (a *Advisor) Request(ctx context.Context, dateKey string) string {
	day, err := a.store.LoadDay(dateKey)
	if err != nil {
		a.log.Warn("could not load day log for advice", zap.String("date", dateKey), zap.Error(err))
		return MsgFailure
	}

	logged := FilterLogged(day.Slots)
	if len(logged) == 0 {
		return MsgLogFirst
	}

	// One outstanding request at a time; there is no queue and no cancellation.
	if !a.busy.CompareAndSwap(false, true) {
		return MsgBusy
	}
	defer a.busy.Store(false)

	text, err := a.gen.Generate(ctx, BuildPrompt(logged, a.language))
	switch {
	case err != nil:
		a.log.Warn("advice request failed", zap.String("date", dateKey), zap.Error(err))
		text = MsgFailure
	case strings.TrimSpace(text) == "":
		text = MsgNoAdvice
	}

	if err := a.store.SaveAdvice(dateKey, text); err != nil {
		a.log.Warn("could not store advice", zap.String("date", dateKey), zap.Error(err))
	}
	return text
}
