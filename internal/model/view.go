package model

// View identifies which presentation view was last active. Persisted
// globally, not per day.
type View string

const (
	ViewTracker View = "tracker"
	ViewStats   View = "stats"
	ViewAdvice  View = "advice"
)

// ParseView maps stored text to a View, falling back to ViewTracker on
// anything unrecognised.
func ParseView(s string) View {
	switch View(s) {
	case ViewTracker, ViewStats, ViewAdvice:
		return View(s)
	}
	return ViewTracker
}
