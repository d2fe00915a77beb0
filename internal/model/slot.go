package model

// Category classifies a logged activity. The set is closed; anything read
// from storage or user input that is not in the set falls back to CategoryOther.
type Category string

const (
	CategoryWork    Category = "work"
	CategoryLeisure Category = "leisure"
	CategorySport   Category = "sport"
	CategoryFood    Category = "food"
	CategoryStudy   Category = "study"
	CategorySleep   Category = "sleep"
	CategoryOther   Category = "other"
)

// Categories returns the closed category set in canonical order.
func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryLeisure,
		CategorySport,
		CategoryFood,
		CategoryStudy,
		CategorySleep,
		CategoryOther,
	}
}

// ParseCategory maps stored or user-supplied text onto the closed set.
// Unknown values become CategoryOther; ok reports whether s was recognised.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return CategoryOther, false
}

// TimeSlot is one 15-minute interval of a day. ID and Time are the same
// canonical "HH:MM" string; an empty Activity means the slot is unlogged.
type TimeSlot struct {
	ID       string   `json:"id"`
	Time     string   `json:"time"`
	Activity string   `json:"activity"`
	Category Category `json:"category"`
}

// DayLog is the full slot collection for one calendar day.
type DayLog struct {
	Date  string     `json:"date"` // "2006-01-02", the persistence partition key
	Slots []TimeSlot `json:"slots"`
}
