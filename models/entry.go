package models

// Entry types stored in the food log.
const (
	EntryTypeMeal    = "meal"
	EntryTypeProduct = "product"
)

// FoodLogEntry is a single logged food item tied to one calendar day.
// Entries are immutable once stored except for deletion.
type FoodLogEntry struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand,omitempty"`
	Image     string           `json:"image,omitempty"`
	Barcode   string           `json:"barcode,omitempty"`
	Nutrition NutritionProfile `json:"nutrition"`
	Date      string           `json:"date"`
	Timestamp int64            `json:"timestamp,omitempty"`
}

// Goals holds the user's daily macro targets. A nil *Goals means no goals
// are configured, which is distinct from zero targets.
type Goals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MacroProgress is one macro's intake versus its daily target. Goal is nil
// when no goals are configured.
type MacroProgress struct {
	Current    float64  `json:"current"`
	Goal       *float64 `json:"goal"`
	Percentage float64  `json:"percentage"`
}

// Progress covers the four tracked macros for one day.
type Progress struct {
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fat      MacroProgress `json:"fat"`
}

// DayOverview is one slot of the trailing 7-day window. Day is the short
// weekday name, e.g. "Mon".
type DayOverview struct {
	Date   string      `json:"date"`
	Totals DailyTotals `json:"totals"`
	Day    string      `json:"day"`
}
