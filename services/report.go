package services

import "math"

// Fixed daily targets. Not user-configurable; per-user goals would live
// in their own table and are out of scope here.
const (
	CalorieTarget = 2200
	ProteinTarget = 140 // grams
	CarbsTarget   = 250 // grams
	FatTarget     = 70  // grams
)

type MicroTarget struct {
	Target float64
	Unit   string
}

// Micronutrients the report engine tracks.
var reportMicroTargets = map[string]MicroTarget{
	"Vitamin C": {Target: 90, Unit: "mg"},
	"Calcium":   {Target: 1000, Unit: "mg"},
	"Iron":      {Target: 18, Unit: "mg"},
}

// NutritionReport is the JSON document handed to the presentation
// layer. Field names are the wire contract; renaming any of them is a
// breaking change for report consumers.
type NutritionReport struct {
	UserID    uint         `json:"user_id"`
	Username  string       `json:"username"`
	Period    Period       `json:"period"`
	Targets   Targets      `json:"targets"`
	DailyData []DailyEntry `json:"daily_data"`
	Summary   Summary      `json:"summary"`
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

type Targets struct {
	Calories int                `json:"calories"`
	Protein  int                `json:"protein"`
	Carbs    int                `json:"carbs"`
	Fat      int                `json:"fat"`
	Micros   map[string]float64 `json:"micros,omitempty"`
}

// DailyEntry is one calendar day's aggregation, keyed by YYYY-MM-DD.
type DailyEntry struct {
	Date   string                 `json:"date"`
	Macros DailyMacros            `json:"macros"`
	Micros map[string]MicroAmount `json:"micros"`
	Meals  map[string]Meal        `json:"meals"`
}

type DailyMacros struct {
	Calories MacroAmount `json:"calories"`
	Protein  MacroAmount `json:"protein"`
	Carbs    MacroAmount `json:"carbs"`
	Fat      MacroAmount `json:"fat"`

	// Only populated by the sample-data generator.
	PercentTargetsMet *PercentTargets `json:"percent_targets_met,omitempty"`
}

type MacroAmount struct {
	Amount int    `json:"amount"`
	Target int    `json:"target"`
	Unit   string `json:"unit,omitempty"`
}

type PercentTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type MicroAmount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Target float64 `json:"target"`
}

type Meal struct {
	Calories int        `json:"calories"`
	Protein  int        `json:"protein"`
	Carbs    int        `json:"carbs"`
	Fat      int        `json:"fat"`
	Foods    []MealFood `json:"foods"`
}

type MealFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Portion  string  `json:"portion"`
	Quantity float64 `json:"quantity"`
}

// mealForHour classifies a log into a meal slot by its hour of day.
// Lower bounds are inclusive: 10:59 is breakfast, 11:00 lunch, 15:59
// lunch, 16:00 dinner.
func mealForHour(hour int) string {
	switch {
	case hour < 11:
		return "breakfast"
	case hour < 16:
		return "lunch"
	default:
		return "dinner"
	}
}

func roundInt(v float64) int { return int(math.Round(v)) }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
