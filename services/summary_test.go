package services_test

import (
	"testing"

	"nutritrack/services"
)

func makeDay(date string, calories, protein, carbs, fat int) services.DailyEntry {
	return services.DailyEntry{
		Date: date,
		Macros: services.DailyMacros{
			Calories: services.MacroAmount{Amount: calories, Target: services.CalorieTarget},
			Protein:  services.MacroAmount{Amount: protein, Target: services.ProteinTarget, Unit: "g"},
			Carbs:    services.MacroAmount{Amount: carbs, Target: services.CarbsTarget, Unit: "g"},
			Fat:      services.MacroAmount{Amount: fat, Target: services.FatTarget, Unit: "g"},
		},
	}
}

func TestSummaryOfEmptyDaySetIsEmpty(t *testing.T) {
	t.Parallel()
	summary := services.ComputeSummary(nil)
	if summary.Averages != nil || summary.Compliance != nil || summary.NotableDays != nil || summary.Trends != nil || summary.Micros != nil {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestSummaryAverages(t *testing.T) {
	t.Parallel()
	days := []services.DailyEntry{
		makeDay("2026-03-01", 2000, 120, 240, 60),
		makeDay("2026-03-02", 2400, 150, 260, 80),
		makeDay("2026-03-03", 2200, 135, 250, 70),
	}

	summary := services.ComputeSummary(days)
	if summary.Averages == nil {
		t.Fatal("expected averages")
	}
	if summary.Averages.Calories != 2200 {
		t.Errorf("calories average: expected 2200, got %d", summary.Averages.Calories)
	}
	if summary.Averages.Protein != 135 {
		t.Errorf("protein average: expected 135, got %d", summary.Averages.Protein)
	}
	if summary.Averages.Carbs != 250 {
		t.Errorf("carbs average: expected 250, got %d", summary.Averages.Carbs)
	}
	if summary.Averages.Fat != 70 {
		t.Errorf("fat average: expected 70, got %d", summary.Averages.Fat)
	}
}

func TestComplianceThresholdIsInclusiveAtNinetyPercent(t *testing.T) {
	t.Parallel()
	// Protein target is 140, so 126 is exactly 90% and must count;
	// 125 (89.3%) must not.
	days := []services.DailyEntry{
		makeDay("2026-03-01", 2200, 126, 250, 70),
		makeDay("2026-03-02", 2200, 125, 250, 70),
	}

	summary := services.ComputeSummary(days)
	if summary.Compliance == nil {
		t.Fatal("expected compliance")
	}
	if summary.Compliance.Protein != 50 {
		t.Errorf("protein compliance: expected 50, got %d", summary.Compliance.Protein)
	}
	if summary.Compliance.Calories != 100 {
		t.Errorf("calories compliance: expected 100, got %d", summary.Compliance.Calories)
	}
}

func TestNotableDaysBreakTiesByFirstOccurrence(t *testing.T) {
	t.Parallel()
	days := []services.DailyEntry{
		makeDay("2026-03-01", 2500, 100, 250, 70),
		makeDay("2026-03-02", 2500, 160, 250, 70), // ties day 1 on calories
		makeDay("2026-03-03", 1800, 100, 250, 70), // ties day 1 on min protein
	}

	summary := services.ComputeSummary(days)
	if summary.NotableDays == nil {
		t.Fatal("expected notable days")
	}
	if summary.NotableDays.BestCalorieDay != "2026-03-01" {
		t.Errorf("best calorie day: expected 2026-03-01, got %s", summary.NotableDays.BestCalorieDay)
	}
	if summary.NotableDays.WorstCalorieDay != "2026-03-03" {
		t.Errorf("worst calorie day: expected 2026-03-03, got %s", summary.NotableDays.WorstCalorieDay)
	}
	if summary.NotableDays.BestProteinDay != "2026-03-02" {
		t.Errorf("best protein day: expected 2026-03-02, got %s", summary.NotableDays.BestProteinDay)
	}
	if summary.NotableDays.WorstProteinDay != "2026-03-01" {
		t.Errorf("worst protein day: expected 2026-03-01, got %s", summary.NotableDays.WorstProteinDay)
	}
}

func TestTrendIsEndpointDifference(t *testing.T) {
	t.Parallel()
	days := []services.DailyEntry{
		makeDay("2026-03-01", 2000, 150, 250, 70),
		makeDay("2026-03-02", 3000, 90, 250, 70), // extremes in the middle must not matter
		makeDay("2026-03-03", 2300, 120, 250, 70),
	}

	summary := services.ComputeSummary(days)
	if summary.Trends == nil {
		t.Fatal("expected trends")
	}
	if summary.Trends.Calories != 300 {
		t.Errorf("calories trend: expected 300, got %d", summary.Trends.Calories)
	}
	if summary.Trends.Protein != -30 {
		t.Errorf("protein trend: expected -30, got %d", summary.Trends.Protein)
	}
}

func TestMicronutrientSummary(t *testing.T) {
	t.Parallel()
	days := []services.DailyEntry{
		makeDay("2026-03-01", 2200, 140, 250, 70),
		makeDay("2026-03-02", 2200, 140, 250, 70),
	}
	// Vitamin D target 20 μg: 18 is exactly 90%, 17 is below.
	days[0].Micros = map[string]services.MicroAmount{
		"Vitamin D": {Amount: 18, Unit: "μg", Target: 20},
	}
	days[1].Micros = map[string]services.MicroAmount{
		"Vitamin D": {Amount: 17, Unit: "μg", Target: 20},
	}

	summary := services.ComputeSummary(days)
	micro, ok := summary.Micros["Vitamin D"]
	if !ok {
		t.Fatal("expected Vitamin D summary")
	}
	if micro.Average != 17.5 {
		t.Errorf("average: expected 17.5, got %.1f", micro.Average)
	}
	if micro.Compliance != 50 {
		t.Errorf("compliance: expected 50, got %d", micro.Compliance)
	}
	if micro.Unit != "μg" {
		t.Errorf("unit: expected μg, got %s", micro.Unit)
	}
}
