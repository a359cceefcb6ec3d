package services_test

import (
	"context"
	"testing"
	"time"

	"nutritrack/services"
)

func TestGenerateTestDataPopulatesStore(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	data, err := services.GenerateTestData(ctx, st, 2, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(data.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(data.Users))
	}
	if data.Users[0].Username != "test_user_1" || data.Users[1].Username != "test_user_2" {
		t.Fatalf("unexpected usernames: %s, %s", data.Users[0].Username, data.Users[1].Username)
	}
	if len(data.Foods) != 6 {
		t.Fatalf("expected 6 catalog foods, got %d", len(data.Foods))
	}
	if len(data.Micronutrients) != 3 {
		t.Fatalf("expected 3 micronutrients, got %d", len(data.Micronutrients))
	}

	// Broccoli declares all three micronutrients.
	links, err := st.ListFoodMicronutrients(ctx, data.Foods["broccoli"].ID)
	if err != nil {
		t.Fatalf("list links: %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("expected 3 micronutrient links on broccoli, got %d", len(links))
	}

	// USDA sources recorded for chicken and broccoli.
	sources, err := st.ListFoodSources(ctx, data.Foods["chicken_breast"].ID)
	if err != nil {
		t.Fatalf("list sources: %v", err)
	}
	if len(sources) != 1 || sources[0].SourceName != "USDA" {
		t.Fatalf("unexpected chicken sources: %+v", sources)
	}
}

func TestGeneratedLogsLandInMealSlots(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	data, err := services.NewTestDataGeneratorAt(st, 42, now).GenerateCompleteTestData(ctx, 1, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -2)

	logs, err := st.ListMacroLogs(ctx, data.Users[0].ID, start, end)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) == 0 {
		t.Fatal("expected generated logs in range")
	}

	for _, log := range logs {
		hour := log.Timestamp.Hour()
		if hour != 8 && hour != 13 && hour != 19 {
			t.Errorf("log %d at hour %d, expected 8, 13, or 19", log.LogID, hour)
		}
	}

	// Every generated day logs oatmeal + chicken + rice + broccoli at
	// minimum: 4 logs per day, plus probabilistic extras.
	if len(logs) < 12 {
		t.Errorf("expected at least 12 logs over 3 days, got %d", len(logs))
	}
}

func TestGeneratorPinsDayRangeToReferenceTime(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	ref := time.Date(2026, 3, 4, 22, 15, 0, 0, time.UTC)
	data, err := services.NewTestDataGeneratorAt(st, 42, ref).GenerateCompleteTestData(ctx, 1, 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	logs, err := st.ListMacroLogs(ctx, data.Users[0].ID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}

	days := map[string]bool{}
	for _, log := range logs {
		days[log.Timestamp.Format("2006-01-02")] = true
	}
	for _, want := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
		if !days[want] {
			t.Errorf("expected logs on %s, got days %v", want, days)
		}
	}
	if len(days) != 3 {
		t.Errorf("expected exactly 3 distinct days, got %v", days)
	}
}

func TestGenerateTestFoodsIsIdempotent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	gen := services.NewTestDataGenerator(st, 1)
	first, err := gen.GenerateTestFoods(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := gen.GenerateTestFoods(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for key := range first {
		if first[key].ID != second[key].ID {
			t.Errorf("%s: reseeding created a duplicate (%d vs %d)", key, first[key].ID, second[key].ID)
		}
	}

	foods, err := st.ListFoods(ctx)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) != 6 {
		t.Fatalf("expected 6 foods after reseeding, got %d", len(foods))
	}
}
