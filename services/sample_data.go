package services

import (
	"fmt"
	"math/rand"
	"time"
)

// SampleDataGenerator fabricates a full nutrition report without
// touching the store — demo data for front-end and graphing work. It
// shares the report vocabulary (targets, document shape, summary) with
// the aggregation engine but models meals its own way, including a
// snacks bucket the log-driven path never produces.
type SampleDataGenerator struct{ rng *rand.Rand }

func NewSampleDataGenerator(seed int64) *SampleDataGenerator {
	return &SampleDataGenerator{rng: rand.New(rand.NewSource(seed))}
}

var sampleMicroTargets = map[string]MicroTarget{
	"Vitamin A": {Target: 900, Unit: "μg"},
	"Vitamin C": {Target: 90, Unit: "mg"},
	"Vitamin D": {Target: 20, Unit: "μg"},
	"Calcium":   {Target: 1000, Unit: "mg"},
	"Iron":      {Target: 18, Unit: "mg"},
	"Magnesium": {Target: 400, Unit: "mg"},
	"Zinc":      {Target: 11, Unit: "mg"},
	"Potassium": {Target: 3500, Unit: "mg"},
}

// GenerateUserData produces a report-shaped document covering the
// trailing day range, with weekday/weekend eating patterns.
func (g *SampleDataGenerator) GenerateUserData(userID uint, days int) *NutritionReport {
	now := time.Now().UTC()
	startDate := now.AddDate(0, 0, -days)

	dailyData := make([]DailyEntry, 0, days)
	for day := 0; day < days; day++ {
		current := startDate.AddDate(0, 0, day)
		isWeekend := current.Weekday() == time.Saturday || current.Weekday() == time.Sunday

		randomizer := g.uniform(0.8, 1.2)
		weekendFactor := 1.0
		proteinFactor := 1.1
		if isWeekend {
			weekendFactor = 1.2
			proteinFactor = 0.9
		}

		calories := roundInt(CalorieTarget * randomizer * weekendFactor)
		protein := roundInt(ProteinTarget * randomizer * proteinFactor)
		carbs := roundInt(CarbsTarget * randomizer * weekendFactor)
		fat := roundInt(FatTarget * randomizer * weekendFactor)

		micros := make(map[string]MicroAmount, len(sampleMicroTargets))
		for name, mt := range sampleMicroTargets {
			micros[name] = MicroAmount{
				Amount: round1(mt.Target * g.uniform(0.6, 1.4)),
				Unit:   mt.Unit,
				Target: mt.Target,
			}
		}

		dailyData = append(dailyData, DailyEntry{
			Date: current.Format("2006-01-02"),
			Macros: DailyMacros{
				Calories: MacroAmount{Amount: calories, Target: CalorieTarget},
				Protein:  MacroAmount{Amount: protein, Target: ProteinTarget, Unit: "g"},
				Carbs:    MacroAmount{Amount: carbs, Target: CarbsTarget, Unit: "g"},
				Fat:      MacroAmount{Amount: fat, Target: FatTarget, Unit: "g"},
				PercentTargetsMet: &PercentTargets{
					Calories: roundInt(float64(calories) / CalorieTarget * 100),
					Protein:  roundInt(float64(protein) / ProteinTarget * 100),
					Carbs:    roundInt(float64(carbs) / CarbsTarget * 100),
					Fat:      roundInt(float64(fat) / FatTarget * 100),
				},
			},
			Micros: micros,
			Meals:  g.generateMealData(calories, protein, carbs, fat),
		})
	}

	microTargets := make(map[string]float64, len(sampleMicroTargets))
	for name, mt := range sampleMicroTargets {
		microTargets[name] = mt.Target
	}

	return &NutritionReport{
		UserID:   userID,
		Username: fmt.Sprintf("user_%d", userID),
		Period: Period{
			StartDate: startDate.Format("2006-01-02"),
			EndDate:   now.Format("2006-01-02"),
			Days:      days,
		},
		Targets: Targets{
			Calories: CalorieTarget,
			Protein:  ProteinTarget,
			Carbs:    CarbsTarget,
			Fat:      FatTarget,
			Micros:   microTargets,
		},
		DailyData: dailyData,
		Summary:   ComputeSummary(dailyData),
	}
}

var sampleMealNames = []string{"breakfast", "lunch", "dinner", "snacks"}
var sampleNutrients = []string{"calories", "protein", "carbs", "fat"}

// Base share of the day's total each meal carries, per macro.
var baseMealDistribution = map[string]map[string]float64{
	"breakfast": {"calories": 0.25, "protein": 0.2, "carbs": 0.3, "fat": 0.2},
	"lunch":     {"calories": 0.35, "protein": 0.4, "carbs": 0.3, "fat": 0.35},
	"dinner":    {"calories": 0.3, "protein": 0.35, "carbs": 0.3, "fat": 0.35},
	"snacks":    {"calories": 0.1, "protein": 0.05, "carbs": 0.1, "fat": 0.1},
}

func (g *SampleDataGenerator) generateMealData(calories, protein, carbs, fat int) map[string]Meal {
	// Jitter each share by ±20%, then renormalize per macro so the four
	// meals still sum to the day total instead of drifting.
	dist := map[string]map[string]float64{}
	for _, meal := range sampleMealNames {
		dist[meal] = map[string]float64{}
		for _, nutrient := range sampleNutrients {
			dist[meal][nutrient] = baseMealDistribution[meal][nutrient] * g.uniform(0.8, 1.2)
		}
	}
	for _, nutrient := range sampleNutrients {
		total := 0.0
		for _, meal := range sampleMealNames {
			total += dist[meal][nutrient]
		}
		if total > 0 {
			for _, meal := range sampleMealNames {
				dist[meal][nutrient] /= total
			}
		}
	}

	meals := make(map[string]Meal, len(sampleMealNames))
	for _, meal := range sampleMealNames {
		meals[meal] = Meal{
			Calories: roundInt(float64(calories) * dist[meal]["calories"]),
			Protein:  roundInt(float64(protein) * dist[meal]["protein"]),
			Carbs:    roundInt(float64(carbs) * dist[meal]["carbs"]),
			Fat:      roundInt(float64(fat) * dist[meal]["fat"]),
			Foods:    g.sampleFoods(meal),
		}
	}
	return meals
}

var sampleFoodOptions = map[string][]MealFood{
	"breakfast": {
		{Name: "Oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Portion: "1 cup"},
		{Name: "Eggs", Calories: 140, Protein: 12, Carbs: 1, Fat: 10, Portion: "2 eggs"},
		{Name: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fat: 0, Portion: "1 medium"},
		{Name: "Greek Yogurt", Calories: 130, Protein: 17, Carbs: 6, Fat: 4, Portion: "1 container"},
		{Name: "Toast", Calories: 75, Protein: 3, Carbs: 13, Fat: 1, Portion: "1 slice"},
	},
	"lunch": {
		{Name: "Chicken Salad", Calories: 320, Protein: 30, Carbs: 10, Fat: 18, Portion: "1 bowl"},
		{Name: "Sandwich", Calories: 350, Protein: 15, Carbs: 40, Fat: 12, Portion: "1 sandwich"},
		{Name: "Soup", Calories: 200, Protein: 8, Carbs: 25, Fat: 8, Portion: "1 bowl"},
		{Name: "Burrito", Calories: 650, Protein: 25, Carbs: 80, Fat: 22, Portion: "1 burrito"},
	},
	"dinner": {
		{Name: "Salmon", Calories: 280, Protein: 39, Carbs: 0, Fat: 13, Portion: "6 oz"},
		{Name: "Brown Rice", Calories: 215, Protein: 5, Carbs: 45, Fat: 2, Portion: "1 cup"},
		{Name: "Broccoli", Calories: 55, Protein: 4, Carbs: 11, Fat: 0, Portion: "1 cup"},
		{Name: "Pasta", Calories: 380, Protein: 14, Carbs: 75, Fat: 2, Portion: "1.5 cups"},
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Portion: "1 breast"},
	},
	"snacks": {
		{Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Portion: "1 medium"},
		{Name: "Almonds", Calories: 165, Protein: 6, Carbs: 6, Fat: 14, Portion: "1/4 cup"},
		{Name: "Protein Bar", Calories: 200, Protein: 20, Carbs: 25, Fat: 5, Portion: "1 bar"},
		{Name: "Cheese", Calories: 110, Protein: 7, Carbs: 0, Fat: 9, Portion: "1 oz"},
		{Name: "Chips", Calories: 160, Protein: 2, Carbs: 15, Fat: 10, Portion: "1 small bag"},
	},
}

// sampleFoods picks 1-3 foods for a meal without replacement and
// scales each by an independent quantity factor.
func (g *SampleDataGenerator) sampleFoods(mealType string) []MealFood {
	options := sampleFoodOptions[mealType]
	count := g.rng.Intn(3) + 1
	if count > len(options) {
		count = len(options)
	}

	foods := make([]MealFood, 0, count)
	for _, i := range g.rng.Perm(len(options))[:count] {
		food := options[i]
		food.Quantity = round1(g.uniform(0.5, 2.0))
		food.Calories = float64(roundInt(food.Calories * food.Quantity))
		food.Protein = float64(roundInt(food.Protein * food.Quantity))
		food.Carbs = float64(roundInt(food.Carbs * food.Quantity))
		food.Fat = float64(roundInt(food.Fat * food.Quantity))
		foods = append(foods, food)
	}
	return foods
}

func (g *SampleDataGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
