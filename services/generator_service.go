package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"nutritrack/models"
	"nutritrack/store"
)

// TestDataGenerator writes a statistically plausible population of
// users, catalog rows, and backdated consumption logs into the store,
// so NutritionService reports can be exercised without real users.
type TestDataGenerator struct {
	store *store.Store
	rng   *rand.Rand
	now   time.Time
}

func NewTestDataGenerator(st *store.Store, seed int64) *TestDataGenerator {
	return NewTestDataGeneratorAt(st, seed, time.Now().UTC())
}

// NewTestDataGeneratorAt pins the trailing day range to a caller-chosen
// reference instant, so a caller querying the data back can derive its
// window from the same instant instead of a second time.Now() that may
// have crossed midnight.
func NewTestDataGeneratorAt(st *store.Store, seed int64, now time.Time) *TestDataGenerator {
	return &TestDataGenerator{store: st, rng: rand.New(rand.NewSource(seed)), now: now.UTC()}
}

type TestDataSet struct {
	Users          []*models.User
	Foods          map[string]*models.Food
	Micronutrients map[string]*models.Micronutrient
}

// GenerateTestData populates the store with a complete fixture set
// using the default seed.
func GenerateTestData(ctx context.Context, st *store.Store, userCount, days int) (*TestDataSet, error) {
	return NewTestDataGenerator(st, 42).GenerateCompleteTestData(ctx, userCount, days)
}

func (g *TestDataGenerator) GenerateCompleteTestData(ctx context.Context, userCount, days int) (*TestDataSet, error) {
	users, err := g.GenerateTestUsers(ctx, userCount)
	if err != nil {
		return nil, err
	}
	foods, err := g.GenerateTestFoods(ctx)
	if err != nil {
		return nil, err
	}
	micros, err := g.GenerateTestMicronutrients(ctx)
	if err != nil {
		return nil, err
	}
	if err := g.AddMicronutrientsToFoods(ctx, foods, micros); err != nil {
		return nil, err
	}
	if err := g.LogUserMeals(ctx, users, foods, days); err != nil {
		return nil, err
	}
	return &TestDataSet{Users: users, Foods: foods, Micronutrients: micros}, nil
}

func (g *TestDataGenerator) GenerateTestUsers(ctx context.Context, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 1; i <= count; i++ {
		user, err := g.store.CreateUser(ctx,
			fmt.Sprintf("test_user_%d", i),
			fmt.Sprintf("user%d@example.com", i),
			fmt.Sprintf("hashed_password_%d", i),
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// GenerateTestFoods creates the fixed six-food catalog. Inserts are
// idempotent by name, so repeated seeding reuses the existing rows.
func (g *TestDataGenerator) GenerateTestFoods(ctx context.Context) (map[string]*models.Food, error) {
	type foodSpec struct {
		key, name                     string
		calories, protein, carbs, fat float64
	}
	specs := []foodSpec{
		// Breakfast foods
		{"oatmeal", "Oatmeal", 150, 5, 27, 3},
		{"egg", "Egg", 70, 6, 0.5, 5},
		{"toast", "Toast", 75, 3, 13, 1},
		// Lunch/dinner foods
		{"chicken_breast", "Chicken Breast", 165, 31, 0, 3.6},
		{"rice", "Brown Rice", 215, 5, 45, 2},
		{"broccoli", "Broccoli", 55, 3.7, 11, 0.6},
	}

	foods := make(map[string]*models.Food, len(specs))
	for _, spec := range specs {
		food, err := g.store.CreateFood(ctx, spec.name, spec.calories, spec.protein, spec.carbs, spec.fat)
		if err != nil {
			return nil, err
		}
		foods[spec.key] = food
	}

	if _, err := g.store.CreateFoodSource(ctx, foods["chicken_breast"].ID, "USDA", "05062"); err != nil {
		return nil, err
	}
	if _, err := g.store.CreateFoodSource(ctx, foods["broccoli"].ID, "USDA", "11090"); err != nil {
		return nil, err
	}
	return foods, nil
}

func (g *TestDataGenerator) GenerateTestMicronutrients(ctx context.Context) (map[string]*models.Micronutrient, error) {
	micros := map[string]*models.Micronutrient{}
	for key, spec := range map[string][2]string{
		"vitamin_c": {"Vitamin C", "mg"},
		"calcium":   {"Calcium", "mg"},
		"iron":      {"Iron", "mg"},
	} {
		micro, err := g.store.CreateMicronutrient(ctx, spec[0], spec[1])
		if err != nil {
			return nil, err
		}
		micros[key] = micro
	}
	return micros, nil
}

func (g *TestDataGenerator) AddMicronutrientsToFoods(ctx context.Context, foods map[string]*models.Food, micros map[string]*models.Micronutrient) error {
	links := []struct {
		food, micro string
		amount      float64
	}{
		{"oatmeal", "calcium", 54.0},
		{"oatmeal", "iron", 1.8},
		{"chicken_breast", "iron", 1.0},
		{"broccoli", "vitamin_c", 89.2},
		{"broccoli", "calcium", 47.0},
		{"broccoli", "iron", 0.7},
	}
	for _, l := range links {
		if _, err := g.store.CreateFoodMicronutrient(ctx, foods[l.food].ID, micros[l.micro].ID, l.amount); err != nil {
			return err
		}
	}
	return nil
}

// LogUserMeals writes breakfast/lunch/dinner logs for each user over
// the trailing day range. Timestamps are backdated into the 08:xx,
// 13:xx, and 19:xx slots so the report engine's hour-based meal
// classification reproduces the intended meal on read-back.
func (g *TestDataGenerator) LogUserMeals(ctx context.Context, users []*models.User, foods map[string]*models.Food, days int) error {
	startDate := time.Date(g.now.Year(), g.now.Month(), g.now.Day(), 0, 0, 0, 0, time.UTC)

	for _, user := range users {
		for day := 0; day < days; day++ {
			current := startDate.AddDate(0, 0, -day)

			// Breakfast around 8 AM
			breakfast := current.Add(8*time.Hour + time.Duration(g.rng.Intn(60))*time.Minute)
			if err := g.logWithTimestamp(ctx, user.ID, foods["oatmeal"].ID, round1(g.uniform(1.0, 2.0)), breakfast); err != nil {
				return err
			}
			if g.rng.Float64() > 0.3 { // 70% chance of an egg
				if err := g.logWithTimestamp(ctx, user.ID, foods["egg"].ID, float64(g.rng.Intn(2)+1), breakfast); err != nil {
					return err
				}
			}

			// Lunch around 1 PM
			lunch := current.Add(13*time.Hour + time.Duration(g.rng.Intn(60))*time.Minute)
			if err := g.logWithTimestamp(ctx, user.ID, foods["chicken_breast"].ID, round1(g.uniform(0.8, 1.5)), lunch); err != nil {
				return err
			}
			if err := g.logWithTimestamp(ctx, user.ID, foods["rice"].ID, round1(g.uniform(0.7, 1.3)), lunch); err != nil {
				return err
			}

			// Dinner around 7 PM
			dinner := current.Add(19*time.Hour + time.Duration(g.rng.Intn(60))*time.Minute)
			if g.rng.Float64() > 0.5 { // chicken again half the time
				if err := g.logWithTimestamp(ctx, user.ID, foods["chicken_breast"].ID, round1(g.uniform(1.0, 1.8)), dinner); err != nil {
					return err
				}
			}
			if err := g.logWithTimestamp(ctx, user.ID, foods["broccoli"].ID, round1(g.uniform(1.0, 2.5)), dinner); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *TestDataGenerator) logWithTimestamp(ctx context.Context, userID, foodID uint, quantity float64, ts time.Time) error {
	log, err := g.store.CreateMacroLog(ctx, userID, foodID, quantity)
	if err != nil {
		return err
	}
	return g.store.SetMacroLogTimestamp(ctx, log.ID, ts)
}

func (g *TestDataGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
