package services

import (
	"context"
	"sort"
	"time"

	"nutritrack/models"
	"nutritrack/store"
)

// NutritionService is the aggregation engine: it turns a user's raw
// consumption logs into a day-by-day nutrition report with a summary.
type NutritionService struct{ store *store.Store }

func NewNutritionService(st *store.Store) *NutritionService {
	return &NutritionService{store: st}
}

// UserNutritionReport builds the report for a user over [start, end],
// both ends inclusive. A nil start defaults to end minus seven days; a
// nil end defaults to now. A nil report with a nil error means the user
// does not exist — that is not a failure.
func (s *NutritionService) UserNutritionReport(ctx context.Context, userID uint, start, end *time.Time) (*NutritionReport, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return s.buildReport(ctx, user, start, end)
}

// UserNutritionReportByUsername is the username-keyed equivalent, with
// the same nil-report contract for an unknown username.
func (s *NutritionService) UserNutritionReportByUsername(ctx context.Context, username string, start, end *time.Time) (*NutritionReport, error) {
	user, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return s.buildReport(ctx, user, start, end)
}

func (s *NutritionService) buildReport(ctx context.Context, user *models.User, startPtr, endPtr *time.Time) (*NutritionReport, error) {
	end := time.Now().UTC()
	if endPtr != nil {
		end = *endPtr
	}
	start := end.AddDate(0, 0, -7)
	if startPtr != nil {
		start = *startPtr
	}
	days := int(end.Sub(start).Hours()/24) + 1

	logs, err := s.store.ListMacroLogs(ctx, user.ID, start, end)
	if err != nil {
		return nil, err
	}

	// Bucket logs by the calendar day of their own timestamp.
	byDay := map[string][]store.MacroLogEntry{}
	for _, log := range logs {
		key := log.Timestamp.Format("2006-01-02")
		byDay[key] = append(byDay[key], log)
	}
	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	dailyData := make([]DailyEntry, 0, len(dates))
	for _, date := range dates {
		dailyData = append(dailyData, buildDailyEntry(date, byDay[date]))
	}

	return &NutritionReport{
		UserID:   user.ID,
		Username: user.Username,
		Period: Period{
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
			Days:      days,
		},
		Targets: Targets{
			Calories: CalorieTarget,
			Protein:  ProteinTarget,
			Carbs:    CarbsTarget,
			Fat:      FatTarget,
		},
		DailyData: dailyData,
		Summary:   ComputeSummary(dailyData),
	}, nil
}

var mealOrder = []string{"breakfast", "lunch", "dinner"}

func buildDailyEntry(date string, logs []store.MacroLogEntry) DailyEntry {
	// Split the day's logs into meal slots by hour.
	mealLogs := map[string][]store.MacroLogEntry{}
	for _, log := range logs {
		name := mealForHour(log.Timestamp.Hour())
		mealLogs[name] = append(mealLogs[name], log)
	}

	meals := map[string]Meal{}
	var totalCalories, totalProtein, totalCarbs, totalFat float64

	for _, mealName := range mealOrder {
		entries, ok := mealLogs[mealName]
		if !ok {
			continue
		}

		var mealCalories, mealProtein, mealCarbs, mealFat float64
		foods := make([]MealFood, 0, len(entries))
		for _, log := range entries {
			mealCalories += log.Calories * log.Quantity
			mealProtein += log.Protein * log.Quantity
			mealCarbs += log.Carbs * log.Quantity
			mealFat += log.Fat * log.Quantity

			foods = append(foods, MealFood{
				Name:     log.FoodName,
				Calories: log.Calories,
				Protein:  log.Protein,
				Carbs:    log.Carbs,
				Fat:      log.Fat,
				Portion:  "1 serving",
				Quantity: log.Quantity,
			})
		}

		// Sums are rounded once here, not per log.
		meals[mealName] = Meal{
			Calories: roundInt(mealCalories),
			Protein:  roundInt(mealProtein),
			Carbs:    roundInt(mealCarbs),
			Fat:      roundInt(mealFat),
			Foods:    foods,
		}

		totalCalories += mealCalories
		totalProtein += mealProtein
		totalCarbs += mealCarbs
		totalFat += mealFat
	}

	return DailyEntry{
		Date: date,
		Macros: DailyMacros{
			Calories: MacroAmount{Amount: roundInt(totalCalories), Target: CalorieTarget},
			Protein:  MacroAmount{Amount: roundInt(totalProtein), Target: ProteinTarget, Unit: "g"},
			Carbs:    MacroAmount{Amount: roundInt(totalCarbs), Target: CarbsTarget, Unit: "g"},
			Fat:      MacroAmount{Amount: roundInt(totalFat), Target: FatTarget, Unit: "g"},
		},
		Micros: approximateMicros(totalCalories),
		Meals:  meals,
	}
}

// approximateMicros estimates the day's micronutrient intake from its
// calorie total. The FoodMicronutrient catalog deliberately is not
// consulted here; whether this stays an approximation or becomes a
// per-food join is an open product decision.
func approximateMicros(totalCalories float64) map[string]MicroAmount {
	ratio := totalCalories / CalorieTarget
	micros := make(map[string]MicroAmount, len(reportMicroTargets))
	for name, mt := range reportMicroTargets {
		micros[name] = MicroAmount{
			Amount: round1(mt.Target * ratio * (0.6 + 0.8*ratio)),
			Unit:   mt.Unit,
			Target: mt.Target,
		}
	}
	return micros
}
