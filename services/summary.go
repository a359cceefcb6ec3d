package services

// Summary holds cross-day statistics over a report's daily entries.
// For an empty day set every field stays nil, which serializes as {}.
type Summary struct {
	Averages    *MacroAverages          `json:"averages,omitempty"`
	Compliance  *MacroCompliance        `json:"compliance,omitempty"`
	NotableDays *NotableDays            `json:"notable_days,omitempty"`
	Trends      *Trends                 `json:"trends,omitempty"`
	Micros      map[string]MicroSummary `json:"micros,omitempty"`
}

type MacroAverages struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Percent of days meeting at least 90% of each target.
type MacroCompliance struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type NotableDays struct {
	BestCalorieDay  string `json:"best_calorie_day"`
	WorstCalorieDay string `json:"worst_calorie_day"`
	BestProteinDay  string `json:"best_protein_day"`
	WorstProteinDay string `json:"worst_protein_day"`
}

// Endpoint difference, last day minus first day. Deliberately not a
// fitted slope.
type Trends struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
}

type MicroSummary struct {
	Average    float64 `json:"average"`
	Compliance int     `json:"compliance"`
	Unit       string  `json:"unit"`
}

// ComputeSummary derives the cross-day statistics from an ordered
// sequence of daily entries. An empty sequence yields an empty summary.
func ComputeSummary(days []DailyEntry) Summary {
	n := len(days)
	if n == 0 {
		return Summary{}
	}

	calories := make([]int, n)
	protein := make([]int, n)
	carbs := make([]int, n)
	fat := make([]int, n)
	for i, day := range days {
		calories[i] = day.Macros.Calories.Amount
		protein[i] = day.Macros.Protein.Amount
		carbs[i] = day.Macros.Carbs.Amount
		fat[i] = day.Macros.Fat.Amount
	}

	// Targets are constant across the range; read them off the first day.
	first := days[0].Macros

	micros := map[string]MicroSummary{}
	for name, m0 := range days[0].Micros {
		var sum float64
		compliant := 0
		for _, day := range days {
			v := day.Micros[name].Amount
			sum += v
			if meetsTarget(v, m0.Target) {
				compliant++
			}
		}
		micros[name] = MicroSummary{
			Average:    round1(sum / float64(n)),
			Compliance: roundInt(float64(compliant) / float64(n) * 100),
			Unit:       m0.Unit,
		}
	}

	return Summary{
		Averages: &MacroAverages{
			Calories: roundInt(mean(calories)),
			Protein:  roundInt(mean(protein)),
			Carbs:    roundInt(mean(carbs)),
			Fat:      roundInt(mean(fat)),
		},
		Compliance: &MacroCompliance{
			Calories: compliancePct(calories, first.Calories.Target),
			Protein:  compliancePct(protein, first.Protein.Target),
			Carbs:    compliancePct(carbs, first.Carbs.Target),
			Fat:      compliancePct(fat, first.Fat.Target),
		},
		NotableDays: &NotableDays{
			BestCalorieDay:  days[argMax(calories)].Date,
			WorstCalorieDay: days[argMin(calories)].Date,
			BestProteinDay:  days[argMax(protein)].Date,
			WorstProteinDay: days[argMin(protein)].Date,
		},
		Trends: &Trends{
			Calories: calories[n-1] - calories[0],
			Protein:  protein[n-1] - protein[0],
		},
		Micros: micros,
	}
}

// meetsTarget reports amount >= 90% of target, written so the exact
// boundary does not fall victim to 0.9's binary representation.
func meetsTarget(amount, target float64) bool {
	return amount*10 >= target*9
}

func compliancePct(values []int, target int) int {
	compliant := 0
	for _, v := range values {
		if meetsTarget(float64(v), float64(target)) {
			compliant++
		}
	}
	return roundInt(float64(compliant) / float64(len(values)) * 100)
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// argMax/argMin return the first index of the extreme value, so ties
// resolve to the earliest day in chronological order.
func argMax(values []int) int {
	idx := 0
	for i, v := range values {
		if v > values[idx] {
			idx = i
		}
	}
	return idx
}

func argMin(values []int) int {
	idx := 0
	for i, v := range values {
		if v < values[idx] {
			idx = i
		}
	}
	return idx
}
