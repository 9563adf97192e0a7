package services

import (
	"time"

	"github.com/Yolianaadel/NutriPlan-Website/models"
	"github.com/Yolianaadel/NutriPlan-Website/utils"
)

// AnalyticsService folds the food log into daily and weekly views and
// measures intake against the configured goals.
type AnalyticsService struct {
	log   *FoodLogService
	goals *GoalService
}

func NewAnalyticsService(log *FoodLogService, goals *GoalService) *AnalyticsService {
	return &AnalyticsService{log: log, goals: goals}
}

// DailyTotals sums nutrition over every entry logged on date, reading
// missing values as zero. A day with no entries is all zeros. Recomputed
// from the store on every call.
func (s *AnalyticsService) DailyTotals(date string) models.DailyTotals {
	var totals models.DailyTotals
	for _, e := range s.log.GetByDate(date) {
		totals.Calories += e.Nutrition.Calories
		totals.Protein += e.Nutrition.Protein
		totals.Carbs += e.Nutrition.Carbs
		totals.Fat += e.Nutrition.Fat
		totals.Fiber += e.Nutrition.Fiber
		totals.Sugar += e.Nutrition.Sugar
	}
	return totals
}

// pct is the clamped share of target consumed, in percent. A target of
// zero or less yields 0 rather than dividing.
func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target * 100
	if p > 100 {
		return 100
	}
	return p
}

// Progress reports each macro's intake on date against the daily goals.
// With no goals configured every macro reads current/nil/0.
func (s *AnalyticsService) Progress(date string) models.Progress {
	totals := s.DailyTotals(date)

	goals := s.goals.Goals()
	if goals == nil {
		return models.Progress{
			Calories: models.MacroProgress{Current: totals.Calories},
			Protein:  models.MacroProgress{Current: totals.Protein},
			Carbs:    models.MacroProgress{Current: totals.Carbs},
			Fat:      models.MacroProgress{Current: totals.Fat},
		}
	}

	return models.Progress{
		Calories: models.MacroProgress{Current: totals.Calories, Goal: &goals.Calories, Percentage: pct(totals.Calories, goals.Calories)},
		Protein:  models.MacroProgress{Current: totals.Protein, Goal: &goals.Protein, Percentage: pct(totals.Protein, goals.Protein)},
		Carbs:    models.MacroProgress{Current: totals.Carbs, Goal: &goals.Carbs, Percentage: pct(totals.Carbs, goals.Carbs)},
		Fat:      models.MacroProgress{Current: totals.Fat, Goal: &goals.Fat, Percentage: pct(totals.Fat, goals.Fat)},
	}
}

// WeeklyWindow builds the trailing seven days ending on the reference day,
// oldest first, one overview per calendar day.
func (s *AnalyticsService) WeeklyWindow(reference time.Time) []models.DayOverview {
	window := make([]models.DayOverview, 0, 7)
	for i := 6; i >= 0; i-- {
		day := reference.AddDate(0, 0, -i)
		date := utils.DayKey(day)
		window = append(window, models.DayOverview{
			Date:   date,
			Totals: s.DailyTotals(date),
			Day:    utils.DayLabel(day),
		})
	}
	return window
}
