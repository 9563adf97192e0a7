package services

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Yolianaadel/NutriPlan-Website/models"

	"github.com/sirupsen/logrus"
)

// defaultRecipeName labels analysis requests that carry no dish name.
const defaultRecipeName = "Meal Recipe"

// NutritionService resolves a nutrition estimate for a dish: remotely when
// the analysis endpoint cooperates, from a local table otherwise. It is the
// only place where remote nutrition failures are swallowed.
type NutritionService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewNutritionService initializes the service with its endpoint, credential
// and HTTP client.
func NewNutritionService(baseURL, apiKey string, timeout time.Duration) *NutritionService {
	return &NutritionService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	RecipeName  string   `json:"recipeName"`
	Ingredients []string `json:"ingredients"`
}

type analyzeResponse struct {
	Success bool `json:"success"`
	Data    *struct {
		Servings    float64                 `json:"servings"`
		TotalWeight float64                 `json:"totalWeight"`
		Totals      models.NutritionProfile `json:"totals"`
		PerServing  models.NutritionProfile `json:"perServing"`
	} `json:"data"`
}

// AnalyzeIngredients estimates per-serving nutrition for the given dish.
// It never fails: any remote problem degrades to FallbackNutrition.
func (s *NutritionService) AnalyzeIngredients(mealName string, ingredients []models.IngredientLine) models.NutritionProfile {
	cleaned := make([]string, 0, len(ingredients))
	for _, line := range ingredients {
		if strings.TrimSpace(line.Ingredient) == "" {
			continue
		}
		cleaned = append(cleaned, strings.TrimSpace(line.Measure+" "+line.Ingredient))
	}
	if len(cleaned) == 0 {
		return s.FallbackNutrition(ingredients)
	}

	name := mealName
	if name == "" {
		name = defaultRecipeName
	}
	body, err := json.Marshal(analyzeRequest{RecipeName: name, Ingredients: cleaned})
	if err != nil {
		return s.FallbackNutrition(ingredients)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/nutrition/analyze", bytes.NewReader(body))
	if err != nil {
		return s.FallbackNutrition(ingredients)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("nutrition analysis call failed, using fallback")
		return s.FallbackNutrition(ingredients)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithField("status", resp.StatusCode).Warn("nutrition analysis rejected, using fallback")
		return s.FallbackNutrition(ingredients)
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logrus.WithError(err).Warn("unreadable nutrition analysis response, using fallback")
		return s.FallbackNutrition(ingredients)
	}
	if !parsed.Success || parsed.Data == nil {
		return s.FallbackNutrition(ingredients)
	}
	return parsed.Data.PerServing
}

// fallbackTable maps ingredient keywords to known per-unit nutrition.
var fallbackTable = map[string]models.NutritionProfile{
	"chicken": {Calories: 165, Protein: 31, Carbs: 0, Fat: 4, Fiber: 0, Sugar: 0, Sodium: 74, SaturatedFat: 1},
	"beef":    {Calories: 250, Protein: 26, Carbs: 0, Fat: 20, Fiber: 0, Sugar: 0, Sodium: 72, SaturatedFat: 8},
	"rice":    {Calories: 130, Protein: 3, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sugar: 0, Sodium: 1, SaturatedFat: 0},
	"potato":  {Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, Fiber: 2, Sugar: 0.8, Sodium: 6, SaturatedFat: 0},
	"egg":     {Calories: 78, Protein: 6, Carbs: 1, Fat: 5, Fiber: 0, Sugar: 1, Sodium: 62, SaturatedFat: 1.6},
	"sugar":   {Calories: 387, Protein: 0, Carbs: 100, Fat: 0, Fiber: 0, Sugar: 100, Sodium: 0, SaturatedFat: 0},
	"oil":     {Calories: 120, Protein: 0, Carbs: 0, Fat: 14, Fiber: 0, Sugar: 0, Sodium: 0, SaturatedFat: 2},
}

// genericEstimate approximates an average meal when nothing in the
// ingredient text matches the table.
var genericEstimate = models.NutritionProfile{
	Calories: 300, Protein: 15, Carbs: 30, Fat: 12,
	Fiber: 3, Sugar: 5, Sodium: 400, SaturatedFat: 5,
}

// FallbackNutrition builds a deterministic, network-free estimate from
// keyword matches against the ingredient text. Matched contributions are
// averaged, not summed, which keeps the result in the range a per-serving
// remote estimate has.
func (s *NutritionService) FallbackNutrition(ingredients []models.IngredientLine) models.NutritionProfile {
	var sum models.NutritionProfile
	matched := 0

	for _, line := range ingredients {
		text := strings.ToLower(line.Measure + " " + line.Ingredient)
		for keyword, n := range fallbackTable {
			if !strings.Contains(text, keyword) {
				continue
			}
			matched++
			sum.Calories += n.Calories
			sum.Protein += n.Protein
			sum.Carbs += n.Carbs
			sum.Fat += n.Fat
			sum.Fiber += n.Fiber
			sum.Sugar += n.Sugar
			sum.Sodium += n.Sodium
			sum.SaturatedFat += n.SaturatedFat
		}
	}

	if matched == 0 {
		return genericEstimate
	}

	count := float64(matched)
	return models.NutritionProfile{
		Calories:     math.Round(sum.Calories / count),
		Protein:      math.Round(sum.Protein / count),
		Carbs:        math.Round(sum.Carbs / count),
		Fat:          math.Round(sum.Fat / count),
		Fiber:        math.Round(sum.Fiber / count),
		Sugar:        math.Round(sum.Sugar / count),
		Sodium:       math.Round(sum.Sodium / count),
		SaturatedFat: math.Round(sum.SaturatedFat / count),
	}
}
