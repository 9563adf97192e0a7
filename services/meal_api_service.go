package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Yolianaadel/NutriPlan-Website/models"
)

// MealAPIService is the recipe directory client. Records come back in the
// directory's loose shape and are normalized into models.Meal here, at the
// boundary, and nowhere downstream.
type MealAPIService struct {
	baseURL string
	client  *http.Client
}

func NewMealAPIService(baseURL string, timeout time.Duration) *MealAPIService {
	return &MealAPIService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type mealListResponse struct {
	Meals []map[string]any `json:"meals"`
}

func (s *MealAPIService) fetchMeals(path string) ([]map[string]any, error) {
	resp, err := s.client.Get(s.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("failed to call meal directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meal directory error %d", resp.StatusCode)
	}
	var parsed mealListResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse meal directory response: %w", err)
	}
	return parsed.Meals, nil
}

func (s *MealAPIService) normalize(records []map[string]any) []models.Meal {
	meals := make([]models.Meal, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		meals = append(meals, models.NewMeal(rec))
	}
	return meals
}

// RandomMeals fetches count random recipes, skipping any draw that comes
// back empty.
func (s *MealAPIService) RandomMeals(count int) ([]models.Meal, error) {
	meals := make([]models.Meal, 0, count)
	for i := 0; i < count; i++ {
		records, err := s.fetchMeals("/random.php")
		if err != nil {
			return meals, err
		}
		if len(records) > 0 && records[0] != nil {
			meals = append(meals, models.NewMeal(records[0]))
		}
	}
	return meals, nil
}

// MealByID looks one recipe up. A miss is ErrMealNotFound, distinct from
// transport failures.
func (s *MealAPIService) MealByID(id string) (*models.Meal, error) {
	records, err := s.fetchMeals("/lookup.php?i=" + url.QueryEscape(id))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || records[0] == nil {
		return nil, ErrMealNotFound
	}
	meal := models.NewMeal(records[0])
	return &meal, nil
}

// SearchByName searches recipes by name. Empty input is rejected before
// any network call.
func (s *MealAPIService) SearchByName(name string) ([]models.Meal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyQuery
	}
	records, err := s.fetchMeals("/search.php?s=" + url.QueryEscape(name))
	if err != nil {
		return nil, err
	}
	return s.normalize(records), nil
}

func (s *MealAPIService) FilterByCategory(category string) ([]models.Meal, error) {
	records, err := s.fetchMeals("/filter.php?c=" + url.QueryEscape(category))
	if err != nil {
		return nil, err
	}
	return s.normalize(records), nil
}

func (s *MealAPIService) FilterByArea(area string) ([]models.Meal, error) {
	records, err := s.fetchMeals("/filter.php?a=" + url.QueryEscape(area))
	if err != nil {
		return nil, err
	}
	return s.normalize(records), nil
}

// Categories lists the recipe category names.
func (s *MealAPIService) Categories() ([]string, error) {
	return s.listField("/list.php?c=list", "strCategory")
}

// Areas lists the cuisine area names.
func (s *MealAPIService) Areas() ([]string, error) {
	return s.listField("/list.php?a=list", "strArea")
}

func (s *MealAPIService) listField(path, field string) ([]string, error) {
	records, err := s.fetchMeals(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for _, rec := range records {
		if v, ok := rec[field].(string); ok && v != "" {
			names = append(names, v)
		}
	}
	return names, nil
}
