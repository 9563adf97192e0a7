package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Yolianaadel/NutriPlan-Website/utils"
)

// maxIngredientSlots is how many indexed ingredient/measure pairs a recipe
// directory record can carry.
const maxIngredientSlots = 20

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// Meal is a recipe normalized from a directory record. Nutrition is nil
// until a resolver attaches an estimate.
type Meal struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	Image        string
	Video        string
	Tags         []string
	Ingredients  []IngredientLine
	Nutrition    *NutritionProfile
}

// NewMeal normalizes a loosely-shaped directory record into a Meal. Missing
// or unknown fields default here, at the boundary, and nowhere else.
func NewMeal(record map[string]any) Meal {
	m := Meal{
		ID:           firstString(record, "idMeal", "id"),
		Name:         firstString(record, "strMeal", "name"),
		Category:     firstString(record, "strCategory", "category"),
		Area:         firstString(record, "strArea", "area"),
		Instructions: firstString(record, "strInstructions", "instructions"),
		Image:        firstString(record, "strMealThumb", "image"),
	}
	if url := stringField(record, "strYoutube"); url != "" {
		m.Video = extractVideoID(url)
	}
	if tags := stringField(record, "strTags"); tags != "" {
		m.Tags = strings.Split(tags, ",")
	}
	m.Ingredients = parseIngredients(record)
	return m
}

// parseIngredients walks the numbered slots, dropping any whose ingredient
// name is empty after trimming. Order is preserved.
func parseIngredients(record map[string]any) []IngredientLine {
	var lines []IngredientLine
	for i := 1; i <= maxIngredientSlots; i++ {
		ingredient := strings.TrimSpace(stringField(record, fmt.Sprintf("strIngredient%d", i)))
		if ingredient == "" {
			continue
		}
		measure := strings.TrimSpace(stringField(record, fmt.Sprintf("strMeasure%d", i)))
		lines = append(lines, IngredientLine{Ingredient: ingredient, Measure: measure})
	}
	return lines
}

func extractVideoID(url string) string {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

func stringField(record map[string]any, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}

func firstString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := stringField(record, key); v != "" {
			return v
		}
	}
	return ""
}

// ToLogEntry converts the meal into a food log entry created at now. A meal
// without attached nutrition logs a zero profile.
func (m Meal) ToLogEntry(now time.Time) FoodLogEntry {
	entry := FoodLogEntry{
		ID:        fmt.Sprintf("meal_%s_%d", m.ID, now.UnixMilli()),
		Type:      EntryTypeMeal,
		Name:      m.Name,
		Image:     m.Image,
		Date:      utils.DayKey(now),
		Timestamp: now.UnixMilli(),
	}
	if m.Nutrition != nil {
		entry.Nutrition = *m.Nutrition
	}
	return entry
}
