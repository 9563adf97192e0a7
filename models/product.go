package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Yolianaadel/NutriPlan-Website/utils"
)

// ProductRecord is the provider-shaped packaged product document as the
// directory returns it.
type ProductRecord struct {
	Barcode    string                 `json:"barcode"`
	Name       string                 `json:"name"`
	Brand      string                 `json:"brand"`
	Image      string                 `json:"image"`
	NutriScore string                 `json:"nutriScore"`
	NovaGroup  int                    `json:"novaGroup"`
	Categories []string               `json:"categories"`
	Nutrition  ProductNutritionRecord `json:"nutrition"`
}

// ProductNutritionRecord is the provider's per-serving nutrition block.
type ProductNutritionRecord struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	ServingSize string  `json:"servingSize"`
}

// Product is a packaged product normalized from a provider record.
type Product struct {
	Barcode     string
	Name        string
	Brand       string
	Image       string
	NutriScore  string
	NovaGroup   int
	Categories  []string
	ServingSize string
	Nutrition   NutritionProfile
}

// NewProduct normalizes a provider record. Nutrition values are rounded to
// whole numbers and the Nutri-Score letter is upper-cased.
func NewProduct(record ProductRecord) Product {
	return Product{
		Barcode:     record.Barcode,
		Name:        record.Name,
		Brand:       record.Brand,
		Image:       record.Image,
		NutriScore:  strings.ToUpper(record.NutriScore),
		NovaGroup:   record.NovaGroup,
		Categories:  record.Categories,
		ServingSize: record.Nutrition.ServingSize,
		Nutrition: NutritionProfile{
			Calories: math.Round(record.Nutrition.Calories),
			Protein:  math.Round(record.Nutrition.Protein),
			Carbs:    math.Round(record.Nutrition.Carbs),
			Fat:      math.Round(record.Nutrition.Fat),
			Fiber:    math.Round(record.Nutrition.Fiber),
			Sugar:    math.Round(record.Nutrition.Sugar),
		},
	}
}

// ToLogEntry converts the product into a food log entry created at now.
func (p Product) ToLogEntry(now time.Time) FoodLogEntry {
	return FoodLogEntry{
		ID:        fmt.Sprintf("product_%s_%d", p.Barcode, now.UnixMilli()),
		Type:      EntryTypeProduct,
		Name:      p.Name,
		Brand:     p.Brand,
		Image:     p.Image,
		Barcode:   p.Barcode,
		Nutrition: p.Nutrition,
		Date:      utils.DayKey(now),
		Timestamp: now.UnixMilli(),
	}
}
