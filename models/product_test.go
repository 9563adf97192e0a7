package models

import (
	"testing"
	"time"
)

func TestNewProductNormalizesRecord(t *testing.T) {
	p := NewProduct(ProductRecord{
		Barcode:    "3017620422003",
		Name:       "Nutella",
		Brand:      "Ferrero",
		NutriScore: "e",
		NovaGroup:  4,
		Categories: []string{"Spreads", "Sweet spreads"},
		Nutrition: ProductNutritionRecord{
			Calories:    539.6,
			Protein:     6.3,
			Carbs:       57.5,
			Fat:         30.9,
			Fiber:       0,
			Sugar:       56.3,
			ServingSize: "15g",
		},
	})

	if p.NutriScore != "E" {
		t.Errorf("nutri-score not upper-cased: %q", p.NutriScore)
	}
	if p.Nutrition.Calories != 540 || p.Nutrition.Protein != 6 || p.Nutrition.Carbs != 58 {
		t.Errorf("nutrition not rounded: %+v", p.Nutrition)
	}
	if p.Nutrition.Fat != 31 || p.Nutrition.Sugar != 56 {
		t.Errorf("nutrition not rounded: %+v", p.Nutrition)
	}
	if p.ServingSize != "15g" {
		t.Errorf("serving size lost: %q", p.ServingSize)
	}
}

func TestProductToLogEntry(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	p := Product{
		Barcode: "3017620422003",
		Name:    "Nutella",
		Brand:   "Ferrero",
		Nutrition: NutritionProfile{
			Calories: 540, Protein: 6, Carbs: 58, Fat: 31,
		},
	}

	entry := p.ToLogEntry(now)

	if entry.ID != "product_3017620422003_1741948200000" {
		t.Errorf("id: got %q", entry.ID)
	}
	if entry.Type != EntryTypeProduct {
		t.Errorf("type: got %q", entry.Type)
	}
	if entry.Brand != "Ferrero" || entry.Barcode != "3017620422003" {
		t.Errorf("product fields lost: %+v", entry)
	}
	if entry.Date != "2025-03-14" {
		t.Errorf("date: got %q", entry.Date)
	}
}
