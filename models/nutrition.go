package models

// NutritionProfile is a per-serving nutrition estimate. A zero field means
// unknown or none; values are never negative.
type NutritionProfile struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber,omitempty"`
	Sugar        float64 `json:"sugar,omitempty"`
	Sodium       float64 `json:"sodium,omitempty"`
	SaturatedFat float64 `json:"saturatedFat,omitempty"`
	Cholesterol  float64 `json:"cholesterol,omitempty"`
}

// IngredientLine is one parsed ingredient/measure pair of a recipe. The
// measure may be empty.
type IngredientLine struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// DailyTotals is the field-wise sum of nutrition over one calendar day.
// Derived on demand, never stored.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}
