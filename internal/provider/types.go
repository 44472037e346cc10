package provider

// SearchResponse is the provider's search envelope. Hits stays nil when the
// response body carries no hits container at all; callers rely on that to
// tell "provider answered with nothing" apart from "provider answered with an
// empty page".
type SearchResponse struct {
	From  int   `json:"from"`
	To    int   `json:"to"`
	Count int   `json:"count"`
	Hits  []Hit `json:"hits"`
}

// Hit wraps a single recipe result
type Hit struct {
	Recipe Recipe `json:"recipe"`
}

// Recipe is the provider's recipe document. Numeric fields are pointers
// because the provider omits them freely; a missing yield must not read as a
// yield of zero.
type Recipe struct {
	Label           string              `json:"label"`
	Image           string              `json:"image"`
	Source          string              `json:"source"`
	URL             string              `json:"url"`
	ShareAs         string              `json:"shareAs"`
	Yield           *float64            `json:"yield"`
	DietLabels      []string            `json:"dietLabels"`
	HealthLabels    []string            `json:"healthLabels"`
	IngredientLines []string            `json:"ingredientLines"`
	Calories        *float64            `json:"calories"`
	TotalTime       *float64            `json:"totalTime"`
	CuisineType     []string            `json:"cuisineType"`
	MealType        []string            `json:"mealType"`
	DishType        []string            `json:"dishType"`
	TotalNutrients  map[string]Nutrient `json:"totalNutrients"`
}

// Nutrient is one structured nutrient amount
type Nutrient struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}
