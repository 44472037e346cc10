package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for handling string arrays in JSONB
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Nutrient is one entry of a recipe's nutrient table.
type Nutrient struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// NutrientTable maps a nutrient code (ENERC_KCAL, PROCNT, ...) to its amount.
// Stored as a single JSONB column.
type NutrientTable map[string]Nutrient

// Value implements the driver.Valuer interface
func (n NutrientTable) Value() (driver.Value, error) {
	if len(n) == 0 {
		return "{}", nil
	}
	return json.Marshal(n)
}

// Scan implements the sql.Scanner interface
func (n *NutrientTable) Scan(value interface{}) error {
	if value == nil {
		*n = NutrientTable{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, n)
}

// Recipe is the persisted recipe entity. Diet and health labels are always
// stored in Title-Case-with-hyphens form so rows written from provider results
// match later label lookups. The row identifier and timestamps are internal
// bookkeeping and never serialized to clients. Optional numeric fields are
// pointers; a value the provider never supplied stays null instead of
// becoming a fabricated zero.
type Recipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Title              string        `gorm:"size:255;not null" json:"title"`
	Image              string        `gorm:"size:512" json:"image"`
	Source             string        `gorm:"size:255" json:"source"`
	InstructionsURL    string        `gorm:"size:512" json:"instructionsUrl"`
	DietLabels         StringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"dietLabels"`
	HealthLabels       StringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"healthLabels"`
	Ingredients        StringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	ServingSize        *float64      `gorm:"type:float" json:"servingSize"`
	CaloriesPerServing *float64      `gorm:"type:float" json:"caloriesPerServing"`
	TotalTime          *int          `json:"totalTime"`
	CuisineType        StringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"cuisineType"`
	MealType           StringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"mealType"`
	DishType           StringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"dishType"`
	TotalNutrients     NutrientTable `gorm:"type:jsonb;not null;default:'{}'" json:"totalNutrients"`
}
