// Package render builds printable PDF documents from recipe batches using
// gofpdf. A batch is validated up front; if any recipe is unfit to print the
// whole document is rejected and nothing is rendered.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/mealfolio/backend/internal/model"
)

// ErrEmptyBatch is returned when there are no recipes to print.
var ErrEmptyBatch = errors.New("no recipes to print")

// ErrInvalidRecipe is returned when a recipe lacks a field the printed page
// cannot do without.
var ErrInvalidRecipe = errors.New("recipe missing required fields")

// PDFRenderer renders recipe batches as PDF documents.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces one PDF with a page per recipe. Every recipe must carry a
// title, a serving size, calories per serving, and at least one ingredient;
// otherwise the batch fails validation and no document is produced.
func (r *PDFRenderer) Render(recipes []model.Recipe) ([]byte, error) {
	if len(recipes) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := validateBatch(recipes); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	for _, recipe := range recipes {
		renderRecipePage(pdf, recipe)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func validateBatch(recipes []model.Recipe) error {
	for i, recipe := range recipes {
		var missing []string
		if strings.TrimSpace(recipe.Title) == "" {
			missing = append(missing, "title")
		}
		if recipe.ServingSize == nil {
			missing = append(missing, "servingSize")
		}
		if recipe.CaloriesPerServing == nil {
			missing = append(missing, "caloriesPerServing")
		}
		if len(recipe.Ingredients) == 0 {
			missing = append(missing, "ingredients")
		}
		if len(missing) > 0 {
			return fmt.Errorf("recipe %d: %w: %s", i, ErrInvalidRecipe, strings.Join(missing, ", "))
		}
	}
	return nil
}

func renderRecipePage(pdf *gofpdf.Fpdf, recipe model.Recipe) {
	pdf.AddPage()

	// Title.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, recipe.Title, "", "L", false)
	pdf.Ln(2)

	// Source and instructions link.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+recipe.Source, "", "L", false)
	pdf.MultiCell(0, 5, "Instructions: "+recipe.InstructionsURL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Labels.
	if len(recipe.DietLabels) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Diet: "+strings.Join(recipe.DietLabels, ", "), "", "L", false)
	}
	if len(recipe.HealthLabels) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Health: "+strings.Join(recipe.HealthLabels, ", "), "", "L", false)
	}
	pdf.Ln(4)

	// Servings and calories.
	pdf.SetFont("Helvetica", "B", 11)
	servings := strconv.FormatFloat(*recipe.ServingSize, 'f', -1, 64)
	pdf.MultiCell(0, 6, "Serves "+servings, "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("%.2f calories per serving", *recipe.CaloriesPerServing), "", "L", false)
	if recipe.TotalTime != nil {
		pdf.MultiCell(0, 6, fmt.Sprintf("Ready in %d minutes", *recipe.TotalTime), "", "L", false)
	}
	pdf.Ln(4)

	// Ingredients.
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 6, "Ingredients", "", "L", false)
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 10)
	for _, ingredient := range recipe.Ingredients {
		pdf.MultiCell(0, 5, "• "+ingredient, "", "L", false)
	}
}
