package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"gauravfit/coach-app/internal/catalog"
	"gauravfit/coach-app/internal/domain"
)

// CatalogHandler serves the immutable reference data: the exercise
// catalog, the meal templates and the weekly split.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	MuscleGroup  string   `json:"muscleGroup,omitempty"`
	Prescription string   `json:"prescription,omitempty"`
	DemoLink     string   `json:"demoLink,omitempty"`
	Locations    []string `json:"locations"`
	Pattern      string   `json:"movementPattern"`
	Catalogued   bool     `json:"catalogued"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex domain.Exercise, catalogued bool) ExerciseResponse {
	locations := make([]string, len(ex.Locations))
	for i, l := range ex.Locations {
		locations[i] = string(l)
	}
	return ExerciseResponse{
		ID:           ex.ID,
		Name:         ex.Name,
		Description:  ex.Description,
		MuscleGroup:  ex.MuscleGroup,
		Prescription: ex.Prescription,
		DemoLink:     ex.DemoLink,
		Locations:    locations,
		Pattern:      string(ex.Pattern),
		Catalogued:   catalogued,
	}
}

// --- Handler Methods ---

// ListExercises returns the full exercise catalog sorted by id.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	exercises := catalog.Exercises()
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].ID < exercises[j].ID })

	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(ex, true)
	}
	c.JSON(http.StatusOK, responses)
}

// GetExercise looks up one exercise by id. Unknown ids resolve to a
// synthesized placeholder entry, never an error.
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, MapExerciseToResponse(catalog.Lookup(id), catalog.Known(id)))
}

// ListAlternatives returns swap candidates sharing the movement
// pattern of the given exercise, filtered by location.
func (h *CatalogHandler) ListAlternatives(c *gin.Context) {
	id := c.Param("id")
	loc := domain.ParseLocation(c.Query("location"))

	alternatives := catalog.Alternatives(id, loc)
	sort.Slice(alternatives, func(i, j int) bool { return alternatives[i].ID < alternatives[j].ID })

	responses := make([]ExerciseResponse, len(alternatives))
	for i, ex := range alternatives {
		responses[i] = MapExerciseToResponse(ex, true)
	}
	c.JSON(http.StatusOK, responses)
}

// GetMeals returns the meal plan for a diet type with the daily
// targets alongside.
func (h *CatalogHandler) GetMeals(c *gin.Context) {
	diet := domain.ParseDietType(c.Query("diet"))
	c.JSON(http.StatusOK, gin.H{
		"dietType": diet,
		"meals":    catalog.MealPlan(diet),
		"targets":  catalog.Targets,
	})
}
