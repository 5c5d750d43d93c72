package controllers

import (
	"net/http"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/repositories"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
)

type categoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryController struct {
	categories *repositories.CategoryRepository
}

func NewCategoryController(categories *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

// Index lists all categories as id+name pairs.
func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categories.All(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, categoryView{ID: cat.ID, Name: cat.Name})
	}
	response.JSON(w, http.StatusOK, views)
}

// Store creates a category from a form-encoded console submission.
func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	name := r.PostFormValue("name")
	if name == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	category := models.Category{Name: name}
	if err := c.categories.Create(r.Context(), &category); err != nil {
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.Message(w, "Category added successfully")
}
