package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/repositories"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/bind"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
)

// productView is the storefront product shape: the joined category name is
// flattened into the payload.
type productView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}

func toProductView(p models.Product) productView {
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Category:    p.Category.Name,
	}
}

func toProductViews(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

type productRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Stock       *int     `json:"stock"`
	CategoryID  *uint    `json:"category_id"`
}

func (p productRequest) complete() bool {
	return p.Name != nil && p.Description != nil && p.Price != nil &&
		p.ImageURL != nil && p.Stock != nil && p.CategoryID != nil
}

type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController(products *repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

// Index lists products. An exact category name or a case-insensitive
// substring search over name/description can narrow the result; category
// takes precedence when both are sent.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	var (
		products []models.Product
		err      error
	)
	switch {
	case r.URL.Query().Get("category") != "":
		products, err = c.products.ByCategoryName(r.Context(), r.URL.Query().Get("category"))
	case r.URL.Query().Get("search") != "":
		products, err = c.products.Search(r.Context(), r.URL.Query().Get("search"))
	default:
		products, err = c.products.All(r.Context())
	}
	if err != nil {
		response.Internal(w)
		return
	}
	response.JSON(w, http.StatusOK, toProductViews(products))
}

func (c *ProductController) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.Featured(r.Context())
	if err != nil {
		response.Internal(w)
		return
	}
	response.JSON(w, http.StatusOK, toProductViews(products))
}

func (c *ProductController) ByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.ByCategoryName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		response.Internal(w)
		return
	}
	response.JSON(w, http.StatusOK, toProductViews(products))
}

func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	product, err := c.products.ByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		response.Internal(w)
		return
	}
	response.JSON(w, http.StatusOK, toProductView(product))
}

// Store creates a product. Every field must be present in the body.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := bind.JSONLoose(r, &req); err != nil || !req.complete() {
		response.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	product := models.Product{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		ImageURL:    *req.ImageURL,
		Stock:       *req.Stock,
		CategoryID:  *req.CategoryID,
	}
	if err := c.products.Create(r.Context(), &product); err != nil {
		response.Internal(w)
		return
	}
	response.Message(w, "Product added successfully")
}

// Update replaces all writable fields of a product.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	var req productRequest
	if err := bind.JSONLoose(r, &req); err != nil || !req.complete() {
		response.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	product := models.Product{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		ImageURL:    *req.ImageURL,
		Stock:       *req.Stock,
		CategoryID:  *req.CategoryID,
	}
	if err := c.products.Update(r.Context(), uint(id), &product); err != nil {
		response.Internal(w)
		return
	}
	response.Message(w, "Product updated successfully")
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	if err := c.products.Delete(r.Context(), uint(id)); err != nil {
		response.Internal(w)
		return
	}
	response.Message(w, "Product deleted successfully")
}
