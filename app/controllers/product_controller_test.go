package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
)

func TestProductShowNotFound(t *testing.T) {
	rec := do(t, http.MethodGet, "/api/products/999999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Product not found", body["error"])
}

func TestProductShowIncludesCategoryName(t *testing.T) {
	cat := mustSeedCategory(t, "Gadgets")
	p := mustSeedProduct(t, models.Product{
		Name:        "Arc Reactor",
		Description: "Clean energy core",
		Price:       4999.99,
		ImageURL:    "/img/arc.png",
		Stock:       3,
		CategoryID:  cat.ID,
	})

	rec := do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decode(t, rec, &body)
	assert.Equal(t, "Arc Reactor", body["name"])
	assert.Equal(t, "Gadgets", body["category"])
	assert.Equal(t, 4999.99, body["price"])
}

func TestProductSearchMatchesDescription(t *testing.T) {
	cat := mustSeedCategory(t, "Suits")
	mustSeedProduct(t, models.Product{
		Name:        "Mark XLII",
		Description: "Prehensile flight armor",
		Price:       1000000,
		ImageURL:    "/img/mk42.png",
		Stock:       1,
		CategoryID:  cat.ID,
	})

	rec := do(t, http.MethodGet, "/api/products?search=PREHENSILE", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	decode(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Mark XLII", body[0]["name"])
}

func TestProductListByCategoryParam(t *testing.T) {
	cat := mustSeedCategory(t, "Helmets")
	mustSeedProduct(t, models.Product{
		Name: "HUD Helmet", Description: "Heads-up display", Price: 250,
		ImageURL: "/img/helmet.png", Stock: 7, CategoryID: cat.ID,
	})

	rec := do(t, http.MethodGet, "/api/products?category=Helmets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	decode(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Helmets", body[0]["category"])
}

func TestProductFeaturedOnly(t *testing.T) {
	cat := mustSeedCategory(t, "Featured Things")
	mustSeedProduct(t, models.Product{
		Name: "Front Page Item", Description: "Shown on the landing page", Price: 10,
		ImageURL: "/img/front.png", Stock: 2, CategoryID: cat.ID, Featured: true,
	})
	mustSeedProduct(t, models.Product{
		Name: "Back Catalog Item", Description: "Not featured", Price: 10,
		ImageURL: "/img/back.png", Stock: 2, CategoryID: cat.ID,
	})

	rec := do(t, http.MethodGet, "/api/products/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	decode(t, rec, &body)
	for _, p := range body {
		assert.NotEqual(t, "Back Catalog Item", p["name"])
	}
}

func TestProductCreateRequiresAdmin(t *testing.T) {
	rec := do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name": "Unauthorized Widget",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestProductCreateMissingFields(t *testing.T) {
	rec := do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":  "Half Specified",
		"price": 12.5,
	}, adminCookie(t))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestProductCreateUpdateDelete(t *testing.T) {
	cat := mustSeedCategory(t, "Lifecycle")
	cookie := adminCookie(t)

	rec := do(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":        "Lifecycle Widget",
		"description": "Created through the API",
		"price":       42.0,
		"image_url":   "/img/widget.png",
		"stock":       5,
		"category_id": cat.ID,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Product
	require.NoError(t, findProductByName("Lifecycle Widget", &created))

	rec = do(t, http.MethodPut, fmt.Sprintf("/api/products/%d", created.ID), map[string]interface{}{
		"name":        "Lifecycle Widget v2",
		"description": "Updated through the API",
		"price":       43.0,
		"image_url":   "/img/widget2.png",
		"stock":       4,
		"category_id": cat.ID,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), nil)
	var body map[string]interface{}
	decode(t, rec, &body)
	assert.Equal(t, "Lifecycle Widget v2", body["name"])
	assert.Equal(t, 43.0, body["price"])

	rec = do(t, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
