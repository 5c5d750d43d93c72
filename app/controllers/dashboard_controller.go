package controllers

import (
	"html/template"
	"net/http"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/repositories"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
)

var cartTmpl = template.Must(template.New("cart").Parse(`<!DOCTYPE html>
<html>
<head><title>Cart - Stark Products</title></head>
<body>
<h1>Your Cart</h1>
<div id="cart-items"></div>
</body>
</html>`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head><title>Admin Dashboard - Stark Products</title></head>
<body>
<h1>Admin Dashboard</h1>
<nav>
<a href="/admin/products">Products</a>
<a href="/admin/orders">Orders</a>
</nav>
</body>
</html>`))

var productsTmpl = template.Must(template.New("products").Parse(`<!DOCTYPE html>
<html>
<head><title>Products - Stark Products</title></head>
<body>
<h1>Products</h1>
<table>
<tr><th>ID</th><th>Name</th><th>Price</th><th>Stock</th><th>Category</th></tr>
{{range .}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Price}}</td><td>{{.Stock}}</td><td>{{.Category}}</td></tr>
{{end}}</table>
</body>
</html>`))

// DashboardController serves the welcome route, the server-rendered console
// pages and the console aggregates.
type DashboardController struct {
	products *repositories.ProductRepository
}

func NewDashboardController(products *repositories.ProductRepository) *DashboardController {
	return &DashboardController{products: products}
}

func (c *DashboardController) Home(w http.ResponseWriter, r *http.Request) {
	response.Message(w, "Welcome to Stark Products API")
}

func (c *DashboardController) Cart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	cartTmpl.Execute(w, nil)
}

func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	dashboardTmpl.Execute(w, nil)
}

// Products renders the console product table from the same joined rows the
// JSON listing uses.
func (c *DashboardController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.All(r.Context())
	if err != nil {
		response.Internal(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	productsTmpl.Execute(w, toProductViews(products))
}

// Stats returns the console headline aggregates. The numbers are fixed
// placeholders until the reporting queries land.
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]int{
		"totalProducts": 100,
		"totalOrders":   50,
		"totalRevenue":  5000,
		"lowStock":      5,
	})
}

// RecentProducts returns the console recent-activity row. Placeholder, same
// as Stats.
func (c *DashboardController) RecentProducts(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, []map[string]interface{}{
		{"id": 1, "name": "Product 1", "price": 100, "stock": 10, "category": "Category 1"},
	})
}
