// Package routes registers the HTTP surface on the named-route router.
package routes

import (
	"net/http"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/controllers"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/services"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/metrics"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/middleware"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/router"
)

// Controllers bundles the constructed controllers for registration.
type Controllers struct {
	Products   *controllers.ProductController
	Categories *controllers.CategoryController
	Orders     *controllers.OrderController
	Auth       *controllers.AuthController
	Payments   *controllers.PaymentController
	Dashboard  *controllers.DashboardController
	Uploads    *controllers.UploadController
}

// Register mounts every route. Admin-only routes sit behind the
// admin-session guard; everything else is public.
func Register(r *router.Router, c *Controllers) {
	adminOnly := middleware.SessionFlagRequired(services.AdminSessionFlag)

	r.Get("/", "home", c.Dashboard.Home)
	r.Get("/cart", "cart.page", c.Dashboard.Cart)
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	api.Get("/products", "products.index", c.Products.Index)
	api.Get("/products/featured", "products.featured", c.Products.Featured)
	api.Get("/products/category/{name}", "products.by_category", c.Products.ByCategory)
	api.Get("/products/{id}", "products.show", c.Products.Show)
	api.Post("/products", "products.store", c.Products.Store, adminOnly)
	api.Put("/products/{id}", "products.update", c.Products.Update, adminOnly)
	api.Delete("/products/{id}", "products.destroy", c.Products.Destroy, adminOnly)
	api.Get("/categories", "categories.index", c.Categories.Index)

	api.Post("/admin/login", "admin.login", c.Auth.AdminLogin)
	api.Post("/admin/logout", "admin.logout", c.Auth.AdminLogout)
	api.Get("/admin/check-auth", "admin.check_auth", c.Auth.CheckAuth)
	api.Get("/admin/stats", "admin.stats", c.Dashboard.Stats, adminOnly)
	api.Get("/admin/products/recent", "admin.products.recent", c.Dashboard.RecentProducts, adminOnly)
	api.Post("/admin/upload", "admin.upload", c.Uploads.Store, adminOnly)

	api.Post("/user/login", "user.login", c.Auth.UserLogin)
	api.Post("/user/signup", "user.signup", c.Auth.UserSignup)

	api.Post("/payment/initialize", "payment.initialize", c.Payments.Initialize)
	api.Post("/payment/verify-upi", "payment.verify_upi", c.Payments.VerifyUPI)

	admin := r.Group("/admin", adminOnly)
	admin.Get("/", "admin.dashboard", c.Dashboard.Dashboard)
	admin.Get("/products", "admin.products.page", c.Dashboard.Products)
	admin.Get("/categories", "admin.categories.index", c.Categories.Index)
	admin.Post("/categories", "admin.categories.store", c.Categories.Store)
	admin.Get("/orders", "admin.orders.index", c.Orders.Index)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w)
	})
}
