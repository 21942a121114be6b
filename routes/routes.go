package routes

import (
	"net/http"

	"brookside/auth"
	"brookside/contact"
	"brookside/dashboard"
	"brookside/middleware"
	"brookside/newsletter"
	"brookside/orders"
	"brookside/products"
	"brookside/ratelim"
	"brookside/tours"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, gate *middleware.Gate, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.GET("/api/auth/me", gate.Authenticate(h.Me))
}

func AddProductRoutes(router *httprouter.Router, gate *middleware.Gate, rl *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:id", products.GetProduct)
	router.POST("/api/products", gate.Authenticate(gate.AdminOnly(products.CreateProduct)))
	router.PUT("/api/products/:id", gate.Authenticate(gate.AdminOnly(products.UpdateProduct)))
	router.PUT("/api/products/:id/image", gate.Authenticate(gate.AdminOnly(products.UploadProductImage)))
	router.DELETE("/api/products/:id", gate.Authenticate(gate.AdminOnly(products.DeleteProduct)))
	router.POST("/api/products/:id/reviews", rl.Limit(gate.Authenticate(products.AddReview)))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler, gate *middleware.Gate) {
	router.POST("/api/orders", gate.Authenticate(h.CreateOrder))
	router.GET("/api/orders", gate.Authenticate(h.GetOrders))
	router.GET("/api/orders/:id", gate.Authenticate(h.GetOrder))
	router.GET("/api/orders/:id/invoice", gate.Authenticate(h.PrintInvoice))
	router.PUT("/api/orders/:id", gate.Authenticate(gate.AdminOnly(h.UpdateOrder)))
}

func AddTourRoutes(router *httprouter.Router, gate *middleware.Gate, rl *ratelim.RateLimiter) {
	router.POST("/api/tour-bookings", rl.Limit(tours.CreateBooking))
	router.GET("/api/tour-bookings", gate.Authenticate(gate.AdminOnly(tours.GetBookings)))
	router.GET("/api/tour-bookings/:id", gate.Authenticate(gate.AdminOnly(tours.GetBooking)))
	router.PUT("/api/tour-bookings/:id", gate.Authenticate(gate.AdminOnly(tours.UpdateBooking)))
}

func AddContactRoutes(router *httprouter.Router, gate *middleware.Gate, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.CreateMessage))
	router.GET("/api/contact", gate.Authenticate(gate.AdminOnly(contact.GetMessages)))
	router.GET("/api/contact/:id", gate.Authenticate(gate.AdminOnly(contact.GetMessage)))
	router.PUT("/api/contact/:id", gate.Authenticate(gate.AdminOnly(contact.UpdateMessage)))
}

func AddNewsletterRoutes(router *httprouter.Router, gate *middleware.Gate, rl *ratelim.RateLimiter) {
	router.POST("/api/newsletter", rl.Limit(newsletter.Subscribe))
	router.POST("/api/newsletter/unsubscribe", rl.Limit(newsletter.Unsubscribe))
	router.GET("/api/newsletter/subscribers", gate.Authenticate(gate.AdminOnly(newsletter.GetSubscribers)))
}

func AddDashboardRoutes(router *httprouter.Router, gate *middleware.Gate) {
	router.GET("/api/admin/dashboard", gate.Authenticate(gate.AdminOnly(dashboard.GetStats)))
}
