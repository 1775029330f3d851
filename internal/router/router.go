// Package router sets up all HTTP routes and middleware chains for the
// CamStore API. Routes are organized into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"github.com/go-chi/chi/v5"

	"camstore/internal/auth"
	"camstore/internal/handlers"
	"camstore/internal/middleware"
)

// Limiters bundles the per-endpoint rate limiters owned by main.
type Limiters struct {
	Contact *middleware.RateLimiter
	Login   *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(
	tokens *auth.Tokens,
	limiters Limiters,
	public *handlers.Public,
	admin *handlers.Admin,
	authHandlers *handlers.Auth,
	media *handlers.Media,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadClaims(tokens))

	// Public API consumed by the storefront.
	r.Get("/health", public.Health)
	r.Get("/sitemap.xml", public.Sitemap)
	r.Route("/api", func(r chi.Router) {
		r.Get("/navbar-categories", public.ListNavbarCategories)
		r.Get("/categories", public.ListCategories)
		r.Get("/subcategories", public.ListSubCategories)
		r.Route("/products", func(r chi.Router) {
			r.Get("/", public.ListProducts)
			r.Get("/{id}", public.GetProduct)
			r.Get("/slug/{slug}", public.GetProductBySlug)
		})
		r.Get("/search", public.Search)

		r.With(limiters.Contact.Middleware).Post("/contact", public.SubmitContact)

		// Admin back office.
		r.Route("/admin", func(r chi.Router) {
			r.With(limiters.Login.Middleware).Post("/login", authHandlers.Login)
			r.Post("/logout", authHandlers.Logout)

			// 2FA endpoints accept a token still awaiting verification.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireToken)
				r.Post("/2fa/setup", authHandlers.TOTPSetup)
				r.Post("/2fa/verify", authHandlers.TOTPVerify)
			})

			// Fully authenticated admin area.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Use(middleware.CSRFGuard)

				r.Get("/me", authHandlers.Me)
				r.Get("/dashboard", admin.Dashboard)
				r.Get("/catalog/orphans", admin.Orphans)
				r.Post("/media", media.Upload)
				r.Delete("/media", media.Delete)

				r.Route("/navbar-categories", func(r chi.Router) {
					r.Get("/", admin.ListNavbarCategories)
					r.Post("/", admin.CreateNavbarCategory)
					r.Get("/{id}", admin.GetNavbarCategory)
					r.Put("/{id}", admin.UpdateNavbarCategory)
					r.Delete("/{id}", admin.DeleteNavbarCategory)
				})

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", admin.ListCategories)
					r.Post("/", admin.CreateCategory)
					r.Get("/{id}", admin.GetCategory)
					r.Put("/{id}", admin.UpdateCategory)
					r.Delete("/{id}", admin.DeleteCategory)
				})

				r.Route("/subcategories", func(r chi.Router) {
					r.Get("/", admin.ListSubCategories)
					r.Post("/", admin.CreateSubCategory)
					r.Get("/{id}", admin.GetSubCategory)
					r.Put("/{id}", admin.UpdateSubCategory)
					r.Delete("/{id}", admin.DeleteSubCategory)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", admin.ListProducts)
					r.Post("/", admin.CreateProduct)
					r.Get("/{id}", admin.GetProduct)
					r.Put("/{id}", admin.UpdateProduct)
					r.Delete("/{id}", admin.DeleteProduct)
				})

				r.Route("/contacts", func(r chi.Router) {
					r.Get("/", admin.ListContacts)
					r.Patch("/{id}", admin.UpdateContactStatus)
					r.Delete("/{id}", admin.DeleteContact)
				})
			})
		})
	})

	return r
}
