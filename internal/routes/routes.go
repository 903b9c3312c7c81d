package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every route handler of the API.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Movies   *handlers.AdminMovieHandler
	Actors   *handlers.AdminActorHandler
	Shots    *handlers.AdminShotHandler
	Taxonomy *handlers.AdminTaxonomyHandler
	Reviews  *handlers.AdminReviewHandler
	Ratings  *handlers.AdminRatingHandler
	Upload   *handlers.UploadHandler
}

// Setup mounts the public catalog and the back office. adminAuth guards
// every /admin route; submitLimit throttles review and rating submissions.
func Setup(app *fiber.App, h Handlers, adminAuth, submitLimit fiber.Handler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Public catalog
	movies := v1.Group("/movies")
	{
		movies.Get("/", h.Catalog.ListMovies)
		movies.Get("/:slug", h.Catalog.GetMovie)
		movies.Post("/:id/reviews", submitLimit, h.Catalog.AddReview)
		movies.Post("/:id/rating", submitLimit, h.Catalog.RateMovie)
	}
	v1.Get("/stars", h.Catalog.ListStars)

	// Back office
	adm := v1.Group("/admin", adminAuth)

	adminMovies := adm.Group("/movies")
	{
		adminMovies.Get("/", h.Movies.ListMovies)
		adminMovies.Get("/form", h.Movies.GetForm)
		adminMovies.Post("/actions", h.Movies.RunAction)
		adminMovies.Get("/:id", h.Movies.GetMovie)
		adminMovies.Post("/", h.Movies.CreateMovie)
		adminMovies.Put("/:id", h.Movies.UpdateMovie)
		adminMovies.Patch("/:id/draft", h.Movies.SetDraft)
		adminMovies.Delete("/:id", h.Movies.DeleteMovie)
	}

	actors := adm.Group("/actors")
	{
		actors.Get("/", h.Actors.ListActors)
		actors.Get("/:id", h.Actors.GetActor)
		actors.Post("/", h.Actors.CreateActor)
		actors.Put("/:id", h.Actors.UpdateActor)
		actors.Delete("/:id", h.Actors.DeleteActor)
	}

	shots := adm.Group("/shots")
	{
		shots.Get("/", h.Shots.ListShots)
		shots.Get("/:id", h.Shots.GetShot)
		shots.Post("/", h.Shots.CreateShot)
		shots.Put("/:id", h.Shots.UpdateShot)
		shots.Delete("/:id", h.Shots.DeleteShot)
	}

	categories := adm.Group("/categories")
	{
		categories.Get("/", h.Taxonomy.ListCategories)
		categories.Get("/:id", h.Taxonomy.GetCategory)
		categories.Post("/", h.Taxonomy.CreateCategory)
		categories.Put("/:id", h.Taxonomy.UpdateCategory)
		categories.Delete("/:id", h.Taxonomy.DeleteCategory)
	}

	genres := adm.Group("/genres")
	{
		genres.Get("/", h.Taxonomy.ListGenres)
		genres.Get("/:id", h.Taxonomy.GetGenre)
		genres.Post("/", h.Taxonomy.CreateGenre)
		genres.Put("/:id", h.Taxonomy.UpdateGenre)
		genres.Delete("/:id", h.Taxonomy.DeleteGenre)
	}

	reviews := adm.Group("/reviews")
	{
		reviews.Get("/", h.Reviews.ListReviews)
		reviews.Get("/:id", h.Reviews.GetReview)
		reviews.Delete("/:id", h.Reviews.DeleteReview)
	}

	stars := adm.Group("/stars")
	{
		stars.Get("/", h.Ratings.ListStars)
		stars.Get("/:id", h.Ratings.GetStar)
		stars.Post("/", h.Ratings.CreateStar)
		stars.Put("/:id", h.Ratings.UpdateStar)
		stars.Delete("/:id", h.Ratings.DeleteStar)
	}

	ratings := adm.Group("/ratings")
	{
		ratings.Get("/", h.Ratings.ListRatings)
		ratings.Get("/:id", h.Ratings.GetRating)
		ratings.Post("/", h.Ratings.CreateRating)
		ratings.Put("/:id", h.Ratings.UpdateRating)
		ratings.Delete("/:id", h.Ratings.DeleteRating)
	}

	upload := adm.Group("/upload")
	{
		upload.Get("/presign", h.Upload.GetPresignedURL)
	}
}
