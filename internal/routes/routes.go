package routes

import (
	"cinema-catalog/internal/handlers"
	"cinema-catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Genres   *handlers.GenreHandler
	Theaters *handlers.TheaterHandler
	Actors   *handlers.ActorHandler
	Movies   *handlers.MovieHandler
	Ratings  *handlers.RatingHandler
	Users    *handlers.UserHandler
}

func Setup(app *fiber.App, jwtSecret string, store middleware.ResponseCache, h Handlers) {
	api := app.Group("/api")

	auth := middleware.RequireAuth(jwtSecret)
	admin := middleware.RequireAdmin()

	cacheGenres := middleware.CacheResponses(store, "genres")
	cacheTheaters := middleware.CacheResponses(store, "movieTheaters")
	cacheActors := middleware.CacheResponses(store, "actors")
	cacheMovies := middleware.CacheResponses(store, "movies")

	// Genre routes - admin managed, the full list is public for filters
	genres := api.Group("/genres")
	{
		genres.Get("/all", cacheGenres, h.Genres.ListAll)
		genres.Get("/", auth, admin, cacheGenres, h.Genres.List)
		genres.Get("/:id", auth, admin, cacheGenres, h.Genres.Get)
		genres.Post("/", auth, admin, h.Genres.Create)
		genres.Put("/:id", auth, admin, h.Genres.Update)
		genres.Delete("/:id", auth, admin, h.Genres.Delete)
	}

	// Movie theater routes
	theaters := api.Group("/movietheaters")
	{
		theaters.Get("/", cacheTheaters, h.Theaters.List)
		theaters.Get("/:id", cacheTheaters, h.Theaters.Get)
		theaters.Post("/", h.Theaters.Create)
		theaters.Put("/:id", h.Theaters.Update)
		theaters.Delete("/:id", h.Theaters.Delete)
	}

	// Actor routes - admin managed
	actors := api.Group("/actors", auth, admin)
	{
		actors.Get("/", cacheActors, h.Actors.List)
		actors.Get("/searchByName/:name", h.Actors.SearchByName)
		actors.Get("/:id", cacheActors, h.Actors.Get)
		actors.Post("/", h.Actors.Create)
		actors.Put("/:id", h.Actors.Update)
		actors.Delete("/:id", h.Actors.Delete)
	}

	// Movie routes - public reads, admin writes and form options
	movies := api.Group("/movies")
	{
		movies.Get("/home", cacheMovies, h.Movies.Home)
		movies.Get("/filter", cacheMovies, h.Movies.Filter)
		movies.Get("/postget", auth, admin, h.Movies.PostGet)
		movies.Get("/putget/:id", auth, admin, h.Movies.PutGet)
		movies.Get("/:id", middleware.OptionalAuth(jwtSecret), cacheMovies, h.Movies.Get)
		movies.Post("/", auth, admin, h.Movies.Create)
		movies.Put("/:id", auth, admin, h.Movies.Update)
		movies.Delete("/:id", auth, admin, h.Movies.Delete)
	}

	// Rating routes - any signed-in user
	api.Post("/ratings", auth, h.Ratings.Rate)

	// User routes
	users := api.Group("/users")
	{
		users.Post("/register", h.Users.Register)
		users.Post("/login", h.Users.Login)
		users.Post("/createAdmin", auth, admin, h.Users.CreateAdmin)
		users.Post("/removeAdmin", auth, admin, h.Users.RemoveAdmin)
		users.Get("/usersAndAdminsList", auth, admin, h.Users.List)
	}
}
