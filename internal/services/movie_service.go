package services

import (
	"context"
	"mime/multipart"
	"time"

	"cinema-catalog/internal/crud"
	"cinema-catalog/internal/models"
	"cinema-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	moviesCacheTag  = "movies"
	moviesContainer = "movies"
	homePageTop     = 6
)

// MovieRead is the lightweight movie read model used by listings.
type MovieRead struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Trailer       string    `json:"trailer,omitempty"`
	ReleaseDate   time.Time `json:"releaseDate"`
	Poster        string    `json:"poster,omitempty"`
	AverageRating float64   `json:"averageRating"`
	UserRating    int       `json:"userRating"`
}

// GenreRead and TheaterRead mirror the shapes the simple resource
// endpoints expose, reused inside the movie aggregate views.
type GenreRead struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TheaterRead struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CastMemberRead is one cast entry of a movie detail view; list position
// equals display order.
type CastMemberRead struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Picture       string `json:"picture,omitempty"`
	CharacterName string `json:"characterName"`
	Order         int    `json:"order"`
}

type MovieDetails struct {
	MovieRead
	Genres        []GenreRead      `json:"genres"`
	MovieTheaters []TheaterRead    `json:"movieTheaters"`
	Actors        []CastMemberRead `json:"actors"`
}

type HomePage struct {
	NowShowing     []MovieRead `json:"nowShowing"`
	UpcomingMovies []MovieRead `json:"upcomingMovies"`
}

type MoviePostGetOptions struct {
	Genres        []GenreRead   `json:"genres"`
	MovieTheaters []TheaterRead `json:"movieTheaters"`
}

type MoviePutGetOptions struct {
	Movie               *MovieDetails    `json:"movie"`
	SelectedGenres      []GenreRead      `json:"selectedGenres"`
	NonSelectedGenres   []GenreRead      `json:"nonSelectedGenres"`
	SelectedTheaters    []TheaterRead    `json:"selectedTheaters"`
	NonSelectedTheaters []TheaterRead    `json:"nonSelectedTheaters"`
	Actors              []CastMemberRead `json:"actors"`
}

// CastMemberInput names an actor and the character they play; the entry's
// position in the submitted list becomes the stored display order.
type CastMemberInput struct {
	ID            uint   `json:"id"`
	CharacterName string `json:"characterName"`
}

// MovieInput is the movie creation input, reused verbatim for updates
// (full replace).
type MovieInput struct {
	Title            string            `json:"title" validate:"required,max=300"`
	Trailer          string            `json:"trailer"`
	ReleaseDate      time.Time         `json:"releaseDate"`
	GenresIds        []uint            `json:"genresIds"`
	MovieTheatersIds []uint            `json:"movieTheatersIds"`
	Actors           []CastMemberInput `json:"actors"`
}

type MovieService interface {
	Detail(ctx context.Context, id uint, userID string) (*MovieDetails, error)
	Home(ctx context.Context) (*HomePage, error)
	Filter(ctx context.Context, filter repository.MovieFilter, p crud.Pagination) ([]MovieRead, int64, error)
	PostGetOptions(ctx context.Context) (*MoviePostGetOptions, error)
	PutGetOptions(ctx context.Context, id uint) (*MoviePutGetOptions, error)
	Create(ctx context.Context, input MovieInput, poster *multipart.FileHeader) (*MovieRead, uint, error)
	Update(ctx context.Context, id uint, input MovieInput, poster *multipart.FileHeader) error
	Delete(ctx context.Context, id uint) error
	Rate(ctx context.Context, movieID uint, userID string, rate int) error
}

type movieService struct {
	movies  repository.MovieRepository
	ratings repository.RatingRepository
	cache   crud.CacheStore
	storage FileStorage
	logger  *logrus.Logger
}

func NewMovieService(movies repository.MovieRepository, ratings repository.RatingRepository,
	cache crud.CacheStore, storage FileStorage, logger *logrus.Logger) MovieService {
	return &movieService{
		movies:  movies,
		ratings: ratings,
		cache:   cache,
		storage: storage,
		logger:  logger,
	}
}

// Detail assembles the full movie view: nested genres, screening theaters
// and ordered cast, plus the rating aggregates. The caller's own rating is
// resolved only for identified users.
func (s *movieService) Detail(ctx context.Context, id uint, userID string) (*MovieDetails, error) {
	movie, err := s.movies.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	details := projectMovieDetails(movie)

	details.AverageRating, err = s.ratings.Average(ctx, id)
	if err != nil {
		return nil, err
	}

	if userID != "" {
		details.UserRating, err = s.ratings.UserRate(ctx, id, userID)
		if err != nil {
			return nil, err
		}
	}

	return details, nil
}

func (s *movieService) Home(ctx context.Context) (*HomePage, error) {
	upcoming, err := s.movies.FindUpcoming(ctx, today(), homePageTop)
	if err != nil {
		return nil, err
	}

	nowShowing, err := s.movies.FindNowShowing(ctx, homePageTop)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		NowShowing:     projectMovies(nowShowing),
		UpcomingMovies: projectMovies(upcoming),
	}, nil
}

func (s *movieService) Filter(ctx context.Context, filter repository.MovieFilter, p crud.Pagination) ([]MovieRead, int64, error) {
	movies, total, err := s.movies.Filter(ctx, filter, p, today())
	if err != nil {
		return nil, 0, err
	}
	return projectMovies(movies), total, nil
}

func (s *movieService) PostGetOptions(ctx context.Context) (*MoviePostGetOptions, error) {
	genres, err := s.movies.GenresNotIn(ctx, nil)
	if err != nil {
		return nil, err
	}

	theaters, err := s.movies.TheatersNotIn(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &MoviePostGetOptions{
		Genres:        projectGenres(genres),
		MovieTheaters: projectTheaters(theaters),
	}, nil
}

// PutGetOptions partitions all genres and theaters into the ones already
// linked to the movie and their complements, to drive an edit form.
func (s *movieService) PutGetOptions(ctx context.Context, id uint) (*MoviePutGetOptions, error) {
	details, err := s.Detail(ctx, id, "")
	if err != nil {
		return nil, err
	}

	genreIDs := make([]uint, 0, len(details.Genres))
	for _, g := range details.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	theaterIDs := make([]uint, 0, len(details.MovieTheaters))
	for _, t := range details.MovieTheaters {
		theaterIDs = append(theaterIDs, t.ID)
	}

	nonSelectedGenres, err := s.movies.GenresNotIn(ctx, genreIDs)
	if err != nil {
		return nil, err
	}

	nonSelectedTheaters, err := s.movies.TheatersNotIn(ctx, theaterIDs)
	if err != nil {
		return nil, err
	}

	return &MoviePutGetOptions{
		Movie:               details,
		SelectedGenres:      details.Genres,
		NonSelectedGenres:   projectGenres(nonSelectedGenres),
		SelectedTheaters:    details.MovieTheaters,
		NonSelectedTheaters: projectTheaters(nonSelectedTheaters),
		Actors:              details.Actors,
	}, nil
}

// Create decomposes the input into the movie row and its join rows,
// stores the poster first so only a successfully saved file ends up on the
// entity, and evicts the movies cache tag after the commit.
func (s *movieService) Create(ctx context.Context, input MovieInput, poster *multipart.FileHeader) (*MovieRead, uint, error) {
	movie := mapMovieInput(input)

	if poster != nil {
		url, err := s.storage.SaveFile(ctx, moviesContainer, poster)
		if err != nil {
			return nil, 0, err
		}
		movie.Poster = url
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, 0, err
	}

	s.evict(ctx)

	read := projectMovie(movie)
	return &read, movie.ID, nil
}

// Update is a full replace: scalars are overlaid and the three join
// collections are rebuilt from the input, with cast order reassigned from
// list position.
func (s *movieService) Update(ctx context.Context, id uint, input MovieInput, poster *multipart.FileHeader) error {
	stored, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return err
	}

	movie := mapMovieInput(input)
	movie.ID = id
	movie.Poster = stored.Poster

	if poster != nil {
		movie.Poster, err = s.storage.SaveEditedFile(ctx, stored.Poster, moviesContainer, poster)
		if err != nil {
			return err
		}
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		return err
	}

	s.evict(ctx)
	return nil
}

// Delete removes the movie and its join rows first; the stored poster is
// dropped afterwards, best effort, and the cache tag is evicted last.
func (s *movieService) Delete(ctx context.Context, id uint) error {
	stored, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}

	if stored.Poster != "" {
		if err := s.storage.DeleteFile(ctx, stored.Poster, moviesContainer); err != nil {
			s.logger.WithError(err).WithField("poster", stored.Poster).
				Warn("Failed to delete poster after movie removal")
		}
	}

	s.evict(ctx)
	return nil
}

// Rate upserts the caller's rating. The movie must exist; the movies cache
// tag is left alone since detail entries expire on their own.
func (s *movieService) Rate(ctx context.Context, movieID uint, userID string, rate int) error {
	exists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		return err
	}
	if !exists {
		return crud.ErrNotFound
	}

	return s.ratings.Upsert(ctx, &models.Rating{
		MovieID: movieID,
		UserID:  userID,
		Rate:    rate,
	})
}

func (s *movieService) evict(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.EvictByTag(ctx, moviesCacheTag); err != nil {
		s.logger.WithError(err).WithField("tag", moviesCacheTag).
			Warn("Failed to evict cache tag")
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// mapMovieInput decomposes the creation input into the movie row and fresh
// join rows. Each cast entry's stored order is its position in the
// submitted list; submitting a reordered list is the only way to change
// display order.
func mapMovieInput(input MovieInput) *models.Movie {
	movie := &models.Movie{
		Title:       input.Title,
		Trailer:     input.Trailer,
		ReleaseDate: input.ReleaseDate,
	}

	for _, genreID := range input.GenresIds {
		movie.Genres = append(movie.Genres, models.MovieGenre{GenreID: genreID})
	}
	for _, theaterID := range input.MovieTheatersIds {
		movie.Screenings = append(movie.Screenings, models.CinemaScreening{MovieTheaterID: theaterID})
	}
	for i, member := range input.Actors {
		movie.Cast = append(movie.Cast, models.MovieActor{
			ActorID:       member.ID,
			CharacterName: member.CharacterName,
			Order:         i,
		})
	}

	return movie
}

func projectMovie(m *models.Movie) MovieRead {
	return MovieRead{
		ID:          m.ID,
		Title:       m.Title,
		Trailer:     m.Trailer,
		ReleaseDate: m.ReleaseDate,
		Poster:      m.Poster,
	}
}

func projectMovies(movies []models.Movie) []MovieRead {
	out := make([]MovieRead, 0, len(movies))
	for i := range movies {
		out = append(out, projectMovie(&movies[i]))
	}
	return out
}

func projectMovieDetails(m *models.Movie) *MovieDetails {
	details := &MovieDetails{
		MovieRead:     projectMovie(m),
		Genres:        make([]GenreRead, 0, len(m.Genres)),
		MovieTheaters: make([]TheaterRead, 0, len(m.Screenings)),
		Actors:        make([]CastMemberRead, 0, len(m.Cast)),
	}

	for _, mg := range m.Genres {
		details.Genres = append(details.Genres, GenreRead{
			ID:   mg.Genre.ID,
			Name: mg.Genre.Name,
		})
	}
	for _, sc := range m.Screenings {
		details.MovieTheaters = append(details.MovieTheaters, TheaterRead{
			ID:        sc.MovieTheater.ID,
			Name:      sc.MovieTheater.Name,
			Latitude:  sc.MovieTheater.Location.Latitude,
			Longitude: sc.MovieTheater.Location.Longitude,
		})
	}
	for _, ma := range m.Cast {
		details.Actors = append(details.Actors, CastMemberRead{
			ID:            ma.Actor.ID,
			Name:          ma.Actor.Name,
			Picture:       ma.Actor.Picture,
			CharacterName: ma.CharacterName,
			Order:         ma.Order,
		})
	}

	return details
}

func projectGenres(genres []models.Genre) []GenreRead {
	out := make([]GenreRead, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreRead{ID: g.ID, Name: g.Name})
	}
	return out
}

func projectTheaters(theaters []models.MovieTheater) []TheaterRead {
	out := make([]TheaterRead, 0, len(theaters))
	for _, t := range theaters {
		out = append(out, TheaterRead{
			ID:        t.ID,
			Name:      t.Name,
			Latitude:  t.Location.Latitude,
			Longitude: t.Location.Longitude,
		})
	}
	return out
}
