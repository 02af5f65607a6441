package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"cinema-catalog/internal/config"
	"cinema-catalog/internal/crud"
	"cinema-catalog/internal/database"
	"cinema-catalog/internal/models"
	"cinema-catalog/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStorage struct {
	seq     int
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFile(_ context.Context, container string, _ *multipart.FileHeader) (string, error) {
	f.seq++
	url := fmt.Sprintf("http://files/%s/%d.jpg", container, f.seq)
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, url, _ string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeStorage) SaveEditedFile(ctx context.Context, oldURL, container string, file *multipart.FileHeader) (string, error) {
	if oldURL != "" {
		if err := f.DeleteFile(ctx, oldURL, container); err != nil {
			return "", err
		}
	}
	return f.SaveFile(ctx, container, file)
}

type fakeCache struct {
	evictions map[string]int
}

func (f *fakeCache) EvictByTag(_ context.Context, tag string) error {
	if f.evictions == nil {
		f.evictions = map[string]int{}
	}
	f.evictions[tag]++
	return nil
}

type movieFixture struct {
	db      *gorm.DB
	service MovieService
	ratings repository.RatingRepository
	storage *fakeStorage
	cache   *fakeCache
}

func newMovieFixture(t *testing.T) *movieFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	wrapped := database.Wrap(db, config.DatabaseConfig{})
	storage := &fakeStorage{}
	cache := &fakeCache{}
	ratings := repository.NewRatingRepository(wrapped)

	return &movieFixture{
		db:      db,
		service: NewMovieService(repository.NewMovieRepository(wrapped), ratings, cache, storage, log),
		ratings: ratings,
		storage: storage,
		cache:   cache,
	}
}

func (f *movieFixture) seedGenre(t *testing.T, name string) uint {
	t.Helper()
	genre := models.Genre{Name: name}
	require.NoError(t, f.db.Create(&genre).Error)
	return genre.ID
}

func (f *movieFixture) seedActor(t *testing.T, name string) uint {
	t.Helper()
	actor := models.Actor{Name: name, DateOfBirth: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, f.db.Create(&actor).Error)
	return actor.ID
}

func (f *movieFixture) seedTheater(t *testing.T, name string, lat, lng float64) uint {
	t.Helper()
	theater := models.MovieTheater{Name: name, Location: models.Point{Latitude: lat, Longitude: lng}}
	require.NoError(t, f.db.Create(&theater).Error)
	return theater.ID
}

func TestCreateStoresCastOrderFromListPosition(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	bardem := f.seedActor(t, "Bardem")
	adams := f.seedActor(t, "Adams")
	cruz := f.seedActor(t, "Cruz")

	_, id, err := f.service.Create(ctx, MovieInput{
		Title: "Everest",
		Actors: []CastMemberInput{
			{ID: bardem, CharacterName: "Lead"},
			{ID: adams, CharacterName: "Friend"},
			{ID: cruz, CharacterName: "Rival"},
		},
	}, nil)
	require.NoError(t, err)

	details, err := f.service.Detail(ctx, id, "")
	require.NoError(t, err)

	require.Len(t, details.Actors, 3)
	assert.Equal(t, []CastMemberRead{
		{ID: bardem, Name: "Bardem", CharacterName: "Lead", Order: 0},
		{ID: adams, Name: "Adams", CharacterName: "Friend", Order: 1},
		{ID: cruz, Name: "Cruz", CharacterName: "Rival", Order: 2},
	}, details.Actors)
}

func TestUpdateReassignsCastOrderFromReorderedList(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	first := f.seedActor(t, "First")
	second := f.seedActor(t, "Second")

	_, id, err := f.service.Create(ctx, MovieInput{
		Title: "Everest",
		Actors: []CastMemberInput{
			{ID: first, CharacterName: "A"},
			{ID: second, CharacterName: "B"},
		},
	}, nil)
	require.NoError(t, err)

	err = f.service.Update(ctx, id, MovieInput{
		Title: "Everest",
		Actors: []CastMemberInput{
			{ID: second, CharacterName: "B"},
			{ID: first, CharacterName: "A"},
		},
	}, nil)
	require.NoError(t, err)

	details, err := f.service.Detail(ctx, id, "")
	require.NoError(t, err)

	require.Len(t, details.Actors, 2)
	assert.Equal(t, second, details.Actors[0].ID)
	assert.Equal(t, 0, details.Actors[0].Order)
	assert.Equal(t, first, details.Actors[1].ID)
	assert.Equal(t, 1, details.Actors[1].Order)
}

func TestDetailAggregatesGenresTheatersAndRatings(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	action := f.seedGenre(t, "Action")
	drama := f.seedGenre(t, "Drama")
	downtown := f.seedTheater(t, "Downtown", 41.38, 2.17)

	_, id, err := f.service.Create(ctx, MovieInput{
		Title:            "Everest",
		GenresIds:        []uint{action, drama},
		MovieTheatersIds: []uint{downtown},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, f.service.Rate(ctx, id, "user-1", 4))
	require.NoError(t, f.service.Rate(ctx, id, "user-2", 2))

	details, err := f.service.Detail(ctx, id, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Everest", details.Title)
	assert.Len(t, details.Genres, 2)
	require.Len(t, details.MovieTheaters, 1)
	assert.Equal(t, "Downtown", details.MovieTheaters[0].Name)
	assert.Equal(t, 41.38, details.MovieTheaters[0].Latitude)
	assert.Equal(t, 2.17, details.MovieTheaters[0].Longitude)
	assert.Equal(t, 3.0, details.AverageRating)
	assert.Equal(t, 4, details.UserRating)
}

func TestDetailSkipsUserRatingForAnonymousCaller(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	_, id, err := f.service.Create(ctx, MovieInput{Title: "Everest"}, nil)
	require.NoError(t, err)
	require.NoError(t, f.service.Rate(ctx, id, "user-1", 5))

	details, err := f.service.Detail(ctx, id, "")
	require.NoError(t, err)

	assert.Equal(t, 5.0, details.AverageRating)
	assert.Zero(t, details.UserRating)
}

func TestRateOverwritesPreviousValue(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	_, id, err := f.service.Create(ctx, MovieInput{Title: "Everest"}, nil)
	require.NoError(t, err)

	require.NoError(t, f.service.Rate(ctx, id, "user-1", 4))
	require.NoError(t, f.service.Rate(ctx, id, "user-1", 2))
	require.NoError(t, f.service.Rate(ctx, id, "user-2", 5))

	rate, err := f.ratings.UserRate(ctx, id, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, rate)

	average, err := f.ratings.Average(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3.5, average)
}

func TestRateUnknownMovieReturnsNotFound(t *testing.T) {
	f := newMovieFixture(t)

	err := f.service.Rate(context.Background(), 999, "user-1", 3)
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestPutGetOptionsPartitionsBySelection(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	action := f.seedGenre(t, "Action")
	comedy := f.seedGenre(t, "Comedy")
	drama := f.seedGenre(t, "Drama")
	downtown := f.seedTheater(t, "Downtown", 1, 1)
	uptown := f.seedTheater(t, "Uptown", 2, 2)

	_, id, err := f.service.Create(ctx, MovieInput{
		Title:            "Everest",
		GenresIds:        []uint{comedy},
		MovieTheatersIds: []uint{uptown},
	}, nil)
	require.NoError(t, err)

	options, err := f.service.PutGetOptions(ctx, id)
	require.NoError(t, err)

	require.Len(t, options.SelectedGenres, 1)
	assert.Equal(t, comedy, options.SelectedGenres[0].ID)

	nonSelected := make([]uint, 0, len(options.NonSelectedGenres))
	for _, g := range options.NonSelectedGenres {
		nonSelected = append(nonSelected, g.ID)
	}
	assert.ElementsMatch(t, []uint{action, drama}, nonSelected)

	require.Len(t, options.SelectedTheaters, 1)
	assert.Equal(t, uptown, options.SelectedTheaters[0].ID)
	require.Len(t, options.NonSelectedTheaters, 1)
	assert.Equal(t, downtown, options.NonSelectedTheaters[0].ID)
}

func TestPostGetOptionsReturnsEverything(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	f.seedGenre(t, "Action")
	f.seedGenre(t, "Drama")
	f.seedTheater(t, "Downtown", 1, 1)

	options, err := f.service.PostGetOptions(ctx)
	require.NoError(t, err)

	assert.Len(t, options.Genres, 2)
	assert.Len(t, options.MovieTheaters, 1)
}

func TestHomeSplitsNowShowingAndUpcoming(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	downtown := f.seedTheater(t, "Downtown", 1, 1)

	_, showingID, err := f.service.Create(ctx, MovieInput{
		Title:            "Showing",
		ReleaseDate:      time.Now().UTC().Add(-30 * 24 * time.Hour),
		MovieTheatersIds: []uint{downtown},
	}, nil)
	require.NoError(t, err)

	_, upcomingID, err := f.service.Create(ctx, MovieInput{
		Title:       "Upcoming",
		ReleaseDate: time.Now().UTC().Add(30 * 24 * time.Hour),
	}, nil)
	require.NoError(t, err)

	page, err := f.service.Home(ctx)
	require.NoError(t, err)

	require.Len(t, page.NowShowing, 1)
	assert.Equal(t, showingID, page.NowShowing[0].ID)
	require.Len(t, page.UpcomingMovies, 1)
	assert.Equal(t, upcomingID, page.UpcomingMovies[0].ID)
}

func TestFilterCombinesPredicates(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	action := f.seedGenre(t, "Action")

	_, matchID, err := f.service.Create(ctx, MovieInput{
		Title:       "Everest Rising",
		ReleaseDate: time.Now().UTC().Add(30 * 24 * time.Hour),
		GenresIds:   []uint{action},
	}, nil)
	require.NoError(t, err)

	_, _, err = f.service.Create(ctx, MovieInput{
		Title:       "Everest Falling",
		ReleaseDate: time.Now().UTC().Add(-30 * 24 * time.Hour),
		GenresIds:   []uint{action},
	}, nil)
	require.NoError(t, err)

	_, _, err = f.service.Create(ctx, MovieInput{
		Title:       "Other",
		ReleaseDate: time.Now().UTC().Add(30 * 24 * time.Hour),
	}, nil)
	require.NoError(t, err)

	movies, total, err := f.service.Filter(ctx, repository.MovieFilter{
		Title:           "everest",
		GenreID:         action,
		IsUpcomingMovie: true,
	}, crud.NewPagination(1, 10))
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, movies, 1)
	assert.Equal(t, matchID, movies[0].ID)
}

func TestFilterCountsBeyondThePage(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _, err := f.service.Create(ctx, MovieInput{Title: fmt.Sprintf("Movie %d", i)}, nil)
		require.NoError(t, err)
	}

	movies, total, err := f.service.Filter(ctx, repository.MovieFilter{Title: "movie"}, crud.NewPagination(1, 2))
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	assert.Len(t, movies, 2)
}

func TestUpdateCarriesStoredPosterForward(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	created, id, err := f.service.Create(ctx, MovieInput{Title: "Everest"}, &multipart.FileHeader{Filename: "poster.jpg"})
	require.NoError(t, err)
	require.NotEmpty(t, created.Poster)

	require.NoError(t, f.service.Update(ctx, id, MovieInput{Title: "Everest II"}, nil))

	details, err := f.service.Detail(ctx, id, "")
	require.NoError(t, err)
	assert.Equal(t, created.Poster, details.Poster)
	assert.Equal(t, "Everest II", details.Title)
}

func TestUpdateWithNewPosterReplacesStoredFile(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	created, id, err := f.service.Create(ctx, MovieInput{Title: "Everest"}, &multipart.FileHeader{Filename: "poster.jpg"})
	require.NoError(t, err)

	require.NoError(t, f.service.Update(ctx, id, MovieInput{Title: "Everest"}, &multipart.FileHeader{Filename: "new.jpg"}))

	details, err := f.service.Detail(ctx, id, "")
	require.NoError(t, err)
	assert.NotEqual(t, created.Poster, details.Poster)
	assert.Contains(t, f.storage.deleted, created.Poster)
}

func TestDeleteRemovesJoinRowsRatingsAndPoster(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	action := f.seedGenre(t, "Action")
	created, id, err := f.service.Create(ctx, MovieInput{
		Title:     "Everest",
		GenresIds: []uint{action},
	}, &multipart.FileHeader{Filename: "poster.jpg"})
	require.NoError(t, err)
	require.NoError(t, f.service.Rate(ctx, id, "user-1", 5))

	require.NoError(t, f.service.Delete(ctx, id))

	_, err = f.service.Detail(ctx, id, "")
	assert.ErrorIs(t, err, crud.ErrNotFound)
	assert.Contains(t, f.storage.deleted, created.Poster)

	var joinRows int64
	require.NoError(t, f.db.Model(&models.MovieGenre{}).Where("movie_id = ?", id).Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	var ratingRows int64
	require.NoError(t, f.db.Model(&models.Rating{}).Where("movie_id = ?", id).Count(&ratingRows).Error)
	assert.Zero(t, ratingRows)
}

func TestMutationsEvictMoviesTagAndRatingDoesNot(t *testing.T) {
	f := newMovieFixture(t)
	ctx := context.Background()

	_, id, err := f.service.Create(ctx, MovieInput{Title: "Everest"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.evictions["movies"])

	require.NoError(t, f.service.Rate(ctx, id, "user-1", 3))
	assert.Equal(t, 1, f.cache.evictions["movies"])

	require.NoError(t, f.service.Update(ctx, id, MovieInput{Title: "Everest"}, nil))
	assert.Equal(t, 2, f.cache.evictions["movies"])

	require.NoError(t, f.service.Delete(ctx, id))
	assert.Equal(t, 3, f.cache.evictions["movies"])
}
