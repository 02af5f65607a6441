package crud

import (
	"context"
	"errors"
	"io"
	"testing"

	"cinema-catalog/internal/config"
	"cinema-catalog/internal/database"
	"cinema-catalog/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type genreView struct {
	ID   uint
	Name string
}

// tagRecorder counts evictions per tag and can be forced to fail.
type tagRecorder struct {
	evictions map[string]int
	fail      bool
}

func (r *tagRecorder) EvictByTag(_ context.Context, tag string) error {
	if r.fail {
		return errors.New("cache unavailable")
	}
	if r.evictions == nil {
		r.evictions = map[string]int{}
	}
	r.evictions[tag]++
	return nil
}

type fileRecorder struct {
	deleted []string
}

func (r *fileRecorder) DeleteFile(_ context.Context, url, _ string) error {
	r.deleted = append(r.deleted, url)
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newGenreResource(t *testing.T) (*Resource[models.Genre, string, genreView], *tagRecorder) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Genre{}))

	cache := &tagRecorder{}
	resource := &Resource[models.Genre, string, genreView]{
		DB:       database.Wrap(db, config.DatabaseConfig{}),
		Cache:    cache,
		CacheTag: "genres",
		OrderBy:  "name",
		MapNew:   func(name string) models.Genre { return models.Genre{Name: name} },
		Project: func(g *models.Genre) genreView {
			return genreView{ID: g.ID, Name: g.Name}
		},
		GetID:  func(g *models.Genre) uint { return g.ID },
		SetID:  func(g *models.Genre, id uint) { g.ID = id },
		Logger: testLogger(),
	}
	return resource, cache
}

func seedGenres(t *testing.T, r *Resource[models.Genre, string, genreView], names ...string) {
	t.Helper()
	for _, name := range names {
		_, _, err := r.Create(context.Background(), name)
		require.NoError(t, err)
	}
}

func TestListOrdersByConfiguredColumn(t *testing.T) {
	resource, _ := newGenreResource(t)
	seedGenres(t, resource, "Thriller", "Action", "Drama")

	views, total, err := resource.List(context.Background(), NewPagination(1, 10))
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Action", "Drama", "Thriller"}, names)
}

func TestListCountsAllRecordsBeyondThePage(t *testing.T) {
	resource, _ := newGenreResource(t)
	seedGenres(t, resource, "A", "B", "C", "D", "E")

	views, total, err := resource.List(context.Background(), NewPagination(2, 2))
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, views, 2)
	assert.Equal(t, "C", views[0].Name)
	assert.Equal(t, "D", views[1].Name)
}

func TestListAllSkipsPagination(t *testing.T) {
	resource, _ := newGenreResource(t)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	seedGenres(t, resource, names...)

	views, err := resource.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, len(names))
}

func TestGetReturnsNotFoundForMissingID(t *testing.T) {
	resource, _ := newGenreResource(t)

	_, err := resource.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAssignsIDAndEvictsTagOnce(t *testing.T) {
	resource, cache := newGenreResource(t)

	view, id, err := resource.Create(context.Background(), "Comedy")
	require.NoError(t, err)

	assert.NotZero(t, id)
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "Comedy", view.Name)
	assert.Equal(t, 1, cache.evictions["genres"])

	got, err := resource.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, view, got)
}

func TestUpdateReplacesRecordAndEvicts(t *testing.T) {
	resource, cache := newGenreResource(t)
	_, id, err := resource.Create(context.Background(), "Comdy")
	require.NoError(t, err)

	require.NoError(t, resource.Update(context.Background(), id, "Comedy"))
	assert.Equal(t, 2, cache.evictions["genres"])

	got, err := resource.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Comedy", got.Name)
}

func TestUpdateMissingRecordLeavesCacheUntouched(t *testing.T) {
	resource, cache := newGenreResource(t)

	err := resource.Update(context.Background(), 99, "Comedy")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, cache.evictions["genres"])
}

func TestDeleteRemovesRecordAndEvicts(t *testing.T) {
	resource, cache := newGenreResource(t)
	_, id, err := resource.Create(context.Background(), "Comedy")
	require.NoError(t, err)

	require.NoError(t, resource.Delete(context.Background(), id))
	assert.Equal(t, 2, cache.evictions["genres"])

	_, err = resource.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingRecordLeavesCacheUntouched(t *testing.T) {
	resource, cache := newGenreResource(t)

	err := resource.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, cache.evictions["genres"])
}

func TestDeleteDropsStoredFileAfterRow(t *testing.T) {
	resource, _ := newGenreResource(t)
	files := &fileRecorder{}
	resource.Files = files
	resource.Container = "genres"
	resource.FileURL = func(g *models.Genre) string {
		if g.Name == "WithFile" {
			return "http://storage/genres/a.jpg"
		}
		return ""
	}

	_, withFile, err := resource.Create(context.Background(), "WithFile")
	require.NoError(t, err)
	_, plain, err := resource.Create(context.Background(), "Plain")
	require.NoError(t, err)

	require.NoError(t, resource.Delete(context.Background(), withFile))
	require.NoError(t, resource.Delete(context.Background(), plain))

	assert.Equal(t, []string{"http://storage/genres/a.jpg"}, files.deleted)
}

func TestMutationsSucceedWhenEvictionFails(t *testing.T) {
	resource, cache := newGenreResource(t)
	cache.fail = true

	_, id, err := resource.Create(context.Background(), "Comedy")
	require.NoError(t, err)

	got, err := resource.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Comedy", got.Name)
}
