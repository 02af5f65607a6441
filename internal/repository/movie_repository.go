package repository

import (
	"context"
	"errors"
	"time"

	"cinema-catalog/internal/crud"
	"cinema-catalog/internal/database"
	"cinema-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieFilter holds the combinable movie search predicates. Zero values
// disable the corresponding predicate; set predicates are ANDed together.
type MovieFilter struct {
	Title           string
	GenreID         uint
	IsNowShowing    bool
	IsUpcomingMovie bool
}

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindDetail(ctx context.Context, id uint) (*models.Movie, error)
	FindUpcoming(ctx context.Context, after time.Time, limit int) ([]models.Movie, error)
	FindNowShowing(ctx context.Context, limit int) ([]models.Movie, error)
	Filter(ctx context.Context, filter MovieFilter, p crud.Pagination, now time.Time) ([]models.Movie, int64, error)
	GenresNotIn(ctx context.Context, genreIDs []uint) ([]models.Genre, error)
	TheatersNotIn(ctx context.Context, theaterIDs []uint) ([]models.MovieTheater, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create persists the movie and its decomposed join rows in one
// transaction. Join rows are inserted explicitly so that referenced
// genres, theaters and actors are never touched.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(movie).Error; err != nil {
			return err
		}
		return r.insertJoinRows(tx, movie)
	})
}

// Update applies a full replace: the movie's scalar columns are saved and
// its child collections are swapped wholesale, all in one transaction.
func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteJoinRows(tx, movie.ID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(movie).Error; err != nil {
			return err
		}
		return r.insertJoinRows(tx, movie)
	})
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteJoinRows(tx, id); err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Movie{}, id).Error
	})
}

func (r *movieRepository) insertJoinRows(tx *gorm.DB, movie *models.Movie) error {
	for i := range movie.Genres {
		movie.Genres[i].MovieID = movie.ID
	}
	for i := range movie.Screenings {
		movie.Screenings[i].MovieID = movie.ID
	}
	for i := range movie.Cast {
		movie.Cast[i].MovieID = movie.ID
	}

	if len(movie.Genres) > 0 {
		if err := tx.Omit(clause.Associations).Create(&movie.Genres).Error; err != nil {
			return err
		}
	}
	if len(movie.Screenings) > 0 {
		if err := tx.Omit(clause.Associations).Create(&movie.Screenings).Error; err != nil {
			return err
		}
	}
	if len(movie.Cast) > 0 {
		if err := tx.Omit(clause.Associations).Create(&movie.Cast).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteJoinRows(tx *gorm.DB, movieID uint) error {
	if err := tx.Where("movie_id = ?", movieID).Delete(&models.MovieGenre{}).Error; err != nil {
		return err
	}
	if err := tx.Where("movie_id = ?", movieID).Delete(&models.CinemaScreening{}).Error; err != nil {
		return err
	}
	return tx.Where("movie_id = ?", movieID).Delete(&models.MovieActor{}).Error
}

func (r *movieRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// FindDetail loads the movie together with its joined genres, screening
// theaters and cast. Cast rows come back ordered by their stored display
// order; callers rely on list position.
func (r *movieRepository) FindDetail(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Preload("Genres.Genre").
		Preload("Screenings.MovieTheater").
		Preload("Cast", func(db *gorm.DB) *gorm.DB {
			return db.Order("credits_order ASC")
		}).
		Preload("Cast.Actor").
		First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindUpcoming(ctx context.Context, after time.Time, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("release_date > ?", after).
		Order("release_date ASC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindNowShowing(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM cinema_screenings cs WHERE cs.movie_id = movies.id)").
		Order("release_date ASC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

// Filter applies the set predicates, counts the matching rows before
// pagination and returns one page ordered by title.
func (r *movieRepository) Filter(ctx context.Context, filter MovieFilter, p crud.Pagination, now time.Time) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Title+"%")
	}
	if filter.IsNowShowing {
		query = query.Where("EXISTS (SELECT 1 FROM cinema_screenings cs WHERE cs.movie_id = movies.id)")
	}
	if filter.IsUpcomingMovie {
		query = query.Where("release_date > ?", now)
	}
	if filter.GenreID != 0 {
		query = query.Where("EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = movies.id AND mg.genre_id = ?)", filter.GenreID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movies []models.Movie
	err := query.
		Order("title ASC").
		Offset(p.Offset()).
		Limit(p.Limit()).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) GenresNotIn(ctx context.Context, genreIDs []uint) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("name ASC")
	if len(genreIDs) > 0 {
		query = query.Where("id NOT IN ?", genreIDs)
	}

	var genres []models.Genre
	err := query.Find(&genres).Error
	return genres, err
}

func (r *movieRepository) TheatersNotIn(ctx context.Context, theaterIDs []uint) ([]models.MovieTheater, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Order("name ASC")
	if len(theaterIDs) > 0 {
		query = query.Where("id NOT IN ?", theaterIDs)
	}

	var theaters []models.MovieTheater
	err := query.Find(&theaters).Error
	return theaters, err
}
