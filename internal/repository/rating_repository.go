package repository

import (
	"context"
	"errors"
	"time"

	"cinema-catalog/internal/database"
	"cinema-catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	Average(ctx context.Context, movieID uint) (float64, error)
	UserRate(ctx context.Context, movieID uint, userID string) (int, error)
}

type ratingRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewRatingRepository(db *database.Database) RatingRepository {
	return &ratingRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *ratingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Upsert stores the rate, replacing any earlier rate from the same user
// for the same movie.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(rating).Error
}

// Average returns the mean rate for a movie, 0 when nobody rated it yet.
func (r *ratingRepository) Average(ctx context.Context, movieID uint) (float64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var avg float64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("movie_id = ?", movieID).
		Select("COALESCE(AVG(rate), 0)").
		Scan(&avg).Error
	return avg, err
}

// UserRate returns the given user's stored rate for a movie, 0 if none.
func (r *ratingRepository) UserRate(ctx context.Context, movieID uint, userID string) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rating.Rate, nil
}
