package ratings

import (
	"context"
	"errors"
	"fmt"

	"ecoport-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface declares persistence operations for ratings.
type RepositoryInterface interface {
	Insert(ctx context.Context, rating *models.Rating) error
	FindByPickupID(ctx context.Context, pickupID string) (*models.Rating, error)
}

// Repository implements RepositoryInterface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a rating repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Insert stores a new rating. The unique index on pickup_id turns a
// duplicate write into models.ErrConflict, closing the check-then-insert
// race between concurrent raters.
func (r *Repository) Insert(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (id, pickup_id, rating, feedback, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		rating.ID, rating.PickupID, rating.Rating, rating.Feedback, rating.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("repository.Insert: %w: %s", models.ErrUnavailable, err)
	}
	return nil
}

// FindByPickupID retrieves the rating for a pickup, if one exists.
func (r *Repository) FindByPickupID(ctx context.Context, pickupID string) (*models.Rating, error) {
	query := `
		SELECT id, pickup_id, rating, feedback, created_at
		FROM ratings WHERE pickup_id = $1`
	var rating models.Rating
	err := r.db.QueryRow(ctx, query, pickupID).Scan(
		&rating.ID, &rating.PickupID, &rating.Rating, &rating.Feedback, &rating.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByPickupID: %w: %s", models.ErrUnavailable, err)
	}
	return &rating, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
