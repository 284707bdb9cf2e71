package drivers

import (
	"context"
	"errors"
	"fmt"

	"ecoport-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface declares persistence operations for driver records.
type RepositoryInterface interface {
	Insert(ctx context.Context, d *models.Driver) error
	FindByID(ctx context.Context, id string) (*models.Driver, error)
	List(ctx context.Context, status *models.DriverStatus) ([]*models.Driver, error)
	UpdateStatus(ctx context.Context, id string, status models.DriverStatus) (*models.Driver, error)
}

// Repository implements RepositoryInterface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a driver repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const driverColumns = `id, name, phone, vehicle_type, vehicle_number, status, current_location, created_at`

func scanDriver(row pgx.Row) (*models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.ID, &d.Name, &d.Phone, &d.VehicleType, &d.VehicleNumber,
		&d.Status, &d.CurrentLocation, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("scan driver: %w: %s", models.ErrUnavailable, err)
	}
	return &d, nil
}

// Insert stores a new driver.
func (r *Repository) Insert(ctx context.Context, d *models.Driver) error {
	query := `
		INSERT INTO drivers (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.Phone, d.VehicleType, d.VehicleNumber,
		d.Status, d.CurrentLocation, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository.Insert: %w: %s", models.ErrUnavailable, err)
	}
	return nil
}

// FindByID fetches a single driver. Returns models.ErrNotFound if absent.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`
	d, err := scanDriver(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return d, nil
}

// List retrieves drivers, optionally filtered by availability status.
func (r *Repository) List(ctx context.Context, status *models.DriverStatus) ([]*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.List: %w: %s", models.ErrUnavailable, err)
	}
	defer rows.Close()

	var out []*models.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.List: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List: %w: %s", models.ErrUnavailable, err)
	}
	return out, nil
}

// UpdateStatus overwrites a driver's availability status.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status models.DriverStatus) (*models.Driver, error) {
	query := `
		UPDATE drivers SET status = $2 WHERE id = $1
		RETURNING ` + driverColumns
	d, err := scanDriver(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.UpdateStatus: %w", err)
	}
	return d, nil
}
