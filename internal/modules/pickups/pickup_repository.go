package pickups

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecoport-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the persistence contract for pickup requests.
type RepositoryInterface interface {
	Insert(ctx context.Context, p *models.PickupRequest) error
	FindByID(ctx context.Context, id string) (*models.PickupRequest, error)
	List(ctx context.Context, status *models.PickupStatus, limit, offset int) ([]*models.PickupRequest, error)
	// Update persists the merged pickup. The write is guarded by the
	// updated_at stamp read at load time; zero rows affected means a
	// concurrent writer won and the caller gets models.ErrConflict.
	Update(ctx context.Context, p *models.PickupRequest, expectedUpdatedAt time.Time) (*models.PickupRequest, error)
	// AssignDriver atomically re-checks pickup and driver state inside a
	// transaction, links the driver, transitions the pickup to Assigned,
	// and flips the driver to Busy.
	AssignDriver(ctx context.Context, pickupID, driverID string, entry models.StatusHistoryEntry) (*models.PickupRequest, error)
	CountByStatus(ctx context.Context) (*models.Stats, error)
}

// Repository implements RepositoryInterface on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new pickup repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const pickupColumns = `id, latitude, longitude, address, waste_image, waste_type, quantity,
	estimated_cost, actual_cost, distance_km, status, user_contact, notes, driver_id,
	payment_method, payment_status, status_history, price_history, created_at, updated_at`

func scanPickup(row pgx.Row) (*models.PickupRequest, error) {
	var p models.PickupRequest
	err := row.Scan(
		&p.ID,
		&p.Location.Latitude,
		&p.Location.Longitude,
		&p.Location.Address,
		&p.WasteImage,
		&p.WasteType,
		&p.Quantity,
		&p.EstimatedCost,
		&p.ActualCost,
		&p.DistanceKM,
		&p.Status,
		&p.UserContact,
		&p.Notes,
		&p.DriverID,
		&p.PaymentMethod,
		&p.PaymentStatus,
		&p.StatusHistory,
		&p.PriceHistory,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("scan pickup: %w: %s", models.ErrUnavailable, err)
	}
	return &p, nil
}

// Insert stores a freshly created pickup request.
func (r *Repository) Insert(ctx context.Context, p *models.PickupRequest) error {
	query := `
		INSERT INTO pickup_requests (` + pickupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Location.Latitude, p.Location.Longitude, p.Location.Address,
		p.WasteImage, p.WasteType, p.Quantity,
		p.EstimatedCost, p.ActualCost, p.DistanceKM, p.Status,
		p.UserContact, p.Notes, p.DriverID,
		p.PaymentMethod, p.PaymentStatus, p.StatusHistory, p.PriceHistory,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository.Insert: %w: %s", models.ErrUnavailable, err)
	}
	return nil
}

// FindByID retrieves a single pickup request.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.PickupRequest, error) {
	query := `SELECT ` + pickupColumns + ` FROM pickup_requests WHERE id = $1`
	p, err := scanPickup(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return p, nil
}

// List retrieves pickups ordered by creation time descending, optionally
// filtered by status.
func (r *Repository) List(ctx context.Context, status *models.PickupStatus, limit, offset int) ([]*models.PickupRequest, error) {
	query := `SELECT ` + pickupColumns + ` FROM pickup_requests`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.List: %w: %s", models.ErrUnavailable, err)
	}
	defer rows.Close()

	var pickups []*models.PickupRequest
	for rows.Next() {
		p, err := scanPickup(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.List: %w", err)
		}
		pickups = append(pickups, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List: %w: %s", models.ErrUnavailable, err)
	}
	return pickups, nil
}

// Update writes the merged pickup, guarded by the updated_at value the
// service read. A lost race surfaces as models.ErrConflict so the caller
// can re-read and retry; no partial write ever lands.
func (r *Repository) Update(ctx context.Context, p *models.PickupRequest, expectedUpdatedAt time.Time) (*models.PickupRequest, error) {
	query := `
		UPDATE pickup_requests
		SET status = $1, actual_cost = $2, notes = $3, payment_status = $4,
		    status_history = $5, price_history = $6, updated_at = $7
		WHERE id = $8 AND updated_at = $9
		RETURNING ` + pickupColumns

	row := r.db.QueryRow(ctx, query,
		p.Status, p.ActualCost, p.Notes, p.PaymentStatus,
		p.StatusHistory, p.PriceHistory, p.UpdatedAt,
		p.ID, expectedUpdatedAt,
	)
	updated, err := scanPickup(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// The row exists (we just loaded it), so no-rows here means
			// a concurrent writer bumped updated_at first.
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return updated, nil
}

// AssignDriver links a driver to an Approved pickup and marks the driver
// Busy, all inside one transaction. Row locks serialize concurrent assigns
// targeting the same pickup or driver.
func (r *Repository) AssignDriver(ctx context.Context, pickupID, driverID string, entry models.StatusHistoryEntry) (*models.PickupRequest, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.AssignDriver: begin: %w: %s", models.ErrUnavailable, err)
	}
	defer tx.Rollback(ctx)

	var pickupStatus models.PickupStatus
	err = tx.QueryRow(ctx, `SELECT status FROM pickup_requests WHERE id = $1 FOR UPDATE`, pickupID).Scan(&pickupStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository.AssignDriver: pickup: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("repository.AssignDriver: %w: %s", models.ErrUnavailable, err)
	}
	if pickupStatus != models.StatusApproved {
		return nil, fmt.Errorf("%w: can only assign a driver to an Approved pickup (current: %s)",
			models.ErrInvalidState, pickupStatus)
	}

	var driverStatus models.DriverStatus
	err = tx.QueryRow(ctx, `SELECT status FROM drivers WHERE id = $1 FOR UPDATE`, driverID).Scan(&driverStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository.AssignDriver: driver: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("repository.AssignDriver: %w: %s", models.ErrUnavailable, err)
	}
	if driverStatus != models.DriverAvailable {
		return nil, fmt.Errorf("%w: driver status is %s", models.ErrDriverUnavailable, driverStatus)
	}

	query := `
		UPDATE pickup_requests
		SET driver_id = $2,
		    status = $3,
		    status_history = status_history || $4::jsonb,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + pickupColumns

	updated, err := scanPickup(tx.QueryRow(ctx, query, pickupID, driverID, models.StatusAssigned, []models.StatusHistoryEntry{entry}))
	if err != nil {
		return nil, fmt.Errorf("repository.AssignDriver: %w", err)
	}

	cmd, err := tx.Exec(ctx, `UPDATE drivers SET status = $2 WHERE id = $1`, driverID, models.DriverBusy)
	if err != nil {
		return nil, fmt.Errorf("repository.AssignDriver: %w: %s", models.ErrUnavailable, err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("repository.AssignDriver: driver: %w", models.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository.AssignDriver: commit: %w: %s", models.ErrUnavailable, err)
	}
	return updated, nil
}

// CountByStatus returns the dashboard counts grouped by lifecycle status.
func (r *Repository) CountByStatus(ctx context.Context) (*models.Stats, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM pickup_requests GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("repository.CountByStatus: %w: %s", models.ErrUnavailable, err)
	}
	defer rows.Close()

	stats := &models.Stats{}
	for rows.Next() {
		var status models.PickupStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("repository.CountByStatus: %w: %s", models.ErrUnavailable, err)
		}
		switch status {
		case models.StatusPending:
			stats.Pending = count
		case models.StatusApproved:
			stats.Approved = count
		case models.StatusAssigned:
			stats.Assigned = count
		case models.StatusCompleted:
			stats.Completed = count
		}
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.CountByStatus: %w: %s", models.ErrUnavailable, err)
	}
	return stats, nil
}
