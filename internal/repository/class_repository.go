package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
)

// ClassRepository handles class offering data access.
type ClassRepository struct {
	db DBTX
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(db DBTX) *ClassRepository {
	return &ClassRepository{db: db}
}

const offeringColumns = `id, title, instructor_name, instructor_email, image_url, price,
	available_seats, status, feedback, created_at, updated_at`

func scanOffering(row pgx.Row, o *model.ClassOffering) error {
	return row.Scan(&o.ID, &o.Title, &o.InstructorName, &o.InstructorEmail, &o.ImageURL,
		&o.Price, &o.AvailableSeats, &o.Status, &o.Feedback, &o.CreatedAt, &o.UpdatedAt)
}

// Create inserts a new offering. New offerings always start as pending.
func (r *ClassRepository) Create(ctx context.Context, o *model.ClassOffering) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO class_offerings (title, instructor_name, instructor_email, image_url, price, available_seats)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, status, created_at, updated_at`,
		o.Title, o.InstructorName, o.InstructorEmail, o.ImageURL, o.Price, o.AvailableSeats,
	).Scan(&o.ID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
}

// List retrieves all offerings, newest first.
func (r *ClassRepository) List(ctx context.Context) ([]model.ClassOffering, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+offeringColumns+` FROM class_offerings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offerings []model.ClassOffering
	for rows.Next() {
		var o model.ClassOffering
		if err := scanOffering(rows, &o); err != nil {
			return nil, err
		}
		offerings = append(offerings, o)
	}
	return offerings, rows.Err()
}

// GetByID retrieves one offering. Returns pgx.ErrNoRows if absent.
func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassOffering, error) {
	o := &model.ClassOffering{}
	err := scanOffering(r.db.QueryRow(ctx,
		`SELECT `+offeringColumns+` FROM class_offerings WHERE id = $1`, id), o)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// SetStatus updates the review status of an offering.
func (r *ClassRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.OfferingStatus) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE class_offerings SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SetFeedback attaches admin feedback to an offering.
func (r *ClassRepository) SetFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE class_offerings SET feedback = $1, updated_at = now() WHERE id = $2`,
		feedback, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Upsert replaces the mutable fields of an offering, inserting it when the
// id is not present yet.
func (r *ClassRepository) Upsert(ctx context.Context, o *model.ClassOffering) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO class_offerings (id, title, instructor_name, instructor_email, image_url, price, available_seats)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			instructor_name = EXCLUDED.instructor_name,
			instructor_email = EXCLUDED.instructor_email,
			image_url = EXCLUDED.image_url,
			price = EXCLUDED.price,
			available_seats = EXCLUDED.available_seats,
			updated_at = now()
		 RETURNING status, created_at, updated_at`,
		o.ID, o.Title, o.InstructorName, o.InstructorEmail, o.ImageURL, o.Price, o.AvailableSeats,
	).Scan(&o.Status, &o.CreatedAt, &o.UpdatedAt)
}

// DecrementSeat takes one seat from the offering, but only while seats
// remain. The check and the decrement are a single statement so two
// concurrent payments cannot both pass the check and oversubscribe.
// Returns the remaining seat count and whether a seat was taken.
func (r *ClassRepository) DecrementSeat(ctx context.Context, id uuid.UUID) (int, bool, error) {
	var remaining int
	err := r.db.QueryRow(ctx,
		`UPDATE class_offerings
		 SET available_seats = available_seats - 1, updated_at = now()
		 WHERE id = $1 AND available_seats > 0
		 RETURNING available_seats`, id,
	).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		// No seats left (or no such class), a silent no-op by contract.
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return remaining, true, nil
}
