package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"poolside/internal/db"
	"poolside/internal/domain"
	"poolside/internal/domain/models"
)

// DefaultListLimit caps ListRecent when the caller passes no limit.
const DefaultListLimit = 20

const reservationColumns = `reservation_id, name, last_name, identification, phone_number, email,
	visit_date, time_slot, visit_type, people, unitary_price, total_price,
	status, rejection_reason, code, created_at, updated_at`

// ReservationRepo is the single point of contact with the reservations
// table. It never retries; transport and constraint failures surface as
// domain.StorageError and retry policy belongs to the caller.
type ReservationRepo struct {
	DB *sql.DB
}

func NewReservationRepo(database *sql.DB) ReservationRepo {
	return ReservationRepo{DB: database}
}

// Create persists exactly one reservation and returns the stored row
// including the server-assigned id and created_at. A duplicate booking
// code trips the unique key on code and comes back as a StorageError
// like any other storage fault.
func (r ReservationRepo) Create(ctx context.Context, rec models.Reservation) (models.Reservation, error) {
	const stmt = `INSERT INTO reservations
		(name, last_name, identification, phone_number, email,
		 visit_date, time_slot, visit_type, people, unitary_price, total_price,
		 status, rejection_reason, code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.DB.ExecContext(ctx, stmt,
		rec.Name,
		rec.LastName,
		rec.Identification,
		rec.PhoneNumber,
		rec.Email,
		rec.VisitDate,
		string(rec.TimeSlot),
		string(rec.VisitType),
		db.NullIntPtr(rec.People),
		db.NullInt64Ptr(rec.UnitaryPrice),
		db.NullInt64Ptr(rec.TotalPrice),
		string(rec.Status),
		db.NullIfEmpty(deref(rec.RejectionReason)),
		rec.Code,
	)
	if err != nil {
		return models.Reservation{}, storageErr("create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Reservation{}, storageErr("create", err)
	}

	saved, err := r.getByID(ctx, id)
	if err != nil {
		return models.Reservation{}, storageErr("create", err)
	}
	return saved, nil
}

// ListRecent returns up to limit reservations, newest first. An empty
// result set is not an error.
func (r ReservationRepo) ListRecent(ctx context.Context, limit int) ([]models.Reservation, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		rec, err := scanReservation(rows)
		if err != nil {
			return nil, storageErr("list", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list", err)
	}
	return out, nil
}

// FindByCode returns at most one reservation; (nil, nil) when no match
// exists. The unique key on code guarantees at most one row.
func (r ReservationRepo) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE code = ? LIMIT 1`, code)

	rec, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("find_by_code", err)
	}
	return &rec, nil
}

// UpdateStatus applies a staff decision. The rejection reason is written
// only for rejected and cleared otherwise, keeping the reason/status
// invariant inside the table itself.
func (r ReservationRepo) UpdateStatus(ctx context.Context, id int64, status models.Status, reason string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE reservations SET status=?, rejection_reason=?, updated_at=NOW() WHERE reservation_id=?`,
		string(status), db.NullIfEmpty(reason), id)
	if err != nil {
		return storageErr("update_status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("update_status", err)
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "reservation"}
	}
	return nil
}

// GetByID loads one reservation by its primary key.
func (r ReservationRepo) GetByID(ctx context.Context, id int64) (models.Reservation, error) {
	rec, err := r.getByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reservation{}, domain.NotFoundError{Resource: "reservation", Err: err}
		}
		return models.Reservation{}, storageErr("get", err)
	}
	return rec, nil
}

func (r ReservationRepo) getByID(ctx context.Context, id int64) (models.Reservation, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE reservation_id = ? LIMIT 1`, id)
	return scanReservation(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (models.Reservation, error) {
	var (
		rec       models.Reservation
		people    sql.NullInt64
		unitary   sql.NullInt64
		total     sql.NullInt64
		reason    sql.NullString
		updatedAt sql.NullTime
		slot      string
		visitType string
		status    string
	)

	if err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.LastName,
		&rec.Identification,
		&rec.PhoneNumber,
		&rec.Email,
		&rec.VisitDate,
		&slot,
		&visitType,
		&people,
		&unitary,
		&total,
		&status,
		&reason,
		&rec.Code,
		&rec.CreatedAt,
		&updatedAt,
	); err != nil {
		return models.Reservation{}, err
	}

	rec.TimeSlot = models.TimeSlot(slot)
	rec.VisitType = models.VisitType(visitType)
	rec.Status = models.Status(status)
	rec.People = db.IntPtr(people)
	rec.UnitaryPrice = db.Int64Ptr(unitary)
	rec.TotalPrice = db.Int64Ptr(total)
	rec.RejectionReason = db.StringPtr(reason)
	if updatedAt.Valid {
		t := updatedAt.Time
		rec.UpdatedAt = &t
	}
	return rec, nil
}

func storageErr(op string, err error) error {
	var my *mysql.MySQLError
	if errors.As(err, &my) && my.Number == 1062 {
		// Unique key violation; for create this is almost always the
		// booking code.
		return domain.StorageError{Op: op, Err: domain.ConflictError{Resource: "reservation", Msg: "duplicate value", Err: err}}
	}
	return domain.StorageError{Op: op, Err: err}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
