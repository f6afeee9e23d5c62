package repositories

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"poolside/internal/domain"
	"poolside/internal/domain/models"
)

var reservationCols = []string{
	"reservation_id", "name", "last_name", "identification", "phone_number", "email",
	"visit_date", "time_slot", "visit_type", "people", "unitary_price", "total_price",
	"status", "rejection_reason", "code", "created_at", "updated_at",
}

func sampleRow(id int64, code string, createdAt time.Time) []driver.Value {
	return []driver.Value{
		id, "Ana", "Li", "123456", "3001234567", "ana@x.com",
		"2099-01-01", "morning", "casual", int64(4), int64(4000), int64(16000),
		"pending", nil, code, createdAt, nil,
	}
}

func TestCreateReturnsStoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	createdAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO reservations").
		WillReturnResult(sqlmock.NewResult(42, 1))
	rows := sqlmock.NewRows(reservationCols).AddRow(sampleRow(42, "RES-A1B2C3", createdAt)...)
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE reservation_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	people := 4
	unitary := int64(4000)
	total := int64(16000)
	saved, err := repo.Create(context.Background(), models.Reservation{
		Name:           "Ana",
		LastName:       "Li",
		Identification: "123456",
		PhoneNumber:    "3001234567",
		Email:          "ana@x.com",
		VisitDate:      "2099-01-01",
		TimeSlot:       models.TimeSlotMorning,
		VisitType:      models.VisitCasual,
		People:         &people,
		UnitaryPrice:   &unitary,
		TotalPrice:     &total,
		Status:         models.StatusPending,
		Code:           "RES-A1B2C3",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if saved.ID != 42 {
		t.Fatalf("expected server-assigned id 42, got %d", saved.ID)
	}
	if !saved.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at not populated, got %v", saved.CreatedAt)
	}
	if saved.UpdatedAt != nil {
		t.Fatalf("updated_at must be absent until first update")
	}
	if saved.People == nil || *saved.People != 4 {
		t.Fatalf("people not scanned back: %v", saved.People)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateDuplicateCodeIsStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectExec("INSERT INTO reservations").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'RES-A1B2C3' for key 'uniq_code'"})

	_, err = repo.Create(context.Background(), models.Reservation{Code: "RES-A1B2C3", Status: models.StatusPending})
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if !domain.IsConflict(err) {
		t.Fatalf("duplicate key should wrap a conflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRecentDefaultsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	newer := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows(reservationCols).
		AddRow(sampleRow(2, "RES-BBBBBB", newer)...).
		AddRow(sampleRow(1, "RES-AAAAAA", older)...)
	mock.ExpectQuery("SELECT (.+) FROM reservations ORDER BY created_at DESC LIMIT").
		WithArgs(DefaultListLimit).
		WillReturnRows(rows)

	list, err := repo.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("rows must come back newest first")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRecentEmptyIsNotError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM reservations ORDER BY created_at DESC LIMIT").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(reservationCols))

	list, err := repo.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("empty result must not error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty slice, got %d rows", len(list))
	}
}

func TestFindByCodeAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE code").
		WithArgs("RES-ZZZZZZ").
		WillReturnRows(sqlmock.NewRows(reservationCols))

	rec, err := repo.FindByCode(context.Background(), "RES-ZZZZZZ")
	if err != nil {
		t.Fatalf("absent code must not error: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record, got %+v", rec)
	}
}

func TestFindByCodeRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	createdAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(reservationCols).AddRow(sampleRow(7, "RES-A1B2C3", createdAt)...)
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE code").
		WithArgs("RES-A1B2C3").
		WillReturnRows(rows)

	rec, err := repo.FindByCode(context.Background(), "RES-A1B2C3")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if rec == nil || rec.Code != "RES-A1B2C3" || rec.ID != 7 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Status != models.StatusPending || rec.RejectionReason != nil {
		t.Fatalf("status fields scanned wrong: %+v", rec)
	}
}

func TestUpdateStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectExec("UPDATE reservations SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), 99, models.StatusApproved, "")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusRejectWritesReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := NewReservationRepo(db)

	mock.ExpectExec("UPDATE reservations SET status").
		WithArgs("rejected", "aforo completo", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), 5, models.StatusRejected, "aforo completo"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
