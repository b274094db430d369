package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds SQL without touching a database and records every
// generated query, so locking behavior can be asserted from the statements.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}),
		&gorm.Config{
			DryRun:               true,
			DisableAutomaticPing: true,
		},
	)
	if err != nil {
		t.Fatalf("opening dry-run db: %v", err)
	}

	queries := &[]string{}
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*queries = append(*queries, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("registering capture callback: %v", err)
	}

	return db, queries
}

// Inside the booking transaction every validation read must take a row
// lock: the client and barber rows serialize concurrent bookings for the
// same client or barber, the appointment row serializes cancel, and the
// conflict scan locks the rows it found.
func TestBookingReadsLockRowsInsideTransaction(t *testing.T) {
	db, queries := dryRunDB(t)
	tx := &AppointmentGormRepository{db: db, inTx: true}

	ctx := context.Background()
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	if _, err := tx.GetClient(ctx, 1); err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if _, err := tx.GetBarber(ctx, 2); err != nil {
		t.Fatalf("GetBarber: %v", err)
	}
	if _, err := tx.BarberHasOverlap(ctx, 2, start, end); err != nil {
		t.Fatalf("BarberHasOverlap: %v", err)
	}
	if _, err := tx.ClientHasOverlap(ctx, 1, start, end); err != nil {
		t.Fatalf("ClientHasOverlap: %v", err)
	}
	if _, err := tx.GetAppointment(ctx, 7); err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}

	if len(*queries) != 5 {
		t.Fatalf("captured %d queries, want 5", len(*queries))
	}
	for _, q := range *queries {
		if !strings.Contains(q, "FOR UPDATE") {
			t.Fatalf("query missing row lock: %s", q)
		}
	}
}

func TestReadsOutsideTransactionDoNotLock(t *testing.T) {
	db, queries := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	ctx := context.Background()
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	if _, err := repo.GetBarber(ctx, 2); err != nil {
		t.Fatalf("GetBarber: %v", err)
	}
	if _, err := repo.BarberHasOverlap(ctx, 2, start, start.Add(time.Hour)); err != nil {
		t.Fatalf("BarberHasOverlap: %v", err)
	}

	if len(*queries) == 0 {
		t.Fatal("expected captured queries")
	}
	for _, q := range *queries {
		if strings.Contains(q, "FOR UPDATE") {
			t.Fatalf("unexpected row lock outside a transaction: %s", q)
		}
	}
}

func TestListAppointmentsEmptyIsNotNil(t *testing.T) {
	db, _ := dryRunDB(t)
	repo := NewAppointmentGormRepository(db)

	apps, err := repo.ListAppointments(context.Background())
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if apps == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(apps) != 0 {
		t.Fatalf("expected no appointments, got %d", len(apps))
	}

	forDay, err := repo.ListAppointmentsForDay(
		context.Background(),
		2,
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("ListAppointmentsForDay: %v", err)
	}
	if forDay == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
