package repositories

import (
	"errors"
	"fmt"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"booking-backend/domain"
)

func TestTranslateBookingSaveError(t *testing.T) {
	deadlock := fmt.Errorf("commit: %w", &mysql.MySQLError{Number: 1213, Message: "Deadlock found"})
	lockWait := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}
	serialization := &pgconn.PgError{Code: "40001"}
	pgDeadlock := &pgconn.PgError{Code: "40P01"}
	duplicate := fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)

	tests := []struct {
		name   string
		err    error
		status domain.BookingStatus
		want   error
	}{
		{"mysql deadlock on confirm", deadlock, domain.BookingConfirmed, domain.ErrSlotUnavailable},
		{"postgres serialization on confirm", serialization, domain.BookingConfirmed, domain.ErrSlotUnavailable},
		{"mysql deadlock on cancel", deadlock, domain.BookingCancelled, domain.ErrConcurrentUpdate},
		{"mysql lock wait on create", lockWait, domain.BookingPending, domain.ErrConcurrentUpdate},
		{"postgres deadlock on cancel", pgDeadlock, domain.BookingCancelled, domain.ErrConcurrentUpdate},
		{"duplicate key on create", duplicate, domain.BookingPending, domain.ErrConcurrentUpdate},
		{"slot taken inside transaction", domain.ErrSlotUnavailable, domain.BookingConfirmed, domain.ErrSlotUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateBookingSaveError(tt.err, tt.status, "b-1")
			if !errors.Is(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTranslateBookingSaveErrorKeepsDomainConflicts(t *testing.T) {
	transition := domain.NewConflictError("A reserva já está cancelada")

	got := translateBookingSaveError(transition, domain.BookingCancelled, "b-1")
	if got != transition {
		t.Errorf("Expected transition conflict to pass through, got %v", got)
	}
}

func TestTranslateBookingSaveErrorWrapsOthers(t *testing.T) {
	cause := errors.New("connection refused")

	got := translateBookingSaveError(cause, domain.BookingConfirmed, "b-1")
	if !errors.Is(got, cause) {
		t.Errorf("Expected wrapped cause, got %v", got)
	}
	var conflictErr *domain.ConflictError
	if errors.As(got, &conflictErr) {
		t.Errorf("Expected infrastructure error, got conflict %v", got)
	}
}
