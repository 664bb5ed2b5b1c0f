package repositories

import (
	"errors"
	"fmt"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"booking-backend/domain"
)

const (
	mysqlDuplicateEntry = 1062
	mysqlLockWaitTimout = 1205
	mysqlDeadlock       = 1213
)

var pgConflictCodes = map[string]bool{
	"23505": true, // unique_violation
	"23P01": true, // exclusion_violation
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
}

// isConflict reports whether err means a concurrent writer got there first.
func isConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlLockWaitTimout, mysqlDeadlock:
			return true
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgConflictCodes[pgErr.Code]
	}
	return false
}

// translateBookingSaveError keeps domain conflicts as they are. A driver
// conflict only means the nights are taken when a confirmation was being
// written; any other save gets a retryable conflict.
func translateBookingSaveError(err error, status domain.BookingStatus, id string) error {
	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr
	}
	if isConflict(err) {
		if status == domain.BookingConfirmed {
			return domain.ErrSlotUnavailable
		}
		return domain.ErrConcurrentUpdate
	}
	return fmt.Errorf("failed to save booking %s: %w", id, err)
}
