package usecase

import (
	"errors"
	"strings"

	"health-monitor-api/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = apperror.NotFound("user not found")
	ErrPatientNotFound     = apperror.NotFound("patient not found")
	ErrVitalNotFound       = apperror.NotFound("vital not found")
	ErrVitalRecordNotFound = apperror.NotFound("vital record not found")
	ErrDailyVitalNotFound  = apperror.NotFound("daily vital not found")
	ErrTipNotFound         = apperror.NotFound("tip not found")
	ErrAlertNotFound       = apperror.NotFound("alert not found")
	ErrAuditLogNotFound    = apperror.NotFound("audit log not found")

	ErrNoUsersFound       = apperror.NotFound("no users found")
	ErrNoVitalsFound      = apperror.NotFound("no vitals found")
	ErrNoDailyVitalsFound = apperror.NotFound("no daily vitals found")
	ErrNoTipsFound        = apperror.NotFound("no tips found")
	ErrNoAlertsFound      = apperror.NotFound("no alerts found")

	ErrEmailAlreadyExists = apperror.Conflict("email already exists")
	ErrNoUpdateFields     = apperror.Validation("at least one field must be provided", nil)

	ErrNoToken      = apperror.Auth("no token")
	ErrUnauthorized = apperror.Auth("unauthorized")
)

const (
	msgInvalidCredentials = "invalid email or password"
	msgInactiveUser       = "account is inactive"
)

func fieldError(field, message string) error {
	return apperror.Validation("validation failed", map[string]string{field: message})
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
