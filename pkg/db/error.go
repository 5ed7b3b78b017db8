package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKeyErr reports whether err is a unique-constraint violation.
// Callers map it to domain conflicts such as a taken member email or a
// reused blog slug. gorm only translates the error when the dialector
// supports it, so the driver messages are matched as a fallback: sqlite
// in tests, postgres and mysql in deployments.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	switch {
	case strings.Contains(err.Error(), "UNIQUE constraint failed"): // sqlite
		return true
	case strings.Contains(err.Error(), "duplicate key value violates unique constraint"): // postgres 23505
		return true
	case strings.Contains(err.Error(), "Error 1062"): // mysql
		return true
	}

	return false
}
