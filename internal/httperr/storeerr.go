package httperr

import (
	"errors"

	"gorm.io/gorm"
)

// Store-level constraint violations, surfaced through gorm's error
// translation (TranslateError must be enabled on the session). These are the
// backstop for races the pre-checks cannot close.

func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
