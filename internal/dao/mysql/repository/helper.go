package repository

import (
	"errors"
	"strings"

	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError maps a gorm error onto an errorx code:
//   - ErrRecordNotFound -> CodeNotFound
//   - duplicate key     -> CodeConflict
//   - everything else   -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	if isDuplicateKeyError(err) {
		return errorx.Wrap(err, errorx.CodeConflict, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf is wrapDBError with a formatted message.
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	if isDuplicateKeyError(err) {
		return errorx.Wrapf(err, errorx.CodeConflict, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// isDuplicateKeyError recognizes unique-index violations across drivers.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
