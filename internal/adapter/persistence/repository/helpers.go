package repository

import (
	"errors"
	"strings"
	"time"

	"quickgigs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// translateWriteError maps driver uniqueness violations to ErrDuplicateKey.
// TranslateError covers postgres and sqlite; the message checks catch drivers
// opened without it.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return interfaces.ErrDuplicateKey
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return interfaces.ErrDuplicateKey
	}
	return err
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
