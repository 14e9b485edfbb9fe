// file: internals/seeds/references/lookup.go
package references

import (
	"errors"

	"gorm.io/gorm"
)

// NeedsInsert membaca hasil lookup First():
//   - nil                   → baris sudah ada, lewati
//   - gorm.ErrRecordNotFound → belum ada, insert
//   - error lain             → DB bermasalah, jangan insert
func NeedsInsert(lookupErr error) (bool, error) {
	switch {
	case lookupErr == nil:
		return false, nil
	case errors.Is(lookupErr, gorm.ErrRecordNotFound):
		return true, nil
	default:
		return false, lookupErr
	}
}
