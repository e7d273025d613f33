package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrStaleVersion is returned when a guarded update finds the row changed underneath it.
var ErrStaleVersion = errors.New("row was modified by another request")

const insertBatchSize = 500

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}
