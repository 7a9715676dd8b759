package dataset

import (
	"errors"
	"fmt"
)

// MaxRows caps the size of an ingested dataset.
const MaxRows = 50000

var (
	ErrEmptyDataset = errors.New("dataset cannot be empty")
	ErrTooManyRows  = fmt.Errorf("dataset exceeds maximum of %d rows", MaxRows)
)

// Validate checks an ingested row set before it becomes a dataset. Shape
// consistency across rows is not enforced; the first row defines the columns
// and later replacements are the caller's responsibility.
func Validate(rows []Row) error {
	if len(rows) == 0 {
		return ErrEmptyDataset
	}
	if len(rows) > MaxRows {
		return ErrTooManyRows
	}
	return nil
}
