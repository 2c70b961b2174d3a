package librarian

import (
	"context"

	"github.com/google/uuid"
)

// IndexService stores and expires search-index records. Saving is idempotent:
// a record with an existing ObjectID replaces the previous version, so
// re-indexing unchanged content is a no-op apart from the epoch stamp.
type IndexService interface {
	// SaveRecords saves records in a batch. Every record is validated
	// before any is written.
	SaveRecords(ctx context.Context, records []*Record) error

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteByRootURL removes every record belonging to a root URL.
	// Returns the object IDs that were deleted.
	DeleteByRootURL(ctx context.Context, rootURL string) ([]string, error)

	// ExpireRecords removes records of a root URL whose index epoch does
	// not match epoch, i.e. leftovers from earlier indexing runs.
	// Returns the object IDs that were deleted.
	ExpireRecords(ctx context.Context, rootURL, epoch string) ([]string, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ObjectID   *string `json:"objectId"`
	RootURL    *string `json:"rootUrl"`
	IndexEpoch *string `json:"indexEpoch"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// NewIndexEpoch generates a fresh index epoch token for one indexing run.
func NewIndexEpoch() string {
	return uuid.New().String()
}
