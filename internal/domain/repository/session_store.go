package repository

import "context"

// SessionStore is the string-keyed get/set contract backing
// conversation records. Keys follow the "{purpose}_{participantId}"
// scheme (purposes: "messages", "last_product").
//
// Get returns a NOT_FOUND AppError for a missing key and a
// SERVICE_UNAVAILABLE AppError for a transient backend failure; the two
// drive different fallback behavior in the turn pipeline.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists stored keys with the given prefix. Used for the
	// conversation summaries and the full wipe on item replacement.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
