// Package accounts persists account records in per-kind flat stores.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/marketdesk/internal/models"
)

// Repository is a single record store for one user class.
//
// Reads never fail on a missing or unreadable store; it is treated as
// holding zero records. RewriteAll is the only mutation primitive for
// updates and must be all-or-nothing: a failure must not leave the store
// with a header and no matching rows.
type Repository interface {
	// Kind reports which user class this store holds.
	Kind() models.Kind

	// LoadAll returns every record in store order.
	LoadAll(ctx context.Context) ([]*models.Account, error)

	// FindByEmail returns the first record with the given email, or
	// common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// IsEmailRegistered reports whether any record has the given email.
	IsEmailRegistered(ctx context.Context, email string) (bool, error)

	// Append durably adds one record, creating the store with its header
	// first if it does not exist. Uniqueness is the caller's concern.
	Append(ctx context.Context, account *models.Account) error

	// RewriteAll replaces the entire store contents with the given records,
	// keeping the original header.
	RewriteAll(ctx context.Context, records []*models.Account) error
}
