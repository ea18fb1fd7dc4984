package cli

import (
	"context"

	"github.com/dmitrijs2005/marketdesk/internal/models"
	"github.com/dmitrijs2005/marketdesk/internal/services"
)

// serviceIface is the account-operation surface the dialogues need.
// *services.AccountService satisfies it; tests can provide a stub.
type serviceIface interface {
	Kind() models.Kind
	EmailRegistered(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, in services.RegisterInput) (*models.Profile, error)
	Login(ctx context.Context, email string, password []byte) (*models.Profile, error)
	ViewProfile(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, email string, changes services.ProfileChanges) (bool, error)
	ChangePassword(ctx context.Context, email string, current, newPassword []byte, newEmail string) error
	ChangeEmail(ctx context.Context, email string, currentPassword []byte, socialNumber, newEmail string) error
}

var _ serviceIface = (*services.AccountService)(nil)
