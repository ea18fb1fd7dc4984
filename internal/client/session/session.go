// Package session persists the CLI login session between runs. On a
// successful login a signed token is stored in the local sqlite state
// database; a later run with a still-valid token resumes the dashboard
// without asking for the password again.
package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/marketdesk/internal/auth"
	"github.com/dmitrijs2005/marketdesk/internal/common"
	"github.com/dmitrijs2005/marketdesk/internal/dbx"
	"github.com/dmitrijs2005/marketdesk/internal/models"
)

const (
	keyToken = "session_token"
	keyEmail = "session_email"
)

// Service issues, stores and verifies session tokens.
type Service struct {
	db     *sql.DB
	meta   metadataRepo
	secret []byte
	ttl    time.Duration
}

func NewService(db *sql.DB, secret []byte, ttl time.Duration) *Service {
	return &Service{db: db, secret: secret, ttl: ttl}
}

// Save issues a token for the given account and stores it together with
// the email, in one transaction.
func (s *Service) Save(ctx context.Context, email string, kind models.Kind) error {
	token, err := auth.GenerateToken(email, string(kind), s.secret, s.ttl)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.meta.Set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return s.meta.Set(ctx, tx, keyEmail, []byte(email))
	})
}

// Resume verifies the stored token and returns the account it belongs to.
// It fails with common.ErrorNotFound when no session is stored and with
// common.ErrInvalidToken when the token is expired or does not verify.
func (s *Service) Resume(ctx context.Context) (string, models.Kind, error) {
	token, err := s.meta.Get(ctx, s.db, keyToken)
	if err != nil {
		return "", "", err
	}
	if token == nil {
		return "", "", common.ErrorNotFound
	}

	email, kind, err := auth.ParseToken(string(token), s.secret)
	if err != nil {
		return "", "", err
	}
	return email, models.Kind(kind), nil
}

// Clear removes the stored session, if any.
func (s *Service) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.meta.Delete(ctx, tx, keyToken); err != nil {
			return err
		}
		return s.meta.Delete(ctx, tx, keyEmail)
	})
}
