// Package services contains the account service: registration, login and
// profile mutation against a single record store.
//
// Operations take fully-formed input and return typed errors; all
// interactive re-prompting lives in the CLI layer. Every mutating
// operation follows the same protocol: load the full store, change the
// one target record, rewrite the full set in original order. Any failed
// precondition aborts before any write.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketdesk/internal/common"
	"github.com/dmitrijs2005/marketdesk/internal/cryptox"
	"github.com/dmitrijs2005/marketdesk/internal/logging"
	"github.com/dmitrijs2005/marketdesk/internal/models"
	"github.com/dmitrijs2005/marketdesk/internal/repositories/accounts"
	"github.com/dmitrijs2005/marketdesk/internal/validation"
)

// MinimumAge is the youngest age at which registration is allowed.
const MinimumAge = 18

// AccountService runs account operations against one record store.
type AccountService struct {
	repo accounts.Repository
	log  logging.Logger
	now  func() time.Time
}

func NewAccountService(repo accounts.Repository, log logging.Logger) *AccountService {
	return &AccountService{repo: repo, log: log, now: time.Now}
}

// Kind reports the user class of the underlying store.
func (s *AccountService) Kind() models.Kind {
	return s.repo.Kind()
}

// EmailRegistered reports whether email already belongs to a record.
// The CLI uses it to abort registration early, before collecting the
// remaining fields.
func (s *AccountService) EmailRegistered(ctx context.Context, email string) (bool, error) {
	return s.repo.IsEmailRegistered(ctx, email)
}

func validationErr(reason string) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, reason)
}

// RegisterInput carries all fields collected during registration.
// Occupation and SocialNumber are only meaningful for seller stores.
type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	DateOfBirth  string
	City         string
	Occupation   string
	SocialNumber string
	Password     []byte
}

// Register validates the input, hashes the password and appends a new
// record. It fails with common.ErrorDuplicate if the email is taken,
// common.ErrorUnderage if the applicant is younger than MinimumAge, and
// common.ErrorValidation for malformed fields.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.Profile, error) {
	if !validation.ValidateEmail(in.Email) {
		return nil, validationErr("invalid email format")
	}

	taken, err := s.repo.IsEmailRegistered(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.ErrorDuplicate
	}

	if !validation.ValidatePhone(in.PhoneNumber) {
		return nil, validationErr("invalid phone number")
	}

	age, err := validation.CalculateAge(in.DateOfBirth, s.now())
	if err != nil {
		return nil, validationErr("invalid date format, use DD/MM/YYYY")
	}
	if age < MinimumAge {
		return nil, common.ErrorUnderage
	}

	if ok, reason := validation.ValidatePassword(string(in.Password)); !ok {
		return nil, validationErr(reason)
	}

	account := &models.Account{
		Kind:           s.repo.Kind(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		DateOfBirth:    in.DateOfBirth,
		City:           in.City,
		PasswordDigest: cryptox.HashPassword(in.Password),
	}
	if account.Kind == models.KindSeller {
		account.Occupation = in.Occupation
		account.SocialNumber = in.SocialNumber
	}

	if err := s.repo.Append(ctx, account); err != nil {
		s.log.Error(ctx, "appending account failed", "kind", account.Kind, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "account registered", "kind", account.Kind, "email", account.Email)
	return account.Profile(), nil
}

// Login verifies the credentials and returns the password-free profile.
// It deliberately does not distinguish an unknown email from a wrong
// password; both fail with common.ErrorUnauthorized.
func (s *AccountService) Login(ctx context.Context, email string, password []byte) (*models.Profile, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	if !cryptox.VerifyDigest(account.PasswordDigest, password) {
		return nil, common.ErrorUnauthorized
	}

	s.log.Info(ctx, "login successful", "kind", account.Kind, "email", email)
	return account.Profile(), nil
}

// ViewProfile returns the password-free profile for email, or
// common.ErrorNotFound.
func (s *AccountService) ViewProfile(ctx context.Context, email string) (*models.Profile, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return account.Profile(), nil
}

// ProfileChanges holds replacement values for the mutable profile fields.
// An empty string keeps the current value. Email and password cannot be
// changed here; Occupation and SocialNumber apply to seller stores only.
type ProfileChanges struct {
	FirstName    string
	LastName     string
	PhoneNumber  string
	DateOfBirth  string
	City         string
	Occupation   string
	SocialNumber string
}

// UpdateProfile merges the given changes into the record for email and
// rewrites the store, all other records unchanged and in original order.
// It returns false without touching the store when nothing changed.
func (s *AccountService) UpdateProfile(ctx context.Context, email string, changes ProfileChanges) (bool, error) {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return false, err
	}

	target := findByEmail(records, email)
	if target == nil {
		return false, common.ErrorNotFound
	}

	if changes.PhoneNumber != "" && !validation.ValidatePhone(changes.PhoneNumber) {
		return false, validationErr("invalid phone number")
	}
	if changes.DateOfBirth != "" {
		if _, err := validation.CalculateAge(changes.DateOfBirth, s.now()); err != nil {
			return false, validationErr("invalid date format, use DD/MM/YYYY")
		}
	}

	updated := false
	apply := func(dst *string, v string) {
		if v != "" && v != *dst {
			*dst = v
			updated = true
		}
	}
	apply(&target.FirstName, changes.FirstName)
	apply(&target.LastName, changes.LastName)
	apply(&target.PhoneNumber, changes.PhoneNumber)
	apply(&target.DateOfBirth, changes.DateOfBirth)
	apply(&target.City, changes.City)
	if target.Kind == models.KindSeller {
		apply(&target.Occupation, changes.Occupation)
		apply(&target.SocialNumber, changes.SocialNumber)
	}

	if !updated {
		return false, nil
	}

	if err := s.repo.RewriteAll(ctx, records); err != nil {
		s.log.Error(ctx, "profile rewrite failed", "email", email, "error", err)
		return false, err
	}

	s.log.Info(ctx, "profile updated", "kind", target.Kind, "email", target.Email)
	return true, nil
}

// ChangePassword verifies the current password, then replaces the stored
// digest with the digest of newPassword. A non-empty newEmail changes the
// record's email in the same rewrite; it must be well-formed and must not
// collide with a different record's email.
//
// Unlike Login, this operation reports the failing factor: an unknown
// email is common.ErrorNotFound and a wrong current password is
// common.ErrorUnauthorized. The asymmetry is long-standing behavior and
// is kept on purpose.
func (s *AccountService) ChangePassword(ctx context.Context, email string, current, newPassword []byte, newEmail string) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	target := findByEmail(records, email)
	if target == nil {
		return common.ErrorNotFound
	}

	if !cryptox.VerifyDigest(target.PasswordDigest, current) {
		return common.ErrorUnauthorized
	}

	if newEmail != "" {
		if !validation.ValidateEmail(newEmail) {
			return validationErr("invalid email format")
		}
		if other := findByEmail(records, newEmail); other != nil && other != target {
			return common.ErrorDuplicate
		}
		target.Email = newEmail
	}

	if ok, reason := validation.ValidatePassword(string(newPassword)); !ok {
		return validationErr(reason)
	}
	target.PasswordDigest = cryptox.HashPassword(newPassword)

	if err := s.repo.RewriteAll(ctx, records); err != nil {
		s.log.Error(ctx, "password rewrite failed", "email", email, "error", err)
		return err
	}

	s.log.Info(ctx, "password changed", "kind", target.Kind, "email", target.Email)
	return nil
}

// ChangeEmail re-keys the record from email to newEmail after verifying
// the current password. On seller stores the caller must additionally
// supply the record's social number (a weak secondary factor). An empty
// newEmail is a no-op. The new address must be well-formed and not
// already registered.
func (s *AccountService) ChangeEmail(ctx context.Context, email string, currentPassword []byte, socialNumber, newEmail string) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	target := findByEmail(records, email)
	if target == nil {
		return common.ErrorNotFound
	}

	if target.Kind == models.KindSeller && socialNumber != target.SocialNumber {
		return common.ErrorUnauthorized
	}

	if !cryptox.VerifyDigest(target.PasswordDigest, currentPassword) {
		return common.ErrorUnauthorized
	}

	if newEmail == "" {
		return nil
	}
	if !validation.ValidateEmail(newEmail) {
		return validationErr("invalid email format")
	}
	if findByEmail(records, newEmail) != nil {
		return common.ErrorDuplicate
	}

	target.Email = newEmail

	if err := s.repo.RewriteAll(ctx, records); err != nil {
		s.log.Error(ctx, "email rewrite failed", "email", email, "error", err)
		return err
	}

	s.log.Info(ctx, "email changed", "kind", target.Kind, "from", email, "to", newEmail)
	return nil
}

func findByEmail(records []*models.Account, email string) *models.Account {
	for _, account := range records {
		if account.Email == email {
			return account
		}
	}
	return nil
}
