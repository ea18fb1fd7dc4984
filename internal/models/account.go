// Package models defines the account records persisted in the CSV stores.
package models

import "fmt"

// Kind distinguishes the two user classes, each with its own record store.
type Kind string

const (
	KindBuyer  Kind = "buyer"
	KindSeller Kind = "seller"
)

// Store headers. The slice order is the on-disk column order and is fixed
// for the lifetime of a store.
var (
	buyerHeader = []string{
		"first_name", "last_name", "email", "phone_number",
		"date_of_birth", "city", "password",
	}
	sellerHeader = []string{
		"first_name", "last_name", "email", "phone_number",
		"date_of_birth", "city", "password", "occupation", "social_number",
	}
)

// Header returns the store header for the given kind. The returned slice
// must not be modified.
func Header(kind Kind) []string {
	if kind == KindSeller {
		return sellerHeader
	}
	return buyerHeader
}

// Account is one registered user, uniquely keyed by Email within its store.
// PasswordDigest always holds the hex-encoded hash digest, never plaintext.
// Occupation and SocialNumber are set for sellers only.
type Account struct {
	Kind           Kind
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	DateOfBirth    string // DD/MM/YYYY, as entered
	City           string
	PasswordDigest string
	Occupation     string
	SocialNumber   string
}

// ToRow returns the CSV row for the account, in Header(a.Kind) order.
func (a *Account) ToRow() []string {
	row := []string{
		a.FirstName, a.LastName, a.Email, a.PhoneNumber,
		a.DateOfBirth, a.City, a.PasswordDigest,
	}
	if a.Kind == KindSeller {
		row = append(row, a.Occupation, a.SocialNumber)
	}
	return row
}

// FromRow builds an Account of the given kind from a CSV row.
func FromRow(kind Kind, row []string) (*Account, error) {
	if len(row) != len(Header(kind)) {
		return nil, fmt.Errorf("%s row has %d fields, want %d", kind, len(row), len(Header(kind)))
	}

	a := &Account{
		Kind:           kind,
		FirstName:      row[0],
		LastName:       row[1],
		Email:          row[2],
		PhoneNumber:    row[3],
		DateOfBirth:    row[4],
		City:           row[5],
		PasswordDigest: row[6],
	}
	if kind == KindSeller {
		a.Occupation = row[7]
		a.SocialNumber = row[8]
	}
	return a, nil
}

// Profile is the account view handed to the presentation layer. It carries
// no password material in any form.
type Profile struct {
	Kind         Kind
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	DateOfBirth  string
	City         string
	Occupation   string
	SocialNumber string
}

// Profile returns a password-free copy of the account.
func (a *Account) Profile() *Profile {
	return &Profile{
		Kind:         a.Kind,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		DateOfBirth:  a.DateOfBirth,
		City:         a.City,
		Occupation:   a.Occupation,
		SocialNumber: a.SocialNumber,
	}
}
