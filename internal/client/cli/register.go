package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketdesk/internal/common"
	"github.com/dmitrijs2005/marketdesk/internal/cryptox"
	"github.com/dmitrijs2005/marketdesk/internal/models"
	"github.com/dmitrijs2005/marketdesk/internal/services"
	"github.com/dmitrijs2005/marketdesk/internal/validation"
)

// registerFlow collects the registration fields one by one. Invalid input
// re-prompts the same field; a duplicate email or an underage applicant
// aborts the whole registration; "exit" cancels at any prompt.
func (a *App) registerFlow(ctx context.Context, svc serviceIface) error {
	fmt.Fprintln(a.out, "\nPlease enter the information asked below (type 'exit' to cancel):")

	in := services.RegisterInput{}

	for {
		email, err := a.prompt("Email")
		if err != nil {
			return a.cancelled(err, "Registration cancelled.")
		}
		if !validation.ValidateEmail(email) {
			fmt.Fprintln(a.out, "Invalid email format. Please try again.")
			continue
		}
		taken, err := svc.EmailRegistered(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			fmt.Fprintln(a.out, "This email is already registered. Please use a different email or log in.")
			return nil
		}
		in.Email = email
		break
	}

	var err error
	if in.FirstName, err = a.prompt("First Name"); err != nil {
		return a.cancelled(err, "Registration cancelled.")
	}
	if in.LastName, err = a.prompt("Last Name"); err != nil {
		return a.cancelled(err, "Registration cancelled.")
	}

	for {
		phone, err := a.prompt("Phone Number")
		if err != nil {
			return a.cancelled(err, "Registration cancelled.")
		}
		if !validation.ValidatePhone(phone) {
			fmt.Fprintln(a.out, "Invalid phone number. Please enter at least 10 digits.")
			continue
		}
		in.PhoneNumber = phone
		break
	}

	for {
		dob, err := a.prompt("Date Of Birth (DD/MM/YYYY)")
		if err != nil {
			return a.cancelled(err, "Registration cancelled.")
		}
		age, err := validation.CalculateAge(dob, time.Now())
		if err != nil {
			fmt.Fprintln(a.out, "Invalid date format. Please use DD/MM/YYYY.")
			continue
		}
		if age < services.MinimumAge {
			fmt.Fprintln(a.out, "You must be at least 18 years old to register.")
			return nil
		}
		in.DateOfBirth = dob
		break
	}

	if in.City, err = a.prompt("City"); err != nil {
		return a.cancelled(err, "Registration cancelled.")
	}

	if svc.Kind() == models.KindSeller {
		if in.Occupation, err = a.prompt("Occupation"); err != nil {
			return a.cancelled(err, "Registration cancelled.")
		}
		if in.SocialNumber, err = a.prompt("Social Security Number"); err != nil {
			return a.cancelled(err, "Registration cancelled.")
		}
	}

	password, err := a.collectNewPassword("Password", "Confirm Password")
	if err != nil {
		return a.cancelled(err, "Registration cancelled.")
	}
	in.Password = password
	defer cryptox.WipeByteArray(password)

	if _, err := svc.Register(ctx, in); err != nil {
		switch {
		case errors.Is(err, common.ErrorDuplicate):
			fmt.Fprintln(a.out, "This email is already registered. Please use a different email or log in.")
			return nil
		case errors.Is(err, common.ErrorUnderage):
			fmt.Fprintln(a.out, "You must be at least 18 years old to register.")
			return nil
		case errors.Is(err, common.ErrorValidation):
			fmt.Fprintln(a.out, err.Error())
			return nil
		default:
			return err
		}
	}

	fmt.Fprintln(a.out, "\nRegistration successful!")
	return nil
}

// collectNewPassword reads a password and its confirmation until the pair
// matches and passes the strength check.
func (a *App) collectNewPassword(label, confirmLabel string) ([]byte, error) {
	for {
		password, err := a.promptPassword(label)
		if err != nil {
			return nil, err
		}
		confirm, err := a.promptPassword(confirmLabel)
		if err != nil {
			cryptox.WipeByteArray(password)
			return nil, err
		}

		match := bytes.Equal(password, confirm)
		cryptox.WipeByteArray(confirm)
		if !match {
			cryptox.WipeByteArray(password)
			fmt.Fprintln(a.out, "Passwords don't match. Try again.")
			continue
		}

		if ok, reason := validation.ValidatePassword(string(password)); !ok {
			cryptox.WipeByteArray(password)
			fmt.Fprintln(a.out, reason)
			continue
		}
		return password, nil
	}
}

// cancelled turns a user abort into a printed message and a nil error;
// any other error passes through.
func (a *App) cancelled(err error, msg string) error {
	if errors.Is(err, errAborted) {
		fmt.Fprintln(a.out, msg)
		return nil
	}
	return err
}
