package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/marketdesk/internal/common"
	"github.com/dmitrijs2005/marketdesk/internal/cryptox"
	"github.com/dmitrijs2005/marketdesk/internal/models"
	"github.com/dmitrijs2005/marketdesk/internal/services"
)

// dashboard is the post-login menu. It tracks the current email locally
// because a change-email or change-password operation can re-key the
// account mid-session.
func (a *App) dashboard(ctx context.Context, svc serviceIface, email string) error {
	for {
		fmt.Fprintf(a.out, "\n=== %s DASHBOARD ===\n", kindTitle(svc.Kind()))
		fmt.Fprintln(a.out, "1. View Profile")
		fmt.Fprintln(a.out, "2. Update Profile")
		fmt.Fprintln(a.out, "3. Change Password")
		fmt.Fprintln(a.out, "4. Change Email")
		fmt.Fprintln(a.out, "5. Logout")
		fmt.Fprintln(a.out, "6. Exit Program")

		choice, err := getSimpleText(a.reader, "Enter your choice (1-6)", a.out)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.viewProfile(ctx, svc, email)
		case "2":
			err = a.updateProfile(ctx, svc, email)
		case "3":
			email, err = a.changePassword(ctx, svc, email)
		case "4":
			email, err = a.changeEmail(ctx, svc, email)
		case "5":
			fmt.Fprintln(a.out, "Logging out...")
			if err := a.session.Clear(ctx); err != nil {
				a.log.Warn(ctx, "clearing session failed", "error", err)
			}
			return nil
		case "6":
			fmt.Fprintln(a.out, "Exiting program...")
			return errQuit
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}

		if err != nil {
			return err
		}
	}
}

func kindTitle(kind models.Kind) string {
	if kind == models.KindSeller {
		return "SELLER"
	}
	return "BUYER"
}

func (a *App) viewProfile(ctx context.Context, svc serviceIface, email string) error {
	profile, err := svc.ViewProfile(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Profile not found.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "\n=== YOUR PROFILE ===")
	fmt.Fprintf(a.out, "First Name: %s\n", profile.FirstName)
	fmt.Fprintf(a.out, "Last Name: %s\n", profile.LastName)
	fmt.Fprintf(a.out, "Email: %s\n", profile.Email)
	fmt.Fprintf(a.out, "Phone Number: %s\n", profile.PhoneNumber)
	fmt.Fprintf(a.out, "Date Of Birth: %s\n", profile.DateOfBirth)
	fmt.Fprintf(a.out, "City: %s\n", profile.City)
	if profile.Kind == models.KindSeller {
		fmt.Fprintf(a.out, "Occupation: %s\n", profile.Occupation)
		fmt.Fprintf(a.out, "Social Number: %s\n", profile.SocialNumber)
	}
	return nil
}

// updateProfile offers every mutable field with its current value as the
// default; empty input keeps the current value.
func (a *App) updateProfile(ctx context.Context, svc serviceIface, email string) error {
	profile, err := svc.ViewProfile(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Profile not found.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "\nEnter new information (press Enter to keep current value):")

	changes := services.ProfileChanges{}
	fields := []struct {
		label   string
		current string
		dst     *string
	}{
		{"First Name", profile.FirstName, &changes.FirstName},
		{"Last Name", profile.LastName, &changes.LastName},
		{"Phone Number", profile.PhoneNumber, &changes.PhoneNumber},
		{"Date Of Birth", profile.DateOfBirth, &changes.DateOfBirth},
		{"City", profile.City, &changes.City},
	}
	if profile.Kind == models.KindSeller {
		fields = append(fields,
			struct {
				label   string
				current string
				dst     *string
			}{"Occupation", profile.Occupation, &changes.Occupation},
			struct {
				label   string
				current string
				dst     *string
			}{"Social Number", profile.SocialNumber, &changes.SocialNumber},
		)
	}

	for _, f := range fields {
		v, err := a.prompt(fmt.Sprintf("%s (%s)", f.label, f.current))
		if err != nil {
			return a.cancelled(err, "Update cancelled.")
		}
		*f.dst = v
	}

	updated, err := svc.UpdateProfile(ctx, email, changes)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
		return err
	}

	if updated {
		fmt.Fprintln(a.out, "Profile updated successfully!")
	} else {
		fmt.Fprintln(a.out, "No changes made.")
	}
	return nil
}

// changePassword verifies the current password, optionally changes the
// email at the same time, and sets a new password. It returns the email
// the account is keyed by afterwards.
func (a *App) changePassword(ctx context.Context, svc serviceIface, email string) (string, error) {
	current, err := a.promptPassword("Enter current password (or type 'exit' to cancel)")
	if err != nil {
		return email, a.cancelled(err, "Password change cancelled.")
	}
	defer cryptox.WipeByteArray(current)

	newEmail, err := a.prompt("Enter new email (or press Enter to keep current)")
	if err != nil {
		return email, a.cancelled(err, "Password change cancelled.")
	}

	newPassword, err := a.collectNewPassword("Enter new password (or type 'exit' to cancel)", "Confirm new password")
	if err != nil {
		return email, a.cancelled(err, "Password change cancelled.")
	}
	defer cryptox.WipeByteArray(newPassword)

	if err := svc.ChangePassword(ctx, email, current, newPassword, newEmail); err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			fmt.Fprintln(a.out, "Incorrect current password.")
			return email, nil
		case errors.Is(err, common.ErrorDuplicate):
			fmt.Fprintln(a.out, "This email is already registered. Please use a different email.")
			return email, nil
		case errors.Is(err, common.ErrorValidation):
			fmt.Fprintln(a.out, err.Error())
			return email, nil
		default:
			return email, err
		}
	}

	if newEmail != "" {
		email = newEmail
		a.refreshSession(ctx, svc, email)
		fmt.Fprintln(a.out, "Password and email updated successfully!")
	} else {
		fmt.Fprintln(a.out, "Password updated successfully!")
	}
	return email, nil
}

// changeEmail re-keys the account. Sellers must additionally confirm
// their social security number before the password check.
func (a *App) changeEmail(ctx context.Context, svc serviceIface, email string) (string, error) {
	socialNumber := ""
	if svc.Kind() == models.KindSeller {
		var err error
		socialNumber, err = a.prompt("Enter your social security number (or type 'exit' to cancel)")
		if err != nil {
			return email, a.cancelled(err, "Email change cancelled.")
		}
	}

	current, err := a.promptPassword("Enter current password (or type 'exit' to cancel)")
	if err != nil {
		return email, a.cancelled(err, "Email change cancelled.")
	}
	defer cryptox.WipeByteArray(current)

	newEmail, err := a.prompt("Enter new email (or type 'exit' to cancel)")
	if err != nil {
		return email, a.cancelled(err, "Email change cancelled.")
	}

	if err := svc.ChangeEmail(ctx, email, current, socialNumber, newEmail); err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			fmt.Fprintln(a.out, "Incorrect password or social security number. Email change aborted.")
			return email, nil
		case errors.Is(err, common.ErrorDuplicate):
			fmt.Fprintln(a.out, "This email is already registered. Please use a different email.")
			return email, nil
		case errors.Is(err, common.ErrorValidation):
			fmt.Fprintln(a.out, "Invalid email format. Please try again.")
			return email, nil
		default:
			return email, err
		}
	}

	if newEmail == "" {
		fmt.Fprintln(a.out, "No changes made.")
		return email, nil
	}

	a.refreshSession(ctx, svc, newEmail)
	fmt.Fprintln(a.out, "Email updated successfully!")
	return newEmail, nil
}

// refreshSession re-saves the session under the new email so a later
// resume does not point at a re-keyed record.
func (a *App) refreshSession(ctx context.Context, svc serviceIface, email string) {
	if err := a.session.Save(ctx, email, svc.Kind()); err != nil {
		a.log.Warn(ctx, "refreshing session failed", "error", err)
	}
}
