package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/marketdesk/internal/common"
	"github.com/dmitrijs2005/marketdesk/internal/cryptox"
	"github.com/dmitrijs2005/marketdesk/internal/models"
)

// Run shows the main menu until the user exits. A valid saved session, if
// one exists, goes straight to the dashboard first.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Buyer-Seller Registration System!")

	if err := a.tryResume(ctx); errors.Is(err, errQuit) {
		fmt.Fprintln(a.out, "Goodbye!")
		return
	}

	for {
		fmt.Fprintln(a.out, "\n=== MAIN MENU ===")
		fmt.Fprintln(a.out, "1. Register")
		fmt.Fprintln(a.out, "2. Login")
		fmt.Fprintln(a.out, "3. Exit")

		choice, err := getSimpleText(a.reader, "Enter your choice (1-3)", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			err = a.registrationMenu(ctx)
		case "2":
			err = a.loginMenu(ctx)
		case "3":
			fmt.Fprintln(a.out, "Thank you for using our system. Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}

		if errors.Is(err, errQuit) {
			fmt.Fprintln(a.out, "Goodbye!")
			return
		}
		if err != nil {
			a.log.Error(ctx, "menu action failed", "error", err)
			fmt.Fprintln(a.out, "Something went wrong, please try again.")
		}
	}
}

// tryResume opens the dashboard for a stored, still-valid session. Any
// verification failure silently falls through to the normal menu; a stale
// session (account gone) is cleared.
func (a *App) tryResume(ctx context.Context) error {
	email, kind, err := a.session.Resume(ctx)
	if err != nil {
		return nil
	}

	svc := a.serviceFor(kind)
	if _, err := svc.ViewProfile(ctx, email); err != nil {
		_ = a.session.Clear(ctx)
		return nil
	}

	fmt.Fprintf(a.out, "\nResuming session for %s\n", email)
	return a.dashboard(ctx, svc, email)
}

func (a *App) registrationMenu(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n=== REGISTRATION ===")
	fmt.Fprintln(a.out, "1. Register as Buyer")
	fmt.Fprintln(a.out, "2. Register as Seller")
	fmt.Fprintln(a.out, "3. Exit to Main Menu")

	choice, err := getSimpleText(a.reader, "Enter your choice (1-3)", a.out)
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return a.registerFlow(ctx, a.buyers)
	case "2":
		return a.registerFlow(ctx, a.sellers)
	case "3":
		return nil
	default:
		fmt.Fprintln(a.out, "Invalid option selected. Please choose a number between 1 and 3.")
		return nil
	}
}

func (a *App) loginMenu(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n=== LOGIN ===")
	fmt.Fprintln(a.out, "1. Login as Buyer")
	fmt.Fprintln(a.out, "2. Login as Seller")
	fmt.Fprintln(a.out, "3. Exit to Main Menu")

	choice, err := getSimpleText(a.reader, "Enter your choice (1-3)", a.out)
	if err != nil {
		return err
	}

	var kind models.Kind
	switch choice {
	case "1":
		kind = models.KindBuyer
	case "2":
		kind = models.KindSeller
	case "3":
		return nil
	default:
		fmt.Fprintln(a.out, "Invalid option selected. Please choose a number between 1 and 3.")
		return nil
	}

	return a.loginFlow(ctx, a.serviceFor(kind))
}

// loginFlow asks for credentials once and either opens the dashboard or
// reports a deliberately generic failure.
func (a *App) loginFlow(ctx context.Context, svc serviceIface) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	profile, err := svc.Login(ctx, email, password)
	cryptox.WipeByteArray(password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "\nInvalid email or password.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "\nLogin successful!")

	if err := a.session.Save(ctx, profile.Email, svc.Kind()); err != nil {
		a.log.Warn(ctx, "saving session failed", "error", err)
	}

	return a.dashboard(ctx, svc, profile.Email)
}
