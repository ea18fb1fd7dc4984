package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/marketdesk/internal/common"
)

func TestDashboardViewProfile(t *testing.T) {
	input := "1\n5\n"
	app, out := newTestApp(t, input)
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "=== YOUR PROFILE ===")
	assert.Contains(t, out.String(), "First Name: Alice")
	assert.Contains(t, out.String(), "Email: alice@example.com")
	assert.NotContains(t, out.String(), "Secret123")
	assert.Contains(t, out.String(), "Logging out...")
}

func TestDashboardViewProfileSellerFields(t *testing.T) {
	input := "1\n5\n"
	app, out := newTestApp(t, input)
	mustRegister(t, app.sellers, sellerInput("bob@example.com"))

	err := app.dashboard(context.Background(), app.sellers, "bob@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Occupation: Carpenter")
	assert.Contains(t, out.String(), "Social Number: 123-45-6789")
}

func TestDashboardUpdateProfile(t *testing.T) {
	// new phone number, every other field kept
	input := "2\n\n\n5559990000\n\n\n5\n"
	app, out := newTestApp(t, input)
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Profile updated successfully!")

	profile, err := app.buyers.ViewProfile(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "5559990000", profile.PhoneNumber)
	assert.Equal(t, "Alice", profile.FirstName)
}

func TestDashboardUpdateProfileNoChanges(t *testing.T) {
	input := "2\n\n\n\n\n\n5\n"
	app, out := newTestApp(t, input)
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No changes made.")
}

func TestDashboardChangePassword(t *testing.T) {
	// keep the email, set a new password
	input := "3\n\n5\n"
	app, out := newTestApp(t, input, "Secret123", "Changed456", "Changed456")
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Password updated successfully!")

	_, err = app.buyers.Login(context.Background(), "alice@example.com", []byte("Changed456"))
	require.NoError(t, err)
	_, err = app.buyers.Login(context.Background(), "alice@example.com", []byte("Secret123"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestDashboardChangePasswordWrongCurrent(t *testing.T) {
	input := "3\n\n5\n"
	app, out := newTestApp(t, input, "WrongPass1", "Changed456", "Changed456")
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Incorrect current password.")

	_, err = app.buyers.Login(context.Background(), "alice@example.com", []byte("Secret123"))
	require.NoError(t, err)
}

func TestDashboardChangePasswordWithNewEmail(t *testing.T) {
	// later menu iterations must operate on the new email
	input := "3\nalice.new@example.com\n1\n5\n"
	app, out := newTestApp(t, input, "Secret123", "Changed456", "Changed456")
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Password and email updated successfully!")
	assert.Contains(t, out.String(), "Email: alice.new@example.com")

	_, err = app.buyers.Login(context.Background(), "alice.new@example.com", []byte("Changed456"))
	require.NoError(t, err)
}

func TestDashboardChangeEmailBuyer(t *testing.T) {
	input := "4\nalice.new@example.com\n5\n"
	app, out := newTestApp(t, input, "Secret123")
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Email updated successfully!")

	_, err = app.buyers.Login(context.Background(), "alice.new@example.com", []byte("Secret123"))
	require.NoError(t, err)
}

func TestDashboardChangeEmailSellerSocialNumber(t *testing.T) {
	t.Run("correct social number", func(t *testing.T) {
		input := "4\n123-45-6789\nbob.new@example.com\n5\n"
		app, out := newTestApp(t, input, "Secret123")
		mustRegister(t, app.sellers, sellerInput("bob@example.com"))

		err := app.dashboard(context.Background(), app.sellers, "bob@example.com")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Email updated successfully!")
	})

	t.Run("wrong social number", func(t *testing.T) {
		input := "4\n000-00-0000\nbob.new@example.com\n5\n"
		app, out := newTestApp(t, input, "Secret123")
		mustRegister(t, app.sellers, sellerInput("bob@example.com"))

		err := app.dashboard(context.Background(), app.sellers, "bob@example.com")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Incorrect password or social security number. Email change aborted.")

		_, err = app.sellers.ViewProfile(context.Background(), "bob@example.com")
		require.NoError(t, err)
	})
}

func TestDashboardChangeEmailDuplicate(t *testing.T) {
	input := "4\ncarol@example.com\n5\n"
	app, out := newTestApp(t, input, "Secret123")
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))
	mustRegister(t, app.buyers, buyerInput("carol@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "This email is already registered.")
}

func TestDashboardExitProgram(t *testing.T) {
	input := "6\n"
	app, out := newTestApp(t, input)
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.ErrorIs(t, err, errQuit)
	assert.Contains(t, out.String(), "Exiting program...")
}

func TestDashboardInvalidChoice(t *testing.T) {
	input := "9\n5\n"
	app, out := newTestApp(t, input)
	mustRegister(t, app.buyers, buyerInput("alice@example.com"))

	err := app.dashboard(context.Background(), app.buyers, "alice@example.com")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid choice. Please try again.")
}
