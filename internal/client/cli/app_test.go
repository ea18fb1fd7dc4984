package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/marketdesk/internal/client/config"
	"github.com/dmitrijs2005/marketdesk/internal/client/session"
	"github.com/dmitrijs2005/marketdesk/internal/logging"
	"github.com/dmitrijs2005/marketdesk/internal/models"
	"github.com/dmitrijs2005/marketdesk/internal/repositories/accounts"
	"github.com/dmitrijs2005/marketdesk/internal/services"
)

// newTestApp wires an App over temp stores, with line input scripted from
// input and password prompts answered from passwords in order.
func newTestApp(t *testing.T, input string, passwords ...string) (*App, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		BuyerStorePath:  filepath.Join(dir, "buyers.csv"),
		SellerStorePath: filepath.Join(dir, "sellers.csv"),
		SessionDBPath:   filepath.Join(dir, "state.db"),
		SessionSecret:   "secretKey",
		SessionTTL:      time.Hour,
	}

	db, err := session.InitDatabase(context.Background(), cfg.SessionDBPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	out := &bytes.Buffer{}
	app := &App{
		config:  cfg,
		buyers:  services.NewAccountService(accounts.NewCSVRepository(cfg.BuyerStorePath, models.KindBuyer), log),
		sellers: services.NewAccountService(accounts.NewCSVRepository(cfg.SellerStorePath, models.KindSeller), log),
		session: session.NewService(db, []byte(cfg.SessionSecret), cfg.SessionTTL),
		log:     log,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}

	scriptPasswords(t, passwords)
	return app, out
}

// scriptPasswords replaces the password seam with a queue. Prompts past
// the end of the queue fail with io.EOF.
func scriptPasswords(t *testing.T, passwords []string) {
	t.Helper()

	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	i := 0
	getPassword = func(w io.Writer, prompt string) ([]byte, error) {
		if i >= len(passwords) {
			return nil, io.EOF
		}
		pw := []byte(passwords[i])
		i++
		return pw, nil
	}
}

// mustRegister seeds an account directly through the service layer.
func mustRegister(t *testing.T, svc *services.AccountService, in services.RegisterInput) {
	t.Helper()
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
}

func buyerInput(email string) services.RegisterInput {
	return services.RegisterInput{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       email,
		PhoneNumber: "5551234567",
		DateOfBirth: "01/01/1990",
		City:        "Riga",
		Password:    []byte("Secret123"),
	}
}

func sellerInput(email string) services.RegisterInput {
	in := buyerInput(email)
	in.FirstName = "Bob"
	in.Occupation = "Carpenter"
	in.SocialNumber = "123-45-6789"
	return in
}
