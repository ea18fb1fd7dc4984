// Package cli implements the interactive menus of marketdesk: the main
// menu, the registration and login dialogues, and the account dashboard.
//
// All validation and persistence live in the service layer; this package
// only prompts, re-prompts and prints. Typing "exit" at any prompt aborts
// the current dialogue without side effects.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/marketdesk/internal/client/config"
	"github.com/dmitrijs2005/marketdesk/internal/client/session"
	"github.com/dmitrijs2005/marketdesk/internal/logging"
	"github.com/dmitrijs2005/marketdesk/internal/models"
	"github.com/dmitrijs2005/marketdesk/internal/repositories/accounts"
	"github.com/dmitrijs2005/marketdesk/internal/services"
)

// abortWord cancels the current dialogue when entered at any prompt.
const abortWord = "exit"

var (
	// errAborted is the internal signal for a user-cancelled dialogue.
	// It never escapes the CLI layer.
	errAborted = errors.New("aborted")

	// errQuit unwinds from a nested menu to terminate the program.
	errQuit = errors.New("quit")
)

type App struct {
	config  *config.Config
	buyers  *services.AccountService
	sellers *services.AccountService
	session *session.Service
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		buyers:  services.NewAccountService(accounts.NewCSVRepository(cfg.BuyerStorePath, models.KindBuyer), log),
		sellers: services.NewAccountService(accounts.NewCSVRepository(cfg.SellerStorePath, models.KindSeller), log),
		session: session.NewService(db, []byte(cfg.SessionSecret), cfg.SessionTTL),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) serviceFor(kind models.Kind) *services.AccountService {
	if kind == models.KindSeller {
		return a.sellers
	}
	return a.buyers
}

// prompt reads one line, trimming whitespace. Entering the abort word
// fails with errAborted.
func (a *App) prompt(label string) (string, error) {
	v, err := getSimpleText(a.reader, label, a.out)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(v, abortWord) {
		return "", errAborted
	}
	return v, nil
}

// promptPassword reads a password without echo. Entering the abort word
// fails with errAborted.
func (a *App) promptPassword(label string) ([]byte, error) {
	pw, err := getPassword(a.out, label)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(string(pw), abortWord) {
		return nil, errAborted
	}
	return pw, nil
}
