package accounts

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/marketdesk/internal/common"
	"github.com/dmitrijs2005/marketdesk/internal/filex"
	"github.com/dmitrijs2005/marketdesk/internal/models"
)

// CSVRepository stores records of one kind in a comma-delimited file:
// one header row followed by one row per record. Values containing the
// delimiter are quoted by encoding/csv.
type CSVRepository struct {
	path string
	kind models.Kind
}

func NewCSVRepository(path string, kind models.Kind) *CSVRepository {
	return &CSVRepository{path: path, kind: kind}
}

func (r *CSVRepository) Kind() models.Kind {
	return r.kind
}

// LoadAll reads every record in store order. A missing, empty or corrupt
// file reads as zero records, never as an error.
func (r *CSVRepository) LoadAll(ctx context.Context) ([]*models.Account, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil || len(rows) < 2 {
		return nil, nil
	}

	// rows[0] is the header
	records := make([]*models.Account, 0, len(rows)-1)
	for _, row := range rows[1:] {
		account, err := models.FromRow(r.kind, row)
		if err != nil {
			return nil, nil
		}
		records = append(records, account)
	}
	return records, nil
}

func (r *CSVRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, account := range records {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *CSVRepository) IsEmailRegistered(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Append durably writes one record, creating the store with its header
// first if it does not exist yet.
func (r *CSVRepository) Append(ctx context.Context, account *models.Account) error {
	if _, err := filex.EnsureParentDir(r.path); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreWrite, err)
	}

	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		err := filex.WriteFileAtomic(r.path, func(f *os.File) error {
			w := csv.NewWriter(f)
			if err := w.Write(models.Header(r.kind)); err != nil {
				return err
			}
			w.Flush()
			return w.Error()
		})
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrorStoreWrite, err)
		}
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0o660)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreWrite, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(account.ToRow()); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreWrite, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreWrite, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreWrite, err)
	}
	return nil
}

// RewriteAll replaces the store contents with the given records, in order,
// under the original header. The swap goes through a temp file and a
// rename, so a failure mid-write leaves the previous contents intact.
func (r *CSVRepository) RewriteAll(ctx context.Context, records []*models.Account) error {
	err := filex.WriteFileAtomic(r.path, func(f *os.File) error {
		w := csv.NewWriter(f)
		if err := w.Write(models.Header(r.kind)); err != nil {
			return err
		}
		for _, account := range records {
			if err := w.Write(account.ToRow()); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreWrite, err)
	}
	return nil
}
