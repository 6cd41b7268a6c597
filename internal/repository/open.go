package repository

import (
	"fmt"
	"io"

	"github.com/alexanderramin/aula/internal/config"
	"github.com/alexanderramin/aula/internal/db"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenRecordStore builds the store selected by cfg. The returned Closer
// releases the database handle for the sqlite store.
func OpenRecordStore(cfg config.Config) (RecordStore, io.Closer, error) {
	switch cfg.Store {
	case config.StoreJSON:
		return NewJSONRecordStore(cfg.RecordPath), nopCloser{}, nil
	case config.StoreSQLite:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteRecordStore(database), database, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
