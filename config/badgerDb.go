package config

import (
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
)

var (
	stateDb *badger.DB
)

func GetStateDB() *badger.DB {
	return stateDb
}

// OpenStateDB opens the embedded state database and sets the global handle.
// Call from main() before constructing the store. Data dir resolution:
// explicit argument > DATA_DIR env > ./data.
func OpenStateDB(dataDir string) (*badger.DB, error) {
	if dataDir == "" {
		dataDir = os.Getenv("DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "data"
	}

	opts := badger.DefaultOptions(filepath.Join(dataDir, "state"))
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	stateDb = db
	return db, nil
}

func CloseStateDB() error {
	if stateDb == nil {
		return nil
	}
	err := stateDb.Close()
	stateDb = nil
	return err
}
