// Package store owns the authoritative domain state. All mutation goes
// through named commands; each command applies a pure workflow transition
// under one mutex, persists the whole state as a single blob, then swaps the
// in-memory state. The mutex is what makes the single-writer assumption of
// the command set explicit on a multi-threaded runtime.
package store

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/config"
	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// StateKey is the single well-known key the whole AppState blob lives under.
const StateKey = "khakhra-business-state-v1"

const (
	orderNumberPrefix   = "KH-"
	invoiceNumberPrefix = "INV-"
	sequenceBase        = 24000
)

type Store struct {
	mu     sync.Mutex
	db     *badger.DB
	logger *logrus.Logger

	state      models.AppState
	orderSeq   int
	invoiceSeq int

	// session-scoped, never persisted to the blob
	role models.UserRole
}

// NewStore loads the persisted state (seeding the sample dataset when the
// key is absent) and seeds the number sequences from the maximum numeric
// suffix found in each collection.
func NewStore(db *badger.DB, logger *logrus.Logger) (*Store, error) {
	if db == nil {
		return nil, errors.New("state db is required")
	}
	if logger == nil {
		logger = config.GetLogger()
	}

	s := &Store{db: db, logger: logger}

	state, found, err := loadState(db)
	if err != nil {
		return nil, err
	}
	if !found {
		state = models.DefaultState(time.Now())
	}
	s.state = state
	s.orderSeq = maxSequence(orderNumbers(state), sequenceBase)
	s.invoiceSeq = maxSequence(invoiceNumbers(state), sequenceBase)

	if !found {
		s.persistLocked()
	}
	return s, nil
}

func loadState(db *badger.DB) (models.AppState, bool, error) {
	var state models.AppState
	found := false
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(StateKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &state); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return models.AppState{}, false, err
	}
	return state, found, nil
}

// persistLocked overwrites the blob wholesale. Persistence is fire and
// forget: a failed write is logged and the in-memory transition still
// commits, there is no retry and no acknowledgement. Callers hold s.mu.
func (s *Store) persistLocked() {
	blob, err := json.Marshal(s.state)
	if err != nil {
		config.LogError(s.logger, "store.go", "persistLocked", "Marshal state", nil, err)
		return
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(StateKey), blob)
	})
	if err != nil {
		config.LogError(s.logger, "store.go", "persistLocked", "Set state blob", nil, err)
	}
}

// commitLocked swaps in the next state and persists it. Callers hold s.mu.
func (s *Store) commitLocked(next models.AppState) {
	s.state = next
	s.persistLocked()
}

// State returns a deep copy of the current state. Nothing handed out aliases
// store-owned memory.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Role returns the session role, if one was selected.
func (s *Store) Role() models.UserRole {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SetRole records the session role. It gates which controls a frontend
// renders; the commands themselves do not enforce it.
func (s *Store) SetRole(role models.UserRole) error {
	if role != "" && !role.Valid() {
		return errors.New("invalid user role")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	return nil
}

func orderNumbers(state models.AppState) []string {
	numbers := make([]string, 0, len(state.Orders))
	for _, o := range state.Orders {
		numbers = append(numbers, o.OrderNumber)
	}
	return numbers
}

func invoiceNumbers(state models.AppState) []string {
	numbers := make([]string, 0, len(state.Invoices))
	for _, inv := range state.Invoices {
		numbers = append(numbers, inv.InvoiceNumber)
	}
	return numbers
}

// maxSequence finds the largest numeric suffix among existing document
// numbers, defaulting to base for an empty collection. It runs once at load;
// creations afterwards just increment the counter.
func maxSequence(numbers []string, base int) int {
	max := base
	for _, number := range numbers {
		if n, ok := numericSuffix(number); ok && n > max {
			max = n
		}
	}
	return max
}

func numericSuffix(number string) (int, bool) {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
