package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// ErrNotFound is returned when an owner has never saved a selection.
var ErrNotFound = errors.New("selection not found")

const keyPrefix = "selection:"

// Store persists league selections per owner.
type Store interface {
	// Read returns the saved selection of owner, or ErrNotFound.
	Read(ctx context.Context, owner string) ([]string, error)
	// Write replaces the saved selection of owner.
	Write(ctx context.Context, owner string, leagues []string) error
	// Close releases the underlying database.
	Close() error
}

type record struct {
	Leagues []string `json:"leagues"`
}

// BadgerStore implements Store on top of BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// Ensure BadgerStore implements Store.
var _ Store = (*BadgerStore)(nil)

// Open opens (or creates) the badger database described by cfg.
func Open(cfg Config) (*BadgerStore, error) {
	opts := badger.DefaultOptions(cfg.Path).WithLogger(nil)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open selection store: %w", err)
	}
	return NewBadgerStore(db), nil
}

// NewBadgerStore wraps an open badger database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Read returns the saved selection of owner.
func (s *BadgerStore) Read(ctx context.Context, owner string) ([]string, error) {
	var rec record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + owner))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get selection: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}

	return rec.Leagues, nil
}

// Write replaces the saved selection of owner.
func (s *BadgerStore) Write(ctx context.Context, owner string, leagues []string) error {
	data, err := json.Marshal(record{Leagues: leagues})
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyPrefix+owner), data); err != nil {
			return fmt.Errorf("set selection: %w", err)
		}
		return nil
	})
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
