package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hailam/chessmoves/internal/board"
)

// Key prefixes
const (
	boardPrefix = "board/"
	movesPrefix = "moves/"
)

// MoveCacheTTL is how long a cached move list survives.
const MoveCacheTTL = 7 * 24 * time.Hour

// ErrBoardNotFound is returned when no snapshot is stored under a name.
var ErrBoardNotFound = errors.New("board not found")

// Snapshot is a stored board placement.
type Snapshot struct {
	Name      string    `json:"name"`
	Placement string    `json:"placement"`
	SavedAt   time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}

	log.Debug().Str("dir", dir).Msg("storage opened")
	return &Storage{db: db}, nil
}

// OpenInMemory opens a database that lives only for the life of the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBoard stores the placement of g under name. An empty name is replaced
// by a random id. Returns the name used.
func (s *Storage) SaveBoard(name string, g *board.Grid) (string, error) {
	if name == "" {
		name = uuid.NewString()
	}
	if strings.Contains(name, "/") {
		return "", fmt.Errorf("invalid board name %q", name)
	}

	data, err := json.Marshal(Snapshot{
		Name:      name,
		Placement: g.Placement(),
		SavedAt:   time.Now(),
	})
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(boardPrefix+name), data)
	})
	if err != nil {
		return "", fmt.Errorf("save board %s: %w", name, err)
	}
	return name, nil
}

// LoadSnapshot returns the stored snapshot for name.
func (s *Storage) LoadSnapshot(name string) (*Snapshot, error) {
	var snap Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(boardPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBoardNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", name, err)
	}

	return &snap, nil
}

// LoadBoard returns the board stored under name.
func (s *Storage) LoadBoard(name string) (*board.Grid, error) {
	snap, err := s.LoadSnapshot(name)
	if err != nil {
		return nil, err
	}
	g, err := board.ParsePlacement(snap.Placement)
	if err != nil {
		return nil, fmt.Errorf("decode board %s: %w", name, err)
	}
	return g, nil
}

// ListBoards returns the names of all stored boards in key order.
func (s *Storage) ListBoards() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(boardPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, boardPrefix))
		}
		return nil
	})

	return names, err
}

// DeleteBoard removes the board stored under name.
func (s *Storage) DeleteBoard(name string) error {
	key := []byte(boardPrefix + name)
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBoardNotFound
		}
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("delete board %s: %w", name, err)
	}
	return nil
}

// CacheKey hashes the placement of g together with origin.
func CacheKey(g *board.Grid, origin board.Position) uint64 {
	d := xxhash.New()
	d.WriteString(g.Placement())
	d.WriteString("@")
	d.WriteString(origin.String())
	return d.Sum64()
}

func movesKey(key uint64) []byte {
	return []byte(movesPrefix + strconv.FormatUint(key, 16))
}

// PutMoves caches the move list for key. Entries expire after MoveCacheTTL.
func (s *Storage) PutMoves(key uint64, moves []board.Move) error {
	encoded := make([]string, len(moves))
	for i, m := range moves {
		encoded[i] = m.String()
	}

	data, err := json.Marshal(encoded)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(movesKey(key), data).WithTTL(MoveCacheTTL))
	})
}

// GetMoves returns the cached move list for key. The bool is false on a miss.
func (s *Storage) GetMoves(key uint64) ([]board.Move, bool, error) {
	var encoded []string
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(movesKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &encoded)
		})
	})
	if err != nil || !found {
		return nil, false, err
	}

	moves := make([]board.Move, 0, len(encoded))
	for _, s := range encoded {
		m, err := board.ParseMove(s)
		if err != nil {
			return nil, false, fmt.Errorf("decode cached move %q: %w", s, err)
		}
		moves = append(moves, m)
	}
	return moves, true, nil
}
