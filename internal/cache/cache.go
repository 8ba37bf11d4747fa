// Package cache fournit la persistance locale clé/valeur utilisée à la place
// du store distant pour les données qui n'y vont volontairement pas
// (transcripts de chat, entrées de progression, objectifs). Les clés sont de
// la forme <kind>_<userId>. La croissance n'est pas bornée.
package cache

import (
	"encoding/json"
	"fmt"

	"github.com/Amank-07/FitTracker/internal/utils"
	"github.com/dgraph-io/badger/v4"
)

// Kinds de données cachées
const (
	KindChatHistory = "chat_history"
	KindProgress    = "progress"
	KindGoals       = "goals"
)

type Store struct {
	db *badger.DB
}

// Open ouvre (ou crée) le cache sur disque
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("could not open cache: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory ouvre un cache volatile, utilisé par les tests
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("could not open in-memory cache: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Key clé namespacée <kind>_<userId>
func Key(kind, userID string) []byte {
	return []byte(kind + "_" + userID)
}

// Save sérialise la valeur et l'écrit sous la clé <kind>_<userId>
func (s *Store) Save(kind, userID string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode cache value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(kind, userID), payload)
	})
}

// Load lit la valeur sous la clé et la désérialise dans dest. Une entrée
// absente ou corrompue laisse dest sur sa valeur par défaut: l'appelant ne
// voit jamais d'erreur pour ces deux cas.
func (s *Store) Load(kind, userID string, dest interface{}) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(kind, userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})

	if err != nil && err != badger.ErrKeyNotFound {
		utils.LogError("cache: could not load %s_%s: %v", kind, userID, err)
	}
}

// Clear supprime l'entrée sous la clé
func (s *Store) Clear(kind, userID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(Key(kind, userID))
	})
}
