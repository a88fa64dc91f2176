package storage

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys of the persisted records.
const (
	SessionKey   = "session:current"
	LastOrderKey = "order:last"
)

// CartKey returns the durable key of a user's cart record.
func CartKey(userID int) string {
	return "cart:" + strconv.Itoa(userID)
}

// Record mirrors one durable key of the client's storage: a key and a
// JSON-encoded value.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Store is the durable key→JSON store backing carts, the active session and
// the last order summary. It lives in a single embedded sqlite file so state
// survives restarts without any server-side service.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the store at path and migrates the records table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Put marshals v and upserts it under key.
func (s *Store) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	rec := Record{Key: key, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

// Get loads the record under key into out. A missing key reports (false, nil).
// A record that no longer parses is deleted and treated as missing, so a
// corrupt record can never crash a caller.
func (s *Store) Get(key string, out any) (bool, error) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		log.Printf("⚠️ Discarding corrupt record %q: %v", key, err)
		if delErr := s.Delete(key); delErr != nil {
			log.Printf("❌ Failed to delete corrupt record %q: %v", key, delErr)
		}
		return false, nil
	}
	return true, nil
}

// Delete removes the record under key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}
