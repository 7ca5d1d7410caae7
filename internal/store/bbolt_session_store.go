package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"

	"stagehand/internal/types"
)

var (
	bucketSession = []byte("session")
	keySession    = []byte("state")
)

// BboltSessionStore keeps session state in a single-bucket bolt database.
// Useful when several stagehand commands share one session file and the
// atomic-rename JSON store is not enough.
type BboltSessionStore struct {
	db *bolt.DB
}

func NewBboltSessionStore(path string) (*BboltSessionStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("session db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BboltSessionStore{db: db}, nil
}

func (s *BboltSessionStore) Load(ctx context.Context) (*types.SessionState, error) {
	state := &types.SessionState{}
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return nil
		}
		raw := bucket.Get(keySession)
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, state)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *BboltSessionStore) Save(ctx context.Context, state *types.SessionState) error {
	if state == nil {
		return errors.New("state is required")
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketSession)
		if err != nil {
			return err
		}
		return bucket.Put(keySession, raw)
	})
}

func (s *BboltSessionStore) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(keySession)
	})
}

func (s *BboltSessionStore) Close() error {
	return s.db.Close()
}
