package repository

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/dh-kim/ocr-ledger/internal/draft"
)

var draftBucket = []byte("drafts")

// DraftStore keeps every finished draft in a local key-value file, keyed by
// run ID, so reviewers can pull up the audit trail later.
type DraftStore struct {
	db *bolt.DB
}

func OpenDraftStore(path string) (*DraftStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening draft store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(draftBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating draft bucket: %w", err)
	}
	return &DraftStore{db: db}, nil
}

func (s *DraftStore) Close() error { return s.db.Close() }

// Put stores a draft under its run ID, overwriting any previous version.
func (s *DraftStore) Put(d *draft.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftBucket).Put([]byte(d.ID.String()), data)
	})
}

// Get returns the draft stored under id, or nil if absent.
func (s *DraftStore) Get(id uuid.UUID) (*draft.Draft, error) {
	var d *draft.Draft
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(draftBucket).Get([]byte(id.String()))
		if data == nil {
			return nil
		}
		d = &draft.Draft{}
		return json.Unmarshal(data, d)
	})
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}
	return d, nil
}

// List returns all stored drafts in key order.
func (s *DraftStore) List() ([]*draft.Draft, error) {
	var drafts []*draft.Draft
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(draftBucket).ForEach(func(_, v []byte) error {
			d := &draft.Draft{}
			if err := json.Unmarshal(v, d); err != nil {
				return err
			}
			drafts = append(drafts, d)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	return drafts, nil
}
