package store

import (
	"fmt"
	"strings"
	"time"

	"fragdoc/internal/domain"
	"fragdoc/internal/port"
	"go.etcd.io/bbolt"
)

var _ port.FragmentReader = (*BoltStore)(nil)

var (
	bucketFragments = []byte("fragments")
	bucketMeta      = []byte("meta")
)

// keySep joins path and name in a bolt key. It sorts below every byte a path
// can hold, so bolt's byte order is the (path, name) order of the in-memory
// store.
const keySep = "\x00"

func encodeKey(key domain.FragmentKey) []byte {
	return []byte(key.Path + keySep + key.Name)
}

func decodeKey(k []byte) domain.FragmentKey {
	path, name, _ := strings.Cut(string(k), keySep)
	return domain.FragmentKey{Path: path, Name: name}
}

// BoltStore holds a snapshot of a fragment store. Snapshots are written by
// the dump command for inspection; rendering never reads them.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketFragments, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// WriteSnapshot replaces the stored fragments with the contents of fragments
// and records where they came from.
func (s *BoltStore) WriteSnapshot(root string, fragments port.FragmentReader, configHash string) error {
	keys := fragments.Keys()
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketFragments); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket(bucketFragments)
		if err != nil {
			return err
		}

		for _, key := range keys {
			body, _ := fragments.Get(key)
			if err := b.Put(encodeKey(key), []byte(body)); err != nil {
				return fmt.Errorf("failed to store fragment %s: %w", key, err)
			}
		}

		return putSchemaInfo(tx, &SchemaInfo{
			Version:    CurrentSchemaVersion,
			ConfigHash: configHash,
			Root:       root,
			Fragments:  len(keys),
			CreatedAt:  time.Now().UTC(),
		})
	})
}

// Get returns a stored fragment body.
func (s *BoltStore) Get(key domain.FragmentKey) (string, bool) {
	var (
		body  string
		found bool
	)
	_ = s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFragments).Get(encodeKey(key))
		if data != nil {
			body, found = string(data), true
		}
		return nil
	})
	return body, found
}

// Keys returns every stored key ordered by path, then name.
func (s *BoltStore) Keys() []domain.FragmentKey {
	var keys []domain.FragmentKey
	_ = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFragments).ForEach(func(k, _ []byte) error {
			keys = append(keys, decodeKey(k))
			return nil
		})
	})
	return keys
}

func (s *BoltStore) Len() int {
	n := 0
	_ = s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketFragments).Stats().KeyN
		return nil
	})
	return n
}
