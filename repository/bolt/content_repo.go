package bolt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/repository"
)

const (
	defaultBucket = "site"
	contentKey    = "content"
)

// Repository stores the whole aggregate as a single JSON value under one key
// in one bucket. Every Save overwrites the previous value unconditionally;
// there is no versioning and no partial write.
type Repository struct {
	mu     sync.RWMutex
	db     *bolt.DB
	path   string
	bucket []byte
}

var _ repository.ContentRepository = (*Repository)(nil)

// Open initializes the Bolt file and ensures the content bucket exists.
func Open(path string, bucket string) (*Repository, error) {
	if bucket == "" {
		bucket = defaultBucket
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := openDB(path, bucket)
	if err != nil {
		return nil, err
	}
	return &Repository{
		db:     db,
		path:   path,
		bucket: []byte(bucket),
	}, nil
}

func openDB(path, bucket string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Load reads and decodes the aggregate from the content slot.
func (r *Repository) Load(ctx context.Context) (*domain.SiteContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw []byte
	if err := r.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(r.bucket).Get([]byte(contentKey))
		if value != nil {
			raw = append([]byte(nil), value...)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, domain.ErrContentNotFound
	}

	var content domain.SiteContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, domain.ErrContentCorrupt.Message, err)
	}
	return &content, nil
}

// Save serializes the aggregate and overwrites the content slot.
func (r *Repository) Save(ctx context.Context, content *domain.SiteContent) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if content == nil {
		return domain.ErrInvalidPayload
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(r.bucket).Put([]byte(contentKey), payload)
	})
}

// SlotSize returns the serialized size of the stored aggregate in bytes,
// zero when the slot is empty.
func (r *Repository) SlotSize() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var size int
	err := r.db.View(func(tx *bolt.Tx) error {
		if value := tx.Bucket(r.bucket).Get([]byte(contentKey)); value != nil {
			size = len(value)
		}
		return nil
	})
	return size, err
}

// FileSize returns the size of the Bolt file on disk.
func (r *Repository) FileSize() (int64, error) {
	r.mu.RLock()
	path := r.path
	r.mu.RUnlock()
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Compact rewrites the Bolt file into a fresh one and swaps it in place.
// Full-aggregate commits leave freed pages behind, so the file benefits from
// periodic compaction when large inline assets get replaced.
func (r *Repository) Compact() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return bolt.ErrDatabaseNotOpen
	}

	tmpPath := r.path + ".compact"
	dst, err := bolt.Open(tmpPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return err
	}
	if err := bolt.Compact(dst, r.db, 0); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := r.db.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		// Reopen the original file so the repository stays usable.
		db, openErr := openDB(r.path, string(r.bucket))
		if openErr == nil {
			r.db = db
		}
		return err
	}

	db, err := openDB(r.path, string(r.bucket))
	if err != nil {
		return err
	}
	r.db = db
	return nil
}

// Available reports whether the underlying database answers a read.
func (r *Repository) Available() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return false
	}
	return r.db.View(func(tx *bolt.Tx) error { return nil }) == nil
}

// Close closes the Bolt database.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}
