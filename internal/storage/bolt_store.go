package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

const (
	mediaBucket      = "media"
	titleIndexBucket = "media_titles"
)

// boltStore is the local-file backend: documents keyed by webtoonId, with a
// (type, title) index so title lookups stay one read.
type boltStore struct {
	db *bolt.DB
}

func openBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(mediaBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(titleIndexBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	return &boltStore{db: db}, nil
}

func titleKey(typ, title string) []byte {
	return []byte(typ + "\x00" + title)
}

func (b *boltStore) FindByTitle(_ context.Context, typ, title string) (*domain.Media, error) {
	var doc *domain.Media
	err := b.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket([]byte(titleIndexBucket)).Get(titleKey(typ, title))
		if id == nil {
			return nil
		}
		raw := tx.Bucket([]byte(mediaBucket)).Get(id)
		if raw == nil {
			return nil
		}
		return decodeMedia(raw, &doc)
	})
	return doc, err
}

func (b *boltStore) FindByWebtoonID(_ context.Context, id string) (*domain.Media, error) {
	var doc *domain.Media
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(mediaBucket)).Get([]byte(id))
		if raw == nil {
			return nil
		}
		return decodeMedia(raw, &doc)
	})
	return doc, err
}

func (b *boltStore) Insert(_ context.Context, doc *domain.Media) error {
	return b.put(doc.WebtoonID, doc)
}

func (b *boltStore) UpdateByWebtoonID(_ context.Context, id string, doc *domain.Media) error {
	return b.put(id, doc)
}

func (b *boltStore) put(id string, doc *domain.Media) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode media: %w", err)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(mediaBucket)).Put([]byte(id), raw); err != nil {
			return err
		}
		return tx.Bucket([]byte(titleIndexBucket)).Put(titleKey(doc.Type, doc.Title), []byte(id))
	})
}

func (b *boltStore) Close(_ context.Context) error {
	return b.db.Close()
}

func decodeMedia(raw []byte, out **domain.Media) error {
	var doc domain.Media
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode media: %w", err)
	}
	*out = &doc
	return nil
}
