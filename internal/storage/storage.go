// Package storage provides the document store boundary. No merge logic
// lives here.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/TodayWantLook/Crawler/internal/config"
	"github.com/TodayWantLook/Crawler/internal/domain"
)

// Store is the capability the reconciliation engine persists through.
// FindByTitle and FindByWebtoonID return (nil, nil) when no document
// matches. UpdateByWebtoonID replaces the document's full field set.
type Store interface {
	FindByTitle(ctx context.Context, typ, title string) (*domain.Media, error)
	FindByWebtoonID(ctx context.Context, id string) (*domain.Media, error)
	Insert(ctx context.Context, doc *domain.Media) error
	UpdateByWebtoonID(ctx context.Context, id string, doc *domain.Media) error
	Close(ctx context.Context) error
}

// NewStore creates the configured storage backend.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch strings.TrimSpace(strings.ToLower(cfg.StorageType)) {
	case "", "mongo":
		return newMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	case "bbolt":
		if strings.TrimSpace(cfg.BBoltPath) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(cfg.BBoltPath)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.StorageType)
	}
}
