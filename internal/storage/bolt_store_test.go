package storage

import (
	"context"
	"testing"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

func openTestBolt(t *testing.T) Store {
	t.Helper()
	store, err := openBolt(t.TempDir() + "/media.db")
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	t.Cleanup(func() { store.Close(context.Background()) })
	return store
}

func TestBoltStoreInsertAndFind(t *testing.T) {
	store := openTestBolt(t)
	ctx := context.Background()

	doc := &domain.Media{
		Type:      domain.TypeWebtoon,
		WebtoonID: "w1",
		Title:     "Alpha",
		URL:       map[string]string{"kakao": "https://x/alpha"},
		Services:  []string{"kakao"},
	}
	if err := store.Insert(ctx, doc); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := store.FindByTitle(ctx, domain.TypeWebtoon, "Alpha")
	if err != nil {
		t.Fatalf("FindByTitle: %v", err)
	}
	if got == nil || got.WebtoonID != "w1" || got.URL["kakao"] != "https://x/alpha" {
		t.Fatalf("FindByTitle returned %#v", got)
	}

	got, err = store.FindByWebtoonID(ctx, "w1")
	if err != nil {
		t.Fatalf("FindByWebtoonID: %v", err)
	}
	if got == nil || got.Title != "Alpha" {
		t.Fatalf("FindByWebtoonID returned %#v", got)
	}
}

func TestBoltStoreMissingDocumentIsNilNil(t *testing.T) {
	store := openTestBolt(t)
	ctx := context.Background()

	got, err := store.FindByTitle(ctx, domain.TypeWebtoon, "Nothing")
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %#v, %v", got, err)
	}
	got, err = store.FindByWebtoonID(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %#v, %v", got, err)
	}
}

func TestBoltStoreUpdateReplacesDocument(t *testing.T) {
	store := openTestBolt(t)
	ctx := context.Background()

	doc := &domain.Media{Type: domain.TypeWebtoon, WebtoonID: "w1", Title: "Alpha"}
	if err := store.Insert(ctx, doc); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	doc.Summary = "A hero rises."
	doc.Genre = []string{"action"}
	if err := store.UpdateByWebtoonID(ctx, "w1", doc); err != nil {
		t.Fatalf("UpdateByWebtoonID: %v", err)
	}

	got, err := store.FindByTitle(ctx, domain.TypeWebtoon, "Alpha")
	if err != nil {
		t.Fatalf("FindByTitle: %v", err)
	}
	if got.Summary != "A hero rises." || len(got.Genre) != 1 {
		t.Fatalf("update not persisted: %#v", got)
	}
}
