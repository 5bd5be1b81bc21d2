package server

import (
	"context"
	"errors"
	"testing"

	"github.com/wildminds/animalquiz/internal/database"
	"github.com/wildminds/animalquiz/internal/migrations"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestStoreLoadEmpty(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, []byte(`{"coins":42}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"coins":42}` {
		t.Errorf("data = %s", got)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, []byte(`{"coins":1}`)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save(ctx, []byte(`{"coins":2}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"coins":2}` {
		t.Errorf("data = %s, want the latest blob", got)
	}
}
