package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/scarr-eth/spree-event-booker/internal/testutil"
)

func TestKVStore_Postgres(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	store := NewKVStore(pool)

	t.Run("missing key", func(t *testing.T) {
		raw, ok, err := store.Get(ctx, "bookings")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if ok || raw != nil {
			t.Fatalf("expected missing key, got ok=%v value=%s", ok, raw)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		want := []byte(`{"alice":["EVT001"]}`)
		if err := store.Put(ctx, "bookings", want); err != nil {
			t.Fatalf("put: %v", err)
		}
		got, ok, err := store.Get(ctx, "bookings")
		if err != nil || !ok {
			t.Fatalf("get: ok=%v err=%v", ok, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		if err := store.Put(ctx, "bookings", []byte(`{"alice":["EVT001","EVT002"]}`)); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		got, _, err := store.Get(ctx, "bookings")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if string(got) != `{"alice":["EVT001","EVT002"]}` {
			t.Fatalf("unexpected value after overwrite: %s", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.Delete(ctx, "bookings"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, ok, _ := store.Get(ctx, "bookings"); ok {
			t.Fatalf("expected key gone after delete")
		}

		// Deleting a missing key is a no-op.
		if err := store.Delete(ctx, "bookings"); err != nil {
			t.Fatalf("second delete: %v", err)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		if err := store.Put(ctx, "events", []byte(`[]`)); err != nil {
			t.Fatalf("put events: %v", err)
		}
		if _, ok, _ := store.Get(ctx, "bookings"); ok {
			t.Fatalf("expected bookings still absent")
		}
	})
}
