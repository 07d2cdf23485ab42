package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"ngoconnect-web/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testMongoCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping: %v", err)
	}

	coll := client.Database("ngoconnect_test").Collection("sessions_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = coll.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return coll
}

func TestMongoStoreRoundTrip(t *testing.T) {
	coll := testMongoCollection(t)
	ctx := context.Background()

	if err := EnsureSessionIndex(ctx, coll); err != nil {
		t.Fatalf("ensure index: %v", err)
	}
	store := NewMongoStore(coll)

	s := &models.Session{
		ID:        uuid.NewString(),
		Token:     "tok",
		UserType:  models.RoleUser,
		UserID:    "u1",
		Flashes:   []models.Flash{{Kind: models.FlashSuccess, Message: "hi"}},
		ExpiresAt: time.Now().Add(time.Minute),
	}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Token != "tok" || got.UserType != models.RoleUser || got.UserID != "u1" || len(got.Flashes) != 1 {
		t.Fatalf("unexpected session %+v", got)
	}

	s.Token = "tok-2"
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if got, _ := store.Get(ctx, s.ID); got == nil || got.Token != "tok-2" {
		t.Fatalf("save must replace the record, got %+v", got)
	}

	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMongoStoreExpiredRecordIsNotFound(t *testing.T) {
	store := NewMongoStore(testMongoCollection(t))
	ctx := context.Background()

	s := &models.Session{ID: uuid.NewString(), Token: "tok", ExpiresAt: time.Now().Add(-time.Second)}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired record must read as missing, got %v", err)
	}
}
