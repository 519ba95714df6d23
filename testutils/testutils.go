package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupTestEnvironment sets the environment variables tests rely on.
// Values already present in the environment win, so CI can point tests at
// its own MongoDB.
func SetupTestEnvironment() {
	godotenv.Load() // best effort, tests run without a .env too

	os.Setenv("GO_ENV", "test")

	setIfUnset("JWT_SECRET", "test-secret-key")
	setIfUnset("TEST_MONGO_URI", "mongodb://localhost:27017")
	setIfUnset("MONGO_DB", "notes-app-test")
}

func setIfUnset(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

// SetupTestDB connects to the test MongoDB and returns the client plus a
// cleanup function that drops the test database. Tests that need a real
// database are skipped when none is reachable.
func SetupTestDB(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	if os.Getenv("GO_ENV") != "test" {
		SetupTestEnvironment()
	}

	uri := os.Getenv("TEST_MONGO_URI")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available at %s: %v", uri, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		t.Skipf("MongoDB not available at %s: %v", uri, err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		dbName := os.Getenv("MONGO_DB")
		if dbName != "" {
			if err := client.Database(dbName).Drop(ctx); err != nil {
				t.Logf("Warning: failed to drop test database %s: %v", dbName, err)
			}
		}

		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: failed to disconnect: %v", err)
		}
	}

	return client, cleanup
}

// TestDBName returns the database name tests write into.
func TestDBName() string {
	return os.Getenv("MONGO_DB")
}

// UniqueEmail generates a collision-free email for a test user.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
