package account_test

import (
	"context"
	"testing"

	"github.com/skillsenselab/seahorse/account"
	"github.com/skillsenselab/seahorse/database"
	"github.com/skillsenselab/seahorse/logger"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.Config{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1, // one connection keeps the in-memory db alive
		MaxIdleConns: 1,
		MaxRetries:   1,
	}, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	runner := database.NewMigrationRunner(db, logger.NewDefault("test"))
	for _, m := range account.Migrations() {
		runner.Add(m)
	}
	if err := runner.Run(); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return db
}

func TestGormStore_CreateAndFind(t *testing.T) {
	store := account.NewStore(newTestDB(t))
	ctx := context.Background()

	user := &account.User{
		Email:        "a@b.com",
		PasswordHash: "$2a$04$fakehash",
		FirstName:    "Jane",
		LastName:     "Doe",
	}
	if err := store.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected id to be assigned on create")
	}

	found, err := store.FindByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil {
		t.Fatal("expected record")
	}
	if found.ID != user.ID || found.FirstName != "Jane" {
		t.Errorf("unexpected record: %+v", found)
	}
}

func TestGormStore_FindAbsent(t *testing.T) {
	store := account.NewStore(newTestDB(t))

	found, err := store.FindByEmail(context.Background(), "ghost@b.com")
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil record, got %+v", found)
	}
}

func TestGormStore_DuplicateEmail(t *testing.T) {
	store := account.NewStore(newTestDB(t))
	ctx := context.Background()

	first := &account.User{Email: "a@b.com", PasswordHash: "h", FirstName: "Jane", LastName: "Doe"}
	if err := store.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := &account.User{Email: "a@b.com", PasswordHash: "h2", FirstName: "John", LastName: "Roe"}
	err := store.Create(ctx, second)
	if err == nil {
		t.Fatal("expected unique-constraint violation")
	}
	if !database.IsDuplicate(err) {
		t.Errorf("expected duplicate-key error, got %v", err)
	}
}

func TestMigrations_Idempotent(t *testing.T) {
	db := newTestDB(t)

	runner := database.NewMigrationRunner(db, logger.NewDefault("test"))
	for _, m := range account.Migrations() {
		runner.Add(m)
	}
	if err := runner.Run(); err != nil {
		t.Fatalf("second run must be a no-op: %v", err)
	}
}
