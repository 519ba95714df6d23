package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/apperror"
	"main/model"
	"main/testutils"
)

func TestUserRepoAddAndFind(t *testing.T) {
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	repo := GetUserRepo(client, testutils.TestDBName())
	ctx := context.Background()

	email := testutils.UniqueEmail("repo")
	now := time.Now().UTC()
	id, err := repo.AddUser(ctx, &model.User{
		Name:      "Repo Test",
		Email:     email,
		Password:  "$2a$12$fakehashfakehashfakehashfakehashfakehashfakehashfake",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	if id.IsZero() {
		t.Fatal("AddUser returned zero ID")
	}

	byEmail, err := repo.FindUserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("FindUserByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.ID != id {
		t.Fatalf("Expected user %s by email, got %+v", id.Hex(), byEmail)
	}

	byID, err := repo.FindUserByID(ctx, id)
	if err != nil {
		t.Fatalf("FindUserByID failed: %v", err)
	}
	if byID == nil || byID.Email != email {
		t.Fatalf("Expected user with email %s, got %+v", email, byID)
	}
}

func TestFindUserByEmailMissing(t *testing.T) {
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	repo := GetUserRepo(client, testutils.TestDBName())

	user, err := repo.FindUserByEmail(context.Background(), testutils.UniqueEmail("missing"))
	if err != nil {
		t.Fatalf("FindUserByEmail failed: %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil for unknown email, got %+v", user)
	}
}

func TestUniqueEmailIndex(t *testing.T) {
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	db := client.Database(testutils.TestDBName())
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("SetupIndexes failed: %v", err)
	}

	repo := GetUserRepo(client, testutils.TestDBName())
	ctx := context.Background()

	email := testutils.UniqueEmail("dup")
	now := time.Now().UTC()
	user := &model.User{Name: "A", Email: email, Password: "hash", CreatedAt: now, UpdatedAt: now}
	if _, err := repo.AddUser(ctx, user); err != nil {
		t.Fatalf("First AddUser failed: %v", err)
	}

	duplicate := &model.User{Name: "B", Email: email, Password: "hash", CreatedAt: now, UpdatedAt: now}
	_, err := repo.AddUser(ctx, duplicate)
	if !errors.Is(err, apperror.ErrUserExists) {
		t.Errorf("Expected ErrUserExists for duplicate email, got %v", err)
	}
}
