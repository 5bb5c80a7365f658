package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/feastbook/backend/internal/models"
	"github.com/feastbook/backend/internal/service"
	"github.com/feastbook/backend/internal/testhelpers"
	"github.com/feastbook/backend/internal/types"
)

func strPtr(s string) *string { return &s }

func TestCreateUserRoundtrip(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &types.CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)

	// The plaintext must never be stored; the hash must verify.
	assert.NotEqual(t, "secret123", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret123")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &types.CreateUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &types.CreateUserRequest{
		Name: "Imposter", Email: "alice@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestCreateUserValidation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &types.CreateUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "short",
	})
	assert.ErrorIs(t, err, service.ErrPasswordTooShort)

	_, err = svc.CreateUser(ctx, &types.CreateUserRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, service.ErrNameRequired)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "failed creations must not persist anything")
}

func TestUpdateUserPartial(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "bob@example.com", "secret123")
	oldHash := user.PasswordHash

	// Name-only update must not touch email or re-hash the password.
	updated, err := svc.UpdateUser(ctx, user.ID, &types.UpdateUserRequest{Name: strPtr("Bobby")})
	require.NoError(t, err)
	assert.Equal(t, "Bobby", updated.Name)
	assert.Equal(t, "bob@example.com", updated.Email)
	assert.Equal(t, oldHash, updated.PasswordHash)

	// A new password gets re-hashed.
	updated, err = svc.UpdateUser(ctx, user.ID, &types.UpdateUserRequest{Password: strPtr("newsecret")})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")))
}

func TestUpdateUserEmailCollision(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	testhelpers.CreateTestUser(t, db, "alice@example.com", "secret123")
	bob := testhelpers.CreateTestUser(t, db, "bob@example.com", "secret123")

	_, err := svc.UpdateUser(ctx, bob.ID, &types.UpdateUserRequest{Email: strPtr("alice@example.com")})
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	// Re-submitting the record's own email is not a collision.
	_, err = svc.UpdateUser(ctx, bob.ID, &types.UpdateUserRequest{Email: strPtr("bob@example.com")})
	assert.NoError(t, err)
}

func TestUpdateUserNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	_, err := svc.UpdateUser(context.Background(), uuid.New(), &types.UpdateUserRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "gone@example.com", "secret123")
	require.NoError(t, svc.DeleteUser(ctx, user.ID))

	_, err := svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDeleteUserNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	testhelpers.CreateTestUser(t, db, "keep@example.com", "secret123")

	err := svc.DeleteUser(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "failed delete must have no side effect")
}

func TestFindByEmail(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "findme@example.com", "secret123")

	got, err := svc.FindByEmail(ctx, "findme@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewUserService(db)

	testhelpers.CreateTestUser(t, db, "a@example.com", "secret123")
	testhelpers.CreateTestUser(t, db, "b@example.com", "secret123")

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
