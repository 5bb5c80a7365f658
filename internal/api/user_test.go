package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastbook/backend/internal/testhelpers"
	"github.com/feastbook/backend/internal/types"
)

func TestCreateUserEndpoint(t *testing.T) {
	engine, _, _ := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/users", payload{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	}
	decodeBody(t, w, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "alice@example.com", created.Email)

	// The password hash must never appear in responses.
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(t, engine, http.MethodGet, "/api/v1/users/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUserValidationEndpoint(t *testing.T) {
	engine, _, _ := setupTestRouter(t)

	// Short password is rejected at binding time.
	w := doJSON(t, engine, http.MethodPost, "/api/v1/users", payload{
		"name": "Alice", "email": "alice@example.com", "password": "nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/users", payload{
		"name": "Alice", "email": "not-an-email", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserConflictEndpoint(t *testing.T) {
	engine, db, _ := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "taken@example.com", "secret123")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/users", payload{
		"name": "Dup", "email": "taken@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUserNotFoundEndpoint(t *testing.T) {
	engine, _, _ := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserEndpoint(t *testing.T) {
	engine, db, _ := setupTestRouter(t)
	user := testhelpers.CreateTestUser(t, db, "bob@example.com", "secret123")

	w := doJSON(t, engine, http.MethodPut, "/api/v1/users/"+user.ID.String(), payload{
		"name": "Bobby",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, "Bobby", updated.Name)
	assert.Equal(t, "bob@example.com", updated.Email)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/users/"+uuid.NewString(), payload{
		"name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserEmailConflictEndpoint(t *testing.T) {
	engine, db, _ := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "alice@example.com", "secret123")
	bob := testhelpers.CreateTestUser(t, db, "bob@example.com", "secret123")

	w := doJSON(t, engine, http.MethodPut, "/api/v1/users/"+bob.ID.String(), payload{
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteUserEndpoint(t *testing.T) {
	engine, db, _ := setupTestRouter(t)
	user := testhelpers.CreateTestUser(t, db, "gone@example.com", "secret123")

	w := doJSON(t, engine, http.MethodDelete, "/api/v1/users/"+user.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/users/"+user.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	engine, db, auth := setupTestRouter(t)
	user := testhelpers.CreateTestUser(t, db, "carol@example.com", "secret123")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/users/login", payload{
		"email": "carol@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := auth.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginFailureDoesNotEnumerate(t *testing.T) {
	engine, db, _ := setupTestRouter(t)
	testhelpers.CreateTestUser(t, db, "carol@example.com", "secret123")

	wrongPassword := doJSON(t, engine, http.MethodPost, "/api/v1/users/login", payload{
		"email": "carol@example.com", "password": "wrong",
	})
	unknownEmail := doJSON(t, engine, http.MethodPost, "/api/v1/users/login", payload{
		"email": "nobody@example.com", "password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestMeEndpoint(t *testing.T) {
	engine, db, auth := setupTestRouter(t)
	user := testhelpers.CreateTestUser(t, db, "me@example.com", "secret123")

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Email string `json:"email"`
	}
	decodeBody(t, w, &got)
	assert.Equal(t, "me@example.com", got.Email)

	// No token, no identity.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

