package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("registers a user", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/api/v1/users", map[string]interface{}{
			"first_name": "Alice",
			"last_name":  "Smith",
			"email":      "alice@example.com",
			"password":   "password123",
		}, "")

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp UserResponse
		decode(t, rec, &resp)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Alice", resp.FirstName)
		assert.Equal(t, "alice@example.com", resp.Email)

		// No password material in any form.
		body := strings.ToLower(rec.Body.String())
		assert.NotContains(t, body, "password")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.createUser(t, "alice@example.com")

		rec := env.do(t, http.MethodPost, "/api/v1/users", map[string]interface{}{
			"first_name": "Other",
			"last_name":  "Person",
			"email":      "alice@example.com",
			"password":   "password456",
		}, "")

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp errorBody
		decode(t, rec, &resp)
		assert.Equal(t, "Email already registered", resp.Error)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/api/v1/users", map[string]interface{}{
			"first_name": "Alice",
			"last_name":  "Smith",
			"email":      "alice@example.com",
			"password":   "short",
		}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/api/v1/users", "not an object", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user := env.createUser(t, "alice@example.com")

	t.Run("found", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/users/"+user.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		decode(t, rec, &resp)
		assert.Equal(t, user.ID.String(), resp.ID)
	})

	t.Run("unknown ID", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/users/"+uuid.NewString(), nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed ID", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/users/not-a-uuid", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsersEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createUser(t, "a@example.com")
	env.createUser(t, "b@example.com")

	rec := env.do(t, http.MethodGet, "/api/v1/users", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []UserResponse
	decode(t, rec, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "a@example.com", resp[0].Email)
	assert.Equal(t, "b@example.com", resp[1].Email)

	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
}

func TestUpdateUserEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("self update succeeds", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		user := env.createUser(t, "alice@example.com")
		token := env.tokenFor(t, user)

		rec := env.do(t, http.MethodPut, "/api/v1/users/"+user.ID.String(), map[string]interface{}{
			"first_name": "Alicia",
		}, token)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		decode(t, rec, &resp)
		assert.Equal(t, "Alicia", resp.FirstName)
	})

	t.Run("another account is forbidden", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		alice := env.createUser(t, "alice@example.com")
		bob := env.createUser(t, "bob@example.com")
		token := env.tokenFor(t, bob)

		rec := env.do(t, http.MethodPut, "/api/v1/users/"+alice.ID.String(), map[string]interface{}{
			"first_name": "Hacked",
		}, token)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("without a token is unauthorized", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		user := env.createUser(t, "alice@example.com")

		rec := env.do(t, http.MethodPut, "/api/v1/users/"+user.ID.String(), map[string]interface{}{
			"first_name": "Nobody",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		user := env.createUser(t, "alice@example.com")
		token := env.tokenFor(t, user)

		rec := env.do(t, http.MethodPut, "/api/v1/users/"+user.ID.String(), map[string]interface{}{
			"first_name": "Alicia",
			"is_admin":   true,
		}, token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("self delete succeeds", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		user := env.createUser(t, "alice@example.com")
		token := env.tokenFor(t, user)

		rec := env.do(t, http.MethodDelete, "/api/v1/users/"+user.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/v1/users/"+user.ID.String(), nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("another account is forbidden", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		alice := env.createUser(t, "alice@example.com")
		bob := env.createUser(t, "bob@example.com")
		token := env.tokenFor(t, bob)

		rec := env.do(t, http.MethodDelete, "/api/v1/users/"+alice.ID.String(), nil, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
