package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetMyProfile(t *testing.T) {
	s, m := newTestServer(t)
	m.users.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Username: "me"}, nil)
	m.follows.On("Counts", mock.Anything, uint(1)).
		Return(&models.FollowCounts{FollowerCount: 2, FollowingCount: 3}, nil)

	app := fiber.New()
	app.Use(asUser(1))
	app.Get("/users/me", s.GetMyProfile)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Username       string `json:"username"`
		FollowerCount  int64  `json:"follower_count"`
		FollowingCount int64  `json:"following_count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "me", payload.Username)
	assert.Equal(t, int64(2), payload.FollowerCount)
	assert.Equal(t, int64(3), payload.FollowingCount)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	s, m := newTestServer(t)
	m.users.On("GetByID", mock.Anything, uint(99)).
		Return(nil, models.NewNotFoundError("user not found", nil))

	app := fiber.New()
	app.Use(asUser(1))
	app.Get("/users/:id", s.GetUserProfile)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/99", nil))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMyProfile(t *testing.T) {
	t.Run("Updates full name", func(t *testing.T) {
		s, m := newTestServer(t)
		m.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Username: "me", FullName: "Old Name"}, nil)
		m.users.On("Update", mock.Anything, mock.Anything).Return(nil)

		app := fiber.New()
		app.Use(asUser(1))
		app.Put("/users/me", s.UpdateMyProfile)

		body, _ := json.Marshal(map[string]string{"full_name": "New Name"})
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Taken username is a 400", func(t *testing.T) {
		s, m := newTestServer(t)
		m.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Username: "me"}, nil)
		m.users.On("GetByUsername", mock.Anything, "occupied").
			Return(&models.User{ID: 2, Username: "occupied"}, nil)

		app := fiber.New()
		app.Use(asUser(1))
		app.Put("/users/me", s.UpdateMyProfile)

		body, _ := json.Marshal(map[string]string{"username": "occupied"})
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSearchUsers(t *testing.T) {
	s, m := newTestServer(t)
	m.users.On("SearchByName", mock.Anything, "mar", 20, 0).
		Return([]models.UserSummary{{ID: 1, Username: "marcy"}}, nil)

	app := fiber.New()
	app.Use(asUser(1))
	app.Get("/users/search", s.SearchUsers)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/search?q=mar", nil))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Users []models.UserSummary `json:"users"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Users, 1)
	assert.Equal(t, "marcy", payload.Users[0].Username)
}

func TestGetUserStats(t *testing.T) {
	s, m := newTestServer(t)
	m.users.On("GetByID", mock.Anything, uint(2)).
		Return(&models.User{ID: 2}, nil)
	m.follows.On("Counts", mock.Anything, uint(2)).
		Return(&models.FollowCounts{FollowerCount: 10, FollowingCount: 5}, nil)

	app := fiber.New()
	app.Use(asUser(1))
	app.Get("/users/:id/stats", s.GetUserStats)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/users/2/stats", nil))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var counts models.FollowCounts
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&counts))
	assert.Equal(t, int64(10), counts.FollowerCount)
	assert.Equal(t, int64(5), counts.FollowingCount)
}
