package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAndGetProfile(t *testing.T) {
	app, _ := newTestApp(t)

	userID, _, promo := registerUser(t, app, "Boris", "998905554433", "secret123", true)
	path := fmt.Sprintf("/api/profile/%d", userID)

	status, body := doRequest(t, app, http.MethodPost, path, "", map[string]interface{}{
		"city":     "Tashkent",
		"address":  "Amir Temur 1",
		"landmark": "near the park",
		"email":    "boris@example.com",
		"style":    "loft",
		"comment":  "call after 6pm",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Tashkent", data["city"])
	assert.Equal(t, "loft", data["style"])
	// Identity fields are denormalized into the profile response.
	assert.Equal(t, "Boris", data["name"])
	assert.Equal(t, "998905554433", data["phone"])
	assert.Equal(t, promo, data["promo_code"])
	assert.Equal(t, true, data["is_partner"])
}

func TestUpsertProfileOverwritesWholeRow(t *testing.T) {
	app, _ := newTestApp(t)

	userID, _, _ := registerUser(t, app, "Anna", "998901112233", "secret123", false)
	path := fmt.Sprintf("/api/profile/%d", userID)

	status, _ := doRequest(t, app, http.MethodPost, path, "", map[string]interface{}{
		"city":  "Samarkand",
		"email": "anna@example.com",
	})
	require.Equal(t, http.StatusOK, status)

	// A second write without the email clears it: upserts replace the row,
	// they do not merge.
	status, _ = doRequest(t, app, http.MethodPost, path, "", map[string]interface{}{
		"city": "Bukhara",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doRequest(t, app, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Bukhara", data["city"])
	assert.Equal(t, "", data["email"])
}

func TestGetProfileNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Anna", "998901112233", "secret123", false)

	status, body := doRequest(t, app, http.MethodGet, "/api/profile/1", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestUpsertProfileUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/profile/42", "", map[string]interface{}{
		"city": "Tashkent",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error"])
}
