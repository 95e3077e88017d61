package handlers_test

import (
	"net/http"
	"testing"

	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsTokenPairAndUser(t *testing.T) {
	r := setupTest(t)
	account := seedAccount(t, "user@example.com", models.RoleUser)

	recorder := doRequest(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "user@example.com",
		"password": testPassword,
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, recorder, &body)

	assert.NotEmpty(t, body.AccessToken)
	assert.NotEmpty(t, body.RefreshToken)
	assert.NotEqual(t, body.AccessToken, body.RefreshToken)
	assert.Equal(t, account.ID, body.User.ID)
	assert.Equal(t, "user", body.User.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupTest(t)
	seedAccount(t, "user@example.com", models.RoleUser)

	recorder := doRequest(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "user@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRefreshRotatesPair(t *testing.T) {
	r := setupTest(t)
	seedAccount(t, "user@example.com", models.RoleUser)

	login := doRequest(t, r, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "user@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, login.Code)

	var loginBody struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	decodeBody(t, login, &loginBody)

	refresh := doRequest(t, r, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": loginBody.RefreshToken,
	})
	require.Equal(t, http.StatusOK, refresh.Code)

	var refreshBody struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	decodeBody(t, refresh, &refreshBody)

	assert.NotEmpty(t, refreshBody.AccessToken)
	assert.NotEmpty(t, refreshBody.RefreshToken)
	assert.NotEqual(t, loginBody.AccessToken, refreshBody.AccessToken)
	assert.NotEqual(t, loginBody.RefreshToken, refreshBody.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	r := setupTest(t)
	account := seedAccount(t, "user@example.com", models.RoleUser)

	recorder := doRequest(t, r, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refreshToken": accessTokenFor(t, account),
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestProtectedRouteRejectsMissingTokenWithoutSideEffects(t *testing.T) {
	r := setupTest(t)
	seedAccount(t, "user@example.com", models.RoleUser)
	model := seedModel(t, "GPT-4", "OpenAI", true)

	recorder := doRequest(t, r, http.MethodPost, "/tasks", "", map[string]interface{}{
		"title":                  "New project",
		"description":            "desc",
		"department":             "Engineering",
		"pm":                     "PM",
		"participants":           []string{},
		"llm_model_id":           model.ID,
		"expected_duration_days": 10,
		"expected_effect":        "effect",
		"usage_plan":             "plan",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Task{}))
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	r := setupTest(t)

	recorder := doRequest(t, r, http.MethodGet, "/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMeReturnsProfile(t *testing.T) {
	r := setupTest(t)
	account := seedAccount(t, "user@example.com", models.RoleUser)
	token := accessTokenFor(t, account)

	for _, path := range []string{"/auth/me", "/users/me"} {
		recorder := doRequest(t, r, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, recorder.Code, path)

		var body struct {
			ID         uint   `json:"id"`
			Email      string `json:"email"`
			Department string `json:"department"`
			Role       string `json:"role"`
		}
		decodeBody(t, recorder, &body)

		assert.Equal(t, account.ID, body.ID)
		assert.Equal(t, account.Email, body.Email)
		assert.Equal(t, "Engineering", body.Department)
		assert.Equal(t, "user", body.Role)
	}
}

func TestLogoutIsANoOp(t *testing.T) {
	r := setupTest(t)
	account := seedAccount(t, "user@example.com", models.RoleUser)
	token := accessTokenFor(t, account)

	recorder := doRequest(t, r, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Tokens are stateless: the same token still works after logout.
	recorder = doRequest(t, r, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
