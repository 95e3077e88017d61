package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/llmdesk/llmdesk/internal/handlers"
	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTaskFeed(t *testing.T, serverURL, token string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws/tasks?token=" + token

	header := http.Header{"Origin": []string{"http://localhost:5173"}}

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	// registration is confirmed by the first frame
	var hello map[string]string
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, "connected", hello["type"])

	return conn
}

func TestTaskFeedRejectsMissingToken(t *testing.T) {
	r := setupTest(t)

	server := httptest.NewServer(r)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/tasks"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": []string{"http://localhost:5173"}})
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTaskFeedDeliversConcurrentBroadcasts(t *testing.T) {
	r := setupTest(t)
	account := seedAccount(t, "user@example.com", models.RoleUser)
	token := accessTokenFor(t, account)

	server := httptest.NewServer(r)
	defer server.Close()

	conn := dialTaskFeed(t, server.URL, token)
	defer conn.Close()

	// broadcasts race each other and the keepalive writer; every frame
	// must still arrive intact
	const broadcasts = 8

	var wg sync.WaitGroup
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handlers.BroadcastTaskRefresh()
		}()
	}
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	for i := 0; i < broadcasts; i++ {
		var msg map[string]string
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "refresh", msg["type"])
	}
}

func TestTaskSubmissionNotifiesFeed(t *testing.T) {
	r := setupTest(t)
	user := seedAccount(t, "user@example.com", models.RoleUser)
	admin := seedAccount(t, "admin@example.com", models.RoleAdmin)
	model := seedModel(t, "GPT-4", "OpenAI", true)

	server := httptest.NewServer(r)
	defer server.Close()

	conn := dialTaskFeed(t, server.URL, accessTokenFor(t, admin))
	defer conn.Close()

	recorder := doRequest(t, r, http.MethodPost, "/tasks", accessTokenFor(t, user), validTaskBody(model.ID))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var msg map[string]string
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "refresh", msg["type"])
}
