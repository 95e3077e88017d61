package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/llmdesk/llmdesk/db"
	"github.com/llmdesk/llmdesk/internal/auth"
	"github.com/llmdesk/llmdesk/internal/handlers"
	"github.com/llmdesk/llmdesk/internal/llm"
	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/llmdesk/llmdesk/internal/router"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "password123"

// setupTest wires the package globals to an isolated in-memory database and
// a zero-delay invoker, and returns a fully routed engine.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	require.NoError(t, auth.Init("test-secret", time.Minute*15, time.Hour*24))

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	db.DB = gormDB
	require.NoError(t, db.MigrateDatabase())

	handlers.LlmInvoker = &llm.MockInvoker{Delay: 0}

	return router.NewRouter()
}

func seedAccount(t *testing.T, email string, role models.Role) models.Account {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	account := models.Account{
		Email:        email,
		PasswordHash: string(passwordHash),
		Name:         "Test Person",
		Department:   "Engineering",
		Role:         role,
	}

	require.NoError(t, db.DB.Create(&account).Error)
	return account
}

func seedModel(t *testing.T, name, provider string, active bool) models.LlmModel {
	t.Helper()

	model := models.LlmModel{
		Name:        name,
		Provider:    provider,
		Description: name + " test model",
		Active:      active,
		Config:      datatypes.JSON(`{"max_tokens":4096,"temperature":0.7}`),
	}

	require.NoError(t, db.DB.Create(&model).Error)
	return model
}

func accessTokenFor(t *testing.T, account models.Account) string {
	t.Helper()

	pair, err := auth.GenerateTokenPair(account.ID, account.Email, account.Role)
	require.NoError(t, err)
	return pair.AccessToken
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.DB.Model(model).Count(&count).Error)
	return count
}
