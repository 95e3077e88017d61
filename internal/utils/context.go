package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/llmdesk/llmdesk/internal/middleware"
	"github.com/llmdesk/llmdesk/internal/types"
)

// GetCurrentUser returns the account the auth middleware loaded for this
// request. It only fails on routes that skipped AuthMiddleware, which is a
// routing bug rather than a client error.
func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("no authenticated account in request context")
	}

	user, ok := value.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("unexpected %T in request context", value)
	}

	return user, nil
}

// GetCurrentUserID is the shorthand for handlers that only bind ownership.
func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}
