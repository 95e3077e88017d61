package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/llmdesk/llmdesk/db"
	"github.com/llmdesk/llmdesk/internal/logger"
	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/llmdesk/llmdesk/internal/utils"
	"go.uber.org/zap"
)

// GetMe returns the caller's own profile. Kept separate from the auth group
// so the SPA's user-directory client has a stable /users/me to hit.
func GetMe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var account models.Account

	if err := db.DB.First(&account, currentUser.ID).Error; err != nil {
		logger.L().Error("failed to fetch account", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(account))
}
