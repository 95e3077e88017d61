package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/llmdesk/llmdesk/db"
	"github.com/llmdesk/llmdesk/internal/auth"
	"github.com/llmdesk/llmdesk/internal/logger"
	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/llmdesk/llmdesk/internal/types"
	"github.com/llmdesk/llmdesk/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func toUserResponse(account models.Account) types.UserResponse {
	return types.UserResponse{
		ID:         account.ID,
		Email:      account.Email,
		Name:       account.Name,
		Department: account.Department,
		Role:       string(account.Role),
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}

func LoginUser(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var account models.Account

	err := db.DB.Where("email = ?", email).First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.L().Error("database error when fetching account", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(body.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	pair, err := auth.GenerateTokenPair(account.ID, account.Email, account.Role)

	if err != nil {
		logger.L().Error("failed to generate token pair", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user":         toUserResponse(account),
	})
}

// RefreshToken trades a valid refresh token for a fresh pair. The old
// refresh token is not tracked server-side; rotation relies on its natural
// expiry.
func RefreshToken(ctx *gin.Context) {
	var body RefreshRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	claims, err := auth.VerifyToken(body.RefreshToken, auth.TokenTypeRefresh)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	userIDFloat, ok := claims["user_id"].(float64)

	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token claims"})
		return
	}

	var account models.Account

	if err := db.DB.Where("id = ?", uint(userIDFloat)).First(&account).Error; err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	pair, err := auth.GenerateTokenPair(account.ID, account.Email, account.Role)

	if err != nil {
		logger.L().Error("failed to generate token pair", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// LogoutUser is a no-op server-side: tokens are stateless and the client is
// responsible for discarding them.
func LogoutUser(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func Me(ctx *gin.Context) {
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
