package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/llmdesk/llmdesk/db"
	"github.com/llmdesk/llmdesk/internal/llm"
	"github.com/llmdesk/llmdesk/internal/logger"
	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/llmdesk/llmdesk/internal/types"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LlmInvoker is the injected model-invocation collaborator. Tests swap it
// for one without the simulated delay.
var LlmInvoker llm.Invoker = llm.NewMockInvoker()

type CreateLlmTestRequest struct {
	LlmModelID uint   `json:"llm_model_id" binding:"required"`
	Prompt     string `json:"prompt" binding:"required"`
}

func toLlmModelResponse(model models.LlmModel) types.LlmModelResponse {
	return types.LlmModelResponse{
		ID:          model.ID,
		Name:        model.Name,
		Provider:    model.Provider,
		Description: model.Description,
		Active:      model.Active,
		Config:      model.Config,
		CreatedAt:   model.CreatedAt,
	}
}

// ListLlmModels returns the active catalog, newest first.
func ListLlmModels(ctx *gin.Context) {
	var catalog []models.LlmModel

	if err := db.DB.Where("active = ?", true).Order("created_at DESC").Find(&catalog).Error; err != nil {
		logger.L().Error("failed to list llm models", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve models"})
		return
	}

	response := make([]types.LlmModelResponse, 0, len(catalog))

	for _, model := range catalog {
		response = append(response, toLlmModelResponse(model))
	}

	ctx.JSON(http.StatusOK, response)
}

// GetLlmModel returns a single model; inactive models read as absent.
func GetLlmModel(ctx *gin.Context) {
	modelID, err := strconv.ParseUint(ctx.Param("model_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID"})
		return
	}

	var model models.LlmModel

	if err := db.DB.Where("id = ? AND active = ?", modelID, true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "LLM model not found"})
		} else {
			logger.L().Error("failed to fetch llm model", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve model"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toLlmModelResponse(model))
}

// CreateLlmTest runs one prompt against a registered model and records the
// result. Single synchronous round trip: no retry, no streaming.
func CreateLlmTest(ctx *gin.Context) {
	var body CreateLlmTestRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var model models.LlmModel

	if err := db.DB.Where("id = ? AND active = ?", body.LlmModelID, true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid LLM model ID"})
		} else {
			logger.L().Error("failed to fetch llm model", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	started := time.Now()

	output, err := LlmInvoker.Invoke(ctx.Request.Context(), model, body.Prompt)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "LLM invocation failed: " + err.Error()})
		return
	}

	metadata, _ := json.Marshal(map[string]interface{}{
		"request_id": ctx.GetString("request_id"),
		"latency_ms": time.Since(started).Milliseconds(),
	})

	test := models.LlmTest{
		LlmModelID:   model.ID,
		Prompt:       body.Prompt,
		ActualOutput: output,
		Metadata:     datatypes.JSON(metadata),
	}

	if err := db.DB.Create(&test).Error; err != nil {
		logger.L().Error("failed to create llm test", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save test result"})
		return
	}

	ctx.JSON(http.StatusCreated, types.LlmTestResponse{
		ID: test.ID,
		LlmModel: types.LlmModelInfo{
			ID:       model.ID,
			Name:     model.Name,
			Provider: model.Provider,
		},
		Prompt:       test.Prompt,
		ActualOutput: test.ActualOutput,
		CreatedAt:    test.CreatedAt,
	})
}
