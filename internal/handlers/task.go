package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/llmdesk/llmdesk/db"
	"github.com/llmdesk/llmdesk/internal/logger"
	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/llmdesk/llmdesk/internal/types"
	"github.com/llmdesk/llmdesk/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateTaskRequest struct {
	Title                string   `json:"title" binding:"required"`
	Description          string   `json:"description" binding:"required"`
	Department           string   `json:"department" binding:"required"`
	PM                   string   `json:"pm" binding:"required"`
	Participants         []string `json:"participants"`
	LlmModelID           uint     `json:"llm_model_id" binding:"required"`
	ExpectedDurationDays int      `json:"expected_duration_days" binding:"required,min=1"`
	ExpectedEffect       string   `json:"expected_effect" binding:"required"`
	UsagePlan            string   `json:"usage_plan" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

func toTaskResponse(task models.Task) types.TaskResponse {
	participants := []string(task.Participants)

	if participants == nil {
		participants = []string{}
	}

	return types.TaskResponse{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		SubmitterID:          task.SubmitterID,
		Department:           task.Department,
		PM:                   task.PM,
		Participants:         participants,
		LlmModelID:           task.LlmModelID,
		ExpectedDurationDays: task.ExpectedDurationDays,
		ExpectedEffect:       task.ExpectedEffect,
		UsagePlan:            task.UsagePlan,
		Status:               string(task.Status),
		RejectionReason:      task.RejectionReason,
		CreatedAt:            task.CreatedAt,
		UpdatedAt:            task.UpdatedAt,
	}
}

// CreateTask files a task request. The submitter is always the caller and
// the status always starts at pending.
func CreateTask(ctx *gin.Context) {
	var body CreateTaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	submitterID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var model models.LlmModel

	if err := db.DB.Where("id = ? AND active = ?", body.LlmModelID, true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid LLM model ID"})
		} else {
			logger.L().Error("failed to fetch llm model", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	task := models.Task{
		Title:                body.Title,
		Description:          body.Description,
		SubmitterID:          submitterID,
		Department:           body.Department,
		PM:                   body.PM,
		Participants:         models.StringList(body.Participants),
		LlmModelID:           body.LlmModelID,
		ExpectedDurationDays: body.ExpectedDurationDays,
		ExpectedEffect:       body.ExpectedEffect,
		UsagePlan:            body.UsagePlan,
		Status:               models.TaskStatusPending,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		logger.L().Error("failed to create task", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	BroadcastTaskRefresh()

	ctx.JSON(http.StatusCreated, types.TaskCreatedResponse{
		ID:        task.ID,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt,
	})
}

// ListTasks returns every task for admins and only the caller's own tasks
// otherwise.
func ListTasks(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var tasks []models.Task

	query := db.DB

	switch currentUser.Role {
	case models.RoleAdmin:
		// admins see the full ledger
	case models.RoleUser:
		query = query.Where("submitter_id = ?", currentUser.ID)
	default:
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	if err := query.Find(&tasks).Error; err != nil {
		logger.L().Error("failed to list tasks", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, toTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateTaskStatus is the admin approval action: pending tasks move to
// approved or rejected, rejection requires a reason, and transitions are
// terminal.
func UpdateTaskStatus(ctx *gin.Context) {
	taskID, err := strconv.ParseUint(ctx.Param("task_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var body UpdateTaskStatusRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status := models.TaskStatus(body.Status)

	if status != models.TaskStatusApproved && status != models.TaskStatusRejected {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved or rejected"})
		return
	}

	if status == models.TaskStatusRejected && body.RejectionReason == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	var task models.Task

	if err := db.DB.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			logger.L().Error("failed to fetch task", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if task.Status != models.TaskStatusPending {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only pending tasks can be approved or rejected"})
		return
	}

	task.Status = status

	if status == models.TaskStatusRejected {
		task.RejectionReason = &body.RejectionReason
	} else {
		task.RejectionReason = nil
	}

	if err := db.DB.Save(&task).Error; err != nil {
		logger.L().Error("failed to update task status", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	BroadcastTaskRefresh()

	ctx.JSON(http.StatusOK, gin.H{
		"id":               task.ID,
		"status":           task.Status,
		"rejection_reason": task.RejectionReason,
	})
}
