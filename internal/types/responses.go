package types

import (
	"time"

	"gorm.io/datatypes"
)

type UserResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LlmModelResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Provider    string         `json:"provider"`
	Description string         `json:"description"`
	Active      bool           `json:"is_active"`
	Config      datatypes.JSON `json:"config"`
	CreatedAt   time.Time      `json:"created_at"`
}

// LlmModelInfo is the abbreviated model view embedded in test results.
type LlmModelInfo struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

type LlmTestResponse struct {
	ID           uint         `json:"id"`
	LlmModel     LlmModelInfo `json:"llm_model"`
	Prompt       string       `json:"prompt"`
	ActualOutput string       `json:"actual_output"`
	CreatedAt    time.Time    `json:"created_at"`
}

type TaskCreatedResponse struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskResponse struct {
	ID                   uint      `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	SubmitterID          uint      `json:"submitter_id"`
	Department           string    `json:"department"`
	PM                   string    `json:"pm"`
	Participants         []string  `json:"participants"`
	LlmModelID           uint      `json:"llm_model_id"`
	ExpectedDurationDays int       `json:"expected_duration_days"`
	ExpectedEffect       string    `json:"expected_effect"`
	UsagePlan            string    `json:"usage_plan"`
	Status               string    `json:"status"`
	RejectionReason      *string   `json:"rejection_reason"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
