package models

import (
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusDraft    TaskStatus = "draft"
	TaskStatusPending  TaskStatus = "pending"
	TaskStatusApproved TaskStatus = "approved"
	TaskStatusRejected TaskStatus = "rejected"
)

type Task struct {
	gorm.Model

	Title                string     `gorm:"not null"`
	Description          string     `gorm:"type:text;not null"`
	SubmitterID          uint       `gorm:"not null;index"`
	Department           string     `gorm:"not null"`
	PM                   string     `gorm:"column:pm;not null"`
	Participants         StringList
	LlmModelID           uint       `gorm:"not null;index"`
	ExpectedDurationDays int        `gorm:"not null"` // must be > 0
	ExpectedEffect       string     `gorm:"type:text;not null"`
	UsagePlan            string     `gorm:"type:text;not null"`
	Status               TaskStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	RejectionReason      *string    `gorm:"type:text"`

	// Relationships
	Submitter Account  `gorm:"foreignKey:SubmitterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	LlmModel  LlmModel `gorm:"foreignKey:LlmModelID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
