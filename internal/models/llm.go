package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LlmModel struct {
	gorm.Model

	Name        string `gorm:"size:100;not null"`
	Provider    string `gorm:"size:50;not null"` // "OpenAI", "Anthropic", "Google", etc.
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"default:true"`
	Config      datatypes.JSON

	// Relationships
	LlmTests []LlmTest `gorm:"foreignKey:LlmModelID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// LlmTest is one prompt test run against a model. Rows are immutable after
// creation.
type LlmTest struct {
	gorm.Model

	LlmModelID   uint   `gorm:"not null;index"`
	Prompt       string `gorm:"type:text;not null"`
	ActualOutput string `gorm:"type:text;not null"`
	Metadata     datatypes.JSON

	// Relationships
	LlmModel LlmModel `gorm:"foreignKey:LlmModelID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
