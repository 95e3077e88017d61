package db

import (
	"fmt"

	"github.com/llmdesk/llmdesk/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the shared gorm handle. adapter is "postgres"
// (default) or "mysql"; the DSN format follows the chosen driver.
func ConnectDatabase(adapter, dsn string) error {
	var dialector gorm.Dialector

	switch adapter {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return fmt.Errorf("unsupported database adapter: %s", adapter)
	}

	var err error

	DB, err = gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.Account{},
		&models.LlmModel{},
		&models.LlmTest{},
		&models.Task{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
