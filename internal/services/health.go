package services

import (
	"fmt"
	"log"
	"os"

	"github.com/localnerve/boardsdb/internal/config"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Storage      string            `json:"storage"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck pings the database and verifies the attachment storage
// directory is present.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	if info, err := os.Stat(cfg.StorageDir); err != nil || !info.IsDir() {
		result.Status = "unhealthy"
		result.Storage = "missing"
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Storage directory not available: %s", cfg.StorageDir)
		} else {
			result.ErrorMessage += fmt.Sprintf("; storage directory not available: %s", cfg.StorageDir)
		}
		log.Printf("Health check failed - storage directory: %s", cfg.StorageDir)
	} else {
		result.Storage = "ok"
		result.Details["storage_dir"] = cfg.StorageDir
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
