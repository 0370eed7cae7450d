package services_test

import (
	"testing"

	"github.com/uushop/shopping-list-go/internal/config"
	"github.com/uushop/shopping-list-go/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestHealthCheckHealthy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	cfg := &config.Config{DBType: "sqlite", DBDatabase: ":memory:"}
	result := services.HealthCheck(cfg, db)

	if result.Status != "healthy" {
		t.Errorf("Expected healthy status, got %s (%s)", result.Status, result.ErrorMessage)
	}
	if result.Database != "ok" {
		t.Errorf("Expected database ok, got %s", result.Database)
	}
	// No AUTHZ_URL configured, the authorizer check is skipped
	if result.Authorizer != "disabled" {
		t.Errorf("Expected authorizer disabled, got %s", result.Authorizer)
	}
}
