package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/lifetracker/backend/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:dbtest_%d?mode=memory&cache=shared", time.Now().UnixNano()),
	}

	database, err := NewConnection(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(); err != nil {
		t.Fatalf("auto-migration failed: %v", err)
	}
	if !database.DB().Migrator().HasTable("tasks") {
		t.Error("expected tasks table to exist")
	}
	if !database.HealthCheck() {
		t.Error("expected healthy database")
	}
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	if _, err := NewConnection(&config.DatabaseConfig{Driver: "mysql", URL: "x"}); err == nil {
		t.Error("expected error")
	}
}
