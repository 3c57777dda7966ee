package logging

import (
	"log/slog"
	"time"

	"github.com/KimShota/Universe/internal/models"
	"gorm.io/gorm"
)

// StartCleanup deletes system logs older than 30 days, once a day.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		cleanup := func() {
			cutoff := time.Now().AddDate(0, 0, -30)
			result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
			if result.Error != nil {
				slog.Error("system log cleanup failed", "error", result.Error)
				return
			}
			if result.RowsAffected > 0 {
				slog.Info("system log cleanup done", "deleted", result.RowsAffected)
			}
		}

		cleanup()
		for {
			select {
			case <-ticker.C:
				cleanup()
			case <-done:
				return
			}
		}
	}()
}
