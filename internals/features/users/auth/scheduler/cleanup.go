package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "sekolahku_backend/internals/features/users/auth/model"
)

// StartTokenCleanup purges expired blacklist rows on a fixed interval so
// the table does not grow with every logout forever.
func StartTokenCleanup(db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			res := db.Where("expired_at < ?", time.Now().UTC()).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] Token blacklist cleanup:", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[SUCCESS] Token blacklist cleanup removed %d expired rows", res.RowsAffected)
			}
		}
	}()
}
