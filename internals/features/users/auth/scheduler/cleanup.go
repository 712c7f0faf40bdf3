package scheduler

import (
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"eaglesfitness_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanup removes blacklisted tokens that expired past the TTL.
// Runs daily; TTL defaults to 7 days.
func StartBlacklistCleanup(db *gorm.DB) {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		log.Info("[CLEANUP] purging expired blacklist tokens...")

		deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

		res := db.Unscoped().
			Where("expired_at < ?", deleteBefore).
			Delete(&model.TokenBlacklist{})
		if res.Error != nil {
			log.Errorf("[CLEANUP] delete failed: %v", res.Error)
			return
		}
		log.Infof("[CLEANUP] %d expired tokens removed", res.RowsAffected)
	})
	if err != nil {
		log.Errorf("[CLEANUP] cron setup failed: %v", err)
		return
	}
	c.Start()
}
