// file: internals/seeds/admin_seed.go
package seeds

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eaglesfitness_backend/internals/constants"
	authModel "eaglesfitness_backend/internals/features/users/auth/model"
)

// SeedAdmin bootstraps the first admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Idempotent: an existing user with that email is left alone.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing authModel.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warnf("admin seed lookup err: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Warnf("admin seed hash err: %v", err)
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user := authModel.UserModel{
			UserName: "Administrator",
			Email:    email,
			Password: string(hash),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		claim := authModel.RoleClaim{
			UserID: user.ID,
			Role:   constants.RoleAdmin,
		}
		return tx.Create(&claim).Error
	})
	if err != nil {
		log.Warnf("admin seed err: %v", err)
		return
	}
	log.Infof("✅ admin account seeded for %s", email)
}
