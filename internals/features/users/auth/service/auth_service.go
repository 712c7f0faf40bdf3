package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eaglesfitness_backend/internals/constants"
	memberModel "eaglesfitness_backend/internals/features/members/model"
	authDTO "eaglesfitness_backend/internals/features/users/auth/dto"
	authModel "eaglesfitness_backend/internals/features/users/auth/model"
	helper "eaglesfitness_backend/internals/helpers"
)

/* ==========================
   Register
========================== */

// Register creates the login user and the pending member profile in one
// transaction. The member stays pending until an admin approves it.
func Register(db *gorm.DB, c *fiber.Ctx, req *authDTO.RegisterRequest) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		member := memberModel.Member{
			UserID:     &user.ID,
			MemberCode: req.MemberCode,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      &req.Email,
			Phone:      req.Phone,
			Job:        req.Job,
			Address:    req.Address,
			RelativeContact: req.RelativeContact,
			PriorConditions: req.PriorConditions,
			Target:          req.Target,
			Status:          memberModel.MemberStatusPending,
		}
		if req.CoachingRequired != nil {
			member.CoachingRequired = *req.CoachingRequired
		} else {
			member.CoachingRequired = "No"
		}
		if req.Birthday != nil && *req.Birthday != "" {
			t, err := time.Parse("2006-01-02", *req.Birthday)
			if err != nil {
				return err
			}
			member.Birthday = &t
		}
		return tx.Create(&member).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or member code already registered")
		}
		log.Errorf("register failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Registration successful, pending admin approval", fiber.Map{
		"user_id": user.ID,
	})
}

/* ==========================
   Login / Logout
========================== */

func Login(db *gorm.DB, c *fiber.Ctx, req *authDTO.LoginRequest) error {
	var user authModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	role := lookupRole(db, user)

	token, err := CreateAccessToken(user.ID, role)
	if err != nil {
		log.Errorf("token sign failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create token")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		User: authDTO.UserResponse{
			ID:       user.ID,
			UserName: user.UserName,
			Email:    user.Email,
			Role:     role,
		},
	})
}

// lookupRole reads role_claims; users without a claim (e.g. not yet
// approved members) get an empty role and no route-tree access.
func lookupRole(db *gorm.DB, user authModel.UserModel) string {
	var claim authModel.RoleClaim
	if err := db.Where("user_id = ?", user.ID).First(&claim).Error; err != nil {
		return ""
	}
	return claim.Role
}

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, err := ExtractBearerToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := BlacklistToken(db, tokenString); err != nil {
		log.Errorf("logout blacklist failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

/* ==========================
   Me / Change password
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	resp := fiber.Map{
		"user": authDTO.UserResponse{
			ID:       user.ID,
			UserName: user.UserName,
			Email:    user.Email,
			Role:     helper.GetRole(c),
		},
	}

	// attach the member profile when one is linked
	var member memberModel.Member
	if err := db.Where("user_id = ?", user.ID).First(&member).Error; err == nil {
		resp["member"] = member
	}

	return helper.JsonOK(c, "ok", resp)
}

func ChangePassword(db *gorm.DB, c *fiber.Ctx, req *authDTO.ChangePasswordRequest) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := db.Model(&user).Update("password", string(newHash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

/* ==========================
   Role grants
========================== */

// GrantMemberRole upserts the member role claim; called on approval.
func GrantMemberRole(tx *gorm.DB, userID uuid.UUID) error {
	var existing authModel.RoleClaim
	err := tx.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	claim := authModel.RoleClaim{UserID: userID, Role: constants.RoleMember}
	return tx.Create(&claim).Error
}
