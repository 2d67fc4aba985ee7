package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ninetyarc/ninetyarc/core"
	"github.com/ninetyarc/ninetyarc/middleware"
	"github.com/ninetyarc/ninetyarc/models"
	"github.com/ninetyarc/ninetyarc/utils"
)

const tokenDuration = 72 * time.Hour

// AuthController handles registration, login, and profile management.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates a new controller instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Register creates an account together with its arc profile. The arc starts
// today in the user's timezone unless an explicit start date is given.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Username     string `json:"username" binding:"required,min=3,max=64"`
		Password     string `json:"password" binding:"required,min=8"`
		Email        string `json:"email"`
		Timezone     string `json:"timezone" binding:"required"`
		ArcStartDate string `json:"arc_start_date"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	today, err := core.TodayInTimezone(req.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40002, "unknown timezone")
		return
	}

	arcStart := req.ArcStartDate
	if arcStart == "" {
		arcStart = today
	} else if _, err := core.ParseDate(arcStart); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "arc_start_date must be YYYY-MM-DD")
		return
	}

	username := strings.TrimSpace(req.Username)
	var existing models.User
	if err := a.db.Where("username = ?", username).First(&existing).Error; err == nil {
		utils.Error(ctx, http.StatusConflict, 40901, "username already taken")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to check username")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50002, "failed to hash password")
		return
	}

	user := models.User{
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Timezone:     req.Timezone,
		ArcStartDate: arcStart,
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenDuration)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{"token": token, "user": user})
}

// Login authenticates via username and password and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	var user models.User
	if err := a.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error; err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid credentials")
		return
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenDuration)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{"token": token, "user": user})
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusBadRequest, 40004, "missing bearer token")
		return
	}
	tokenString := strings.TrimSpace(parts[1])

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	expiresAt := time.Now().Add(tokenDuration)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	utils.BlacklistToken(tokenString, expiresAt)

	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated user's account and arc profile.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	today, err := core.TodayInTimezone(user.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "profile timezone is invalid")
		return
	}

	utils.Success(ctx, gin.H{
		"user":        user,
		"today":       today,
		"day_number":  core.DayNumber(user.ArcStartDate, today),
		"week_number": core.WeekNumber(user.ArcStartDate, today),
	})
}

// UpdateProfile changes timezone, arc start date, or email. A timezone change
// is validated before it can poison every downstream date computation.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req struct {
		Timezone     *string `json:"timezone"`
		ArcStartDate *string `json:"arc_start_date"`
		Email        *string `json:"email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return
	}

	if req.Timezone != nil {
		if err := core.ValidateTimezone(*req.Timezone); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40002, "unknown timezone")
			return
		}
		user.Timezone = *req.Timezone
	}
	if req.ArcStartDate != nil {
		if _, err := core.ParseDate(*req.ArcStartDate); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40003, "arc_start_date must be YYYY-MM-DD")
			return
		}
		user.ArcStartDate = *req.ArcStartDate
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}

	if err := a.db.Save(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50006, "failed to update profile")
		return
	}

	// Derived views depend on timezone and arc anchor.
	invalidateUserCaches(userID)

	utils.Success(ctx, gin.H{"user": user})
}

// getUserID extracts the authenticated user ID placed by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	default:
		return 0, false
	}
}
