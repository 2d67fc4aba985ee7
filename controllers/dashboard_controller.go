package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ninetyarc/ninetyarc/config"
	"github.com/ninetyarc/ninetyarc/core"
	"github.com/ninetyarc/ninetyarc/models"
	"github.com/ninetyarc/ninetyarc/utils"
)

// DashboardController serves the derived views: streaks, completion rates,
// and the arc scorecard. It computes nothing itself; it fetches rows and
// feeds them to the core engine.
type DashboardController struct {
	db *gorm.DB
}

// NewDashboardController creates a new controller instance.
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

// GetDashboard returns today's score, arc position, streaks, and per-category
// completion over the arc so far. Cached per user and local date.
func (d *DashboardController) GetDashboard(ctx *gin.Context) {
	user, ok := d.currentUser(ctx)
	if !ok {
		return
	}

	today, err := core.TodayInTimezone(user.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "profile timezone is invalid")
		return
	}

	cacheKey := fmt.Sprintf("cache:dashboard:%d:%s", user.ID, today)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	entries, err := d.arcEntries(user, today)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to load entries")
		return
	}

	scores := make([]core.DayScore, 0, len(entries))
	habits := make([]core.Entry, 0, len(entries))
	todayScore := 0
	for i := range entries {
		scores = append(scores, core.DayScore{Date: entries[i].EntryDate, Score: entries[i].DailyScore})
		habits = append(habits, entries[i].Habits())
		if entries[i].EntryDate == today {
			todayScore = entries[i].DailyScore
		}
	}
	streaks := core.Streaks(scores)

	payload := gin.H{
		"today":       today,
		"day_number":  core.DayNumber(user.ArcStartDate, today),
		"week_number": core.WeekNumber(user.ArcStartDate, today),
		"today_score": todayScore,
		"streaks":     streaks,
		"completion":  core.CompletionByCategory(habits),
	}
	cacheEnvelope(cacheKey, payload)
	utils.Success(ctx, payload)
}

// GetScorecard returns the full arc grid. Cached per user and local date.
func (d *DashboardController) GetScorecard(ctx *gin.Context) {
	user, ok := d.currentUser(ctx)
	if !ok {
		return
	}

	today, err := core.TodayInTimezone(user.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "profile timezone is invalid")
		return
	}

	cacheKey := fmt.Sprintf("cache:scorecard:%d:%s", user.ID, today)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	entries, err := d.arcEntries(user, "")
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to load entries")
		return
	}
	scoreByDate := make(map[string]int, len(entries))
	for i := range entries {
		scoreByDate[entries[i].EntryDate] = entries[i].DailyScore
	}

	scorecard, err := core.BuildScorecardAt(user.ArcStartDate, today, scoreByDate)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50014, "failed to build scorecard")
		return
	}

	payload := gin.H{"scorecard": scorecard, "today": today}
	cacheEnvelope(cacheKey, payload)
	utils.Success(ctx, payload)
}

// GetCompletion returns the completion percentage for one category over an
// optional date range, defaulting to the arc so far.
func (d *DashboardController) GetCompletion(ctx *gin.Context) {
	user, ok := d.currentUser(ctx)
	if !ok {
		return
	}

	category := ctx.Param("category")
	if !validCategory(category) {
		utils.Error(ctx, http.StatusBadRequest, 40012, "unknown category")
		return
	}

	today, err := core.TodayInTimezone(user.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "profile timezone is invalid")
		return
	}

	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" {
		from = user.ArcStartDate
	}
	if to == "" {
		to = today
	}
	if _, err := core.ParseDate(from); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "from must be YYYY-MM-DD")
		return
	}
	if _, err := core.ParseDate(to); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "to must be YYYY-MM-DD")
		return
	}

	var entries []models.DailyEntry
	if err := d.db.Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", user.ID, from, to).
		Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to load entries")
		return
	}

	habits := make([]core.Entry, 0, len(entries))
	for i := range entries {
		habits = append(habits, entries[i].Habits())
	}

	utils.Success(ctx, gin.H{
		"category":   category,
		"from":       from,
		"to":         to,
		"days":       len(habits),
		"completion": core.TargetCompletion(habits, category),
	})
}

// arcEntries loads the user's rows inside the arc window, optionally capped
// at an upper date (exclusive of nothing; empty means the whole arc).
func (d *DashboardController) arcEntries(user models.User, upTo string) ([]models.DailyEntry, error) {
	query := d.db.Where("user_id = ? AND entry_date >= ?", user.ID, user.ArcStartDate)
	if start, err := core.ParseDate(user.ArcStartDate); err == nil {
		end := start.AddDate(0, 0, core.ArcDays).Format(core.DateLayout)
		query = query.Where("entry_date < ?", end)
	}
	if upTo != "" {
		query = query.Where("entry_date <= ?", upTo)
	}
	var entries []models.DailyEntry
	err := query.Order("entry_date ASC").Find(&entries).Error
	return entries, err
}

func (d *DashboardController) currentUser(ctx *gin.Context) (models.User, bool) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return models.User{}, false
	}
	var user models.User
	if err := d.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return models.User{}, false
	}
	return user, true
}

func validCategory(category string) bool {
	for _, c := range core.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// cacheEnvelope stores the full success envelope so cache hits can be served
// as raw bytes.
func cacheEnvelope(key string, payload interface{}) {
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	ttl := time.Duration(config.Get().CacheTTLSeconds) * time.Second
	utils.CacheSetJSON(key, wrapper, ttl)
}

// invalidateUserCaches drops every derived view cached for the user; called
// after any write that changes scores, timezone, or the arc anchor.
func invalidateUserCaches(userID uint) {
	utils.InvalidateByPrefix(fmt.Sprintf("cache:dashboard:%d:", userID))
	utils.InvalidateByPrefix(fmt.Sprintf("cache:scorecard:%d:", userID))
}
