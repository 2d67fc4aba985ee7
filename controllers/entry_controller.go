package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ninetyarc/ninetyarc/core"
	"github.com/ninetyarc/ninetyarc/models"
	"github.com/ninetyarc/ninetyarc/utils"
)

// EntryController manages daily habit records.
type EntryController struct {
	db *gorm.DB
}

// NewEntryController creates a new controller instance.
func NewEntryController(db *gorm.DB) *EntryController {
	return &EntryController{db: db}
}

// updateEntryRequest carries a partial update: nil fields are left untouched
// so a single checkbox toggle doesn't clobber the rest of the day.
type updateEntryRequest struct {
	StudyBlocks  *[]core.StudyBlock `json:"study_blocks"`
	Reading      *core.Reading      `json:"reading"`
	Pushups      *core.Pushups      `json:"pushups"`
	Meditation   *core.Meditation   `json:"meditation"`
	WaterBottles *[]bool            `json:"water_bottles"`
	Notes        *core.Notes        `json:"notes"`
}

// GetToday resolves the user's local date and returns that day's record,
// creating the default all-unchecked one on first visit.
func (e *EntryController) GetToday(ctx *gin.Context) {
	user, ok := e.currentUser(ctx)
	if !ok {
		return
	}

	today, err := core.TodayInTimezone(user.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "profile timezone is invalid")
		return
	}

	entry := models.NewDailyEntry(user.ID, today)
	err = e.db.Where("user_id = ? AND entry_date = ?", user.ID, today).First(entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := e.db.Create(entry).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to create entry")
			return
		}
	} else if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load entry")
		return
	}

	utils.Success(ctx, gin.H{
		"entry":       entry,
		"day_number":  core.DayNumber(user.ArcStartDate, today),
		"week_number": core.WeekNumber(user.ArcStartDate, today),
	})
}

// GetEntry returns the record for a specific date.
func (e *EntryController) GetEntry(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	date := ctx.Param("date")
	if _, err := core.ParseDate(date); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "date must be YYYY-MM-DD")
		return
	}

	var entry models.DailyEntry
	if err := e.db.Where("user_id = ? AND entry_date = ?", userID, date).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40402, "no entry for that date")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load entry")
		return
	}

	utils.Success(ctx, gin.H{"entry": entry})
}

// ListEntries returns records in an inclusive date range, oldest first.
func (e *EntryController) ListEntries(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	from := ctx.Query("from")
	to := ctx.Query("to")
	query := e.db.Where("user_id = ?", userID).Order("entry_date ASC")
	if from != "" {
		if _, err := core.ParseDate(from); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40010, "from must be YYYY-MM-DD")
			return
		}
		query = query.Where("entry_date >= ?", from)
	}
	if to != "" {
		if _, err := core.ParseDate(to); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40010, "to must be YYYY-MM-DD")
			return
		}
		query = query.Where("entry_date <= ?", to)
	}

	var entries []models.DailyEntry
	if err := query.Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to list entries")
		return
	}

	utils.Success(ctx, gin.H{"entries": entries})
}

// UpdateEntry applies a partial update to one day's record. The read-merge-
// recompute-write cycle runs in a transaction with a row lock so concurrent
// toggles from two tabs cannot interleave, and the score cache is always
// recomputed before persistence.
func (e *EntryController) UpdateEntry(ctx *gin.Context) {
	user, ok := e.currentUser(ctx)
	if !ok {
		return
	}

	date := ctx.Param("date")
	if _, err := core.ParseDate(date); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "date must be YYYY-MM-DD")
		return
	}

	today, err := core.TodayInTimezone(user.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "profile timezone is invalid")
		return
	}
	if core.IsFutureDate(date, today) {
		utils.Error(ctx, http.StatusBadRequest, 40011, "cannot log a future date")
		return
	}

	var req updateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	var entry models.DailyEntry
	err = e.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND entry_date = ?", user.ID, date).
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = *models.NewDailyEntry(user.ID, date)
		} else if err != nil {
			return err
		}

		if req.StudyBlocks != nil {
			entry.StudyBlocks = *req.StudyBlocks
		}
		if req.Reading != nil {
			entry.Reading = *req.Reading
		}
		if req.Pushups != nil {
			entry.Pushups = *req.Pushups
		}
		if req.Meditation != nil {
			entry.Meditation = *req.Meditation
		}
		if req.WaterBottles != nil {
			entry.WaterBottles = *req.WaterBottles
		}
		if req.Notes != nil {
			entry.Notes = utils.SanitizeNotes(*req.Notes)
		}

		// BeforeSave recomputes DailyScore and IsComplete.
		return tx.Save(&entry).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to update entry")
		return
	}

	invalidateUserCaches(user.ID)

	utils.Success(ctx, gin.H{"entry": entry})
}

// IncompleteToday lists what remains open on the user's local date, in the
// shape reminder consumers use.
func (e *EntryController) IncompleteToday(ctx *gin.Context) {
	user, ok := e.currentUser(ctx)
	if !ok {
		return
	}

	today, err := core.TodayInTimezone(user.Timezone)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "profile timezone is invalid")
		return
	}

	entry := models.NewDailyEntry(user.ID, today)
	err = e.db.Where("user_id = ? AND entry_date = ?", user.ID, today).First(entry).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load entry")
		return
	}

	utils.Success(ctx, gin.H{
		"date":  today,
		"tasks": core.IncompleteTasks(entry.Habits()),
	})
}

func (e *EntryController) currentUser(ctx *gin.Context) (models.User, bool) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return models.User{}, false
	}
	var user models.User
	if err := e.db.First(&user, userID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
		return models.User{}, false
	}
	return user, true
}
