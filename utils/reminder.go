package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ninetyarc/ninetyarc/config"
	"github.com/ninetyarc/ninetyarc/core"
	"github.com/ninetyarc/ninetyarc/models"
)

// StartReminderScheduler launches a background goroutine that periodically
// emails users the habits still open for their local "today". Best-effort:
// failures are logged and retried on the next tick, and a Redis marker keeps
// each user to at most one reminder per local date.
func StartReminderScheduler(db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			c := config.Get()
			if !c.ReminderEnabled {
				continue
			}
			runReminderPass(db, c.ReminderLocalHour)
		}
	}()
}

func runReminderPass(db *gorm.DB, localHour int) {
	var users []models.User
	if err := db.Where("email <> ''").Find(&users).Error; err != nil {
		Sugar.Warnf("reminder pass: user query failed: %v", err)
		return
	}

	for _, u := range users {
		if err := remindUser(db, u, localHour); err != nil {
			Sugar.Warnf("reminder for user %d failed: %v", u.ID, err)
		}
	}
}

func remindUser(db *gorm.DB, u models.User, localHour int) error {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return fmt.Errorf("bad timezone %q: %w", u.Timezone, err)
	}
	now := time.Now().In(loc)
	if now.Hour() < localHour {
		return nil
	}

	today := now.Format(core.DateLayout)
	if !withinArc(u.ArcStartDate, today) {
		return nil
	}
	if alreadyReminded(u.ID, today) {
		return nil
	}

	entry := models.NewDailyEntry(u.ID, today)
	err = db.Where("user_id = ? AND entry_date = ?", u.ID, today).First(entry).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if entry.IsComplete {
		return nil
	}

	tasks := core.IncompleteTasks(entry.Habits())
	if len(tasks) == 0 {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Day %d of your arc. Still open today:\n\n", core.DayNumber(u.ArcStartDate, today))
	for _, t := range tasks {
		fmt.Fprintf(&body, "  - %s: %s\n", t.Name, t.Details)
	}
	body.WriteString("\nClose them out before midnight to keep the streak alive.\n")

	subject := fmt.Sprintf("%d tasks left today", len(tasks))
	if err := SendMail(u.Email, subject, body.String()); err != nil {
		return err
	}
	markReminded(u.ID, today)
	Sugar.Infof("reminder sent user=%d date=%s tasks=%d", u.ID, today, len(tasks))
	return nil
}

// withinArc reports whether today falls inside [arcStart, arcStart+90).
func withinArc(arcStart, today string) bool {
	start, err := core.ParseDate(arcStart)
	if err != nil {
		return false
	}
	end := start.AddDate(0, 0, core.ArcDays).Format(core.DateLayout)
	return today >= arcStart && today < end
}

func reminderKey(userID uint, date string) string {
	return fmt.Sprintf("reminder:sent:%d:%s", userID, date)
}

func alreadyReminded(userID uint, date string) bool {
	rc := GetRedis()
	if rc == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := rc.Exists(ctx, reminderKey(userID, date)).Result()
	return err == nil && n > 0
}

func markReminded(userID uint, date string) {
	rc := GetRedis()
	if rc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// 30h covers the rest of the local day in every timezone.
	_ = rc.Set(ctx, reminderKey(userID, date), "1", 30*time.Hour).Err()
}
