package services

import (
	"errors"
	"time"

	"github.com/shaikRahilAhmed/nutriSync/config"
	"github.com/shaikRahilAhmed/nutriSync/models"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

func LogWeight(userID uint, weight float64) (*models.WeightLog, error) {
	if weight <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if weight < 10 || weight > 400 {
		return nil, errors.New("weight out of plausible range")
	}

	entry := models.WeightLog{
		UserID:     userID,
		Weight:     weight,
		RecordedAt: time.Now(),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListWeightLogs returns the most recent logs first. limit <= 0 means
// no limit.
func ListWeightLogs(userID uint, limit int) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	q := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&logs).Error
	return logs, err
}

// HasLoggedToday reports whether the user already recorded a weight
// since local midnight. The dashboard uses this to decide whether to
// prompt for today's weigh-in.
func HasLoggedToday(userID uint) (bool, error) {
	start := dayStartLocal(time.Now())

	var count int64
	err := config.DB.Model(&models.WeightLog{}).
		Where("user_id = ? AND recorded_at >= ?", userID, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// WeightProgress summarizes the journey from the first log to the most
// recent one.
func WeightProgress(userID uint) (map[string]interface{}, error) {
	var first, latest models.WeightLog

	err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_at asc").
		First(&first).Error
	if err != nil {
		return nil, err
	}

	if err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_at desc").
		First(&latest).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"start_weight":   first.Weight,
		"current_weight": latest.Weight,
		"change":         latest.Weight - first.Weight,
		"started_at":     first.RecordedAt,
		"updated_at":     latest.RecordedAt,
	}, nil
}
