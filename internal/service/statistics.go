package service

import (
	"time"

	"business-management-system/internal/database"
	"business-management-system/internal/model"
)

// GetSecurityStatistics 汇总指定时间段内的安全事件统计
func GetSecurityStatistics(start, end time.Time) (*model.SecurityStatistics, error) {
	db := database.DB
	stats := &model.SecurityStatistics{
		DailyActivity: make([]model.DailyActivity, 0),
	}

	err := db.Model(&model.LicenseValidation{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&stats.TotalValidations).Error
	if err != nil {
		return nil, storageError(err)
	}
	err = db.Model(&model.LicenseValidation{}).
		Where("created_at BETWEEN ? AND ? AND is_successful = ?", start, end, false).
		Count(&stats.FailedValidations).Error
	if err != nil {
		return nil, storageError(err)
	}

	err = db.Model(&model.LicenseValidation{}).
		Where("created_at BETWEEN ? AND ? AND validation_method = ?", start, end, model.ValidationOnline).
		Count(&stats.OnlineValidations).Error
	if err != nil {
		return nil, storageError(err)
	}
	err = db.Model(&model.LicenseValidation{}).
		Where("created_at BETWEEN ? AND ? AND validation_method = ?", start, end, model.ValidationOffline).
		Count(&stats.OfflineValidations).Error
	if err != nil {
		return nil, storageError(err)
	}

	err = db.Model(&model.AuditLog{}).
		Where("created_at BETWEEN ? AND ? AND action_type = ?", start, end, ActionUserLogin).
		Count(&stats.TotalLogins).Error
	if err != nil {
		return nil, storageError(err)
	}
	err = db.Model(&model.AuditLog{}).
		Where("created_at BETWEEN ? AND ? AND action_type = ?", start, end, ActionLoginFailed).
		Count(&stats.FailedLogins).Error
	if err != nil {
		return nil, storageError(err)
	}

	if err := db.Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, storageError(err)
	}
	err = db.Model(&model.User{}).Where("is_active = ?", true).Count(&stats.ActiveUsers).Error
	if err != nil {
		return nil, storageError(err)
	}

	// 最近七天的每日活动
	today := time.Now().Truncate(24 * time.Hour)
	for i := 6; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		activity := model.DailyActivity{Date: dayStart}

		var logins, failed, checks int64
		db.Model(&model.AuditLog{}).
			Where("created_at >= ? AND created_at < ? AND action_type = ?", dayStart, dayEnd, ActionUserLogin).
			Count(&logins)
		db.Model(&model.AuditLog{}).
			Where("created_at >= ? AND created_at < ? AND action_type = ?", dayStart, dayEnd, ActionLoginFailed).
			Count(&failed)
		db.Model(&model.LicenseValidation{}).
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Count(&checks)

		activity.Logins = int(logins)
		activity.FailedLogins = int(failed)
		activity.Validations = int(checks)
		stats.DailyActivity = append(stats.DailyActivity, activity)
	}

	return stats, nil
}
