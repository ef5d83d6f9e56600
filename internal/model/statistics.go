package model

import "time"

// DailyActivity 每日安全活动统计
type DailyActivity struct {
	Date         time.Time `json:"date"`
	Logins       int       `json:"logins"`
	FailedLogins int       `json:"failed_logins"`
	Validations  int       `json:"validations"`
}

// SecurityStatistics 安全事件统计信息
type SecurityStatistics struct {
	TotalValidations   int64           `json:"total_validations"`
	FailedValidations  int64           `json:"failed_validations"`
	OnlineValidations  int64           `json:"online_validations"`
	OfflineValidations int64           `json:"offline_validations"`
	TotalLogins        int64           `json:"total_logins"`
	FailedLogins       int64           `json:"failed_logins"`
	TotalUsers         int64           `json:"total_users"`
	ActiveUsers        int64           `json:"active_users"`
	DailyActivity      []DailyActivity `json:"daily_activity"`
}

// GetValidationFailureRate 计算许可证校验失败率
func (ss *SecurityStatistics) GetValidationFailureRate() float64 {
	if ss.TotalValidations == 0 {
		return 0
	}
	return float64(ss.FailedValidations) / float64(ss.TotalValidations)
}

// GetLoginFailureRate 计算登录失败率
func (ss *SecurityStatistics) GetLoginFailureRate() float64 {
	total := ss.TotalLogins + ss.FailedLogins
	if total == 0 {
		return 0
	}
	return float64(ss.FailedLogins) / float64(total)
}

// GetDailyActivityByDate 获取指定日期的活动统计
func (ss *SecurityStatistics) GetDailyActivityByDate(date time.Time) *DailyActivity {
	for _, activity := range ss.DailyActivity {
		if activity.Date.Year() == date.Year() &&
			activity.Date.Month() == date.Month() &&
			activity.Date.Day() == date.Day() {
			return &activity
		}
	}
	return nil
}
