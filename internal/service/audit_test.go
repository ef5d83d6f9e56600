package service

import (
	"fmt"
	"testing"
	"time"

	"business-management-system/internal/database"
	"business-management-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAction(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	userID := uint(3)
	RecordAction(nil, ActionLoginFailed, "系统触发的动作")
	RecordAction(&userID, ActionUserLogin, "用户触发的动作")

	var entries []model.AuditLog
	require.NoError(t, database.DB.Order("id").Find(&entries).Error)
	require.Len(t, entries, 2)

	assert.Nil(t, entries[0].UserID)
	require.NotNil(t, entries[1].UserID)
	assert.Equal(t, userID, *entries[1].UserID)
}

func TestGetAuditLogsPagination(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	for i := 0; i < 15; i++ {
		RecordAction(nil, ActionUserUpdated, fmt.Sprintf("操作 %d", i))
	}

	logs, total, err := GetAuditLogs(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, logs, 10)

	logs, total, err = GetAuditLogs(2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, logs, 5)
}

func TestGetUserAuditLogs(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	first := uint(1)
	second := uint(2)
	RecordAction(&first, ActionUserLogin, "第一个用户")
	RecordAction(&second, ActionUserLogin, "第二个用户")
	RecordAction(&first, ActionPasswordChanged, "第一个用户")

	logs, total, err := GetUserAuditLogs(first, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)
}

func TestGetLicenseValidations(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	records := []model.LicenseValidation{
		{IsSuccessful: true, ValidationMethod: model.ValidationOffline, CreatedAt: time.Now()},
		{IsSuccessful: false, ValidationMethod: model.ValidationOnline, ErrorMessage: "在线校验未通过", CreatedAt: time.Now()},
	}
	require.NoError(t, database.DB.Create(&records).Error)

	got, total, err := GetLicenseValidations(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}

func TestGetSecurityStatistics(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()

	userID := uint(1)
	RecordAction(&userID, ActionUserLogin, "登录")
	RecordAction(&userID, ActionUserLogin, "登录")
	RecordAction(nil, ActionLoginFailed, "失败")

	validations := []model.LicenseValidation{
		{IsSuccessful: true, ValidationMethod: model.ValidationOffline, CreatedAt: time.Now()},
		{IsSuccessful: true, ValidationMethod: model.ValidationOnline, CreatedAt: time.Now()},
		{IsSuccessful: false, ValidationMethod: model.ValidationOnline, CreatedAt: time.Now()},
	}
	require.NoError(t, database.DB.Create(&validations).Error)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	stats, err := GetSecurityStatistics(start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalValidations)
	assert.Equal(t, int64(1), stats.FailedValidations)
	assert.Equal(t, int64(2), stats.OnlineValidations)
	assert.Equal(t, int64(1), stats.OfflineValidations)
	assert.Equal(t, int64(2), stats.TotalLogins)
	assert.Equal(t, int64(1), stats.FailedLogins)
	assert.Len(t, stats.DailyActivity, 7)

	assert.InDelta(t, 1.0/3.0, stats.GetValidationFailureRate(), 0.001)
	assert.InDelta(t, 1.0/3.0, stats.GetLoginFailureRate(), 0.001)
}
