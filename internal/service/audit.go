package service

import (
	"log"
	"time"

	"business-management-system/internal/database"
	"business-management-system/internal/model"
)

// 审计日志动作标签
const (
	ActionUserCreated         = "USER_CREATED"
	ActionUserUpdated         = "USER_UPDATED"
	ActionUserLogin           = "USER_LOGIN"
	ActionLoginFailed         = "LOGIN_FAILED"
	ActionPasswordChanged     = "PASSWORD_CHANGED"
	ActionSystemInitialized   = "SYSTEM_INITIALIZED"
	ActionBusinessInfoUpdated = "BUSINESS_INFO_UPDATED"
)

// RecordAction 追加一条审计日志
// 写入失败只记诊断日志，绝不影响被审计的操作本身
func RecordAction(userID *uint, actionType string, details string) {
	entry := &model.AuditLog{
		UserID:        userID,
		ActionType:    actionType,
		ActionDetails: details,
		CreatedAt:     time.Now(),
	}
	if err := database.DB.Create(entry).Error; err != nil {
		log.Printf("审计日志写入失败: %v", err)
	}
}

// GetAuditLogs 分页获取审计日志
func GetAuditLogs(page, pageSize int) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var total int64

	db := database.DB

	// 获取总数
	if err := db.Model(&model.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, storageError(err)
	}

	// 获取分页数据
	offset := (page - 1) * pageSize
	if err := db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logs).Error; err != nil {
		return nil, 0, storageError(err)
	}

	return logs, total, nil
}

// GetUserAuditLogs 分页获取指定用户的审计日志
func GetUserAuditLogs(userID uint, page, pageSize int) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var total int64

	db := database.DB.Model(&model.AuditLog{}).Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, storageError(err)
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logs).Error; err != nil {
		return nil, 0, storageError(err)
	}

	return logs, total, nil
}

// GetLicenseValidations 分页获取许可证校验记录
func GetLicenseValidations(page, pageSize int) ([]model.LicenseValidation, int64, error) {
	var records []model.LicenseValidation
	var total int64

	db := database.DB

	if err := db.Model(&model.LicenseValidation{}).Count(&total).Error; err != nil {
		return nil, 0, storageError(err)
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, 0, storageError(err)
	}

	return records, total, nil
}
