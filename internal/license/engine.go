package license

import (
	"fmt"
	"log"
	"time"

	"business-management-system/internal/database"
	"business-management-system/internal/hardware"
	"business-management-system/internal/model"
)

// 离线校验的有效窗口，超过后必须重新在线校验
const revalidationInterval = 30 * 24 * time.Hour

// 可在测试中替换指纹来源
var fingerprint = hardware.Fingerprint

// IsInitialized 系统配置行存在即视为已初始化
func IsInitialized() bool {
	var count int64
	if err := database.DB.Model(&model.SystemConfig{}).Count(&count).Error; err != nil {
		log.Printf("检查系统初始化状态失败: %v", err)
		return false
	}
	return count > 0
}

// Validate 校验当前许可证
// 校验只返回布尔结果，过程中的任何错误都记录为离线失败
func Validate() (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			logValidation(false, model.ValidationOffline, fmt.Sprintf("校验异常: %v", r))
			valid = false
		}
	}()

	// 1. 读取系统配置
	var config model.SystemConfig
	if err := database.DB.First(&config).Error; err != nil {
		logValidation(false, model.ValidationOffline, "未找到系统配置")
		return false
	}

	// 2. 核对硬件指纹，许可证不可转移到其他机器
	if fingerprint() != config.HardwareID {
		logValidation(false, model.ValidationOffline, "硬件标识不匹配")
		return false
	}

	// 3. 判断是否需要在线重新校验
	needOnline := config.LastValidationDate == nil ||
		time.Since(*config.LastValidationDate) > revalidationInterval

	// 4. 在线校验失败时不回退到离线通过
	if needOnline {
		ok, err := onlineValidator.Validate(config.LicenseKey)
		if err != nil {
			logValidation(false, model.ValidationOnline, "在线校验失败: "+err.Error())
			return false
		}
		if !ok {
			logValidation(false, model.ValidationOnline, "在线校验未通过")
			return false
		}

		now := time.Now()
		err = database.DB.Model(&model.SystemConfig{}).
			Where("id = ?", config.ID).
			Update("last_validation_date", now).Error
		if err != nil {
			logValidation(false, model.ValidationOffline, "更新校验时间失败: "+err.Error())
			return false
		}
		logValidation(true, model.ValidationOnline, "在线校验通过")
	}

	// 5. 本地校验通过
	logValidation(true, model.ValidationOffline, "本地校验通过")
	return true
}

// logValidation 追加许可证校验记录，写入失败不影响校验流程
func logValidation(isSuccessful bool, method string, message string) {
	record := &model.LicenseValidation{
		IsSuccessful:     isSuccessful,
		ValidationMethod: method,
		ErrorMessage:     message,
		CreatedAt:        time.Now(),
	}
	if err := database.DB.Create(record).Error; err != nil {
		log.Printf("许可证校验记录写入失败: %v", err)
	}
}
