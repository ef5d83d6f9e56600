package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"business-management-system/internal/database"
	"business-management-system/internal/hardware"
	"business-management-system/internal/license"
	"business-management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 可在测试中替换指纹来源
var fingerprintFn = hardware.Fingerprint

// BusinessInfo 暴露给界面层的企业信息
type BusinessInfo struct {
	BusinessName     string    `json:"business_name"`
	InstallationID   string    `json:"installation_id"`
	InstallationDate time.Time `json:"installation_date"`
}

// InitializeSystem 首次安装时的初始化流程，每个安装只运行一次
// 业主账户创建和配置写入在同一事务内，任一步失败则整体回滚
func InitializeSystem(ownerUsername, ownerPassword, ownerFullName, businessName string) error {
	var ownerID uint
	var licenseKey string

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 系统配置行已存在说明重复初始化
		var count int64
		if err := tx.Model(&model.SystemConfig{}).Count(&count).Error; err != nil {
			return storageError(err)
		}
		if count > 0 {
			return ErrAlreadyInitialized
		}

		// 创建业主账户
		id, err := createUserTx(tx, ownerUsername, ownerPassword, model.RoleOwner, ownerFullName, true)
		if err != nil {
			return err
		}
		ownerID = id

		// 生成绑定本机的许可证
		hardwareID := fingerprintFn()
		licenseKey, err = license.Generate(hardwareID, ownerID, ownerFullName)
		if err != nil {
			return err
		}

		config := &model.SystemConfig{
			InstallationID:   uuid.New().String(),
			LicenseKey:       licenseKey,
			BusinessName:     businessName,
			HardwareID:       hardwareID,
			OwnerID:          ownerID,
			InstallationDate: time.Now(),
		}
		if err := tx.Create(config).Error; err != nil {
			return storageError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 注册表镜像只作备份位置，失败不影响初始化结果
	if err := license.StoreInRegistry(licenseKey); err != nil {
		log.Printf("许可证镜像写入失败: %v", err)
	}

	RecordAction(nil, ActionUserCreated, fmt.Sprintf("创建用户 %s，角色 %s", ownerUsername, model.RoleOwner))
	RecordAction(&ownerID, ActionSystemInitialized, fmt.Sprintf("系统初始化完成，企业名称: %s", businessName))
	return nil
}

// GetBusinessInfo 读取企业信息
func GetBusinessInfo() (*BusinessInfo, error) {
	var config model.SystemConfig
	if err := database.DB.First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, storageError(err)
	}

	return &BusinessInfo{
		BusinessName:     config.BusinessName,
		InstallationID:   config.InstallationID,
		InstallationDate: config.InstallationDate,
	}, nil
}

// UpdateBusinessInfo 更新企业名称
func UpdateBusinessInfo(businessName string) error {
	var config model.SystemConfig
	if err := database.DB.First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInitialized
		}
		return storageError(err)
	}

	if err := database.DB.Model(&config).Update("business_name", businessName).Error; err != nil {
		return storageError(err)
	}

	RecordAction(nil, ActionBusinessInfoUpdated, fmt.Sprintf("企业名称更新为 %s", businessName))
	return nil
}

// GetLicenseInfo 解出当前许可证内容，供业主查看
func GetLicenseInfo() (*license.Payload, error) {
	var config model.SystemConfig
	if err := database.DB.First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, storageError(err)
	}
	return license.Decode(config.LicenseKey)
}
