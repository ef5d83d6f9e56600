package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"business-management-system/internal/database"
	"business-management-system/internal/license"
	"business-management-system/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HashPassword 加盐哈希密码，每次调用都会生成新盐
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword 用哈希库自带的比较函数校验密码
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AuthResult 认证成功后返回给上层的会话信息
type AuthResult struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	IsOwner  bool   `json:"is_owner"`
}

// UserUpdate 部分更新请求，为 nil 的字段不修改
type UserUpdate struct {
	Role     *string
	FullName *string
	IsActive *bool
	Password *string
}

// CreateUser 创建用户，业主唯一性检查和插入在同一事务内完成
func CreateUser(username, password, role, fullName string, isOwner bool) (uint, error) {
	var userID uint
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := createUserTx(tx, username, password, role, fullName, isOwner)
		if err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	RecordAction(nil, ActionUserCreated, fmt.Sprintf("创建用户 %s，角色 %s", username, role))
	return userID, nil
}

func createUserTx(tx *gorm.DB, username, password, role, fullName string, isOwner bool) (uint, error) {
	// 全系统最多一个业主
	if role == model.RoleOwner || isOwner {
		var ownerCount int64
		err := tx.Model(&model.User{}).
			Where("role = ? OR is_owner = ?", model.RoleOwner, true).
			Count(&ownerCount).Error
		if err != nil {
			return 0, storageError(err)
		}
		if ownerCount > 0 {
			return 0, ErrOwnerAlreadyExists
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		FullName:     fullName,
		IsActive:     true,
		IsOwner:      isOwner,
	}
	if err := tx.Create(user).Error; err != nil {
		// 唯一约束冲突翻译为领域错误
		if strings.Contains(err.Error(), "idx_users_single_owner") {
			return 0, ErrOwnerAlreadyExists
		}
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateUsername
		}
		return 0, storageError(err)
	}
	return user.ID, nil
}

// Authenticate 校验用户凭证
// 许可证无效时直接拒绝，不接触任何凭证数据
// 用户不存在、已停用和密码错误对调用方不可区分
func Authenticate(username, password string) (*AuthResult, error) {
	if !license.Validate() {
		return nil, ErrLicenseInvalid
	}

	var user model.User
	err := database.DB.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storageError(err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		RecordAction(nil, ActionLoginFailed, fmt.Sprintf("用户 %s 登录失败", username))
		return nil, ErrInvalidCredentials
	}

	// 更新最后登录时间，失败不影响登录
	database.DB.Model(&user).Update("last_login", time.Now())

	RecordAction(&user.ID, ActionUserLogin, fmt.Sprintf("用户 %s 登录成功", username))
	return &AuthResult{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
		IsOwner:  user.IsOwner,
	}, nil
}

// UpdateUser 部分更新用户信息
func UpdateUser(userID uint, update UserUpdate) error {
	if update.Role == nil && update.FullName == nil && update.IsActive == nil && update.Password == nil {
		return ErrNoFieldsSpecified
	}

	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return storageError(err)
	}

	// 业主的角色不允许改动
	if user.IsOwner && update.Role != nil && *update.Role != model.RoleOwner {
		return ErrOwnerRoleImmutable
	}

	fields := map[string]interface{}{}
	if update.Role != nil {
		fields["role"] = *update.Role
	}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}
	if update.Password != nil {
		hash, err := HashPassword(*update.Password)
		if err != nil {
			return err
		}
		fields["password_hash"] = hash
	}

	if err := database.DB.Model(&user).Updates(fields).Error; err != nil {
		return storageError(err)
	}

	RecordAction(nil, ActionUserUpdated, fmt.Sprintf("更新用户 #%d", userID))
	return nil
}

// ChangePassword 登录用户修改自己的密码，需先校验当前密码
func ChangePassword(userID uint, currentPassword, newPassword string) error {
	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return storageError(err)
	}

	if !CheckPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := database.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		return storageError(err)
	}

	RecordAction(&user.ID, ActionPasswordChanged, fmt.Sprintf("用户 %s 修改了密码", user.Username))
	return nil
}

// GetUser 按 ID 查询用户
func GetUser(userID uint) (*model.User, error) {
	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError(err)
	}
	return &user, nil
}

// ListUsers 返回全部用户
func ListUsers() ([]model.User, error) {
	var users []model.User
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		return nil, storageError(err)
	}
	return users, nil
}
