package service

import (
	"errors"
	"fmt"
)

// 核心操作的错误分类，持久层错误在各操作边界统一包装为 ErrStorage
var (
	ErrDuplicateUsername  = errors.New("用户名已存在")
	ErrOwnerAlreadyExists = errors.New("业主账户已存在")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrOwnerRoleImmutable = errors.New("业主角色不允许变更")
	ErrNoFieldsSpecified  = errors.New("未指定任何更新字段")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrLicenseInvalid     = errors.New("许可证无效")
	ErrAlreadyInitialized = errors.New("系统已初始化")
	ErrNotInitialized     = errors.New("系统尚未初始化")
	ErrStorage            = errors.New("存储错误")
)

func storageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
