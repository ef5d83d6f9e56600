package handler

import (
	"errors"
	"strconv"

	"business-management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CreateUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	IsOwner  bool   `json:"is_owner"`
}

type UpdateUserInput struct {
	Role     *string `json:"role"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password"`
}

// HandleCreateUser 创建员工账户
func HandleCreateUser(c *fiber.Ctx) error {
	input := new(CreateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	if input.Username == "" || input.Password == "" || input.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "用户名、密码和角色不能为空",
		})
	}

	userID, err := service.CreateUser(input.Username, input.Password, input.Role, input.FullName, input.IsOwner)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUsername):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "用户名已存在",
			})
		case errors.Is(err, service.ErrOwnerAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "业主账户已存在",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "用户创建失败",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": userID,
	})
}

// HandleListUsers 返回全部用户
func HandleListUsers(c *fiber.Ctx) error {
	users, err := service.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取用户列表失败",
		})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// HandleGetUser 查询单个用户
func HandleGetUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的用户ID",
		})
	}

	user, err := service.GetUser(uint(userID))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "用户不存在",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取用户失败",
		})
	}

	return c.JSON(user)
}

// HandleUpdateUser 部分更新用户信息，未提供的字段保持不变
func HandleUpdateUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的用户ID",
		})
	}

	input := new(UpdateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	update := service.UserUpdate{
		Role:     input.Role,
		FullName: input.FullName,
		IsActive: input.IsActive,
		Password: input.Password,
	}

	if err := service.UpdateUser(uint(userID), update); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "用户不存在",
			})
		case errors.Is(err, service.ErrOwnerRoleImmutable):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "业主角色不允许变更",
			})
		case errors.Is(err, service.ErrNoFieldsSpecified):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "未指定任何更新字段",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "更新用户信息失败",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "用户信息更新成功",
	})
}
