package handler

import (
	"strconv"

	"business-management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleRecordAction 界面层上报审计事件
func HandleRecordAction(c *fiber.Ctx) error {
	type RecordInput struct {
		ActionType string `json:"action_type"`
		Details    string `json:"details"`
	}

	input := new(RecordInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	if input.ActionType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "动作类型不能为空",
		})
	}

	userID := c.Locals("userID").(uint)
	service.RecordAction(&userID, input.ActionType, input.Details)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "已记录",
	})
}

// HandleGetAuditLogs 分页获取审计日志
func HandleGetAuditLogs(c *fiber.Ctx) error {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))

	// 限制页面大小
	if pageSize > 100 {
		pageSize = 100
	}

	logs, total, err := service.GetAuditLogs(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取审计日志失败",
		})
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": total,
		"page":  page,
	})
}

// HandleGetUserAuditLogs 分页获取指定用户的审计日志
func HandleGetUserAuditLogs(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的用户ID",
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))

	if pageSize > 100 {
		pageSize = 100
	}

	logs, total, err := service.GetUserAuditLogs(uint(userID), page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取审计日志失败",
		})
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": total,
		"page":  page,
	})
}

// HandleGetLicenseValidations 分页获取许可证校验记录
func HandleGetLicenseValidations(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))

	if pageSize > 100 {
		pageSize = 100
	}

	records, total, err := service.GetLicenseValidations(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取校验记录失败",
		})
	}

	return c.JSON(fiber.Map{
		"validations": records,
		"total":       total,
		"page":        page,
	})
}
