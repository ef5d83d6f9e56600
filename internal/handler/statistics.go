package handler

import (
	"time"

	"business-management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleSecurityStatistics 处理安全事件统计请求
func HandleSecurityStatistics(c *fiber.Ctx) error {
	// 获取查询参数
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	// 解析日期
	var start, end time.Time
	var err error

	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "开始日期格式错误，应为 YYYY-MM-DD",
			})
		}
	} else {
		// 默认为30天前
		start = time.Now().AddDate(0, 0, -30)
	}

	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "结束日期格式错误，应为 YYYY-MM-DD",
			})
		}
		// 包含结束当天
		end = end.AddDate(0, 0, 1)
	} else {
		// 默认为当前时间
		end = time.Now()
	}

	stats, err := service.GetSecurityStatistics(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "获取统计信息失败",
		})
	}

	return c.JSON(stats)
}
