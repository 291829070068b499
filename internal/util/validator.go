package util

import (
	"fmt"
	"regexp"
	"time"
)

// 时间必须是补零的两段式，例如 "09:30"；time.Parse 单独用会放过 "9:30"
var dueTimeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ValidateDate 验证日期格式（必须为 YYYY-MM-DD）
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateDueTime 验证时间格式（必须为 HH:MM，可为空）
func ValidateDueTime(timeStr string) error {
	if timeStr == "" {
		return nil
	}
	if !dueTimeRe.MatchString(timeStr) {
		return fmt.Errorf("invalid time format: %q", timeStr)
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}
	return nil
}
