package util

import (
	"testing"
)

// TestValidateDate_Valid 测试有效日期
func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

// TestValidateDate_InvalidFormat 测试无效格式（异常）
func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01", // 月份错误
		"2024-01-32", // 日期错误
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

// TestValidateDueTime_Valid 测试有效时间（空值也合法）
func TestValidateDueTime_Valid(t *testing.T) {
	testCases := []string{"", "00:00", "09:30", "23:59"}

	for _, tm := range testCases {
		err := ValidateDueTime(tm)
		if err != nil {
			t.Errorf("ValidateDueTime(%q) error = %v, want nil", tm, err)
		}
	}
}

// TestValidateDueTime_InvalidFormat 测试无效时间格式（异常）
func TestValidateDueTime_InvalidFormat(t *testing.T) {
	testCases := []string{
		"9:30", // 不补零：会破坏 due_time 的字典序排序
		"09:3",
		"009:30",
		"24:00",
		"12:60",
		"noon",
		"12-30",
		" 9:30",
	}

	for _, tm := range testCases {
		err := ValidateDueTime(tm)
		if err == nil {
			t.Errorf("ValidateDueTime(%q) error = nil, want error", tm)
		}
	}
}
