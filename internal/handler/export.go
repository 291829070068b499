package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"daily-todo/internal/middleware"
	"daily-todo/internal/models"
	"daily-todo/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 负责待办数据导出
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) listForExport(userID string) ([]models.Todo, error) {
	var todos []models.Todo
	err := h.DB.Where("user_id = ?", userID).
		Order("due_date ASC").
		Order("due_time ASC").
		Find(&todos).Error
	return todos, err
}

func completedText(done bool) string {
	if done {
		return "已完成"
	}
	return "未完成"
}

// ExportCSV 导出待办为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "未授权访问")
		return
	}

	todos, err := h.listForExport(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}

	// 设置响应头
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM（让 Excel 正确识别中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// 写入表头
	writer.Write([]string{"标题", "描述", "日期", "时间", "状态"})

	// 写入数据
	for _, t := range todos {
		writer.Write([]string{
			t.Title,
			t.Description,
			t.DueDate.Format("2006-01-02"),
			t.DueTime,
			completedText(t.Completed),
		})
	}
}

// ExportXLSX 导出待办为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "未授权访问")
		return
	}

	todos, err := h.listForExport(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "查询失败")
		return
	}

	f := excelize.NewFile()
	sheetName := "待办清单"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "创建工作表失败")
		return
	}
	f.SetActiveSheet(index)

	// 设置表头
	headers := []string{"标题", "描述", "日期", "时间", "状态"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	// 写入数据
	for idx, t := range todos {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.DueDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.DueTime)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), completedText(t.Completed))
	}

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 35)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 8)
	f.SetColWidth(sheetName, "E", "E", 10)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "导出失败")
	}
}
