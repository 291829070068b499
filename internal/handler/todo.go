package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"daily-todo/internal/middleware"
	"daily-todo/internal/models"
	"daily-todo/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TodoHandler 负责待办事项相关接口
type TodoHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewTodoHandler(db *gorm.DB, pageSize int) *TodoHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TodoHandler{DB: db, PageSize: pageSize}
}

// ---------- 请求结构 ----------

type createTodoReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
	DueTime     string `json:"due_time"` // HH:MM，可为空
}

type updateTodoReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	DueTime     *string `json:"due_time"`
	Completed   *bool   `json:"completed"`
}

// ---------- 新建 ----------

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "未授权访问")
		return
	}

	var req createTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "标题和日期是必填项")
		return
	}

	if req.Title == "" || req.DueDate == "" {
		util.Error(c, http.StatusBadRequest, "标题和日期是必填项")
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "日期格式错误")
		return
	}
	if err := util.ValidateDueTime(req.DueTime); err != nil {
		util.Error(c, http.StatusBadRequest, "时间格式错误")
		return
	}

	todo := models.Todo{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		DueTime:     req.DueTime,
	}
	if err := h.DB.Create(&todo).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "创建待办事项失败")
		return
	}

	util.Success(c, util.Response{
		"todo": todo,
	})
}

// ---------- 列表 ----------

// ListTodos 返回当前用户的待办列表。
// 可选过滤：date=YYYY-MM-DD 只看某一天，completed=true/false 按完成状态；
// 带 page=N（从 1 起）时按配置的 page_size 分页，不带则返回全部。
// 排序：未完成在前，再按日期、时间升序。
func (h *TodoHandler) ListTodos(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "未授权访问")
		return
	}

	query := h.DB.Where("user_id = ?", user.ID)

	if dateStr := c.Query("date"); dateStr != "" {
		if err := util.ValidateDate(dateStr); err != nil {
			util.Error(c, http.StatusBadRequest, "日期格式错误")
			return
		}
		start, _ := time.Parse("2006-01-02", dateStr)
		end := start.AddDate(0, 0, 1)
		query = query.Where("due_date >= ? AND due_date < ?", start, end)
	}

	if completedStr := c.Query("completed"); completedStr != "" {
		query = query.Where("completed = ?", completedStr == "true")
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			util.Error(c, http.StatusBadRequest, "页码格式错误")
			return
		}
		query = query.Offset((page - 1) * h.PageSize).Limit(h.PageSize)
	}

	var todos []models.Todo
	if err := query.
		Order("completed ASC").
		Order("due_date ASC").
		Order("due_time ASC").
		Find(&todos).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "获取待办事项失败")
		return
	}

	util.Success(c, util.Response{
		"todos": todos,
	})
}

// ---------- 更新 ----------

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "未授权访问")
		return
	}

	id := c.Param("id")

	// 先确认这条待办属于当前用户
	var todo models.Todo
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "待办事项不存在或无权限访问")
		} else {
			util.Error(c, http.StatusInternalServerError, "更新待办事项失败")
		}
		return
	}

	var req updateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "参数错误")
		return
	}

	// 只更新请求里出现的字段
	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "日期格式错误")
			return
		}
		todo.DueDate = dueDate
	}
	if req.DueTime != nil {
		if err := util.ValidateDueTime(*req.DueTime); err != nil {
			util.Error(c, http.StatusBadRequest, "时间格式错误")
			return
		}
		todo.DueTime = *req.DueTime
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	if err := h.DB.Save(&todo).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "更新待办事项失败")
		return
	}

	util.Success(c, util.Response{
		"todo": todo,
	})
}

// ---------- 删除 ----------

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "未授权访问")
		return
	}

	id := c.Param("id")

	var todo models.Todo
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "待办事项不存在或无权限访问")
		} else {
			util.Error(c, http.StatusInternalServerError, "删除待办事项失败")
		}
		return
	}

	if err := h.DB.Delete(&todo).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "删除待办事项失败")
		return
	}

	util.Success(c, util.Response{
		"message": "删除成功",
	})
}
