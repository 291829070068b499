package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-todo/internal/middleware"
	"daily-todo/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret = "handler-test-secret"
	// 测试用低 cost，正式注册走配置里的 12
	testBcryptCost = 4
	// 刻意用很小的分页，方便测试翻页
	testPageSize = 2
)

// setupTestDB 每个测试一个独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Todo{}); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	return db
}

// setupTestAPI 按 router.SetupRouter 的接线方式搭一个只含 API 的引擎
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	r := gin.New()
	api := r.Group("/api")

	authHandler := NewAuthHandler(db, testSecret, 168, testBcryptCost, false)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(testSecret, db))

	protected.GET("/auth/me", authHandler.Me)

	todoHandler := NewTodoHandler(db, testPageSize)
	protected.POST("/todos", todoHandler.CreateTodo)
	protected.GET("/todos", todoHandler.ListTodos)
	protected.PUT("/todos/:id", todoHandler.UpdateTodo)
	protected.DELETE("/todos/:id", todoHandler.DeleteTodo)

	exportHandler := NewExportHandler(db)
	protected.GET("/todos/export/csv", exportHandler.ExportCSV)
	protected.GET("/todos/export/xlsx", exportHandler.ExportXLSX)

	return r, db
}

// doJSON 发一个 JSON 请求，可附带会话 cookie
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody 解出统一响应结构
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v (body=%s)", err, w.Body.String())
	}
	return body
}

// newBearerRequest 构造带 Authorization: Bearer 头的 GET 请求
func newBearerRequest(t *testing.T, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin 注册并登录一个用户，返回会话 cookie
func registerAndLogin(t *testing.T, r *gin.Engine, email, password string) *http.Cookie {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("注册失败: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}

	for _, ck := range w.Result().Cookies() {
		if ck.Name == "Authorization" {
			return ck
		}
	}
	t.Fatal("登录响应未设置会话 cookie")
	return nil
}
