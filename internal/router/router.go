package router

import (
	"net/http"

	"daily-todo/internal/config"
	"daily-todo/internal/handler"
	"daily-todo/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates（静态资源不过会话门卫）
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	// ====== 页面 ======
	// 页面路由统一挂会话门卫：未登录跳 /login，已登录访问 /login 跳回主页
	pages := r.Group("", middleware.SessionGate())

	pages.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"title": "每日待办 - 主页",
		})
	})

	pages.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "每日待办 - 登录",
		})
	})

	pages.GET("/register", func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"title": "每日待办 - 注册",
		})
	})

	// ====== API ======
	// API 不过会话门卫，由 AuthMiddleware 做权威校验
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	cookieSecure := cfg.Server.Mode == gin.ReleaseMode

	// 登录/注册/登出接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours,
		cfg.Security.BcryptCost, cookieSecure)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, db))

	protected.GET("/auth/me", authHandler.Me)

	todoHandler := handler.NewTodoHandler(db, cfg.App.PageSize)
	protected.POST("/todos", todoHandler.CreateTodo)
	protected.GET("/todos", todoHandler.ListTodos)
	protected.PUT("/todos/:id", todoHandler.UpdateTodo)
	protected.DELETE("/todos/:id", todoHandler.DeleteTodo)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/todos/export/csv", exportHandler.ExportCSV)
	protected.GET("/todos/export/xlsx", exportHandler.ExportXLSX)

	return r
}
