package middleware

import (
	"net/http"
	"strings"
	"time"

	"daily-todo/internal/util"

	"github.com/gin-gonic/gin"
)

// publicRoutes 无需登录即可访问的页面（前缀匹配）
var publicRoutes = []string{"/login", "/register"}

func isPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

// SessionGate 页面路由的会话门卫，在路由渲染之前决定放行、跳转还是清 cookie。
// 只做结构/过期预检（DecodeTokenUnverified），不验签名、不查库，
// 每次请求的判定只依赖当前的路径和 cookie。API 和静态资源不挂这个中间件。
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		token, _ := c.Cookie(util.SessionCookieName)

		// 公开页面：已持有效 token 的用户跳回主页，其余放行
		if isPublicRoute(path) {
			if token != "" {
				if _, ok := util.DecodeTokenUnverified(token, time.Now()); ok {
					c.Redirect(http.StatusFound, "/")
					c.Abort()
					return
				}
			}
			c.Next()
			return
		}

		// 受保护页面：没带 token 直接去登录页
		if token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// token 形状/过期检查不通过：清 cookie 再去登录页
		if _, ok := util.DecodeTokenUnverified(token, time.Now()); !ok {
			util.ClearSessionCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
