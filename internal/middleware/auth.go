package middleware

import (
	"errors"
	"net/http"
	"strings"

	"daily-todo/internal/models"
	"daily-todo/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware 完整校验 JWT（签名 + 过期），并在 context 里放入当前用户。
// 这是 API 侧的权威检查：会话门卫放过来的请求在这里才真正验签、查库。
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Cookie Authorization（浏览器的正常路径）
		if cookie, err := c.Cookie(util.SessionCookieName); err == nil {
			tokenStr = cookie
		}

		// 2) Header: Authorization: Bearer xxx（脚本/调试用）
		if tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenStr = parts[1]
				}
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "未授权访问")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "未授权访问")
			c.Abort()
			return
		}

		// token 有效不代表用户还在：账号可能已被删掉
		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Error(c, http.StatusUnauthorized, "用户不存在")
			} else {
				util.Error(c, http.StatusInternalServerError, "查询用户失败")
			}
			c.Abort()
			return
		}

		c.Set("currentUser", &user)
		c.Next()
	}
}

// CurrentUser 从 context 取出 AuthMiddleware 放入的当前用户。
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
