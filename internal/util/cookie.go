package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName 会话 cookie 名，里面放的就是 JWT
	SessionCookieName = "Authorization"
	// SessionCookieMaxAge 会话 cookie 有效期：7 天（秒）
	SessionCookieMaxAge = 7 * 24 * 60 * 60
)

// SetSessionCookie 写入会话 cookie：HttpOnly、SameSite=Lax、7 天、根路径。
// secure 只在生产（release 模式）下开启。
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, SessionCookieMaxAge, "/", "", secure, true)
}

// ClearSessionCookie 删除会话 cookie（MaxAge < 0）。
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
