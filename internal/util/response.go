package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 通用返回结构里的 data 使用 map
type Response map[string]interface{}

// Success 统一成功返回 {"success":true,"data":...}
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error 统一错误返回 {"success":false,"error":"..."}
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error":   msg,
	})
}
