package handler

import (
	"errors"
	"net/http"
	"time"

	"daily-todo/internal/middleware"
	"daily-todo/internal/models"
	"daily-todo/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler 负责注册/登录/登出相关接口
type AuthHandler struct {
	DB           *gorm.DB
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
	CookieSecure bool
}

// NewAuthHandler 构造函数
func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours, bcryptCost int, cookieSecure bool) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 7 * 24
	}
	return &AuthHandler{
		DB:           db,
		JWTSecret:    jwtSecret,
		TokenTTL:     time.Duration(ttlHours) * time.Hour,
		BcryptCost:   bcryptCost,
		CookieSecure: cookieSecure,
	}
}

// ---------- 注册 ----------

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "邮箱和密码是必填项")
		return
	}

	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "邮箱和密码是必填项")
		return
	}

	if len(req.Password) < 6 {
		util.Error(c, http.StatusBadRequest, "密码至少需要6个字符")
		return
	}

	// 邮箱唯一性：按存储值精确匹配（区分大小写）
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "注册失败，请稍后重试")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "该邮箱已被注册")
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "注册失败，请稍后重试")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "注册失败，请稍后重试")
		return
	}

	// 注册不自动登录，不发 token
	util.Success(c, util.Response{
		"user": user.Public(),
	})
}

// ---------- 登录 ----------

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "邮箱和密码是必填项")
		return
	}

	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "邮箱和密码是必填项")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 和密码错误用同一句话，避免暴露邮箱是否注册过
			util.Error(c, http.StatusUnauthorized, "邮箱或密码错误")
		} else {
			util.Error(c, http.StatusInternalServerError, "登录失败，请稍后重试")
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, "邮箱或密码错误")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "登录失败，请稍后重试")
		return
	}

	util.SetSessionCookie(c, token, h.CookieSecure)

	util.Success(c, util.Response{
		"user":  user.Public(),
		"token": token,
	})
}

// ---------- 登出 ----------

// Logout 无条件清掉会话 cookie，幂等：没登录也返回成功。
// 注意这只是删掉客户端的副本，已签发的 token 到自然过期前仍然有效。
func (h *AuthHandler) Logout(c *gin.Context) {
	util.ClearSessionCookie(c)
	util.Success(c, util.Response{
		"message": "登出成功",
	})
}

// ---------- 当前用户 ----------

// Me 返回当前登录用户信息（需要经过 AuthMiddleware）
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "未授权访问")
		return
	}

	util.Success(c, util.Response{
		"user": user.Public(),
	})
}
