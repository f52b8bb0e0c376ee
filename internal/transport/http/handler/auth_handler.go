package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gobnb-backend/internal/core/auth"
	"gobnb-backend/internal/domain"
	"gobnb-backend/internal/repo"
	"gobnb-backend/internal/service"
	"gobnb-backend/internal/storage"
	mdw "gobnb-backend/internal/transport/http/middleware"
	resp "gobnb-backend/internal/transport/http/response"
)

type AuthHandler struct {
	log   *zap.Logger
	users *service.UserService
	jwter *auth.JWTer
	store storage.Store
}

func NewAuthHandler(l *zap.Logger, users *service.UserService, jwter *auth.JWTer, store storage.Store) *AuthHandler {
	return &AuthHandler{log: l, users: users, jwter: jwter, store: store}
}

type registerIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type tokenPairOut struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         gin.H  `json:"user"`
}

// Register POST /api/auth/register/ 无邮箱验证环节
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.CreateUser(c.Request.Context(), in.Name, in.Email, in.Password)
	switch {
	case errors.Is(err, service.ErrEmailRequired):
		resp.Err(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrDuplicateEmail):
		resp.Err(c, http.StatusConflict, err.Error())
	case err != nil:
		h.log.Error("register", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
	default:
		h.issueTokens(c, u, http.StatusCreated)
	}
}

type loginIn struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login/ 成功时刷新 last_login 并签发令牌对
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.Authenticate(c.Request.Context(), in.Email, in.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		resp.Err(c, http.StatusUnauthorized, err.Error())
	case err != nil:
		h.log.Error("login", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
	default:
		h.issueTokens(c, u, http.StatusOK)
	}
}

type refreshIn struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Refresh POST /api/auth/token/refresh/ refresh 不轮换，原样返回
func (h *AuthHandler) Refresh(c *gin.Context) {
	var in refreshIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	claims, err := h.jwter.Parse(in.Refresh, auth.TokenRefresh)
	if err != nil {
		resp.Err(c, http.StatusUnauthorized, "invalid token")
		return
	}
	access, err := h.jwter.IssueAccess(claims.UID, claims.Staff, claims.Superuser)
	if err != nil {
		h.log.Error("issue access token", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	resp.Data(c, gin.H{"access_token": access, "refresh_token": in.Refresh})
}

// Me GET /api/auth/me/
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.users.FindByID(c.Request.Context(), c.GetString(mdw.KeyUserID))
	if err != nil {
		h.log.Error("load profile", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	if u == nil {
		resp.Err(c, http.StatusNotFound, "user not found")
		return
	}
	resp.Data(c, h.profile(u))
}

// Avatar POST /api/auth/avatar/ multipart 上传，成功后更新相对路径
func (h *AuthHandler) Avatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		resp.Err(c, http.StatusBadRequest, "no avatar uploaded")
		return
	}
	relPath, err := storage.NewObjectPath("uploads/avatars", fh.Filename)
	if err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.Err(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}
	defer f.Close()
	if err := h.store.Save(c.Request.Context(), relPath, f, fh.Size, fh.Header.Get("Content-Type")); err != nil {
		if errors.Is(err, storage.ErrFileTooBig) || errors.Is(err, storage.ErrInvalidFileType) {
			resp.Err(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("save avatar", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	uid := c.GetString(mdw.KeyUserID)
	if err := h.users.SetAvatar(c.Request.Context(), uid, relPath); err != nil {
		h.log.Error("update avatar", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	u, err := h.users.FindByID(c.Request.Context(), uid)
	if err != nil || u == nil {
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	resp.Data(c, gin.H{"avatar_url": h.users.AvatarURL(u)})
}

func (h *AuthHandler) issueTokens(c *gin.Context, u *domain.User, status int) {
	access, refresh, err := h.jwter.IssuePair(u.ID, u.IsStaff, u.IsSuperuser)
	if err != nil {
		h.log.Error("issue token pair", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	c.JSON(status, gin.H{"data": tokenPairOut{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         h.profile(u),
	}})
}

func (h *AuthHandler) profile(u *domain.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar_url": h.users.AvatarURL(u),
		"is_staff":   u.IsStaff,
	}
}
