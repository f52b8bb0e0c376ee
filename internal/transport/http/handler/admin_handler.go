package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gobnb-backend/internal/service"
	resp "gobnb-backend/internal/transport/http/response"
)

type AdminHandler struct {
	log   *zap.Logger
	users *service.UserService
	props *service.PropertyService
}

func NewAdminHandler(l *zap.Logger, users *service.UserService, props *service.PropertyService) *AdminHandler {
	return &AdminHandler{log: l, users: users, props: props}
}

type pageQ struct {
	Offset int `form:"offset,default=0"`
	Limit  int `form:"limit,default=20"`
}

func (q *pageQ) clamp() {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// ListUsers GET /admin/v1/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q pageQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	q.clamp()
	users, total, err := h.users.List(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		h.log.Error("list users", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	items := make([]gin.H, 0, len(users))
	for i := range users {
		u := &users[i]
		items = append(items, gin.H{
			"id":          u.ID,
			"email":       u.Email,
			"name":        u.Name,
			"is_active":   u.IsActive,
			"is_staff":    u.IsStaff,
			"date_joined": u.DateJoined,
			"last_login":  u.LastLogin,
		})
	}
	resp.Data(c, gin.H{"total": total, "items": items})
}

// DeleteUser DELETE /admin/v1/users/:id 硬删除，房源级联删除
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		resp.Err(c, http.StatusBadRequest, "missing id")
		return
	}
	n, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("delete user", zap.Error(err), zap.String("id", id))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	if n == 0 {
		resp.Err(c, http.StatusNotFound, "user not found")
		return
	}
	resp.Data(c, gin.H{"id": id})
}

// ListProperties GET /admin/v1/properties
func (h *AdminHandler) ListProperties(c *gin.Context) {
	var q pageQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	q.clamp()
	ps, total, err := h.props.ListPaged(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		h.log.Error("list properties", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	items := make([]gin.H, 0, len(ps))
	for i := range ps {
		p := &ps[i]
		items = append(items, gin.H{
			"id":              p.ID,
			"title":           p.Title,
			"price_per_night": p.PricePerNight,
			"country":         p.Country,
			"category":        p.Category,
			"landlord_id":     p.LandlordID,
			"created_at":      p.CreatedAt,
		})
	}
	resp.Data(c, gin.H{"total": total, "items": items})
}
