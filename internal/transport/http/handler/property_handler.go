package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gobnb-backend/internal/service"
	"gobnb-backend/internal/storage"
	mdw "gobnb-backend/internal/transport/http/middleware"
	resp "gobnb-backend/internal/transport/http/response"
)

type PropertyHandler struct {
	log   *zap.Logger
	svc   *service.PropertyService
	store storage.Store
}

func NewPropertyHandler(l *zap.Logger, svc *service.PropertyService, store storage.Store) *PropertyHandler {
	return &PropertyHandler{log: l, svc: svc, store: store}
}

// List GET /api/properties/ 公开接口，无参数无副作用。
// 存储不可用时返回 500，不泄露内部细节。
func (h *PropertyHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.log.Error("list properties", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}
	resp.Data(c, rows)
}

type createPropertyIn struct {
	Title         string `form:"title"`
	Description   string `form:"description"`
	PricePerNight int    `form:"price_per_night"`
	Bedrooms      int    `form:"bedrooms"`
	Bathrooms     int    `form:"bathrooms"`
	Guests        int    `form:"guests"`
	Country       string `form:"country"`
	CountryCode   string `form:"country_code"`
	Category      string `form:"category"`
}

// Create POST /api/properties/ 需登录，multipart 表单 + image 文件
func (h *PropertyHandler) Create(c *gin.Context) {
	var in createPropertyIn
	if err := c.ShouldBind(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		resp.Err(c, http.StatusBadRequest, service.ErrImageRequired.Error())
		return
	}
	relPath, err := storage.NewObjectPath("uploads/properties", fh.Filename)
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
		h.log.Error("save property image", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), service.CreatePropertyInput{
		Title:         in.Title,
		Description:   in.Description,
		PricePerNight: in.PricePerNight,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		Guests:        in.Guests,
		Country:       in.Country,
		CountryCode:   in.CountryCode,
		Category:      in.Category,
		Image:         relPath,
		LandlordID:    c.GetString(mdw.KeyUserID),
	})
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrImageRequired),
		errors.Is(err, service.ErrNegativeValue):
		resp.Err(c, http.StatusBadRequest, err.Error())
	case err != nil:
		h.log.Error("create property", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "")
	default:
		resp.Created(c, h.svc.Row(p))
	}
}
