package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gobnb-backend/internal/core/cache"
	"gobnb-backend/internal/domain"
	"gobnb-backend/internal/media"
	"gobnb-backend/internal/repo"
	"gobnb-backend/pkg/utils"
)

const listCacheKey = "properties:list"

var (
	ErrTitleRequired = errors.New("title is required")
	ErrImageRequired = errors.New("image is required")
	ErrNegativeValue = errors.New("numeric fields must be non-negative")
)

// ListRow 列表投影：固定四个字段，不多不少
type ListRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	PricePerNight int    `json:"price_per_night"`
	ImageURL      string `json:"image_url"`
}

type PropertyService struct {
	props   *repo.PropertyRepo
	media   media.Resolver
	cache   *cache.Cache // 可为 nil，列表直接回源
	listTTL time.Duration
}

func NewPropertyService(props *repo.PropertyRepo, resolver media.Resolver, c *cache.Cache, listTTL time.Duration) *PropertyService {
	return &PropertyService{props: props, media: resolver, cache: c, listTTL: listTTL}
}

// List 全表读取并投影。空表返回空切片而非 nil，保证编码为 []
func (s *PropertyService) List(ctx context.Context) ([]ListRow, error) {
	if s.cache == nil {
		return s.loadList(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, listCacheKey, s.listTTL, s.loadList)
}

func (s *PropertyService) loadList(ctx context.Context) ([]ListRow, error) {
	ps, err := s.props.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ListRow, 0, len(ps))
	for i := range ps {
		rows = append(rows, s.toListRow(&ps[i]))
	}
	return rows, nil
}

// toListRow 纯投影，除 URL 拼接外无任何 I/O
func (s *PropertyService) toListRow(p *domain.Property) ListRow {
	return ListRow{
		ID:            p.ID,
		Title:         p.Title,
		PricePerNight: p.PricePerNight,
		ImageURL:      s.media.URL(p.Image),
	}
}

type CreatePropertyInput struct {
	Title         string
	Description   string
	PricePerNight int
	Bedrooms      int
	Bathrooms     int
	Guests        int
	Country       string
	CountryCode   string
	Category      string
	Image         string // 已存储的相对路径
	LandlordID    string
}

func (s *PropertyService) Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(in.Image) == "" {
		return nil, ErrImageRequired
	}
	if in.PricePerNight < 0 || in.Bedrooms < 0 || in.Bathrooms < 0 || in.Guests < 0 {
		return nil, ErrNegativeValue
	}
	p := &domain.Property{
		ID:            utils.NewID(),
		Title:         in.Title,
		Description:   in.Description,
		PricePerNight: in.PricePerNight,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		Guests:        in.Guests,
		Country:       in.Country,
		CountryCode:   in.CountryCode,
		Category:      in.Category,
		Image:         in.Image,
		LandlordID:    in.LandlordID,
	}
	if err := s.props.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, listCacheKey)
	}
	return p, nil
}

// Row 供创建响应复用同一投影
func (s *PropertyService) Row(p *domain.Property) ListRow { return s.toListRow(p) }

func (s *PropertyService) ListPaged(ctx context.Context, offset, limit int) ([]domain.Property, int64, error) {
	return s.props.List(ctx, offset, limit)
}
