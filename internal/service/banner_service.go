package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	bannerCacheKey = "banners:public"
	bannerCacheTTL = 60 * time.Second
)

// BannerService serves the public login-page banners (cached, fail-open) and
// the admin-side banner management.
type BannerService interface {
	// PublicList never returns an error: the login page must render even
	// when the backing store is down, so failures degrade to an empty list.
	PublicList(ctx context.Context) *dto.PublicBannersResponse
	Create(ctx context.Context, req dto.CreateBannerRequest) (*dto.BannerResponse, error)
	List(ctx context.Context) ([]dto.BannerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBannerRequest) (*dto.BannerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerService struct {
	banners repository.BannerRepository
	rdb     *redis.Client
}

func NewBannerService(banners repository.BannerRepository, rdb *redis.Client) BannerService {
	return &bannerService{banners: banners, rdb: rdb}
}

func (s *bannerService) PublicList(ctx context.Context) *dto.PublicBannersResponse {
	empty := &dto.PublicBannersResponse{Banners: []dto.PublicBannerResponse{}}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, bannerCacheKey).Bytes(); err == nil {
			var resp dto.PublicBannersResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp
			}
		}
	}

	bs, err := s.banners.ListActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("public banners: store lookup failed, serving empty list")
		return empty
	}

	resp := &dto.PublicBannersResponse{Banners: make([]dto.PublicBannerResponse, len(bs))}
	for i, b := range bs {
		resp.Banners[i] = dto.PublicBannerResponse{ImageURL: b.ImageURL, LinkURL: b.LinkURL}
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, bannerCacheKey, data, bannerCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("public banners: cache write failed")
			}
		}
	}
	return resp
}

func (s *bannerService) Create(ctx context.Context, req dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	b := &model.InfoBanner{
		ImageURL:   req.ImageURL,
		LinkURL:    req.LinkURL,
		OrderIndex: req.OrderIndex,
		IsActive:   req.IsActive,
	}
	if err := s.banners.Create(ctx, b); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return toBannerResponse(b), nil
}

func (s *bannerService) List(ctx context.Context) ([]dto.BannerResponse, error) {
	bs, err := s.banners.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BannerResponse, len(bs))
	for i := range bs {
		resp[i] = *toBannerResponse(&bs[i])
	}
	return resp, nil
}

func (s *bannerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	b, err := s.banners.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.ImageURL != "" {
		b.ImageURL = req.ImageURL
	}
	if req.LinkURL != "" {
		b.LinkURL = req.LinkURL
	}
	if req.OrderIndex != nil {
		b.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if err := s.banners.Update(ctx, b); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return toBannerResponse(b), nil
}

func (s *bannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *bannerService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, bannerCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("banner cache invalidation failed")
	}
}

func toBannerResponse(b *model.InfoBanner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:         b.ID.String(),
		ImageURL:   b.ImageURL,
		LinkURL:    b.LinkURL,
		OrderIndex: b.OrderIndex,
		IsActive:   b.IsActive,
	}
}
