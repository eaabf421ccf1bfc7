package service

import (
	"context"
	"fmt"
	"time"

	"hospital-api/internal/apperr"
	"hospital-api/internal/core/cache"
	"hospital-api/internal/domain"
)

const hospitalCacheTTL = 5 * time.Minute

type HospitalService struct {
	hospitals domain.HospitalRepository
	cache     *cache.Cache // 可为 nil，nil 时直连库
}

func NewHospitalService(hospitals domain.HospitalRepository, c *cache.Cache) *HospitalService {
	return &HospitalService{hospitals: hospitals, cache: c}
}

func hospitalKey(id uint) string { return fmt.Sprintf("hospital:%d", id) }

type HospitalCreateInput struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Status   string `json:"status"`
	Services string `json:"services"`
}

func (s *HospitalService) Create(in HospitalCreateInput) (*domain.Hospital, error) {
	if in.Name == "" || in.Address == "" || in.Status == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}
	h := &domain.Hospital{
		Name:     in.Name,
		Address:  in.Address,
		Status:   in.Status,
		Services: in.Services,
	}
	if err := s.hospitals.Create(h); err != nil {
		return nil, apperr.Internal("Failed to create hospital", err)
	}
	return h, nil
}

func (s *HospitalService) List() ([]domain.Hospital, error) {
	hs, err := s.hospitals.List()
	if err != nil {
		return nil, apperr.Internal("Failed to list hospitals", err)
	}
	return hs, nil
}

func (s *HospitalService) Get(ctx context.Context, id uint) (*domain.Hospital, error) {
	load := func(context.Context) (*domain.Hospital, error) {
		return s.hospitals.FindByID(id)
	}

	var h *domain.Hospital
	var err error
	if s.cache != nil {
		h, err = cache.GetOrLoadJSON(s.cache, ctx, hospitalKey(id), hospitalCacheTTL, load)
	} else {
		h, err = load(ctx)
	}
	if err != nil {
		return nil, apperr.Internal("Failed to get hospital", err)
	}
	if h == nil {
		return nil, apperr.NotFound("Hospital not found")
	}
	return h, nil
}

type HospitalUpdateInput struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Status   *string `json:"status"`
	Services *string `json:"services"`
}

func (s *HospitalService) Update(ctx context.Context, id uint, in HospitalUpdateInput) (*domain.Hospital, error) {
	h, err := s.hospitals.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Failed to update hospital", err)
	}
	if h == nil {
		return nil, apperr.NotFound("Hospital not found")
	}

	if in.Name != nil && *in.Name != "" {
		h.Name = *in.Name
	}
	if in.Address != nil && *in.Address != "" {
		h.Address = *in.Address
	}
	if in.Status != nil && *in.Status != "" {
		h.Status = *in.Status
	}
	if in.Services != nil {
		h.Services = *in.Services
	}

	if err := s.hospitals.Update(h); err != nil {
		return nil, apperr.Internal("Failed to update hospital", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, hospitalKey(id))
	}
	return h, nil
}

func (s *HospitalService) Delete(ctx context.Context, id uint) error {
	h, err := s.hospitals.FindByID(id)
	if err != nil {
		return apperr.Internal("Failed to delete hospital", err)
	}
	if h == nil {
		return apperr.NotFound("Hospital not found")
	}
	if err := s.hospitals.Delete(id); err != nil {
		return apperr.Internal("Failed to delete hospital", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, hospitalKey(id))
	}
	return nil
}
