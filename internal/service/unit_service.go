package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/model"
	"github.com/gyeongmo89/samsip/internal/repository"

	"gorm.io/gorm"
)

type UnitService interface {
	Create(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error)
	List(ctx context.Context) ([]dto.UnitResponse, error)
	Update(ctx context.Context, id uint, req dto.CreateUnitRequest) (*dto.UnitResponse, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
}

type unitService struct {
	repo repository.UnitRepository
}

func NewUnitService(repo repository.UnitRepository) UnitService {
	return &unitService{repo: repo}
}

func (s *unitService) Create(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if _, err := s.repo.FindActiveByName(ctx, nil, req.Name); err == nil {
		return nil, fmt.Errorf("%w: unit %q", ErrConflict, req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit := &model.Unit{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, nil, unit); err != nil {
		return nil, translateCreateErr("unit", req.Name, err)
	}
	return unitToResponse(unit), nil
}

func (s *unitService) List(ctx context.Context) ([]dto.UnitResponse, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UnitResponse, 0, len(units))
	for i := range units {
		resp = append(resp, *unitToResponse(&units[i]))
	}
	return resp, nil
}

func (s *unitService) Update(ctx context.Context, id uint, req dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := s.repo.FindByID(ctx, id)
	if err != nil || unit.Deleted {
		return nil, fmt.Errorf("%w: unit %d", ErrNotFound, id)
	}

	if req.Name != unit.Name {
		if other, err := s.repo.FindActiveByName(ctx, nil, req.Name); err == nil && other.ID != id {
			return nil, fmt.Errorf("%w: unit %q", ErrConflict, req.Name)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	unit.Name = req.Name
	unit.Description = req.Description
	if err := s.repo.Update(ctx, unit); err != nil {
		return nil, translateCreateErr("unit", req.Name, err)
	}
	return unitToResponse(unit), nil
}

func (s *unitService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.SoftDelete(ctx, ids)
}

func unitToResponse(u *model.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
	}
}
