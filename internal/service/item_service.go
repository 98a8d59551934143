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

type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Update(ctx context.Context, id uint, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if _, err := s.repo.FindActiveByName(ctx, nil, req.Name); err == nil {
		return nil, fmt.Errorf("%w: item %q", ErrConflict, req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.repo.Create(ctx, nil, item); err != nil {
		return nil, translateCreateErr("item", req.Name, err)
	}
	return itemToResponse(item), nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *itemToResponse(&items[i]))
	}
	return resp, nil
}

func (s *itemService) Update(ctx context.Context, id uint, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil || item.Deleted {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, id)
	}

	if req.Name != item.Name {
		if other, err := s.repo.FindActiveByName(ctx, nil, req.Name); err == nil && other.ID != id {
			return nil, fmt.Errorf("%w: item %q", ErrConflict, req.Name)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, translateCreateErr("item", req.Name, err)
	}
	return itemToResponse(item), nil
}

func (s *itemService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.SoftDelete(ctx, ids)
}

func itemToResponse(i *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
	}
}
