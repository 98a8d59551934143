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

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

// Create rejects a duplicate among non-deleted rows; a name held only by a
// soft-deleted supplier is free for reuse. The partial unique index is the
// backstop when two creates race past the pre-check.
func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if _, err := s.repo.FindActiveByName(ctx, nil, req.Name); err == nil {
		return nil, fmt.Errorf("%w: supplier %q", ErrConflict, req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, nil, supplier); err != nil {
		return nil, translateCreateErr("supplier", req.Name, err)
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		resp = append(resp, *supplierToResponse(&suppliers[i]))
	}
	return resp, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil || supplier.Deleted {
		return nil, fmt.Errorf("%w: supplier %d", ErrNotFound, id)
	}

	if req.Name != supplier.Name {
		if other, err := s.repo.FindActiveByName(ctx, nil, req.Name); err == nil && other.ID != id {
			return nil, fmt.Errorf("%w: supplier %q", ErrConflict, req.Name)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	supplier.Name = req.Name
	supplier.Contact = req.Contact
	supplier.Address = req.Address
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, translateCreateErr("supplier", req.Name, err)
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.SoftDelete(ctx, ids)
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Contact: s.Contact,
		Address: s.Address,
	}
}
