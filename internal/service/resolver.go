package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gyeongmo89/samsip/internal/model"
	"github.com/gyeongmo89/samsip/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Resolver implements the find-or-create convention shared by the spreadsheet
// importer and the by-name order paths.
//
// Lookup is exact and case-sensitive among non-deleted rows. An existing
// entity is returned as-is — its attributes are NOT updated from the defaults
// supplied here; those only seed a newly created row. Creates go through the
// caller's transaction, so a row created for an earlier import row is visible
// to later rows of the same file before the batch commits.
type Resolver struct {
	suppliers repository.SupplierRepository
	items     repository.ItemRepository
	units     repository.UnitRepository
}

func NewResolver(
	suppliers repository.SupplierRepository,
	items repository.ItemRepository,
	units repository.UnitRepository,
) *Resolver {
	return &Resolver{suppliers: suppliers, items: items, units: units}
}

func (r *Resolver) Supplier(ctx context.Context, tx *gorm.DB, name string, contact *string) (uint, error) {
	s, err := r.suppliers.FindActiveByName(ctx, tx, name)
	if err == nil {
		return s.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	created := &model.Supplier{Name: name, Contact: contact}
	if err := r.suppliers.Create(ctx, tx, created); err != nil {
		return 0, translateCreateErr("supplier", name, err)
	}
	return created.ID, nil
}

func (r *Resolver) Item(ctx context.Context, tx *gorm.DB, name string, price *decimal.Decimal) (uint, error) {
	i, err := r.items.FindActiveByName(ctx, tx, name)
	if err == nil {
		return i.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	created := &model.Item{Name: name, Price: price}
	if err := r.items.Create(ctx, tx, created); err != nil {
		return 0, translateCreateErr("item", name, err)
	}
	return created.ID, nil
}

func (r *Resolver) Unit(ctx context.Context, tx *gorm.DB, name string) (uint, error) {
	u, err := r.units.FindActiveByName(ctx, tx, name)
	if err == nil {
		return u.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	created := &model.Unit{Name: name}
	if err := r.units.Create(ctx, tx, created); err != nil {
		return 0, translateCreateErr("unit", name, err)
	}
	return created.ID, nil
}

// translateCreateErr maps a duplicate-key violation (two transactions racing
// to create the same natural key — the loser sees it at flush/commit) to the
// Conflict sentinel so callers can report it distinctly from malformed input.
func translateCreateErr(entity, name string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s %q", ErrConflict, entity, name)
	}
	return err
}
