package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/model"
	"github.com/gyeongmo89/samsip/internal/repository"

	"gorm.io/gorm"
)

// Placeholder shown in the projection for references to soft-deleted rows.
const (
	placeholderID   = -1
	placeholderName = "[deleted]"
)

const dateLayout = "2006-01-02"

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderView, error)
	CreateByName(ctx context.Context, req dto.OrderByNameRequest) (*dto.OrderView, error)
	Update(ctx context.Context, id uint, req dto.CreateOrderRequest) (*dto.OrderView, error)
	UpdateByName(ctx context.Context, id uint, req dto.OrderByNameRequest) (*dto.OrderView, error)
	List(ctx context.Context) ([]dto.OrderView, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
}

type orderService struct {
	repo      repository.OrderRepository
	suppliers repository.SupplierRepository
	items     repository.ItemRepository
	units     repository.UnitRepository
	resolver  *Resolver
}

func NewOrderService(
	repo repository.OrderRepository,
	suppliers repository.SupplierRepository,
	items repository.ItemRepository,
	units repository.UnitRepository,
	resolver *Resolver,
) OrderService {
	return &orderService{
		repo:      repo,
		suppliers: suppliers,
		items:     items,
		units:     units,
		resolver:  resolver,
	}
}

// Create records an order against explicit entity ids. Each referenced id
// must exist — deleted or not; a deleted reference simply renders as a
// placeholder in the projection later.
func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderView, error) {
	if err := s.checkRefs(ctx, req.SupplierID, req.ItemID, req.UnitID); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		SupplierID:    req.SupplierID,
		ItemID:        req.ItemID,
		UnitID:        req.UnitID,
		Quantity:      req.Quantity,
		Price:         req.Price,
		Total:         req.Total,
		PaymentCycle:  req.PaymentCycle,
		PaymentMethod: defaultPaymentMethod(req.PaymentMethod),
		Client:        req.Client,
		Notes:         req.Notes,
		Date:          date,
	}
	if err := s.repo.Create(ctx, nil, order); err != nil {
		return nil, err
	}
	return s.viewByID(ctx, order.ID)
}

// CreateByName records an order keyed by the supplier/item/unit names,
// resolving or creating each inside one transaction.
func (s *orderService) CreateByName(ctx context.Context, req dto.OrderByNameRequest) (*dto.OrderView, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var orderID uint
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		supplierID, err := s.resolver.Supplier(ctx, tx, req.SupplierName, req.SupplierContact)
		if err != nil {
			return err
		}
		itemID, err := s.resolver.Item(ctx, tx, req.ItemName, req.ItemPrice)
		if err != nil {
			return err
		}
		unitID, err := s.resolver.Unit(ctx, tx, req.UnitName)
		if err != nil {
			return err
		}

		order := &model.Order{
			SupplierID:    supplierID,
			ItemID:        itemID,
			UnitID:        unitID,
			Quantity:      req.Quantity,
			Price:         req.Price,
			Total:         req.Total,
			PaymentCycle:  req.PaymentCycle,
			PaymentMethod: defaultPaymentMethod(req.PaymentMethod),
			Client:        req.Client,
			Notes:         req.Notes,
			Date:          date,
		}
		if err := s.repo.Create(ctx, tx, order); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.viewByID(ctx, orderID)
}

func (s *orderService) Update(ctx context.Context, id uint, req dto.CreateOrderRequest) (*dto.OrderView, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil || order.Deleted {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	if err := s.checkRefs(ctx, req.SupplierID, req.ItemID, req.UnitID); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	order.SupplierID = req.SupplierID
	order.ItemID = req.ItemID
	order.UnitID = req.UnitID
	order.Quantity = req.Quantity
	order.Price = req.Price
	order.Total = req.Total
	order.PaymentCycle = req.PaymentCycle
	order.PaymentMethod = defaultPaymentMethod(req.PaymentMethod)
	order.Client = req.Client
	order.Notes = req.Notes
	order.Date = date
	if err := s.repo.Update(ctx, nil, order); err != nil {
		return nil, err
	}
	return s.viewByID(ctx, id)
}

func (s *orderService) UpdateByName(ctx context.Context, id uint, req dto.OrderByNameRequest) (*dto.OrderView, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil || order.Deleted {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		supplierID, err := s.resolver.Supplier(ctx, tx, req.SupplierName, req.SupplierContact)
		if err != nil {
			return err
		}
		itemID, err := s.resolver.Item(ctx, tx, req.ItemName, req.ItemPrice)
		if err != nil {
			return err
		}
		unitID, err := s.resolver.Unit(ctx, tx, req.UnitName)
		if err != nil {
			return err
		}

		order.SupplierID = supplierID
		order.ItemID = itemID
		order.UnitID = unitID
		order.Quantity = req.Quantity
		order.Price = req.Price
		order.Total = req.Total
		order.PaymentCycle = req.PaymentCycle
		order.PaymentMethod = defaultPaymentMethod(req.PaymentMethod)
		order.Client = req.Client
		order.Notes = req.Notes
		order.Date = date
		return s.repo.Update(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	return s.viewByID(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]dto.OrderView, error) {
	orders, err := s.repo.ListWithRefs(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]dto.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *orderToView(&orders[i]))
	}
	return views, nil
}

func (s *orderService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return s.repo.SoftDelete(ctx, ids)
}

// checkRefs verifies that every referenced id exists. A soft-deleted row
// still satisfies the check (referential integrity over visibility).
func (s *orderService) checkRefs(ctx context.Context, supplierID, itemID, unitID uint) error {
	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		return fmt.Errorf("%w: supplier %d", ErrNotFound, supplierID)
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	if _, err := s.units.FindByID(ctx, unitID); err != nil {
		return fmt.Errorf("%w: unit %d", ErrNotFound, unitID)
	}
	return nil
}

func (s *orderService) viewByID(ctx context.Context, id uint) (*dto.OrderView, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return orderToView(order), nil
}

// ─── Projection ──────────────────────────────────────────────────────────────

// orderToView builds the external order shape: live sub-objects for live
// references, `{id:-1, name:"[deleted]"}` placeholders for soft-deleted or
// unresolvable ones. Price and total always come from the order row itself —
// the point-in-time snapshot, never the item's current price.
func orderToView(o *model.Order) *dto.OrderView {
	view := &dto.OrderView{
		ID:            o.ID,
		Quantity:      o.Quantity,
		Price:         o.Price,
		Total:         o.Total,
		PaymentCycle:  o.PaymentCycle,
		PaymentMethod: o.PaymentMethod,
		Client:        o.Client,
		Notes:         o.Notes,
	}
	if o.Date != nil {
		d := o.Date.Format(dateLayout)
		view.Date = &d
	}

	if o.Supplier != nil && !o.Supplier.Deleted {
		view.Supplier = dto.SupplierView{
			ID:      int64(o.Supplier.ID),
			Name:    o.Supplier.Name,
			Contact: o.Supplier.Contact,
			Address: o.Supplier.Address,
		}
	} else {
		view.Supplier = dto.SupplierView{ID: placeholderID, Name: placeholderName}
	}

	if o.Item != nil && !o.Item.Deleted {
		view.Item = dto.ItemView{
			ID:          int64(o.Item.ID),
			Name:        o.Item.Name,
			Description: o.Item.Description,
			Price:       o.Item.Price,
		}
	} else {
		view.Item = dto.ItemView{ID: placeholderID, Name: placeholderName}
	}

	if o.Unit != nil && !o.Unit.Deleted {
		view.Unit = dto.UnitView{
			ID:          int64(o.Unit.ID),
			Name:        o.Unit.Name,
			Description: o.Unit.Description,
		}
	} else {
		view.Unit = dto.UnitView{ID: placeholderID, Name: placeholderName}
	}

	return view
}

func defaultPaymentMethod(m string) string {
	if m == "" {
		return model.DefaultPaymentMethod
	}
	return m
}

// parseDate parses an optional YYYY-MM-DD request field. Unlike the import
// path there is no silent fallback here — a malformed date in a JSON request
// is a validation failure.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", *s)
	}
	return &t, nil
}
