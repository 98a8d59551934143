package repository

import (
	"context"

	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, o *model.Order) error
	// CreateBatch inserts all orders of one import file; the caller supplies
	// the transaction so the whole file commits or rolls back together.
	CreateBatch(ctx context.Context, tx *gorm.DB, orders []*model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	// ListWithRefs loads non-deleted orders together with their supplier,
	// item and unit rows (soft-deleted referents included — the projection
	// decides what to show). Preload keeps this at one query per relation
	// instead of one per order.
	ListWithRefs(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, tx *gorm.DB, o *model.Order) error
	SoftDelete(ctx context.Context, ids []uint) (int64, error)
	StatsByMonth(ctx context.Context) ([]dto.MonthlyStat, error)
	StatsBySupplier(ctx context.Context) ([]dto.SupplierStat, error)
	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return conn(r.db, tx).WithContext(ctx).Create(o).Error
}

func (r *orderRepo) CreateBatch(ctx context.Context, tx *gorm.DB, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).Create(orders).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Supplier").Preload("Item").Preload("Unit").
		First(&o, id).Error
	return &o, err
}

func (r *orderRepo) ListWithRefs(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		Preload("Supplier").Preload("Item").Preload("Unit").
		Order("date DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Update(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return conn(r.db, tx).WithContext(ctx).Model(o).
		Select("supplier_id", "item_id", "unit_id", "quantity", "price", "total",
			"payment_cycle", "payment_method", "client", "notes", "date").
		Updates(o).Error
}

func (r *orderRepo) SoftDelete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id IN ? AND is_deleted = false", ids).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

func (r *orderRepo) StatsByMonth(ctx context.Context) ([]dto.MonthlyStat, error) {
	var stats []dto.MonthlyStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(COALESCE(date, created_at), 'YYYY-MM') AS month,
		       COUNT(*)                                       AS orders,
		       COALESCE(SUM(total), 0)                        AS total
		FROM orders
		WHERE is_deleted = false
		GROUP BY 1
		ORDER BY 1`).Scan(&stats).Error
	return stats, err
}

func (r *orderRepo) StatsBySupplier(ctx context.Context) ([]dto.SupplierStat, error) {
	var stats []dto.SupplierStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.name                  AS supplier,
		       COUNT(*)                AS orders,
		       COALESCE(SUM(o.total), 0) AS total
		FROM orders o
		JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.is_deleted = false
		GROUP BY s.name
		ORDER BY total DESC`).Scan(&stats).Error
	return stats, err
}
