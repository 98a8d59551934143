package repository

import (
	"context"

	"github.com/gyeongmo89/samsip/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Supplier) error
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	// FindActiveByName does an exact, case-sensitive match among non-deleted rows.
	FindActiveByName(ctx context.Context, tx *gorm.DB, name string) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	SoftDelete(ctx context.Context, ids []uint) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) DB() *gorm.DB { return r.db }

func (r *supplierRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Supplier) error {
	return conn(r.db, tx).WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *supplierRepo) FindActiveByName(ctx context.Context, tx *gorm.DB, name string) (*model.Supplier, error) {
	var s model.Supplier
	err := conn(r.db, tx).WithContext(ctx).
		Where("name = ? AND is_deleted = false", name).
		First(&s).Error
	return &s, err
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		Order("name").
		Find(&suppliers).Error
	return suppliers, err
}

// Update replaces the mutable attributes only — identity and the soft-delete
// flag are never written through this path.
func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Model(s).
		Select("name", "contact", "address").
		Updates(s).Error
}

func (r *supplierRepo) SoftDelete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("id IN ? AND is_deleted = false", ids).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}
