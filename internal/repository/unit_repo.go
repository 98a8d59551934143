package repository

import (
	"context"

	"github.com/gyeongmo89/samsip/internal/model"

	"gorm.io/gorm"
)

type UnitRepository interface {
	Create(ctx context.Context, tx *gorm.DB, u *model.Unit) error
	FindByID(ctx context.Context, id uint) (*model.Unit, error)
	FindActiveByName(ctx context.Context, tx *gorm.DB, name string) (*model.Unit, error)
	List(ctx context.Context) ([]model.Unit, error)
	Update(ctx context.Context, u *model.Unit) error
	SoftDelete(ctx context.Context, ids []uint) (int64, error)
	DB() *gorm.DB
}

type unitRepo struct{ db *gorm.DB }

func NewUnitRepository(db *gorm.DB) UnitRepository { return &unitRepo{db: db} }

func (r *unitRepo) DB() *gorm.DB { return r.db }

func (r *unitRepo) Create(ctx context.Context, tx *gorm.DB, u *model.Unit) error {
	return conn(r.db, tx).WithContext(ctx).Create(u).Error
}

func (r *unitRepo) FindByID(ctx context.Context, id uint) (*model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *unitRepo) FindActiveByName(ctx context.Context, tx *gorm.DB, name string) (*model.Unit, error) {
	var u model.Unit
	err := conn(r.db, tx).WithContext(ctx).
		Where("name = ? AND is_deleted = false", name).
		First(&u).Error
	return &u, err
}

func (r *unitRepo) List(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		Order("name").
		Find(&units).Error
	return units, err
}

func (r *unitRepo) Update(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Model(u).
		Select("name", "description").
		Updates(u).Error
}

func (r *unitRepo) SoftDelete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Unit{}).
		Where("id IN ? AND is_deleted = false", ids).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}
