package repository

import (
	"context"

	"github.com/gyeongmo89/samsip/internal/model"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, i *model.Item) error
	FindByID(ctx context.Context, id uint) (*model.Item, error)
	FindActiveByName(ctx context.Context, tx *gorm.DB, name string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, i *model.Item) error
	SoftDelete(ctx context.Context, ids []uint) (int64, error)
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) DB() *gorm.DB { return r.db }

func (r *itemRepo) Create(ctx context.Context, tx *gorm.DB, i *model.Item) error {
	return conn(r.db, tx).WithContext(ctx).Create(i).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	var i model.Item
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *itemRepo) FindActiveByName(ctx context.Context, tx *gorm.DB, name string) (*model.Item, error) {
	var i model.Item
	err := conn(r.db, tx).WithContext(ctx).
		Where("name = ? AND is_deleted = false", name).
		First(&i).Error
	return &i, err
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		Order("name").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Model(i).
		Select("name", "description", "price").
		Updates(i).Error
}

func (r *itemRepo) SoftDelete(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id IN ? AND is_deleted = false", ids).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}
