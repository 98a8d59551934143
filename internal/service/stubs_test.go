package service

import (
	"context"

	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/model"
	"github.com/gyeongmo89/samsip/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository stubs. They ignore the tx handle (runTx passes nil
// when DB() is nil) and mimic the partial unique index by rejecting a second
// non-deleted row with the same name.

// ── Supplier ─────────────────────────────────────────────────────────────────

type stubSupplierRepo struct {
	rows   map[uint]*model.Supplier
	nextID uint
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{rows: make(map[uint]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, _ *gorm.DB, s *model.Supplier) error {
	for _, existing := range r.rows {
		if existing.Name == s.Name && !existing.Deleted {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	s.ID = r.nextID
	r.rows[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*model.Supplier, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) FindActiveByName(_ context.Context, _ *gorm.DB, name string) (*model.Supplier, error) {
	for _, s := range r.rows {
		if s.Name == name && !s.Deleted {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	result := make([]model.Supplier, 0, len(r.rows))
	for _, s := range r.rows {
		if !s.Deleted {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.rows[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) SoftDelete(_ context.Context, ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if s, ok := r.rows[id]; ok && !s.Deleted {
			s.Deleted = true
			n++
		}
	}
	return n, nil
}

func (r *stubSupplierRepo) DB() *gorm.DB { return nil }

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Item ─────────────────────────────────────────────────────────────────────

type stubItemRepo struct {
	rows   map[uint]*model.Item
	nextID uint
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{rows: make(map[uint]*model.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, _ *gorm.DB, i *model.Item) error {
	for _, existing := range r.rows {
		if existing.Name == i.Name && !existing.Deleted {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	i.ID = r.nextID
	r.rows[i.ID] = i
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uint) (*model.Item, error) {
	i, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubItemRepo) FindActiveByName(_ context.Context, _ *gorm.DB, name string) (*model.Item, error) {
	for _, i := range r.rows {
		if i.Name == name && !i.Deleted {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	result := make([]model.Item, 0, len(r.rows))
	for _, i := range r.rows {
		if !i.Deleted {
			result = append(result, *i)
		}
	}
	return result, nil
}

func (r *stubItemRepo) Update(_ context.Context, i *model.Item) error {
	r.rows[i.ID] = i
	return nil
}

func (r *stubItemRepo) SoftDelete(_ context.Context, ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if i, ok := r.rows[id]; ok && !i.Deleted {
			i.Deleted = true
			n++
		}
	}
	return n, nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

// ── Unit ─────────────────────────────────────────────────────────────────────

type stubUnitRepo struct {
	rows   map[uint]*model.Unit
	nextID uint
}

func newStubUnitRepo() *stubUnitRepo {
	return &stubUnitRepo{rows: make(map[uint]*model.Unit)}
}

func (r *stubUnitRepo) Create(_ context.Context, _ *gorm.DB, u *model.Unit) error {
	for _, existing := range r.rows {
		if existing.Name == u.Name && !existing.Deleted {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.rows[u.ID] = u
	return nil
}

func (r *stubUnitRepo) FindByID(_ context.Context, id uint) (*model.Unit, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUnitRepo) FindActiveByName(_ context.Context, _ *gorm.DB, name string) (*model.Unit, error) {
	for _, u := range r.rows {
		if u.Name == name && !u.Deleted {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUnitRepo) List(_ context.Context) ([]model.Unit, error) {
	result := make([]model.Unit, 0, len(r.rows))
	for _, u := range r.rows {
		if !u.Deleted {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *stubUnitRepo) Update(_ context.Context, u *model.Unit) error {
	r.rows[u.ID] = u
	return nil
}

func (r *stubUnitRepo) SoftDelete(_ context.Context, ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if u, ok := r.rows[id]; ok && !u.Deleted {
			u.Deleted = true
			n++
		}
	}
	return n, nil
}

func (r *stubUnitRepo) DB() *gorm.DB { return nil }

var _ repository.UnitRepository = (*stubUnitRepo)(nil)

// ── Order ────────────────────────────────────────────────────────────────────

// stubOrderRepo mimics Preload by attaching related rows from the sibling
// stubs on read, exactly like the joined fetch of the real repository.
type stubOrderRepo struct {
	rows      map[uint]*model.Order
	nextID    uint
	suppliers *stubSupplierRepo
	items     *stubItemRepo
	units     *stubUnitRepo
}

func newStubOrderRepo(s *stubSupplierRepo, i *stubItemRepo, u *stubUnitRepo) *stubOrderRepo {
	return &stubOrderRepo{
		rows:      make(map[uint]*model.Order),
		suppliers: s,
		items:     i,
		units:     u,
	}
}

func (r *stubOrderRepo) attachRefs(o *model.Order) {
	o.Supplier = r.suppliers.rows[o.SupplierID]
	o.Item = r.items.rows[o.ItemID]
	o.Unit = r.units.rows[o.UnitID]
}

func (r *stubOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.Order) error {
	r.nextID++
	o.ID = r.nextID
	r.rows[o.ID] = o
	return nil
}

func (r *stubOrderRepo) CreateBatch(ctx context.Context, tx *gorm.DB, orders []*model.Order) error {
	for _, o := range orders {
		if err := r.Create(ctx, tx, o); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uint) (*model.Order, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.attachRefs(o)
	return o, nil
}

func (r *stubOrderRepo) ListWithRefs(_ context.Context) ([]model.Order, error) {
	result := make([]model.Order, 0, len(r.rows))
	for _, o := range r.rows {
		if o.Deleted {
			continue
		}
		r.attachRefs(o)
		result = append(result, *o)
	}
	return result, nil
}

func (r *stubOrderRepo) Update(_ context.Context, _ *gorm.DB, o *model.Order) error {
	r.rows[o.ID] = o
	return nil
}

func (r *stubOrderRepo) SoftDelete(_ context.Context, ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if o, ok := r.rows[id]; ok && !o.Deleted {
			o.Deleted = true
			n++
		}
	}
	return n, nil
}

func (r *stubOrderRepo) StatsByMonth(_ context.Context) ([]dto.MonthlyStat, error) {
	return nil, nil
}

func (r *stubOrderRepo) StatsBySupplier(_ context.Context) ([]dto.SupplierStat, error) {
	return nil, nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// env bundles the stubs plus services wired the way the router does it.
type env struct {
	suppliers *stubSupplierRepo
	items     *stubItemRepo
	units     *stubUnitRepo
	orders    *stubOrderRepo
	resolver  *Resolver
}

func newEnv() *env {
	s := newStubSupplierRepo()
	i := newStubItemRepo()
	u := newStubUnitRepo()
	o := newStubOrderRepo(s, i, u)
	return &env{
		suppliers: s,
		items:     i,
		units:     u,
		orders:    o,
		resolver:  NewResolver(s, i, u),
	}
}
