package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/model"
	"github.com/wingscafe/inventory/internal/repository"
	"github.com/wingscafe/inventory/internal/storage/db"
	"github.com/wingscafe/inventory/internal/storage/snapshot"
)

// fakeDB satisfies db.DB for services that only use WithTx. The repositories
// below keep state in memory, so the SQL surface is never exercised.
type fakeDB struct{}

func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (f *fakeDB) WithTx(ctx context.Context, txFunc func(db.DB) error) error {
	return txFunc(f)
}

type fakeProductRepo struct {
	products map[uuid.UUID]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]model.Product)}
}

func (r *fakeProductRepo) WithDB(db.DB) repository.ProductRepository { return r }

func (r *fakeProductRepo) ListAllProducts(context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

func (r *fakeProductRepo) GetProduct(_ context.Context, id uuid.UUID) (model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	return p, nil
}

func (r *fakeProductRepo) CreateProduct(_ context.Context, product model.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdateProduct(_ context.Context, product model.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return apperr.ProductNotFoundErr
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdateProductQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return apperr.ProductNotFoundErr
	}
	p.Quantity = quantity
	r.products[id] = p
	return nil
}

func (r *fakeProductRepo) DeleteProduct(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return apperr.ProductNotFoundErr
	}
	delete(r.products, id)
	return nil
}

type fakeStockRecordRepo struct {
	records []model.StockRecord
}

func newFakeStockRecordRepo() *fakeStockRecordRepo {
	return &fakeStockRecordRepo{}
}

func (r *fakeStockRecordRepo) WithDB(db.DB) repository.StockRecordRepository { return r }

func (r *fakeStockRecordRepo) ListAllStockRecords(context.Context) ([]model.StockRecord, error) {
	return append([]model.StockRecord(nil), r.records...), nil
}

func (r *fakeStockRecordRepo) CreateStockRecord(_ context.Context, record model.StockRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeStockRecordRepo) FindStockRecordByNameFold(_ context.Context, productName string) (model.StockRecord, error) {
	for _, rec := range r.records {
		if strings.EqualFold(rec.ProductName, productName) {
			return rec, nil
		}
	}
	return model.StockRecord{}, apperr.StockRecordNotFoundErr
}

func (r *fakeStockRecordRepo) UpdateStockRecordQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records[i].Quantity = quantity
			return nil
		}
	}
	return apperr.StockRecordNotFoundErr
}

type fakeOutboxMsgRepo struct {
	created []repository.CreateOutboxMsgParams
}

func newFakeOutboxMsgRepo() *fakeOutboxMsgRepo {
	return &fakeOutboxMsgRepo{}
}

func (r *fakeOutboxMsgRepo) WithDB(db.DB) repository.OutboxMsgRepository { return r }

func (r *fakeOutboxMsgRepo) CreateOutboxMsg(_ context.Context, params repository.CreateOutboxMsgParams) error {
	r.created = append(r.created, params)
	return nil
}

func (r *fakeOutboxMsgRepo) ListUnprocessedOutboxMsgs(context.Context, repository.ListUnprocessedOutboxMsgsParams) ([]repository.ListUnprocessedOutboxMsgsResult, error) {
	return nil, nil
}

func (r *fakeOutboxMsgRepo) BulkUpdateOutboxMsgs(context.Context, repository.BulkUpdateOutboxMsgsParams) error {
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (r *fakeUserRepo) WithDB(db.DB) repository.UserRepository { return r }

func (r *fakeUserRepo) ListAllUsers(context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, id uuid.UUID) (model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return model.User{}, apperr.UserNotFoundErr
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, apperr.UserNotFoundErr
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperr.UserNotFoundErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return apperr.UserNotFoundErr
	}
	delete(r.users, id)
	return nil
}

type memSnapshotStore struct {
	levels []snapshot.StockLevel
	saves  int
}

func (s *memSnapshotStore) Load() ([]snapshot.StockLevel, error) {
	return s.levels, nil
}

func (s *memSnapshotStore) Save(levels []snapshot.StockLevel) error {
	s.levels = levels
	s.saves++
	return nil
}
