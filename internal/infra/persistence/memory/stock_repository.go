package memory

import (
	"context"
	"strings"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type stockRepository struct {
	store *Store
	lock  locker
}

// NewStockRepository returns a StockRepository backed by store.
func NewStockRepository(store *Store) repository.StockRepository {
	return &stockRepository{store: store, lock: &store.mu}
}

func (repo *stockRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Stock, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	stock, ok := repo.store.stocks[id]
	if !ok {
		return nil, repository.ErrStockNotFound
	}

	return &stock, nil
}

func (repo *stockRepository) FindByProductName(_ context.Context, productName string) (*entity.Stock, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	matches := repo.filter(func(s *entity.Stock) bool { return s.ProductName == productName })
	if len(matches) == 0 {
		return nil, repository.ErrStockNotFound
	}

	return matches[0], nil
}

func (repo *stockRepository) List(_ context.Context) ([]*entity.Stock, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	return repo.filter(nil), nil
}

func (repo *stockRepository) ListRecent(_ context.Context, limit int) ([]*entity.Stock, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	return capped(repo.filter(nil), limit), nil
}

func (repo *stockRepository) SearchByProductName(_ context.Context, query string, limit int) ([]*entity.Stock, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	query = strings.ToLower(query)
	matches := repo.filter(func(s *entity.Stock) bool {
		return strings.Contains(strings.ToLower(s.ProductName), query)
	})

	return capped(matches, limit), nil
}

func (repo *stockRepository) Count(_ context.Context) (int64, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	return int64(len(repo.store.stocks)), nil
}

func (repo *stockRepository) Create(_ context.Context, stock *entity.Stock) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if err := repo.store.stamp(&stock.ID, &stock.CreatedAt, &stock.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to generate stock id")
	}
	repo.store.stocks[stock.ID] = *stock

	return nil
}

func (repo *stockRepository) Update(_ context.Context, stock *entity.Stock) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	current, ok := repo.store.stocks[stock.ID]
	if !ok {
		return repository.ErrStockNotFound
	}

	current.ProductName = stock.ProductName
	current.Quantity = stock.Quantity
	current.Price = stock.Price
	current.CurrencySymbol = stock.CurrencySymbol
	current.DateParts = stock.DateParts
	current.ImageURL = stock.ImageURL
	current.UpdatedAt = repo.store.now()
	repo.store.stocks[stock.ID] = current

	return nil
}

func (repo *stockRepository) DecrementQuantityLeft(_ context.Context, id uuid.UUID, amount int) (*entity.Stock, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	stock, ok := repo.store.stocks[id]
	if !ok {
		return nil, repository.ErrStockNotFound
	}
	stock.QuantityLeft -= amount
	stock.UpdatedAt = repo.store.now()
	repo.store.stocks[id] = stock

	return &stock, nil
}

func (repo *stockRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, ok := repo.store.stocks[id]; !ok {
		return repository.ErrStockNotFound
	}
	delete(repo.store.stocks, id)

	return nil
}

// filter returns copies of the matching stocks, newest first. A nil match keeps everything.
func (repo *stockRepository) filter(match func(*entity.Stock) bool) []*entity.Stock {
	stocks := make([]*entity.Stock, 0, len(repo.store.stocks))
	for _, stock := range repo.store.stocks {
		if match == nil || match(&stock) {
			stocks = append(stocks, &stock)
		}
	}
	newestFirst(stocks, func(s *entity.Stock) (time.Time, uuid.UUID) { return s.CreatedAt, s.ID })

	return stocks
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}

	return items
}
