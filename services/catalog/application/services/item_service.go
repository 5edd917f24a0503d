package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/backoffice/pkg/cache"
	"github.com/ghuser/backoffice/pkg/logger"
	catalogdomain "github.com/ghuser/backoffice/services/catalog/domain"
	"github.com/ghuser/backoffice/services/catalog/domain/models"
	"github.com/ghuser/backoffice/services/catalog/domain/repositories"
)

// itemCache is the cache surface the service consumes, satisfied by
// *pkgcache.ItemCache.
type itemCache interface {
	Get(ctx context.Context, itemID int64) (*pkgcache.CachedItem, error)
	Set(ctx context.Context, item *pkgcache.CachedItem) error
	Delete(ctx context.Context, itemID int64) error
}

// ItemService orchestrates the catalog item lifecycle: creation with a
// case-insensitive name uniqueness check, field updates, and the
// ACTIVE/INACTIVE transitions with the document-line deactivation guard.
// Single-item reads are served from Redis cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache itemCache
	log   logger.Logger
}

// NewItemService returns an ItemService wired with the given repository,
// cache, and logger. A nil cache disables the read-through path.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache, log logger.Logger) *ItemService {
	svc := &ItemService{repo: repo, log: log}
	if itemCache != nil {
		svc.cache = itemCache
	}
	return svc
}

// Create validates and persists a new item with status ACTIVE.
// Returns ErrItemNameTaken when the trimmed name already exists
// case-insensitively, regardless of the existing item's status.
func (s *ItemService) Create(ctx context.Context, name, description string, price, cost int64) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, catalogdomain.NewError(catalogdomain.ErrInvalidItem, "%s", err)
	}
	if price < 0 {
		return nil, catalogdomain.NewError(catalogdomain.ErrInvalidItem, "price must be >= 0")
	}
	if cost < 0 {
		return nil, catalogdomain.NewError(catalogdomain.ErrInvalidItem, "cost must be >= 0")
	}

	taken, err := s.repo.ExistsByNameCI(ctx, itemName.String())
	if err != nil {
		return nil, fmt.Errorf("check item name: %w", err)
	}
	if taken {
		return nil, catalogdomain.NewError(catalogdomain.ErrItemNameTaken, "Item name already exists")
	}

	item := models.NewItem(itemName, description, price, cost)
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

// Update overwrites name, description, price, and cost of an existing item
// and refreshes its audit trail. Status is not modifiable through this path.
func (s *ItemService) Update(ctx context.Context, id int64, name, description string, price, cost int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(id, err)
	}

	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, catalogdomain.NewError(catalogdomain.ErrInvalidItem, "name is required")
	}
	if price < 0 {
		return nil, catalogdomain.NewError(catalogdomain.ErrInvalidItem, "price must be >= 0")
	}
	if cost < 0 {
		return nil, catalogdomain.NewError(catalogdomain.ErrInvalidItem, "cost must be >= 0")
	}

	item.Name = itemName
	item.Description = description
	item.Price = price
	item.Cost = cost
	item.Touch()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	s.invalidate(id)
	return item, nil
}

// Deactivate sets the item INACTIVE. Fails with ErrItemInUse while any
// document line references the item. Already-inactive items are a no-op.
func (s *ItemService) Deactivate(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(id, err)
	}

	used, err := s.repo.ReferencedByLine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check item references: %w", err)
	}
	if used {
		return nil, catalogdomain.NewError(catalogdomain.ErrItemInUse, "Item used in documents")
	}

	if !item.Active() {
		return item, nil
	}

	item.Status = models.StatusInactive
	item.Touch()
	if err := s.repo.UpdateStatus(ctx, item); err != nil {
		return nil, fmt.Errorf("deactivate item: %w", err)
	}
	s.invalidate(id)
	return item, nil
}

// Activate sets the item ACTIVE. Already-active items are a no-op.
func (s *ItemService) Activate(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(id, err)
	}
	if item.Active() {
		return item, nil
	}

	item.Status = models.StatusActive
	item.Touch()
	if err := s.repo.UpdateStatus(ctx, item); err != nil {
		return nil, fmt.Errorf("activate item: %w", err)
	}
	s.invalidate(id)
	return item, nil
}

// FindAll lists every item regardless of status.
func (s *ItemService) FindAll(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// FindActiveByID retrieves a single item that is currently ACTIVE, using a
// read-through cache pattern:
//  1. Check Redis cache first; only ACTIVE cached entries are served.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) FindActiveByID(ctx context.Context, id int64) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			if cached.Status == string(models.StatusActive) {
				return cachedToItem(cached), nil
			}
		} else if !errors.Is(err, redis.Nil) {
			// Cache failure is non-fatal; fall through to Postgres.
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByIDAndStatus(ctx, id, models.StatusActive)
	if err != nil {
		return nil, s.notFound(id, err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}
	return item, nil
}

func (s *ItemService) notFound(id int64, err error) error {
	if errors.Is(err, catalogdomain.ErrItemNotFound) {
		return catalogdomain.NewError(catalogdomain.ErrItemNotFound, "Item %d not found", id)
	}
	return fmt.Errorf("get item: %w", err)
}

func (s *ItemService) invalidate(id int64) {
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
}

func cachedToItem(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:          c.ID,
		Name:        models.ItemName(c.Name),
		Description: c.Description,
		Price:       c.Price,
		Cost:        c.Cost,
		Status:      models.Status(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func itemToCached(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		Price:       item.Price,
		Cost:        item.Cost,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
