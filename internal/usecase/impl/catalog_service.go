package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/domain/entity"
	domainerrors "furnishop/internal/domain/errors"
	"furnishop/internal/domain/repository"
	"furnishop/internal/domain/service"
	"furnishop/internal/errors"
	"furnishop/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	mu      sync.Mutex
	loaded  bool
	catalog entity.Catalog

	repo   repository.CatalogRepository
	seeds  service.SeedProvider
	ids    service.IDGenerator
	logger *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Repo   repository.CatalogRepository
	Seeds  service.SeedProvider
	IDs    service.IDGenerator
	Logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		repo:   params.Repo,
		seeds:  params.Seeds,
		ids:    params.IDs,
		logger: params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) Init(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.load(ctx)
}

func (srv *catalogService) ensureLoaded(ctx context.Context) error {
	if srv.loaded {
		return nil
	}

	return srv.load(ctx)
}

func (srv *catalogService) load(ctx context.Context) error {
	override, err := srv.repo.LoadOverride(ctx)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		srv.catalog = entity.Catalog{Source: entity.CatalogSourceSeed, Products: srv.seeds.Products()}
	case err != nil:
		return storageError(err, "load catalog override")
	default:
		srv.catalog = entity.Catalog{Source: entity.CatalogSourceOverride, Products: override}
	}
	srv.loaded = true

	srv.log(ctx).Debug("Catalog loaded",
		slog.String("source", srv.catalog.Source.String()),
		slog.Int("products", len(srv.catalog.Products)),
	)

	return nil
}

// materialize returns the working copy every mutation edits. Before the first
// edit that is a copy of the seed; afterwards a copy of the persisted override.
func (srv *catalogService) materialize() []entity.Product {
	if srv.catalog.Source == entity.CatalogSourceSeed {
		return srv.seeds.Products()
	}

	return entity.CloneProducts(srv.catalog.Products)
}

// commit persists products as the override. From then on the seed is never read again.
func (srv *catalogService) commit(ctx context.Context, products []entity.Product) error {
	if err := srv.repo.SaveOverride(ctx, products); err != nil {
		return storageError(err, "save catalog override")
	}

	if srv.catalog.Source == entity.CatalogSourceSeed {
		srv.log(ctx).Info("Catalog override materialized", slog.Int("products", len(products)))
	}
	srv.catalog = entity.Catalog{Source: entity.CatalogSourceOverride, Products: products}

	return nil
}

func validateProductFields(fields entity.ProductFields) error {
	switch {
	case strings.TrimSpace(fields.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case fields.Price < 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case !fields.Category.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown category: " + fields.Category.String())
	}

	return nil
}

func indexOfProduct(products []entity.Product, id int64) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}

	return -1
}

func (srv *catalogService) List(ctx context.Context) ([]entity.Product, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	return entity.CloneProducts(srv.catalog.Products), nil
}

func (srv *catalogService) Source(ctx context.Context) (entity.CatalogSource, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return entity.CatalogSourceSeed, err
	}

	return srv.catalog.Source, nil
}

func (srv *catalogService) GetByID(ctx context.Context, id int64) (entity.Product, bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return entity.Product{}, false, err
	}

	product, ok := srv.catalog.Find(id)

	return product, ok, nil
}

// Add appends a new product with a fresh id. A missing image gets the placeholder.
func (srv *catalogService) Add(ctx context.Context, fields entity.ProductFields) (entity.Product, error) {
	if err := validateProductFields(fields); err != nil {
		return entity.Product{}, err
	}
	if strings.TrimSpace(fields.Image) == "" {
		fields.Image = entity.DefaultProductImage
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return entity.Product{}, err
	}

	products := srv.materialize()

	id := srv.ids.NextID()
	for indexOfProduct(products, id) >= 0 {
		id = srv.ids.NextID()
	}
	product := entity.Product{ID: id}
	product.Apply(fields)
	products = append(products, product)

	if err := srv.commit(ctx, products); err != nil {
		return entity.Product{}, err
	}
	srv.log(ctx).Info("Product added", slog.Int64("product_id", product.ID))

	return product, nil
}

// Update replaces the editable fields of a product. The override is materialized
// even when id is unknown.
func (srv *catalogService) Update(ctx context.Context, id int64, fields entity.ProductFields) (bool, error) {
	if err := validateProductFields(fields); err != nil {
		return false, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return false, err
	}

	products := srv.materialize()
	idx := indexOfProduct(products, id)
	if idx >= 0 {
		products[idx].Apply(fields)
	}

	if err := srv.commit(ctx, products); err != nil {
		return false, err
	}
	srv.log(ctx).Info("Product updated", slog.Int64("product_id", id), slog.Bool("found", idx >= 0))

	return idx >= 0, nil
}

// Remove deletes a product. The override is materialized even when id is unknown.
func (srv *catalogService) Remove(ctx context.Context, id int64) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return false, err
	}

	products := srv.materialize()
	idx := indexOfProduct(products, id)
	if idx >= 0 {
		products = append(products[:idx], products[idx+1:]...)
	}

	if err := srv.commit(ctx, products); err != nil {
		return false, err
	}
	srv.log(ctx).Info("Product removed", slog.Int64("product_id", id), slog.Bool("found", idx >= 0))

	return idx >= 0, nil
}

// Search filters the effective catalog, keeping catalog order.
func (srv *catalogService) Search(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	products, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if filter.Match(p) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func (srv *catalogService) Featured(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	return featured, nil
}

func (srv *catalogService) Categories() []entity.Category {
	return entity.Categories()
}
