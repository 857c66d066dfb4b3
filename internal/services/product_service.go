package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"storefront/internal/catalog"
	"storefront/internal/errx"
	"storefront/internal/logx"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService(productRepo *repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// HomeSections are the two curated rows of the home page.
type HomeSections struct {
	Featured  []models.Product
	Exclusive []models.Product
}

// Catalog returns every product, or an empty list when the API cannot be read.
func (s *ProductService) Catalog(ctx context.Context) []models.Product {
	return s.list(ctx, nil, "catalog")
}

// Featured asks the API for featured products and keeps only flagged ones,
// since not every upstream honours the query.
func (s *ProductService) Featured(ctx context.Context) []models.Product {
	return catalog.Featured(s.list(ctx, url.Values{"isFeatured": {"true"}}, "featured"))
}

func (s *ProductService) Exclusive(ctx context.Context) []models.Product {
	return catalog.Exclusive(s.list(ctx, nil, "exclusive"))
}

// Home loads both sections concurrently. A failing section is empty and
// never holds up the other one.
func (s *ProductService) Home(ctx context.Context) HomeSections {
	var home HomeSections
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		home.Featured = s.Featured(gctx)
		return nil
	})
	g.Go(func() error {
		home.Exclusive = s.Exclusive(gctx)
		return nil
	})
	_ = g.Wait()
	return home
}

// Category returns the products of one category, matched case-insensitively.
func (s *ProductService) Category(ctx context.Context, name string) []models.Product {
	return catalog.ByCategory(s.Catalog(ctx), name)
}

// Product returns nil when the id is invalid, the product does not exist or
// the API fails.
func (s *ProductService) Product(ctx context.Context, id string) *models.Product {
	product, err := s.productRepo.Get(ctx, id)
	if err != nil {
		logFailure(err, "product").Str("product_id", id).Msg("failed to load product")
		return nil
	}
	return product
}

func (s *ProductService) Dashboard(ctx context.Context) catalog.Summary {
	return catalog.Summarize(s.Catalog(ctx))
}

func (s *ProductService) Create(ctx context.Context, token string, in models.ProductInput) (*models.Product, error) {
	product, err := s.productRepo.Create(ctx, token, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	logx.Info().Str("name", in.Name).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, token, id string, in models.ProductInput) (*models.Product, error) {
	product, err := s.productRepo.Update(ctx, token, id, in)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	logx.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, token, id string) error {
	if err := s.productRepo.Delete(ctx, token, id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	logx.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) list(ctx context.Context, query url.Values, section string) []models.Product {
	products, err := s.productRepo.List(ctx, query)
	if err != nil {
		logFailure(err, section).Msg("failed to load products")
		return []models.Product{}
	}
	return products
}

// logFailure starts a log entry tagged with the error kind. Invalid ids and
// 404s are expected traffic and logged at debug level.
func logFailure(err error, section string) *zerolog.Event {
	kind := errx.KindOf(err)
	ev := logx.Warn()
	if kind == errx.KindInvalidParam || errx.IsNotFound(err) {
		ev = logx.Debug()
	}
	return ev.Err(err).Str("kind", string(kind)).Str("section", section)
}
