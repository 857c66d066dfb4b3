package repositories

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/catalog"
	"storefront/internal/errx"
	"storefront/internal/models"
)

type ProductRepository struct {
	client *UpstreamClient
}

func NewProductRepository(client *UpstreamClient) *ProductRepository {
	return &ProductRepository{client: client}
}

// List fetches GET /products. query is forwarded as-is, e.g. isFeatured=true.
func (r *ProductRepository) List(ctx context.Context, query url.Values) ([]models.Product, error) {
	body, err := r.client.Do(ctx, Request{Method: http.MethodGet, Path: "/products", Query: query})
	if err != nil {
		return nil, err
	}

	det := catalog.DetectShape(body)
	if det.Shape == catalog.ShapeUnrecognized {
		return nil, errx.Malformed(errUnrecognizedList)
	}
	return catalog.FromDetection(det), nil
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	if !models.ValidID(id) {
		return nil, errx.InvalidParam("product id", id)
	}

	body, err := r.client.Do(ctx, Request{Method: http.MethodGet, Path: productPath(id)})
	if err != nil {
		return nil, err
	}

	product, ok := catalog.NormalizeOne(body)
	if !ok {
		return nil, errx.Malformed(errUnrecognizedRecord)
	}
	// Some upstreams omit the id on single-record responses.
	if !product.Navigable() {
		product.ID = id
	}
	return product, nil
}

// Create posts a new product. The created record is returned when the API echoes it.
func (r *ProductRepository) Create(ctx context.Context, token string, in models.ProductInput) (*models.Product, error) {
	in.Prepare()
	body, err := r.client.Do(ctx, Request{Method: http.MethodPost, Path: "/products", Token: token, Body: in})
	if err != nil {
		return nil, err
	}
	product, _ := catalog.NormalizeOne(body)
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, token, id string, in models.ProductInput) (*models.Product, error) {
	if !models.ValidID(id) {
		return nil, errx.InvalidParam("product id", id)
	}
	in.Prepare()
	body, err := r.client.Do(ctx, Request{Method: http.MethodPut, Path: productPath(id), Token: token, Body: in})
	if err != nil {
		return nil, err
	}
	product, _ := catalog.NormalizeOne(body)
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, token, id string) error {
	if !models.ValidID(id) {
		return errx.InvalidParam("product id", id)
	}
	_, err := r.client.Do(ctx, Request{Method: http.MethodDelete, Path: productPath(id), Token: token})
	return err
}

func productPath(id string) string {
	return "/products/" + url.PathEscape(id)
}
