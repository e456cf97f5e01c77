package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"clothiq/internal/domain"
)

// DefaultBaseURL is the public product API.
const DefaultBaseURL = "https://dummyjson.com"

// HTTP talks to the product API.
type HTTP struct {
	Base string
	HTTP *http.Client
	Log  *zap.Logger
}

// NewHTTP returns a client for base using hc. A nil hc means
// http.DefaultClient; a nil log discards output.
func NewHTTP(base string, hc *http.Client, log *zap.Logger) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc, Log: log}
}

// productList is the envelope returned by list endpoints.
type productList struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// ProductsByCategory lists every product in category.
func (c *HTTP) ProductsByCategory(
	ctx context.Context,
	category domain.Category,
) ([]domain.Product, error) {
	var out productList
	path := "/products/category/" + url.PathEscape(category.String())
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	c.Log.Debug("fetched category",
		zap.String("category", category.String()),
		zap.Int("count", len(out.Products)))
	return out.Products, nil
}

// Product fetches a single product.
func (c *HTTP) Product(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	var out domain.Product
	err := c.getJSON(ctx, "/products/"+id.String(), &out)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	if err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s %s: %s", e.Method, e.Path, e.Status)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Warn("catalog request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("catalog get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &StatusError{
			Method: http.MethodGet,
			Path:   path,
			Code:   resp.StatusCode,
			Status: resp.Status,
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog decode %s: %w", path, err)
	}
	return nil
}

// Compile-time assertion that HTTP implements domain.Catalog.
var _ domain.Catalog = (*HTTP)(nil)
