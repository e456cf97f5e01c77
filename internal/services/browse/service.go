package browse

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"clothiq/internal/domain"
)

const (
	// DefaultRelatedLimit caps the related-products row.
	DefaultRelatedLimit = 5
)

// DefaultHomeCategories are shown on the home screen when none are configured.
var DefaultHomeCategories = []domain.Category{"mens-shirts", "womens-dresses"}

// ErrNoCategories is returned by Home when no categories are configured.
var ErrNoCategories = errors.New("no home categories configured")

// Options tunes the listings.
type Options struct {
	HomeCategories []domain.Category
	RelatedLimit   int
}

// Service implements domain.BrowseService on top of a Catalog.
type Service struct {
	catalog domain.Catalog
	opts    Options
	log     *zap.Logger
}

// New returns a browse service. Zero-valued options fall back to the defaults.
func New(catalog domain.Catalog, opts Options, log *zap.Logger) *Service {
	if opts.HomeCategories == nil {
		opts.HomeCategories = DefaultHomeCategories
	}
	if opts.RelatedLimit <= 0 {
		opts.RelatedLimit = DefaultRelatedLimit
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{catalog: catalog, opts: opts, log: log}
}

// HomeCategories returns the categories merged by Home.
func (s *Service) HomeCategories() []domain.Category {
	return append([]domain.Category(nil), s.opts.HomeCategories...)
}

// Home returns the products of every home category, category by category.
func (s *Service) Home(ctx context.Context) ([]domain.Product, error) {
	cats := s.opts.HomeCategories
	if len(cats) == 0 {
		return nil, ErrNoCategories
	}

	results := make([][]domain.Product, len(cats))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range cats {
		g.Go(func() error {
			ps, err := s.catalog.ProductsByCategory(gctx, c)
			if err != nil {
				return err
			}
			results[i] = ps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Warn("home feed failed", zap.Error(err))
		return nil, err
	}

	var out []domain.Product
	for _, ps := range results {
		out = append(out, ps...)
	}
	s.log.Debug("home feed loaded", zap.Int("count", len(out)))
	return out, nil
}

// ProductsByCategory lists one category.
func (s *Service) ProductsByCategory(
	ctx context.Context,
	category domain.Category,
) ([]domain.Product, error) {
	return s.catalog.ProductsByCategory(ctx, category)
}

// Product fetches one product.
func (s *Service) Product(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	return s.catalog.Product(ctx, id)
}

// Related returns up to the configured limit of other products in p's
// category, in catalog order.
func (s *Service) Related(ctx context.Context, p domain.Product) []domain.Product {
	if p.Category == "" {
		return nil
	}
	all, err := s.catalog.ProductsByCategory(ctx, p.Category)
	if err != nil {
		s.log.Warn("failed to load recommendations",
			zap.Int64("product_id", int64(p.ID)),
			zap.String("category", p.Category.String()),
			zap.Error(err))
		return nil
	}

	out := make([]domain.Product, 0, s.opts.RelatedLimit)
	for _, q := range all {
		if q.ID == p.ID {
			continue
		}
		out = append(out, q)
		if len(out) == s.opts.RelatedLimit {
			break
		}
	}
	return out
}

// Compile-time assertion that Service implements domain.BrowseService.
var _ domain.BrowseService = (*Service)(nil)
