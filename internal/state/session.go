package state

import (
	"fmt"

	"go.uber.org/zap"

	"clothiq/internal/domain"
	"clothiq/internal/state/cart"
	"clothiq/internal/state/wishlist"
)

// Session owns the cart and wishlist for one run of the app.
type Session struct {
	Cart     *cart.Store
	Wishlist *wishlist.Store

	log *zap.Logger
}

// NewSession returns a session with an empty cart and wishlist.
func NewSession(log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		Cart:     cart.New(),
		Wishlist: wishlist.New(),
		log:      log,
	}
}

// Dispatch applies in to its store. Only Add can fail, when the product is
// missing an id or carries a negative price.
func (s *Session) Dispatch(in Intent) error {
	switch in := in.(type) {
	case Add:
		if err := s.Cart.Add(in.Product); err != nil {
			s.log.Warn("add to cart rejected",
				zap.Int64("product_id", int64(in.Product.ID)),
				zap.Error(err))
			return err
		}
		s.log.Debug("added to cart",
			zap.Int64("product_id", int64(in.Product.ID)),
			zap.String("total", s.Cart.TotalPrice()))
	case Remove:
		s.Cart.Remove(in.ID)
		s.log.Debug("removed from cart", zap.Int64("product_id", int64(in.ID)))
	case Toggle:
		s.Wishlist.Toggle(in.Product)
		s.log.Debug("toggled wishlist",
			zap.Int64("product_id", int64(in.Product.ID)),
			zap.Bool("favorited", s.Wishlist.IsFavorited(in.Product.ID)))
	default:
		panic(fmt.Sprintf("state: unhandled intent %T", in))
	}
	return nil
}

// TotalPrice is the cart total formatted for display.
func (s *Session) TotalPrice() string { return s.Cart.TotalPrice() }

// IsFavorited reports wishlist membership of id.
func (s *Session) IsFavorited(id domain.ProductID) bool { return s.Wishlist.IsFavorited(id) }
