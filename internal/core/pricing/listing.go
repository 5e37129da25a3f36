// internal/core/pricing/listing.go
package pricing

import (
	"context"
	"slices"
	"strings"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

// Evaluate decides where phone can be listed. A phone is listed when it is
// in stock, not committed to a B2B/direct sale and priceable on at least one
// platform.
//
// Out-of-stock phones short-circuit: every platform reports no price and
// "Out of Stock" is the only reason. A B2B/direct phone is never listed, but
// its per-platform can_list flags still reflect profitability.
func (e *Engine) Evaluate(ctx context.Context, phone domain.Phone) domain.PhoneView {
	view := domain.NewPhoneView(phone)

	if phone.Stock <= 0 {
		view.NotListedReasons = append(view.NotListedReasons, domain.ReasonOutOfStock)
		for _, p := range e.catalog.Platforms {
			view.PlatformListings[p.Name] = domain.PlatformListing{
				MappedCondition: e.MapCondition(phone.Condition, p.Name),
			}
		}
		return view
	}

	if phone.SoldB2BOrDirect {
		view.NotListedReasons = append(view.NotListedReasons, domain.ReasonSoldB2BDirect)
	}

	listable := false
	for _, p := range e.catalog.Platforms {
		listing := domain.PlatformListing{
			MappedCondition: e.MapCondition(phone.Condition, p.Name),
		}

		price, err := e.MinimumSellingPrice(ctx, phone.BaseCost, p.Name)
		if err != nil {
			view.NotListedReasons = append(view.NotListedReasons, domain.UnprofitableOn(p.Name))
		} else {
			listing.SellingPrice = &price
			listing.CanList = true
			listable = true
		}

		view.PlatformListings[p.Name] = listing
	}

	view.IsListed = listable && !phone.SoldB2BOrDirect

	if !listable && len(view.NotListedReasons) == 0 {
		view.NotListedReasons = append(view.NotListedReasons, domain.ReasonUnprofitableOnAll)
	}

	return view
}

// EvaluateAll evaluates every phone and returns the views in listing order
func (e *Engine) EvaluateAll(ctx context.Context, phones []domain.Phone) []domain.PhoneView {
	views := make([]domain.PhoneView, 0, len(phones))
	for _, phone := range phones {
		views = append(views, e.Evaluate(ctx, phone))
	}
	SortViews(views)
	return views
}

// SortViews orders listed phones before unlisted ones, then by model name
// ignoring case. Ties keep their incoming order.
func SortViews(views []domain.PhoneView) {
	slices.SortStableFunc(views, func(a, b domain.PhoneView) int {
		if a.IsListed != b.IsListed {
			if a.IsListed {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Model), strings.ToLower(b.Model))
	})
}
