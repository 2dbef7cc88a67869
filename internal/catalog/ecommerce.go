package catalog

import "github.com/V4T54L/ga4-measurement/internal/domain"

type PaymentInfoParams struct {
	Coupon      string
	PaymentType string
	Price       *domain.Price
	Items       []domain.Item
	domain.Engagement
}

func (p PaymentInfoParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("coupon", p.Coupon).
		String("payment_type", p.PaymentType).
		Price(p.Price)
	return withEngagement(items(f, p.Items), p.Engagement)
}

// AddPaymentInfo reports that payment information was submitted.
func AddPaymentInfo(p PaymentInfoParams) domain.Event { return event("add_payment_info", p) }

type ShippingInfoParams struct {
	Coupon       string
	ShippingTier string
	Price        *domain.Price
	Items        []domain.Item
	domain.Engagement
}

func (p ShippingInfoParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("coupon", p.Coupon).
		String("shipping_tier", p.ShippingTier).
		Price(p.Price)
	return withEngagement(items(f, p.Items), p.Engagement)
}

// AddShippingInfo reports that shipping information was submitted.
func AddShippingInfo(p ShippingInfoParams) domain.Event { return event("add_shipping_info", p) }

// CartParams is shared by the cart and wishlist events.
type CartParams struct {
	Items []domain.Item
	Price *domain.Price
	domain.Engagement
}

func (p CartParams) EncodeFields() domain.Fields {
	return withEngagement(items(domain.Fields{}, p.Items).Price(p.Price), p.Engagement)
}

// AddToCart reports items added to the cart.
func AddToCart(p CartParams) domain.Event { return event("add_to_cart", p) }

// AddToWishlist reports items added to a wishlist.
func AddToWishlist(p CartParams) domain.Event { return event("add_to_wishlist", p) }

// RemoveFromCart reports items removed from the cart.
func RemoveFromCart(p CartParams) domain.Event { return event("remove_from_cart", p) }

// ViewCart reports that the user viewed their cart.
func ViewCart(p CartParams) domain.Event { return event("view_cart", p) }

type CheckoutParams struct {
	Items  []domain.Item
	Coupon string
	Price  *domain.Price
	domain.Engagement
}

func (p CheckoutParams) EncodeFields() domain.Fields {
	f := items(domain.Fields{}, p.Items).
		String("coupon", p.Coupon).
		Price(p.Price)
	return withEngagement(f, p.Engagement)
}

// BeginCheckout reports that a user started checking out.
func BeginCheckout(p CheckoutParams) domain.Event { return event("begin_checkout", p) }

// TransactionParams is shared by purchase and refund.
type TransactionParams struct {
	TransactionID string
	Coupon        string
	Tax           *float64
	Price         *domain.Price
	Shipping      *float64
	Items         []domain.Item
	domain.Engagement
}

func (p TransactionParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("transaction_id", p.TransactionID).
		String("coupon", p.Coupon).
		Float("tax", p.Tax).
		Price(p.Price).
		Float("shipping", p.Shipping)
	return withEngagement(items(f, p.Items), p.Engagement)
}

// Purchase reports that one or more items were purchased.
func Purchase(p TransactionParams) domain.Event { return event("purchase", p) }

// Refund reports that a refund was issued.
func Refund(p TransactionParams) domain.Event { return event("refund", p) }
