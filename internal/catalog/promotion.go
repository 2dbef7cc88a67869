package catalog

import "github.com/V4T54L/ga4-measurement/internal/domain"

type PromotionParams struct {
	PromotionID   string
	PromotionName string
	CreativeName  string
	CreativeSlot  string
	Items         []domain.Item
	domain.Engagement
}

func (p PromotionParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("promotion_id", p.PromotionID).
		String("promotion_name", p.PromotionName).
		String("creative_name", p.CreativeName).
		String("creative_slot", p.CreativeSlot)
	return withEngagement(items(f, p.Items), p.Engagement)
}

// SelectPromotion reports that a user selected a promotion.
func SelectPromotion(p PromotionParams) domain.Event { return event("select_promotion", p) }

// ViewPromotion reports that a promotion was shown.
func ViewPromotion(p PromotionParams) domain.Event { return event("view_promotion", p) }
