package catalog

import "github.com/V4T54L/ga4-measurement/internal/domain"

type AdImpressionParams struct {
	Platform string
	Format   string
	Source   string
	UnitName string
	Price    *domain.Price
	domain.Engagement
}

func (p AdImpressionParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("ad_platform", p.Platform).
		String("ad_format", p.Format).
		String("ad_source", p.Source).
		String("ad_unit_name", p.UnitName).
		Price(p.Price)
	return withEngagement(f, p.Engagement)
}

// AdImpression reports that a user saw an ad.
func AdImpression(p AdImpressionParams) domain.Event { return event("ad_impression", p) }
