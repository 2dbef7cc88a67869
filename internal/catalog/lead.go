package catalog

import "github.com/V4T54L/ga4-measurement/internal/domain"

type LeadParams struct {
	Price *domain.Price
	domain.Engagement
}

func (p LeadParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.Price(p.Price), p.Engagement)
}

// CloseConvertLead reports that a lead was converted and closed.
func CloseConvertLead(p LeadParams) domain.Event { return event("close_convert_lead", p) }

// QualifyLead reports that a user met the criteria of a qualified lead.
func QualifyLead(p LeadParams) domain.Event { return event("qualify_lead", p) }

// LeadReasonParams carries the reason a lead was lost. Each event sends the
// reason under its own key.
type LeadReasonParams struct {
	Price  *domain.Price
	Reason string
	domain.Engagement
}

func (p LeadReasonParams) fields(reasonKey string) domain.Fields {
	f := domain.Fields{}.
		Price(p.Price).
		String(reasonKey, p.Reason)
	return withEngagement(f, p.Engagement)
}

type unconvertLead struct{ LeadReasonParams }

func (p unconvertLead) EncodeFields() domain.Fields { return p.fields("unconvert_lead_reason") }

type disqualifiedLead struct{ LeadReasonParams }

func (p disqualifiedLead) EncodeFields() domain.Fields { return p.fields("disqualified_lead_reason") }

// CloseUnconvertLead reports that a user will not become a converted lead.
func CloseUnconvertLead(p LeadReasonParams) domain.Event {
	return event("close_unconvert_lead", unconvertLead{p})
}

// DisqualifyLead reports that a lead was disqualified.
func DisqualifyLead(p LeadReasonParams) domain.Event {
	return event("disqualify_lead", disqualifiedLead{p})
}

type WorkingLeadParams struct {
	Price      *domain.Price
	LeadStatus string
	domain.Engagement
}

func (p WorkingLeadParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		Price(p.Price).
		String("lead_status", p.LeadStatus)
	return withEngagement(f, p.Engagement)
}

// WorkingLead reports that a user contacted or was contacted by a
// representative.
func WorkingLead(p WorkingLeadParams) domain.Event { return event("working_lead", p) }
