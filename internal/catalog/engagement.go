package catalog

import "github.com/V4T54L/ga4-measurement/internal/domain"

// MethodParams carries the method for login and sign_up.
type MethodParams struct {
	Method string
	domain.Engagement
}

func (p MethodParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("method", p.Method), p.Engagement)
}

// Login reports that a user has logged in.
func Login(p MethodParams) domain.Event { return event("login", p) }

// SignUp reports that a user has signed up for an account.
func SignUp(p MethodParams) domain.Event { return event("sign_up", p) }

// AppOpen reports that the app became active.
func AppOpen(e domain.Engagement) domain.Event { return event("app_open", e) }

// SessionStart reports the start of a session. The name is reserved and the
// validation endpoint rejects it.
func SessionStart(e domain.Engagement) domain.Event { return event("session_start", e) }

// UserEngagement reports foreground time. The name is reserved.
func UserEngagement(e domain.Engagement) domain.Event { return event("user_engagement", e) }

// TutorialBegin marks the start of onboarding.
func TutorialBegin(e domain.Engagement) domain.Event { return event("tutorial_begin", e) }

// TutorialComplete marks the end of onboarding.
func TutorialComplete(e domain.Engagement) domain.Event { return event("tutorial_complete", e) }

type ScreenViewParams struct {
	ScreenName  string
	ScreenClass string
	domain.Engagement
}

func (p ScreenViewParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("screen_name", p.ScreenName).
		String("screen_class", p.ScreenClass)
	return withEngagement(f, p.Engagement)
}

// ScreenView reports a screen transition.
func ScreenView(p ScreenViewParams) domain.Event { return event("screen_view", p) }

type SearchParams struct {
	Term string
	domain.Engagement
}

func (p SearchParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("search_term", p.Term), p.Engagement)
}

// Search reports a search operation.
func Search(p SearchParams) domain.Event { return event("search", p) }

// ViewSearchResults reports that search results were shown.
func ViewSearchResults(p SearchParams) domain.Event { return event("view_search_results", p) }

type SelectContentParams struct {
	ItemID      string
	ContentType string
	domain.Engagement
}

func (p SelectContentParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("item_id", p.ItemID).
		String("content_type", p.ContentType)
	return withEngagement(f, p.Engagement)
}

// SelectContent reports that a user selected content of some type.
func SelectContent(p SelectContentParams) domain.Event { return event("select_content", p) }

type ShareParams struct {
	Method      string
	ItemID      string
	ContentType string
	domain.Engagement
}

func (p ShareParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("method", p.Method).
		String("item_id", p.ItemID).
		String("content_type", p.ContentType)
	return withEngagement(f, p.Engagement)
}

// Share reports that content was shared.
func Share(p ShareParams) domain.Event { return event("share", p) }

type ItemListParams struct {
	Items    []domain.Item
	ListID   string
	ListName string
	domain.Engagement
}

func (p ItemListParams) EncodeFields() domain.Fields {
	f := items(domain.Fields{}, p.Items).
		String("item_list_id", p.ListID).
		String("item_list_name", p.ListName)
	return withEngagement(f, p.Engagement)
}

// SelectItem reports that an item was selected from a list.
func SelectItem(p ItemListParams) domain.Event { return event("select_item", p) }

// ViewItemList reports that a list of items was shown.
func ViewItemList(p ItemListParams) domain.Event { return event("view_item_list", p) }

type ViewItemParams struct {
	Items []domain.Item
	Price *domain.Price
	domain.Engagement
}

func (p ViewItemParams) EncodeFields() domain.Fields {
	return withEngagement(items(domain.Fields{}, p.Items).Price(p.Price), p.Engagement)
}

// ViewItem reports that an item was viewed.
func ViewItem(p ViewItemParams) domain.Event { return event("view_item", p) }

type JoinGroupParams struct {
	GroupID string
	domain.Engagement
}

func (p JoinGroupParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("group_id", p.GroupID), p.Engagement)
}

// JoinGroup reports that a user joined a group such as a guild or team.
func JoinGroup(p JoinGroupParams) domain.Event { return event("join_group", p) }

type GenerateLeadParams struct {
	Price *domain.Price
	domain.Engagement
}

func (p GenerateLeadParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.Price(p.Price), p.Engagement)
}

// GenerateLead reports that a lead was generated.
func GenerateLead(p GenerateLeadParams) domain.Event { return event("generate_lead", p) }

// CampaignDetailsParams supplies referral details. At least one of Source,
// Medium or Campaign should be set.
type CampaignDetailsParams struct {
	Source             string
	Medium             string
	Campaign           string
	Term               string
	AdNetworkClickID   string
	CampaignID         string
	CampaignContent    string
	CampaignCustomData string
	CreativeFormat     string
	MarketingTactic    string
	SourcePlatform     string
	domain.Engagement
}

func (p CampaignDetailsParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("source", p.Source).
		String("medium", p.Medium).
		String("campaign", p.Campaign).
		String("term", p.Term).
		String("ad_network_click_id", p.AdNetworkClickID).
		String("campaign_id", p.CampaignID).
		String("campaign_content", p.CampaignContent).
		String("campaign_custom_data", p.CampaignCustomData).
		String("creative_format", p.CreativeFormat).
		String("marketing_tactic", p.MarketingTactic).
		String("source_platform", p.SourcePlatform)
	return withEngagement(f, p.Engagement)
}

// CampaignDetails reports the referral details of a re-engagement campaign.
func CampaignDetails(p CampaignDetailsParams) domain.Event { return event("campaign_details", p) }
