package catalog

import (
	"time"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// The events in this file are normally collected automatically by the SDKs.
// They can still be built by hand, mostly to exercise the validation
// endpoint.

type AdRewardParams struct {
	AdUnitID    string
	RewardType  string
	RewardValue *float64
	domain.Engagement
}

func (p AdRewardParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("ad_unit_id", p.AdUnitID).
		String("reward_type", p.RewardType).
		Float("reward_value", p.RewardValue)
	return withEngagement(f, p.Engagement)
}

// AdReward reports that a user was rewarded for viewing an ad.
func AdReward(p AdRewardParams) domain.Event { return event("ad_reward", p) }

type AppExceptionParams struct {
	Fatal *bool
	domain.Engagement
}

func (p AppExceptionParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.Bool("fatal", p.Fatal), p.Engagement)
}

// AppException reports an app crash or exception.
func AppException(p AppExceptionParams) domain.Event { return event("app_exception", p) }

// NotificationSendParams describes a sent notification. MessageTime is sent
// as Unix microseconds.
type NotificationSendParams struct {
	MessageID   string
	MessageName string
	MessageTime time.Time
	domain.Engagement
}

func (p NotificationSendParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("message_id", p.MessageID).
		String("message_name", p.MessageName).
		Micros("message_time", p.MessageTime)
	return withEngagement(f, p.Engagement)
}

// NotificationSend reports that a notification was sent.
func NotificationSend(p NotificationSendParams) domain.Event {
	return event("notification_send", p)
}

type AppStoreRefundParams struct {
	ProductID string
	Quantity  *int
	domain.Engagement
}

func (p AppStoreRefundParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("product_id", p.ProductID).
		Int("quantity", p.Quantity)
	return withEngagement(f, p.Engagement)
}

// AppStoreRefund reports an in-app purchase refund from the app store.
func AppStoreRefund(p AppStoreRefundParams) domain.Event { return event("app_store_refund", p) }

type AppStoreSubscriptionParams struct {
	ProductID string
	domain.Engagement
}

func (p AppStoreSubscriptionParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("product_id", p.ProductID), p.Engagement)
}

// AppStoreSubscriptionCancel reports a cancelled paid subscription.
func AppStoreSubscriptionCancel(p AppStoreSubscriptionParams) domain.Event {
	return event("app_store_subscription_cancel", p)
}

// AppStoreSubscriptionConvert reports a free trial converting to a paid subscription.
func AppStoreSubscriptionConvert(p AppStoreSubscriptionParams) domain.Event {
	return event("app_store_subscription_convert", p)
}

// AppStoreSubscriptionRenew reports a renewed paid subscription.
func AppStoreSubscriptionRenew(p AppStoreSubscriptionParams) domain.Event {
	return event("app_store_subscription_renew", p)
}

type DynamicLinkParams struct {
	LinkURL string
	domain.Engagement
}

func (p DynamicLinkParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("link_url", p.LinkURL), p.Engagement)
}

// DynamicLinkAppOpen reports an app reopened through a dynamic link.
func DynamicLinkAppOpen(p DynamicLinkParams) domain.Event {
	return event("dynamic_link_app_open", p)
}

// DynamicLinkFirstOpen reports a first open through a dynamic link.
func DynamicLinkFirstOpen(p DynamicLinkParams) domain.Event {
	return event("dynamic_link_first_open", p)
}

// DynamicLinkAppUpdate reports an app update through a dynamic link.
func DynamicLinkAppUpdate(p DynamicLinkParams) domain.Event {
	return event("dynamic_link_app_update", p)
}

type FirebaseCampaignParams struct {
	Source   string
	Medium   string
	Campaign string
	domain.Engagement
}

func (p FirebaseCampaignParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("source", p.Source).
		String("medium", p.Medium).
		String("campaign", p.Campaign)
	return withEngagement(f, p.Engagement)
}

// FirebaseCampaign reports an app launch with campaign parameters.
func FirebaseCampaign(p FirebaseCampaignParams) domain.Event {
	return event("firebase_campaign", p)
}

// InAppMessageParams is shared by the Firebase in-app messaging events and
// their fiam_* aliases.
type InAppMessageParams struct {
	MessageID   string
	MessageName string
	domain.Engagement
}

func (p InAppMessageParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("message_id", p.MessageID).
		String("message_name", p.MessageName)
	return withEngagement(f, p.Engagement)
}

// FirebaseInAppMessageDismiss reports a dismissed in-app message.
func FirebaseInAppMessageDismiss(p InAppMessageParams) domain.Event {
	return event("firebase_in_app_message_dismiss", p)
}

// FirebaseInAppMessageAction reports an action taken on an in-app message.
func FirebaseInAppMessageAction(p InAppMessageParams) domain.Event {
	return event("firebase_in_app_message_action", p)
}

// FirebaseInAppMessageImpression reports that an in-app message was shown.
func FirebaseInAppMessageImpression(p InAppMessageParams) domain.Event {
	return event("firebase_in_app_message_impression", p)
}

// FiamDismiss is the short-named form of FirebaseInAppMessageDismiss.
func FiamDismiss(p InAppMessageParams) domain.Event { return event("fiam_dismiss", p) }

// FiamAction is the short-named form of FirebaseInAppMessageAction.
func FiamAction(p InAppMessageParams) domain.Event { return event("fiam_action", p) }

// FiamImpression is the short-named form of FirebaseInAppMessageImpression.
func FiamImpression(p InAppMessageParams) domain.Event { return event("fiam_impression", p) }

type AppUpgradeParams struct {
	PreviousAppVersion string
	domain.Engagement
}

func (p AppUpgradeParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("previous_app_version", p.PreviousAppVersion), p.Engagement)
}

// AppUpgrade reports that the app was updated to a new version.
func AppUpgrade(p AppUpgradeParams) domain.Event { return event("app_upgrade", p) }

type PageViewParams struct {
	PageLocation string
	PageTitle    string
	domain.Engagement
}

func (p PageViewParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("page_location", p.PageLocation).
		String("page_title", p.PageTitle)
	return withEngagement(f, p.Engagement)
}

// PageView reports a web page view.
func PageView(p PageViewParams) domain.Event { return event("page_view", p) }

// Scroll reports that the user scrolled to the bottom of a page.
func Scroll(e domain.Engagement) domain.Event { return event("scroll", e) }

type VideoParams struct {
	VideoTitle string
	VideoURL   string
	domain.Engagement
}

func (p VideoParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("video_title", p.VideoTitle).
		String("video_url", p.VideoURL)
	return withEngagement(f, p.Engagement)
}

// VideoStart reports that a video started playing.
func VideoStart(p VideoParams) domain.Event { return event("video_start", p) }

// VideoComplete reports that a video played to the end.
func VideoComplete(p VideoParams) domain.Event { return event("video_complete", p) }

type VideoProgressParams struct {
	VideoTitle   string
	VideoURL     string
	VideoPercent *int
	domain.Engagement
}

func (p VideoProgressParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("video_title", p.VideoTitle).
		String("video_url", p.VideoURL).
		Int("video_percent", p.VideoPercent)
	return withEngagement(f, p.Engagement)
}

// VideoProgress reports playback passing a progress threshold.
func VideoProgress(p VideoProgressParams) domain.Event { return event("video_progress", p) }

type FormParams struct {
	FormID   string
	FormName string
	domain.Engagement
}

func (p FormParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("form_id", p.FormID).
		String("form_name", p.FormName)
	return withEngagement(f, p.Engagement)
}

// FormStart reports the first interaction with a form.
func FormStart(p FormParams) domain.Event { return event("form_start", p) }

// FormSubmit reports a submitted form.
func FormSubmit(p FormParams) domain.Event { return event("form_submit", p) }

type FileDownloadParams struct {
	FileName string
	LinkURL  string
	domain.Engagement
}

func (p FileDownloadParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("file_name", p.FileName).
		String("link_url", p.LinkURL)
	return withEngagement(f, p.Engagement)
}

// FileDownload reports a downloaded file.
func FileDownload(p FileDownloadParams) domain.Event { return event("file_download", p) }

type ClickParams struct {
	LinkURL  string
	LinkText string
	domain.Engagement
}

func (p ClickParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("link_url", p.LinkURL).
		String("link_text", p.LinkText)
	return withEngagement(f, p.Engagement)
}

// Click reports an outbound link click.
func Click(p ClickParams) domain.Event { return event("click", p) }
