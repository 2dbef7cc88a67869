package catalog

import "github.com/V4T54L/ga4-measurement/internal/domain"

type LevelStartParams struct {
	LevelName string
	domain.Engagement
}

func (p LevelStartParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("level_name", p.LevelName), p.Engagement)
}

// LevelStart reports that a level started.
func LevelStart(p LevelStartParams) domain.Event { return event("level_start", p) }

type LevelUpParams struct {
	Level     int
	Character string
	domain.Engagement
}

func (p LevelUpParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		Set("level", p.Level).
		String("character", p.Character)
	return withEngagement(f, p.Engagement)
}

// LevelUp reports that a player leveled up.
func LevelUp(p LevelUpParams) domain.Event { return event("level_up", p) }

// LevelEndParams reports the outcome of a level. Success is sent as a JSON
// boolean.
type LevelEndParams struct {
	LevelName string
	Success   bool
	domain.Engagement
}

func (p LevelEndParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("level_name", p.LevelName).
		Set("success", p.Success)
	return withEngagement(f, p.Engagement)
}

// LevelEnd reports that a level ended, successfully or not.
func LevelEnd(p LevelEndParams) domain.Event { return event("level_end", p) }

type PostScoreParams struct {
	Score     int
	Level     *int
	Character string
	domain.Engagement
}

func (p PostScoreParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		Set("score", p.Score).
		Int("level", p.Level).
		String("character", p.Character)
	return withEngagement(f, p.Engagement)
}

// PostScore reports a score posted by the player.
func PostScore(p PostScoreParams) domain.Event { return event("post_score", p) }

type UnlockAchievementParams struct {
	AchievementID string
	domain.Engagement
}

func (p UnlockAchievementParams) EncodeFields() domain.Fields {
	return withEngagement(domain.Fields{}.String("achievement_id", p.AchievementID), p.Engagement)
}

// UnlockAchievement reports an unlocked achievement.
func UnlockAchievement(p UnlockAchievementParams) domain.Event {
	return event("unlock_achievement", p)
}

type EarnVirtualCurrencyParams struct {
	CurrencyName string
	Value        float64
	domain.Engagement
}

func (p EarnVirtualCurrencyParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("virtual_currency_name", p.CurrencyName).
		Set("value", p.Value)
	return withEngagement(f, p.Engagement)
}

// EarnVirtualCurrency reports virtual currency earned.
func EarnVirtualCurrency(p EarnVirtualCurrencyParams) domain.Event {
	return event("earn_virtual_currency", p)
}

type SpendVirtualCurrencyParams struct {
	ItemName     string
	CurrencyName string
	Value        float64
	domain.Engagement
}

func (p SpendVirtualCurrencyParams) EncodeFields() domain.Fields {
	f := domain.Fields{}.
		String("item_name", p.ItemName).
		String("virtual_currency_name", p.CurrencyName).
		Set("value", p.Value)
	return withEngagement(f, p.Engagement)
}

// SpendVirtualCurrency reports the sale of a virtual good.
func SpendVirtualCurrency(p SpendVirtualCurrencyParams) domain.Event {
	return event("spend_virtual_currency", p)
}
