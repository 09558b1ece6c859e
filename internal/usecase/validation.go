package usecase

import (
	"net/url"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
)

const (
	minUsernameLength          = 3
	maxUsernameLength          = 30
	minPasswordLength          = 5
	maxHabitNameLength         = 100
	maxRewardTitleLength       = 100
	minRewardDescriptionLength = 5
	maxRewardDescriptionLength = 150
)

// ValidateUsername accepts 3 to 30 ASCII letters and digits.
func ValidateUsername(username string) bool {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return false
	}
	for i := 0; i < len(username); i++ {
		c := username[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// ValidatePassword enforces the minimal password length.
func ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength
}

// NormalizeHabitDraft trims the draft and checks it is well formed.
func NormalizeHabitDraft(draft model.HabitDraft) (model.HabitDraft, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Color = strings.TrimSpace(draft.Color)
	if err := validateHabitName(draft.Name); err != nil {
		return draft, err
	}
	if draft.Color == "" || !draft.Difficulty.Valid() {
		return draft, domainErrors.ErrInvalidInput
	}
	return draft, nil
}

func validateHabitName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxHabitNameLength {
		return domainErrors.ErrInvalidInput
	}
	return nil
}

// ValidateReward checks user supplied reward fields.
func ValidateReward(r *model.Reward) error {
	titleLen := utf8.RuneCountInString(r.Title)
	if titleLen == 0 || titleLen > maxRewardTitleLength {
		return domainErrors.ErrInvalidInput
	}
	if r.Description != "" {
		n := utf8.RuneCountInString(r.Description)
		if n < minRewardDescriptionLength || n > maxRewardDescriptionLength {
			return domainErrors.ErrInvalidInput
		}
	}
	if r.Price < 0 {
		return domainErrors.ErrInvalidInput
	}
	if r.ImageURL != "" {
		u, err := url.ParseRequestURI(r.ImageURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return domainErrors.ErrInvalidInput
		}
	}
	return nil
}
