package settings

import "context"

type SettingsService interface {
	// Get returns the user's settings, or the documented defaults when none
	// have been saved yet. Missing configuration is never an error.
	Get(ctx context.Context, userID string) (CalcSettings, error)
	Update(ctx context.Context, userID string, req UpdateSettingsRequest) (CalcSettings, error)
}
