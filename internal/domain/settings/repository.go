package settings

import "context"

type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (CalcSettings, error)
	Upsert(ctx context.Context, s CalcSettings) (CalcSettings, error)
}
