package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("calculation settings not found")
)
