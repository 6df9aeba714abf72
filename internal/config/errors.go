package config

import "errors"

var (
	ErrUnknownDirection = errors.New("config: unknown direction")
	ErrUnknownColor     = errors.New("config: unknown color")
	ErrSpeedRange       = errors.New("config: speed out of range 1-10")
	ErrUnknownPreset    = errors.New("config: unknown preset")
	ErrCountdownRange   = errors.New("config: invalid countdown bounds")
)
