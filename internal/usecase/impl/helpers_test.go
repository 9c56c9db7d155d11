package impl

import (
	"io"
	"log/slog"

	"checkin/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Invite: &config.InviteConfig{
			BaseURL: "https://checkin.example/invite",
			Scheme:  "checkin",
		},
		Pairing: &config.PairingConfig{},
	}
}
