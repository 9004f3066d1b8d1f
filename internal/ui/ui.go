// Package ui provides the main entry point for the UI.
package ui

import (
	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/game/clock"
	"github.com/palemoky/four-landlord/internal/ui/model"
)

// NewLocalModel creates a local game against three AI players.
func NewLocalModel(cfg *config.Config, sound model.SoundPlayer) *model.GameModel {
	return model.NewGameModel(cfg.Client.Name, cfg.Game, model.Options{
		Clock: clock.Real{},
		Sound: sound,
	})
}
