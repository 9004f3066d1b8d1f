// Package sound 播放牌局音效
package sound

import (
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/game/rule"
)

// Cue 音效名，同时也是 assets/sounds 下的文件名（不含扩展名）
type Cue string

const (
	CueNone     Cue = ""
	CueDeal     Cue = "deal"
	CueYourTurn Cue = "your_turn"
	CueLandlord Cue = "landlord"
	CuePlay     Cue = "play"
	CuePass     Cue = "pass"
	CueBomb     Cue = "bomb"
	CueRocket   Cue = "rocket"
	CueWin      Cue = "win"
	CueLose     Cue = "lose"
)

// AllCues 所有音效
var AllCues = []Cue{CueDeal, CueYourTurn, CueLandlord, CuePlay, CuePass, CueBomb, CueRocket, CueWin, CueLose}

// CueFor viewer 听到的事件音效，不需要音效时返回 CueNone
func CueFor(e engine.Event, s engine.State, viewer int) Cue {
	switch e.Kind {
	case engine.EventDealt:
		if e.Player == viewer {
			return CueDeal
		}
	case engine.EventTurn:
		if e.Player == viewer {
			return CueYourTurn
		}
	case engine.EventLandlord:
		return CueLandlord
	case engine.EventCardsPlayed:
		switch e.HandType {
		case rule.Rocket:
			return CueRocket
		case rule.Bomb:
			return CueBomb
		}
		return CuePlay
	case engine.EventPassed:
		return CuePass
	case engine.EventGameOver:
		if s.Won(viewer) {
			return CueWin
		}
		return CueLose
	}
	return CueNone
}
