// Package input 解析输入框中的指令
package input

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/engine"
)

// Action 输入对应的操作
type Action int

const (
	ActionNone Action = iota
	ActionClaim
	ActionDecline
	ActionPlay
	ActionPass
	ActionHint
	ActionNewGame
)

// Command 解析后的指令
type Command struct {
	Action Action
	Cards  []card.Card
}

// Key 输入框之外的快捷键
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyToggleCounter
	KeyToggleHelp
)

var (
	ErrNotYourTurn = errors.New("还没轮到你")
	ErrUnknownBid  = errors.New("请输入 Y 叫地主或 N 不叫")
)

// ParseCommand 按当前阶段解析输入，出牌时从手牌中找出对应的牌
func ParseCommand(phase engine.Phase, myTurn bool, hand []card.Card, text string) (Command, error) {
	text = strings.TrimSpace(text)
	upper := strings.ToUpper(text)

	switch phase {
	case engine.PhaseGameOver:
		return Command{Action: ActionNewGame}, nil

	case engine.PhaseBidding:
		if !myTurn {
			return Command{}, ErrNotYourTurn
		}
		switch upper {
		case "Y", "YES", "1":
			return Command{Action: ActionClaim}, nil
		case "N", "NO", "0":
			return Command{Action: ActionDecline}, nil
		}
		return Command{}, ErrUnknownBid

	case engine.PhasePlaying:
		if !myTurn {
			return Command{}, ErrNotYourTurn
		}
		switch upper {
		case "":
			return Command{}, nil
		case "PASS", "P":
			return Command{Action: ActionPass}, nil
		case "HINT", "H", "?":
			return Command{Action: ActionHint}, nil
		}
		cards, err := card.FindCardsInHand(hand, upper)
		if err != nil {
			return Command{}, err
		}
		return Command{Action: ActionPlay, Cards: cards}, nil
	}
	return Command{}, nil
}

// ParseKey 快捷键。输入框有内容时字母键留给输入框
func ParseKey(msg tea.KeyMsg, inputEmpty bool) Key {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return KeyQuit
	case tea.KeyTab:
		return KeyToggleCounter
	case tea.KeyF1:
		return KeyToggleHelp
	case tea.KeyRunes:
		if !inputEmpty || len(msg.Runes) != 1 {
			return KeyNone
		}
		switch msg.Runes[0] {
		case 'c', 'C':
			return KeyToggleCounter
		case '?':
			return KeyToggleHelp
		}
	}
	return KeyNone
}
