package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gameClient "github.com/palemoky/four-landlord/internal/client"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/game/rule"
)

var testNames = [card.NumPlayers]string{"老王", "电脑1", "电脑2", "电脑3"}

func TestRenderGameRules(t *testing.T) {
	t.Parallel()

	result := RenderGameRules()

	tests := []struct {
		name     string
		contains string
	}{
		{"game goal section", "【游戏目标】"},
		{"landlord rule", "地主"},
		{"farmer rule", "农民"},
		{"card type section", "【牌型说明】"},
		{"straight", "顺子"},
		{"plane", "飞机"},
		{"four with two", "四带二"},
		{"bomb", "炸弹"},
		{"rocket", "王炸"},
		{"bidding section", "【叫地主规则】"},
		{"hand size", "13 张"},
		{"play rules section", "【出牌规则】"},
		{"input section", "JOKER"},
		{"shortcut section", "【快捷键】"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, result, tt.contains)
		})
	}
}

func TestGameView_Bidding(t *testing.T) {
	t.Parallel()

	deck := card.NewDeck()
	state := gameClient.NewGameState(0)
	state.Phase = engine.PhaseBidding
	state.Hand = []card.Card{deck[53], deck[12], deck[0]}
	state.CurrentPlayer = 0
	state.CardsLeft = [card.NumPlayers]int{13, 13, 13, 13}

	out := Render(Screen{State: state, Names: testNames, Width: 120, Height: 40, Input: "> _"})

	assert.Contains(t, out, "底牌: (待揭晓)")
	assert.Contains(t, out, "电脑1")
	assert.Contains(t, out, "电脑3")
	assert.Contains(t, out, "13张")
	assert.Contains(t, out, "我的手牌")
	assert.Contains(t, out, "轮到你决定是否当地主")
	assert.Contains(t, out, "> _")
}

func TestGameView_Playing(t *testing.T) {
	t.Parallel()

	deck := card.NewDeck()
	state := gameClient.NewGameState(0)
	state.Phase = engine.PhasePlaying
	state.Landlord = 2
	state.CurrentPlayer = 3
	state.BottomCards = []card.Card{deck[5], deck[18]}
	state.LastActions[1] = &gameClient.SeatAction{Passed: true}
	state.LastActions[2] = &gameClient.SeatAction{Cards: []card.Card{deck[3], deck[16]}, HandType: rule.Pair.String()}

	out := Render(Screen{State: state, Names: testNames, Width: 120, Height: 40, ShowCounter: true, Notice: "牌型不对"})

	assert.Contains(t, out, "底牌")
	assert.NotContains(t, out, "待揭晓")
	assert.Contains(t, out, "不出")
	assert.Contains(t, out, "对子")
	assert.Contains(t, out, "等待 电脑3 出牌")
	assert.Contains(t, out, "牌型不对")
	assert.Contains(t, out, "(无手牌)")
	// 记牌器
	assert.Contains(t, out, "──")
}

func TestGameView_LeaderPrompt(t *testing.T) {
	t.Parallel()

	state := gameClient.NewGameState(0)
	state.Phase = engine.PhasePlaying
	state.Landlord = 0
	state.CurrentPlayer = 0
	state.Leader = true

	out := GameView(Screen{State: state, Names: testNames})
	assert.Contains(t, out, "不能不出")
}

func TestGameOverView(t *testing.T) {
	t.Parallel()

	deck := card.NewDeck()
	state := gameClient.NewGameState(0)
	state.Phase = engine.PhaseGameOver
	state.Landlord = 1
	state.Winner = 1
	state.RevealedHands[0] = []card.Card{deck[0]}
	state.RevealedHands[2] = []card.Card{deck[53]}

	out := Render(Screen{State: state, Names: testNames, Width: 100, Height: 30})
	assert.Contains(t, out, "你输了")
	assert.Contains(t, out, "电脑1 (地主)")
	assert.Contains(t, out, "(出完)")
	assert.Contains(t, out, "大王")
	assert.Contains(t, out, "再来一局")

	state.YouWin = true
	assert.Contains(t, GameOverView(Screen{State: state, Names: testNames}), "你赢了")
}

func TestRender_Help(t *testing.T) {
	t.Parallel()

	out := Render(Screen{State: gameClient.NewGameState(0), Names: testNames, Width: 100, ShowHelp: true})
	assert.Contains(t, out, "游戏规则")
}
