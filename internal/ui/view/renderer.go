package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	gameClient "github.com/palemoky/four-landlord/internal/client"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/ui/common"
)

// Screen 渲染一帧所需的全部数据
type Screen struct {
	State         *gameClient.GameState
	Names         [card.NumPlayers]string
	Width, Height int
	Input         string // 已渲染的输入框
	ShowCounter   bool
	ShowHelp      bool
	Notice        string
}

// Render 按阶段渲染整个界面
func Render(s Screen) string {
	if s.ShowHelp {
		return RulesView(s.Width)
	}
	if s.State.Phase == engine.PhaseGameOver {
		return GameOverView(s)
	}
	return GameView(s)
}

// GameView renders the main game view for bidding and playing phases.
func GameView(s Screen) string {
	state := s.State
	var sb strings.Builder

	// 底牌和记牌器
	sb.WriteString(lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, renderTopSection(state, s.ShowCounter)))
	sb.WriteString("\n")

	// 其他三家
	sb.WriteString(lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, renderOpponents(state, s.Names)))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, renderMyLastAction(state)))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, renderPlayerHand(state.Hand, iconFor(state, state.Viewer))))
	sb.WriteString("\n")

	sb.WriteString(renderPrompt(s))

	if s.Width == 0 || s.Height == 0 {
		return sb.String()
	}
	return lipgloss.Place(s.Width, s.Height, lipgloss.Center, lipgloss.Center, sb.String())
}

// GameOverView renders the game over view.
func GameOverView(s Screen) string {
	state := s.State
	var sb strings.Builder

	result := "😢 你输了"
	if state.YouWin {
		result = "🎉 你赢了!"
	}
	side := "农民"
	if state.Winner == state.Landlord {
		side = "地主"
	}
	winner := ""
	if state.Winner >= 0 {
		winner = s.Names[state.Winner]
	}
	fmt.Fprintf(&sb, "🎮 游戏结束! %s\n\n🏆 %s (%s) 出完了牌\n\n", result, winner, side)

	for seat, hand := range state.RevealedHands {
		fmt.Fprintf(&sb, "%s %s: %s\n", iconFor(state, seat), common.TruncateName(s.Names[seat], 8), renderCardsInline(hand, "(出完)"))
	}
	sb.WriteString("\n按回车再来一局, ESC 退出")

	box := common.BoxStyle.Render(sb.String())
	if s.Notice != "" {
		box = lipgloss.JoinVertical(lipgloss.Center, box, common.ErrorStyle.Render(s.Notice))
	}
	if s.Width == 0 || s.Height == 0 {
		return box
	}
	return lipgloss.Place(s.Width, s.Height, lipgloss.Center, lipgloss.Center, box)
}

// --- Helper rendering functions ---

func iconFor(state *gameClient.GameState, seat int) string {
	switch state.Landlord {
	case -1:
		return common.UnknownIcon
	case seat:
		return common.LandlordIcon
	}
	return common.FarmerIcon
}

func renderTopSection(state *gameClient.GameState, cardCounterEnabled bool) string {
	landlordCardsView := renderLandlordCards(state.BottomCards)
	if cardCounterEnabled && state.CardCounter != nil {
		return lipgloss.JoinHorizontal(lipgloss.Top, renderCardCounter(state.CardCounter), "  ", landlordCardsView)
	}
	return landlordCardsView
}

func renderLandlordCards(bottomCards []card.Card) string {
	if len(bottomCards) == 0 {
		return common.BoxStyle.Render("底牌: (待揭晓)")
	}
	rankStr, suitStr := renderCardRows(bottomCards)
	content := lipgloss.JoinVertical(lipgloss.Center, "底牌", rankStr, suitStr)
	return common.BoxStyle.Render(content)
}

// renderCardRows 点数一行、花色一行
func renderCardRows(cards []card.Card) (string, string) {
	var rankStr, suitStr strings.Builder
	for _, c := range cards {
		style := common.CardStyle(c).Align(lipgloss.Center).Margin(0, 1)
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Suit.String())))
	}
	return rankStr.String(), suitStr.String()
}

func renderCardsInline(cards []card.Card, empty string) string {
	if len(cards) == 0 {
		return empty
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = common.CardStyle(c).Render(c.String())
	}
	return strings.Join(parts, " ")
}

func renderCardCounter(counter *gameClient.CardCounter) string {
	var sb strings.Builder

	names := make([]string, 0, len(common.DisplayOrder))
	for _, rank := range common.DisplayOrder {
		names = append(names, fmt.Sprintf("%-2s", rank.String()))
	}
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", 44) + "\n")

	remaining := counter.GetRemaining()
	counts := make([]string, 0, len(common.DisplayOrder))
	for _, rank := range common.DisplayOrder {
		counts = append(counts, fmt.Sprintf("%-2d", remaining[rank]))
	}
	sb.WriteString(strings.Join(counts, "│"))

	return common.BoxStyle.Render(sb.String())
}

func renderAction(action *gameClient.SeatAction) string {
	switch {
	case action == nil:
		return ""
	case action.Passed:
		return common.HintStyle.Render("不出")
	}
	return renderCardsInline(action.Cards, "") + "\n" + action.HandType
}

func renderOpponents(state *gameClient.GameState, names [card.NumPlayers]string) string {
	parts := make([]string, 0, card.NumPlayers-1)
	for i := 1; i < card.NumPlayers; i++ {
		seat := (state.Viewer + i) % card.NumPlayers

		name := common.TruncateName(names[seat], 8)
		if state.CurrentPlayer == seat {
			name = common.ActiveStyle.Render("▶ " + name)
		}
		info := fmt.Sprintf("%s %s\n🃏 %d张\n%s", iconFor(state, seat), name, state.CardsLeft[seat], renderAction(state.LastActions[seat]))
		parts = append(parts, common.BoxStyle.Width(22).Render(info))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderMyLastAction(state *gameClient.GameState) string {
	action := renderAction(state.LastActions[state.Viewer])
	if action == "" {
		return ""
	}
	return "你出: " + action
}

func renderPlayerHand(hand []card.Card, icon string) string {
	if len(hand) == 0 {
		return common.BoxStyle.Render("(无手牌)")
	}
	rankStr, suitStr := renderCardRows(hand)
	title := fmt.Sprintf("我的手牌 %s (%d张)", icon, len(hand))
	content := lipgloss.JoinVertical(lipgloss.Center, title, rankStr, suitStr)
	return common.BoxStyle.Render(content)
}

func renderPrompt(s Screen) string {
	state := s.State
	var sb strings.Builder

	waiting := ""
	if state.CurrentPlayer >= 0 {
		waiting = s.Names[state.CurrentPlayer]
	}

	switch state.Phase {
	case engine.PhaseBidding:
		if state.MyTurn() {
			sb.WriteString("轮到你决定是否当地主 (Y 叫 / N 不叫)\n")
		} else {
			fmt.Fprintf(&sb, "等待 %s 叫地主...\n", waiting)
		}
	case engine.PhasePlaying:
		if state.MyTurn() {
			if state.Leader {
				sb.WriteString("轮到你出牌，你是首出，不能不出\n")
			} else {
				sb.WriteString("轮到你出牌 (PASS 不出, HINT 提示)\n")
			}
		} else {
			fmt.Fprintf(&sb, "等待 %s 出牌...\n", waiting)
		}
	default:
		sb.WriteString("发牌中...\n")
	}

	if state.MyTurn() {
		sb.WriteString(s.Input)
	} else {
		sb.WriteString(common.HintStyle.Render("C 键记牌器, ? 键帮助, ESC 退出"))
	}
	if s.Notice != "" {
		sb.WriteString("\n" + common.ErrorStyle.Render(s.Notice))
	}

	centered := lipgloss.NewStyle().
		Width(s.Width).
		AlignHorizontal(lipgloss.Center).
		Render(sb.String())
	return common.PromptStyle.Render(centered)
}
