// Package common provides shared utilities for the UI.
package common

import (
	"strings"

	"github.com/palemoky/four-landlord/internal/game/card"
)

// TruncateName truncates a player name to the specified maximum length.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// RanksInput 将牌还原成输入框里的点数写法，王炸写作 JOKER
func RanksInput(cards []card.Card) string {
	if len(cards) == 2 && cards[0].Rank.IsJoker() && cards[1].Rank.IsJoker() {
		return "JOKER"
	}
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.Rank.String())
	}
	return sb.String()
}
