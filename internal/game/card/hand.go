package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// NumPlayers 玩家数
	NumPlayers = 4
	// BottomSize 底牌张数
	BottomSize = 2
	// HandSize 每人初始手牌张数
	HandSize = 13
)

// Deal 发牌：前 2 张为底牌，之后每 13 张依次发给 0..3 号玩家
func Deal(d Deck) (hands [NumPlayers][]Card, bottom []Card) {
	if len(d) != BottomSize+NumPlayers*HandSize {
		panic(fmt.Sprintf("牌数错误: %d", len(d)))
	}
	bottom = slices.Clone(d[:BottomSize])
	for i := range NumPlayers {
		start := BottomSize + i*HandSize
		hands[i] = slices.Clone(d[start : start+HandSize])
		SortHand(hands[i])
	}
	return hands, bottom
}

// SortHand 手牌按点数从大到小排序，点数相同按 ID 排序
func SortHand(hand []Card) {
	slices.SortFunc(hand, func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank) - int(a.Rank)
		}
		return a.ID - b.ID
	})
}

// ContainsAll 判断手牌是否包含全部指定的牌（按 ID），重复的牌视为不包含
func ContainsAll(hand, cards []Card) bool {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			return false
		}
		seen[c.ID] = true
		if !slices.ContainsFunc(hand, func(h Card) bool { return h.ID == c.ID }) {
			return false
		}
	}
	return true
}

// RemoveCards 从手牌中移除指定的牌（按 ID），返回新切片
func RemoveCards(hand, toRemove []Card) []Card {
	ids := make(map[int]struct{}, len(toRemove))
	for _, c := range toRemove {
		ids[c.ID] = struct{}{}
	}
	result := make([]Card, 0, len(hand))
	for _, c := range hand {
		if _, ok := ids[c.ID]; !ok {
			result = append(result, c)
		}
	}
	return result
}

// findRocketInHand 查找手牌中的王炸
func findRocketInHand(hand []Card) ([]Card, bool) {
	var black, red *Card
	for i := range hand {
		if hand[i].Rank == RankBlackJoker {
			black = &hand[i]
		}
		if hand[i].Rank == RankRedJoker {
			red = &hand[i]
		}
	}
	if black != nil && red != nil {
		return []Card{*black, *red}, true
	}
	return nil, false
}

// parseInputRanks 解析输入字符串为 Rank 计数
func parseInputRanks(input string) (map[Rank]int, error) {
	inputRanks := make(map[Rank]int)
	cleanInput := strings.ReplaceAll(input, "10", "T")

	for _, char := range cleanInput {
		if char == ' ' {
			continue
		}
		rank, err := RankFromChar(char)
		if err != nil {
			return nil, err
		}
		inputRanks[rank]++
	}
	if len(inputRanks) == 0 {
		return nil, errors.New("没有选择任何牌")
	}
	return inputRanks, nil
}

// countHandRanks 统计手牌中各 Rank 的数量
func countHandRanks(hand []Card) map[Rank]int {
	counts := make(map[Rank]int)
	for _, c := range hand {
		counts[c.Rank]++
	}
	return counts
}

// extractCards 按手牌顺序从小到大取出指定数量的各点数牌
func extractCards(hand []Card, inputRanks map[Rank]int) []Card {
	remaining := make(map[Rank]int, len(inputRanks))
	for r, n := range inputRanks {
		remaining[r] = n
	}
	var result []Card
	for i := len(hand) - 1; i >= 0; i-- {
		c := hand[i]
		if remaining[c.Rank] > 0 {
			result = append(result, c)
			remaining[c.Rank]--
		}
	}
	SortHand(result)
	return result
}

// FindCardsInHand 从手牌中根据输入字符串找出对应的牌
func FindCardsInHand(hand []Card, input string) ([]Card, error) {
	input = strings.ToUpper(strings.TrimSpace(input))

	// 处理王炸特殊情况
	if input == "JOKER" {
		if cards, ok := findRocketInHand(hand); ok {
			return cards, nil
		}
		return nil, fmt.Errorf("你没有王炸")
	}

	inputRanks, err := parseInputRanks(input)
	if err != nil {
		return nil, err
	}

	handCounts := countHandRanks(hand)
	for r, count := range inputRanks {
		if handCounts[r] < count {
			return nil, fmt.Errorf("你的 %s 不够", r.String())
		}
	}

	return extractCards(hand, inputRanks), nil
}
