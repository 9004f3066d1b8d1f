package rule

import (
	"slices"

	"github.com/palemoky/four-landlord/internal/game/card"
)

// FindSmallestBeatingCards 找到能打过 opponentHand 的最小牌组
// 自由出牌时只出一张最小的单牌；跟牌时只搜索单张、对子、三张类，
// 其余牌型只能用炸弹或王炸压。找不到返回 nil
func FindSmallestBeatingCards(playerHand []card.Card, opponentHand ParsedHand) []card.Card {
	if len(playerHand) == 0 {
		return nil
	}
	asc := ascending(playerHand)

	// 新一轮，出最小的单牌
	if opponentHand.IsEmpty() {
		return []card.Card{asc[0]}
	}

	var result []card.Card
	switch opponentHand.Type {
	case Single:
		result = findSmallestBeatingSingle(asc, opponentHand)
	case Pair:
		result = findSmallestBeatingPair(asc, opponentHand)
	case Trio:
		result = findSmallestBeatingTrio(asc, opponentHand, 0)
	case TrioWithSingle:
		result = findSmallestBeatingTrio(asc, opponentHand, 1)
	case TrioWithPair:
		result = findSmallestBeatingTrio(asc, opponentHand, 2)
	}
	if result != nil {
		return result
	}

	if opponentHand.Type == Rocket {
		return nil
	}

	// 尝试用最小的炸弹
	if result = findSmallestBomb(asc, opponentHand); result != nil {
		return result
	}

	// 最后尝试王炸
	return findRocket(asc)
}

// ascending 按点数从小到大（点数相同按 ID）排列的副本
func ascending(hand []card.Card) []card.Card {
	asc := slices.Clone(hand)
	slices.SortFunc(asc, func(a, b card.Card) int {
		if a.Rank != b.Rank {
			return int(a.Rank) - int(b.Rank)
		}
		return a.ID - b.ID
	})
	return asc
}

// findSmallestBeatingSingle 从小到大找第一张大过上家的牌
func findSmallestBeatingSingle(asc []card.Card, opponentHand ParsedHand) []card.Card {
	for _, c := range asc {
		if c.Rank > opponentHand.KeyRank {
			return []card.Card{c}
		}
	}
	return nil
}

// findSmallestBeatingPair 从小到大找第一对大过上家的相邻同点数牌
func findSmallestBeatingPair(asc []card.Card, opponentHand ParsedHand) []card.Card {
	for i := 0; i+1 < len(asc); i++ {
		if asc[i].Rank == asc[i+1].Rank && asc[i].Rank > opponentHand.KeyRank {
			return []card.Card{asc[i], asc[i+1]}
		}
	}
	return nil
}

// findSmallestBeatingTrio 找到能打过的最小三张（带或不带）
// kickerType: 0=不带, 1=带单张, 2=带对子
func findSmallestBeatingTrio(asc []card.Card, opponentHand ParsedHand, kickerType int) []card.Card {
	if kickerType == 1 && len(asc) <= 3 {
		return nil
	}
	analysis := analyzeCards(asc)
	trioRanks := slices.Concat(analysis.trios, analysis.fours)
	slices.Sort(trioRanks)
	for _, r := range trioRanks {
		if r <= opponentHand.KeyRank {
			continue
		}
		result := findCardsWithRank(asc, r, 3)
		if kickerType == 0 {
			return result
		}
		if kickers := findSmallestKickers(asc, analysis, r, kickerType); kickers != nil {
			return append(result, kickers...)
		}
	}
	return nil
}

// findSmallestKickers 找到最小的带牌，不能与三张同点数
// kickerType: 1=带单张, 2=带对子
func findSmallestKickers(asc []card.Card, analysis HandAnalysis, excludeRank card.Rank, kickerType int) []card.Card {
	if kickerType == 1 {
		for _, c := range asc {
			if c.Rank != excludeRank {
				return []card.Card{c}
			}
		}
		return nil
	}

	var ranks []card.Rank
	for r, count := range analysis.counts {
		if count >= 2 && r != excludeRank {
			ranks = append(ranks, r)
		}
	}
	if len(ranks) == 0 {
		return nil
	}
	return findCardsWithRank(asc, slices.Min(ranks), 2)
}

// findSmallestBomb 找到最小的炸弹；上家是炸弹时需要更大的炸弹
func findSmallestBomb(asc []card.Card, opponentHand ParsedHand) []card.Card {
	analysis := analyzeCards(asc)
	for _, r := range analysis.fours {
		if opponentHand.Type != Bomb || r > opponentHand.KeyRank {
			return findCardsWithRank(asc, r, 4)
		}
	}
	return nil
}

// findCardsWithRank 从手牌中找到指定点数的牌
func findCardsWithRank(playerHand []card.Card, rank card.Rank, count int) []card.Card {
	var result []card.Card
	for _, c := range playerHand {
		if c.Rank == rank {
			result = append(result, c)
			if len(result) >= count {
				return result
			}
		}
	}
	return result
}

// findRocket 找到王炸
func findRocket(playerHand []card.Card) []card.Card {
	var result []card.Card
	for _, c := range playerHand {
		if c.Rank.IsJoker() {
			result = append(result, c)
		}
	}
	if len(result) != 2 {
		return nil
	}
	return result
}

// ShouldClaim 电脑叫地主的判断：有王炸、炸弹，或者至少四张 2 以上的大牌
func ShouldClaim(hand []card.Card) bool {
	analysis := analyzeCards(hand)
	if len(analysis.fours) > 0 || findRocket(hand) != nil {
		return true
	}
	big := 0
	for _, c := range hand {
		if c.Rank >= card.Rank2 {
			big++
		}
	}
	return big >= 4
}
