package client

import "github.com/palemoky/four-landlord/internal/game/card"

// CardCounter 记牌器：统计玩家还没见过的牌
type CardCounter struct {
	remaining map[card.Rank]int
	seen      map[int]bool
}

// NewCardCounter 创建记牌器
func NewCardCounter() *CardCounter {
	cc := &CardCounter{}
	cc.Reset()
	return cc
}

// Reset 恢复为整副牌
func (cc *CardCounter) Reset() {
	cc.remaining = make(map[card.Rank]int, card.RankRedJoker+1)
	cc.seen = make(map[int]bool, card.DeckSize)

	// 3 到 2 各 4 张
	for rank := card.Rank3; rank <= card.Rank2; rank++ {
		cc.remaining[rank] = 4
	}
	cc.remaining[card.RankBlackJoker] = 1
	cc.remaining[card.RankRedJoker] = 1
}

// DeductCards 扣除见过的牌，同一张牌只扣一次
func (cc *CardCounter) DeductCards(cards []card.Card) {
	for _, c := range cards {
		if cc.seen[c.ID] {
			continue
		}
		cc.seen[c.ID] = true
		if cc.remaining[c.Rank] > 0 {
			cc.remaining[c.Rank]--
		}
	}
}

// GetRemaining 各点数剩余张数
func (cc *CardCounter) GetRemaining() map[card.Rank]int {
	return cc.remaining
}

// Total 剩余总张数
func (cc *CardCounter) Total() int {
	total := 0
	for _, n := range cc.remaining {
		total += n
	}
	return total
}
