package rule

import "github.com/palemoky/four-landlord/internal/game/card"

// CanBeat 判断 newHand 是否能大过 lastHand
func CanBeat(newHand, lastHand ParsedHand) bool {
	if newHand.IsEmpty() {
		return false
	}

	// 王炸最大，王炸之间不能互压
	if lastHand.Type == Rocket {
		return false
	}
	if newHand.Type == Rocket {
		return true
	}

	// 炸弹可以大过任何非炸弹和非王炸的牌
	if newHand.Type == Bomb && lastHand.Type != Bomb {
		return true
	}

	if newHand.Type != lastHand.Type {
		return false
	}

	if newHand.Type.IsChain() && newHand.Length != lastHand.Length {
		return false
	}

	return newHand.KeyRank > lastHand.KeyRank
}

// IsValidPlay 判断 cards 能否在 lastCards 之后打出；lastCards 为空时只要求牌型合法
func IsValidPlay(cards, lastCards []card.Card) bool {
	hand, err := ParseHand(cards)
	if err != nil {
		return false
	}
	if len(lastCards) == 0 {
		return true
	}
	last, err := ParseHand(lastCards)
	if err != nil {
		return false
	}
	return CanBeat(hand, last)
}
