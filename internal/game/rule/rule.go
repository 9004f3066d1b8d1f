package rule

import (
	"errors"
	"fmt"
	"slices"

	"github.com/palemoky/four-landlord/internal/game/card"
)

// HandType 定义牌型
type HandType int

const (
	Invalid        HandType = iota
	Single                  // 单张
	Pair                    // 对子
	Trio                    // 三张不带
	TrioWithSingle          // 三带一
	TrioWithPair            // 三带二

	Straight         // 顺子（5张或以上连续单张）
	PairStraight     // 连对（3对或以上）
	Plane            // 飞机不带翅膀（2个或以上连续三张）
	PlaneWithSingles // 飞机带单
	PlaneWithPairs   // 飞机带对

	Bomb             // 炸弹（四张相同）
	FourWithTwo      // 四带二（带两张单牌）
	FourWithTwoPairs // 四带两对

	Rocket // 王炸（双王）
)

// RocketKeyRank 王炸的比较点数，高于任何牌
const RocketKeyRank card.Rank = 100

// MaxChainRank 顺子、连对、飞机允许的最大点数
const MaxChainRank = card.MaxOrdinaryRank

// handTypeNames 牌型名称映射表
var handTypeNames = map[HandType]string{
	Single:           "单张",
	Pair:             "对子",
	Trio:             "三张",
	TrioWithSingle:   "三带一",
	TrioWithPair:     "三带二",
	Straight:         "顺子",
	PairStraight:     "连对",
	Plane:            "飞机",
	PlaneWithSingles: "飞机带单",
	PlaneWithPairs:   "飞机带对",
	Bomb:             "炸弹",
	FourWithTwo:      "四带二",
	FourWithTwoPairs: "四带两对",
	Rocket:           "王炸",
}

// handTypeCodes 牌型的英文标识，用于协议和日志
var handTypeCodes = map[HandType]string{
	Single:           "single",
	Pair:             "pair",
	Trio:             "triple",
	TrioWithSingle:   "triple_one",
	TrioWithPair:     "triple_two",
	Straight:         "straight",
	PairStraight:     "straight_pair",
	Plane:            "plane",
	PlaneWithSingles: "plane_single",
	PlaneWithPairs:   "plane_pair",
	Bomb:             "bomb",
	FourWithTwo:      "four_two_single",
	FourWithTwoPairs: "four_two_pair",
	Rocket:           "rocket",
}

func (h HandType) String() string {
	if name, ok := handTypeNames[h]; ok {
		return name
	}
	return "无效"
}

// Code 返回牌型的英文标识
func (h HandType) Code() string {
	if code, ok := handTypeCodes[h]; ok {
		return code
	}
	return "none"
}

// IsChain 顺子、连对、飞机类牌型比较时长度必须一致
func (h HandType) IsChain() bool {
	switch h {
	case Straight, PairStraight, Plane, PlaneWithSingles, PlaneWithPairs:
		return true
	}
	return false
}

// ParsedHand 解析后的手牌，用于比较
type ParsedHand struct {
	Type    HandType
	KeyRank card.Rank   // 决定大小的关键牌点数（四张/三张/对子/单张的点数，或连牌的最高点数）
	Length  int         // 连牌的长度（点数个数），只对顺子、连对、飞机有效
	Cards   []card.Card // 这手牌包含的卡牌
}

// IsEmpty 没有上家出牌
func (p ParsedHand) IsEmpty() bool {
	return p.Type == Invalid
}

// HandAnalysis 对一手牌进行预分析，统计不同点数的牌出现了几次
type HandAnalysis struct {
	total  int
	counts map[card.Rank]int // 每种点数牌的数量
	// 按数量分组，均为升序
	fours []card.Rank
	trios []card.Rank
	pairs []card.Rank
	ones  []card.Rank
}

// analyzeCards 分析手牌，返回一个包含所有统计信息的结构
func analyzeCards(cards []card.Card) HandAnalysis {
	analysis := HandAnalysis{
		total:  len(cards),
		counts: make(map[card.Rank]int),
	}
	for _, c := range cards {
		analysis.counts[c.Rank]++
	}

	for r, count := range analysis.counts {
		switch count {
		case 4:
			analysis.fours = append(analysis.fours, r)
		case 3:
			analysis.trios = append(analysis.trios, r)
		case 2:
			analysis.pairs = append(analysis.pairs, r)
		case 1:
			analysis.ones = append(analysis.ones, r)
		}
	}

	slices.Sort(analysis.fours)
	slices.Sort(analysis.trios)
	slices.Sort(analysis.pairs)
	slices.Sort(analysis.ones)

	return analysis
}

// isContinuous 检查升序点数是否连续，且最大点数不超过 MaxChainRank
func isContinuous(ranks []card.Rank) bool {
	if len(ranks) == 0 || ranks[len(ranks)-1] > MaxChainRank {
		return false
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1]+1 != ranks[i] {
			return false
		}
	}
	return true
}

// handCheck 牌型检查函数，按优先级依次尝试
type handCheck func(a HandAnalysis) (ParsedHand, bool)

// checks 牌型检查顺序，命中即返回
var checks = []handCheck{
	isRocket,
	isBomb,
	isSingle,
	isPair,
	isTrio,
	isTrioWithSingle,
	isTrioWithPair,
	isStraight,
	isPairStraight,
	isPlane,
	isPlaneWithSingles,
	isPlaneWithPairs,
	isFourWithTwo,
	isFourWithTwoPairs,
}

// ErrEmptyHand 空牌
var ErrEmptyHand = errors.New("不能出空牌")

// ParseHand 解析牌型
func ParseHand(cards []card.Card) (ParsedHand, error) {
	if len(cards) == 0 {
		return ParsedHand{}, ErrEmptyHand
	}

	analysis := analyzeCards(cards)
	for _, check := range checks {
		if hand, ok := check(analysis); ok {
			hand.Cards = slices.Clone(cards)
			card.SortHand(hand.Cards)
			return hand, nil
		}
	}

	return ParsedHand{}, fmt.Errorf("不支持的牌型: %s", card.FormatCards(cards))
}

func isRocket(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 2 && a.counts[card.RankBlackJoker] == 1 && a.counts[card.RankRedJoker] == 1 {
		return ParsedHand{Type: Rocket, KeyRank: RocketKeyRank}, true
	}
	return ParsedHand{}, false
}

func isBomb(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 4 && len(a.fours) == 1 {
		return ParsedHand{Type: Bomb, KeyRank: a.fours[0]}, true
	}
	return ParsedHand{}, false
}

func isSingle(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 1 {
		return ParsedHand{Type: Single, KeyRank: a.ones[0]}, true
	}
	return ParsedHand{}, false
}

func isPair(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 2 && len(a.pairs) == 1 {
		return ParsedHand{Type: Pair, KeyRank: a.pairs[0]}, true
	}
	return ParsedHand{}, false
}

func isTrio(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 3 && len(a.trios) == 1 {
		return ParsedHand{Type: Trio, KeyRank: a.trios[0]}, true
	}
	return ParsedHand{}, false
}

func isTrioWithSingle(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 4 && len(a.trios) == 1 && len(a.ones) == 1 {
		return ParsedHand{Type: TrioWithSingle, KeyRank: a.trios[0]}, true
	}
	return ParsedHand{}, false
}

func isTrioWithPair(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 5 && len(a.trios) == 1 && len(a.pairs) == 1 {
		return ParsedHand{Type: TrioWithPair, KeyRank: a.trios[0]}, true
	}
	return ParsedHand{}, false
}

func isStraight(a HandAnalysis) (ParsedHand, bool) {
	if a.total >= 5 && len(a.ones) == a.total && isContinuous(a.ones) {
		return ParsedHand{Type: Straight, KeyRank: a.ones[len(a.ones)-1], Length: len(a.ones)}, true
	}
	return ParsedHand{}, false
}

func isPairStraight(a HandAnalysis) (ParsedHand, bool) {
	if a.total >= 6 && a.total%2 == 0 && len(a.pairs)*2 == a.total && isContinuous(a.pairs) {
		return ParsedHand{Type: PairStraight, KeyRank: a.pairs[len(a.pairs)-1], Length: len(a.pairs)}, true
	}
	return ParsedHand{}, false
}

func isPlane(a HandAnalysis) (ParsedHand, bool) {
	if a.total >= 6 && a.total%3 == 0 && len(a.trios)*3 == a.total && isContinuous(a.trios) {
		return ParsedHand{Type: Plane, KeyRank: a.trios[len(a.trios)-1], Length: len(a.trios)}, true
	}
	return ParsedHand{}, false
}

// isPlaneWithSingles 飞机带单：所有恰好三张的点数（至少 2 个）连续，其余为单牌，不能含四张
func isPlaneWithSingles(a HandAnalysis) (ParsedHand, bool) {
	if a.total < 8 || a.total%4 != 0 || len(a.fours) > 0 || len(a.trios) < 2 {
		return ParsedHand{}, false
	}
	if !isContinuous(a.trios) {
		return ParsedHand{}, false
	}
	return ParsedHand{Type: PlaneWithSingles, KeyRank: a.trios[len(a.trios)-1], Length: len(a.trios)}, true
}

// isPlaneWithPairs 飞机带对：n/5 个连续三张 + 同样数量的对子
func isPlaneWithPairs(a HandAnalysis) (ParsedHand, bool) {
	if a.total < 10 || a.total%5 != 0 {
		return ParsedHand{}, false
	}
	length := a.total / 5
	if len(a.trios) == length && len(a.pairs) == length && isContinuous(a.trios) {
		return ParsedHand{Type: PlaneWithPairs, KeyRank: a.trios[length-1], Length: length}, true
	}
	return ParsedHand{}, false
}

func isFourWithTwo(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 6 && len(a.fours) == 1 {
		return ParsedHand{Type: FourWithTwo, KeyRank: a.fours[0]}, true
	}
	return ParsedHand{}, false
}

func isFourWithTwoPairs(a HandAnalysis) (ParsedHand, bool) {
	if a.total == 8 && len(a.fours) == 1 && len(a.pairs) == 2 {
		return ParsedHand{Type: FourWithTwoPairs, KeyRank: a.fours[0]}, true
	}
	return ParsedHand{}, false
}
