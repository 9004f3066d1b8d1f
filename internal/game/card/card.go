package card

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Suit 定义花色
type Suit int

// Rank 定义点数，0 为最小的 3，12 为 2，13/14 为小王/大王
type Rank int

// Card 定义一张牌，ID 在整副牌中唯一
type Card struct {
	ID   int
	Suit Suit
	Rank Rank
}

const (
	Spade   Suit = iota // 黑桃
	Heart               // 红心
	Club                // 梅花
	Diamond             // 方块
	Joker               // 王牌（无花色）
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
	Joker:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// IsRed 红色花色（红心、方块）
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

const (
	Rank3 Rank = iota
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	Rank2
	RankBlackJoker // 小王
	RankRedJoker   // 大王
)

const (
	// DeckSize 一副牌的张数
	DeckSize = 54
	// MaxOrdinaryRank 普通牌的最大点数
	MaxOrdinaryRank = Rank2
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	Rank2:          "2",
	RankBlackJoker: "B",
	RankRedJoker:   "R",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// IsJoker 是否为大小王
func (r Rank) IsJoker() bool {
	return r == RankBlackJoker || r == RankRedJoker
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'A': RankA,
	'2': Rank2,
	'B': RankBlackJoker,
	'R': RankRedJoker,
}

// RankFromChar 将输入字符解析为点数
func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[char]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("无法识别的点数: %c", char)
}

func (c Card) String() string {
	switch c.Rank {
	case RankBlackJoker:
		return "小王"
	case RankRedJoker:
		return "大王"
	}
	return c.Suit.String() + c.Rank.String()
}

// FormatCards 以空格分隔输出一组牌
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Deck 定义一副牌
type Deck []Card

// NewDeck 按花色、点数顺序生成 54 张牌，并分配唯一 ID
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for s := Spade; s <= Diamond; s++ {
		for r := Rank3; r <= Rank2; r++ {
			deck = append(deck, Card{ID: len(deck), Suit: s, Rank: r})
		}
	}
	deck = append(deck,
		Card{ID: len(deck), Suit: Joker, Rank: RankBlackJoker},
		Card{ID: len(deck) + 1, Suit: Joker, Rank: RankRedJoker},
	)
	return deck
}

// Shuffle 使用给定随机源做 Fisher–Yates 洗牌
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}
