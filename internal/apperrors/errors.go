package apperrors

import (
	"errors"
	"fmt"

	"github.com/palemoky/four-landlord/internal/protocol"
)

// GameError 可恢复的游戏错误，玩家重新操作即可
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidPlay        = &GameError{Code: protocol.ErrCodeInvalidPlay, Message: "无效的牌型或大不过上家"}
	ErrCardsNotInHand     = &GameError{Code: protocol.ErrCodeInvalidPlay, Message: "手牌中没有这些牌"}
	ErrEmptySelection     = &GameError{Code: protocol.ErrCodeEmptyPlay, Message: "没有选择任何牌"}
	ErrNotYourTurn        = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrCannotPassAsLeader = &GameError{Code: protocol.ErrCodeCannotPass, Message: "您是首出，不能不出"}
	ErrMustLeadWithPlay   = &GameError{Code: protocol.ErrCodeMustLead, Message: "您是首出，必须出牌"}
	ErrNotBidding         = &GameError{Code: protocol.ErrCodeNotBidding, Message: "当前不是叫地主阶段"}
	ErrNotPlaying         = &GameError{Code: protocol.ErrCodeNotPlaying, Message: "当前不是出牌阶段"}
	ErrGameOver           = &GameError{Code: protocol.ErrCodeGameOver, Message: "游戏已结束"}
)

// CodeOf 返回错误对应的错误码，非 GameError 返回未知错误码
func CodeOf(err error) int {
	if ge, ok := AsGameError(err); ok {
		return ge.Code
	}
	return protocol.ErrCodeUnknown
}

// AsGameError 从错误链中取出 GameError
func AsGameError(err error) (*GameError, bool) {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// InvariantError 牌数守恒被破坏，属于程序缺陷，不可恢复
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("牌数守恒被破坏: %s", e.Detail)
}
