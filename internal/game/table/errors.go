package table

import (
	"github.com/palemoky/four-landlord/internal/apperrors"
	"github.com/palemoky/four-landlord/internal/protocol"
)

var (
	ErrNoGame      = &apperrors.GameError{Code: protocol.ErrCodeNoTable, Message: "请先开始新游戏"}
	ErrTableClosed = &apperrors.GameError{Code: protocol.ErrCodeNoTable, Message: "牌桌已关闭"}
)
