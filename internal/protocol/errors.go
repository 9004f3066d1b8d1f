package protocol

// 错误码
const (
	ErrCodeUnknown     = 1000
	ErrCodeInvalidMsg  = 1001
	ErrCodeRateLimit   = 1002 // 速率限制
	ErrCodeClosing     = 1003 // 服务器正在关闭
	ErrCodeNoTable     = 2001 // 尚未开局
	ErrCodeNotBidding  = 3001
	ErrCodeNotPlaying  = 3002
	ErrCodeGameOver    = 3003
	ErrCodeNotYourTurn = 3004
	ErrCodeInvalidPlay = 3005
	ErrCodeEmptyPlay   = 3006
	ErrCodeCannotPass  = 3007 // 首出不能不出
	ErrCodeMustLead    = 3008 // 首出必须出牌
	ErrCodeStorage     = 5001 // 战绩服务不可用
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:     "未知错误",
	ErrCodeInvalidMsg:  "无效的消息格式",
	ErrCodeRateLimit:   "请求过于频繁",
	ErrCodeClosing:     "服务器正在关闭",
	ErrCodeNoTable:     "请先开始新游戏",
	ErrCodeNotBidding:  "当前不是叫地主阶段",
	ErrCodeNotPlaying:  "当前不是出牌阶段",
	ErrCodeGameOver:    "游戏已结束",
	ErrCodeNotYourTurn: "还没轮到您",
	ErrCodeInvalidPlay: "无效的出牌",
	ErrCodeEmptyPlay:   "没有选择任何牌",
	ErrCodeCannotPass:  "您是首出，不能不出",
	ErrCodeMustLead:    "您是首出，必须出牌",
	ErrCodeStorage:     "战绩服务不可用",
}
