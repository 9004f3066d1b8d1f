package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// BidPayload 叫地主请求
type BidPayload struct {
	Bid bool `json:"bid"` // true = 叫地主, false = 不叫
}

// PlayCardsPayload 出牌请求，只需要牌的 ID
type PlayCardsPayload struct {
	Cards []CardInfo `json:"cards"`
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Offset int `json:"offset"` // 偏移量
	Limit  int `json:"limit"`  // 数量
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Seat       int    `json:"seat"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// DealCardsPayload 发牌通知，地主拿到底牌后会再发一次
type DealCardsPayload struct {
	TableID     string       `json:"table_id"`
	Round       int          `json:"round"`
	Cards       []CardInfo   `json:"cards"`        // 玩家自己的手牌
	BottomCards []CardInfo   `json:"bottom_cards"` // 底牌（地主确定后才显示）
	Players     []PlayerInfo `json:"players"`
}

// PhasePayload 阶段变化通知
type PhasePayload struct {
	Phase string `json:"phase"` // dealing/bidding/playing/game_over
}

// LandlordPayload 地主确定通知
type LandlordPayload struct {
	Seat        int        `json:"seat"`
	PlayerName  string     `json:"player_name"`
	BottomCards []CardInfo `json:"bottom_cards"` // 底牌
}

// PlayTurnPayload 轮到行动通知
type PlayTurnPayload struct {
	Seat     int    `json:"seat"`
	Phase    string `json:"phase"`
	MustPlay bool   `json:"must_play"` // 首出必须出牌
	CanBeat  bool   `json:"can_beat"`  // 是否有牌能打过上家
}

// CardPlayedPayload 出牌通知
type CardPlayedPayload struct {
	Seat         int        `json:"seat"`
	PlayerName   string     `json:"player_name"`
	Cards        []CardInfo `json:"cards"`
	CardsLeft    int        `json:"cards_left"`     // 剩余手牌数
	HandType     string     `json:"hand_type"`      // 牌型标识
	HandTypeName string     `json:"hand_type_name"` // 牌型名称
}

// PlayerPassPayload 不出通知
type PlayerPassPayload struct {
	Seat       int    `json:"seat"`
	PlayerName string `json:"player_name"`
}

// HintResultPayload 提示结果
type HintResultPayload struct {
	Cards []CardInfo `json:"cards"`
	Pass  bool       `json:"pass"` // 没有能压过的牌
}

// GameOverPayload 游戏结束通知
type GameOverPayload struct {
	WinnerSeat  int          `json:"winner_seat"`
	WinnerName  string       `json:"winner_name"`
	IsLandlord  bool         `json:"is_landlord"`  // 获胜者是否是地主
	YouWin      bool         `json:"you_win"`      // 接收者所在一方是否获胜
	PlayerHands []PlayerHand `json:"player_hands"` // 所有玩家剩余手牌
}

// PlayerHand 玩家手牌信息（用于游戏结束展示）
type PlayerHand struct {
	Seat       int        `json:"seat"`
	PlayerName string     `json:"player_name"`
	Cards      []CardInfo `json:"cards"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	TotalGames    int     `json:"total_games"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
	LandlordGames int     `json:"landlord_games"`
	LandlordWins  int     `json:"landlord_wins"`
	FarmerGames   int     `json:"farmer_games"`
	FarmerWins    int     `json:"farmer_wins"`
	Rank          int     `json:"rank"`
	CurrentStreak int     `json:"current_streak"`
	MaxWinStreak  int     `json:"max_win_streak"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry 排行榜条目，按胜场排序
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// GameResult 对局结果，发布到消息总线
type GameResult struct {
	TableID    string `json:"table_id"`
	Round      int    `json:"round"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Landlord   int    `json:"landlord"`
	Winner     int    `json:"winner"`
	HumanWon   bool   `json:"human_won"`
	Seed       uint64 `json:"seed"`
	PlayedAt   int64  `json:"played_at"` // 毫秒时间戳
}

// --- 通用数据结构 ---

// PlayerInfo 玩家信息
type PlayerInfo struct {
	Seat       int    `json:"seat"` // 座位号 0-3
	Name       string `json:"name"`
	IsAI       bool   `json:"is_ai"`
	IsLandlord bool   `json:"is_landlord"` // 是否是地主
	CardsCount int    `json:"cards_count"` // 手牌数量
}

// CardInfo 牌信息
type CardInfo struct {
	ID    int    `json:"id"`              // 0-53，整副牌中唯一
	Suit  int    `json:"suit"`            // 花色: 0=黑桃, 1=红心, 2=梅花, 3=方块, 4=王
	Rank  int    `json:"rank"`            // 点数: 0-12 (3-2), 小王=13, 大王=14
	Label string `json:"label,omitempty"` // 显示文本
}
