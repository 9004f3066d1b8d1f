package protocol

import "encoding/json"

// Message 基础消息结构，Payload 为 JSON
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgPing MessageType = "ping" // 心跳 ping

	// 游戏操作
	MsgNewGame   MessageType = "new_game"   // 开一局新游戏
	MsgBid       MessageType = "bid"        // 叫地主
	MsgPlayCards MessageType = "play_cards" // 出牌
	MsgPass      MessageType = "pass"       // 不出
	MsgHint      MessageType = "hint"       // 出牌提示

	// 战绩
	MsgGetStats       MessageType = "get_stats"       // 获取个人统计
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取排行榜
)

// 服务端 → 客户端 消息类型
const (
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 游戏流程
	MsgDealCards  MessageType = "deal_cards"  // 发牌或手牌更新
	MsgPhase      MessageType = "phase"       // 阶段变化
	MsgLandlord   MessageType = "landlord"    // 地主确定
	MsgPlayTurn   MessageType = "play_turn"   // 轮到某人行动
	MsgCardPlayed MessageType = "card_played" // 有人出牌
	MsgPlayerPass MessageType = "player_pass" // 有人不出
	MsgHintResult MessageType = "hint_result" // 提示结果
	MsgGameOver   MessageType = "game_over"   // 游戏结束

	// 战绩
	MsgStatsResult       MessageType = "stats_result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
