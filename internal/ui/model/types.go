// Package model 本地牌局的 bubbletea 模型：一名玩家对三个电脑
package model

import (
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/table"
	"github.com/palemoky/four-landlord/internal/sound"
)

// SoundPlayer 播放音效
type SoundPlayer interface {
	Play(cue sound.Cue)
}

// --- Tea Messages ---

// updatesMsg 牌桌推送的一批事件
type updatesMsg []table.Update

// actionResultMsg 牌桌操作的结果
type actionResultMsg struct {
	err error
}

// hintMsg 出牌提示，cards 为 nil 表示只能不出
type hintMsg struct {
	cards []card.Card
	err   error
}

// clearNoticeMsg 清除提示，seq 过期时忽略
type clearNoticeMsg struct {
	seq int
}
