package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/sound"
	"github.com/palemoky/four-landlord/internal/ui"
	"github.com/palemoky/four-landlord/internal/ui/model"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	name := flag.String("name", "", "玩家昵称")
	seed := flag.Uint64("seed", 0, "牌局种子，0 表示随机")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	// 界面占用终端，日志写文件
	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.LogInfo("加载配置失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if *name != "" {
		cfg.Client.Name = *name
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	var player model.SoundPlayer
	if cfg.Client.Sound && !*mute {
		sm := sound.NewSoundManager()
		if err := sm.Init(cfg.Client.SoundDir); err != nil {
			logger.LogError("初始化音效失败: %v", err)
		} else {
			player = sm
			defer sm.Close()
		}
	}

	m := ui.NewLocalModel(cfg, player)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
