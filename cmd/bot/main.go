package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/network/client"
)

func main() {
	serverURL := flag.String("server", "ws://localhost:1780/ws", "服务器地址")
	bots := flag.Int("bots", 1, "同时在线的机器人数")
	games := flag.Int("games", 10, "每个机器人打的局数")
	debug := flag.Bool("debug", false, "输出调试日志")
	flag.Parse()

	if err := logger.InitConsole(*debug); err != nil {
		panic(err)
	}
	defer logger.Close()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wins, played, failed atomic.Int64
	start := time.Now()

	var wg sync.WaitGroup
	for i := range *bots {
		wg.Go(func() {
			c := client.NewClient(*serverURL, fmt.Sprintf("机器人%d", i+1))
			if err := c.Connect(ctx); err != nil {
				log.Error("连接失败", zap.Int("bot", i+1), zap.Error(err))
				failed.Add(1)
				return
			}
			defer c.Close()

			results, err := client.NewBot(c).Play(ctx, *games)
			for _, r := range results {
				played.Add(1)
				if r.YouWin {
					wins.Add(1)
				}
			}
			if err != nil {
				log.Error("机器人中断", zap.Int("bot", i+1), zap.Int("played", len(results)), zap.Error(err))
				failed.Add(1)
			}
		})
	}
	wg.Wait()

	log.Info("🤖 压测结束",
		zap.Int64("games", played.Load()),
		zap.Int64("wins", wins.Load()),
		zap.Int64("failed_bots", failed.Load()),
		zap.Duration("elapsed", time.Since(start)))
	if failed.Load() > 0 {
		stop()
		logger.Close()
		os.Exit(1)
	}
}
