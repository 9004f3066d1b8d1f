package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/server"
	"github.com/palemoky/four-landlord/internal/server/publish"
	"github.com/palemoky/four-landlord/internal/server/storage"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	debug := flag.Bool("debug", false, "输出调试日志")
	flag.Parse()

	if err := logger.InitConsole(*debug); err != nil {
		panic(err)
	}
	defer logger.Close()
	log := logger.L()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn("加载配置文件失败，使用默认配置", zap.Error(err))
		cfg = config.Default()
	}

	// 战绩存储
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	stats := storage.NewStatsStore(rdb)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = stats.Ping(pingCtx)
	cancel()
	if err != nil {
		log.Fatal("redis 连接失败", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	defer func() { _ = stats.Close() }()

	// 对局结果发布
	pub, err := publish.New(cfg.NATS)
	if err != nil {
		log.Fatal("创建发布器失败", zap.Error(err))
	}

	srv := server.NewServer(cfg, server.Deps{Stats: stats, Publisher: pub})

	// 优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("🎮 四人斗地主服务器启动中...")
	if err := srv.Start(ctx); err != nil {
		log.Error("服务器运行失败", zap.Error(err))
		return
	}
	log.Info("正在关闭服务器...")
}
