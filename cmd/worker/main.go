package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bmh201708/ResearchPilot/config"
	"github.com/bmh201708/ResearchPilot/internal/database"
	"github.com/bmh201708/ResearchPilot/internal/pkg/scholar"
	"github.com/bmh201708/ResearchPilot/internal/repository"
	"github.com/bmh201708/ResearchPilot/internal/worker"
)

// feed刷新器：独立进程，周期性把OpenAlex最新论文回写到本地缓存表
func main() {
	configPath := flag.String("config", "config/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	db, err := database.NewMySQL(cfg.Database)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	paperRepo := repository.NewPaperRepository(db)
	openAlexClient := scholar.NewOpenAlexClient(cfg.Feed.OpenAlexAPIKey)

	refresher := worker.NewFeedRefresher(
		paperRepo,
		openAlexClient,
		scholar.NewSemanticScholarClient(),
		cfg.Feed.DefaultKeywords,
		time.Duration(cfg.Feed.RefreshIntervalMinutes)*time.Minute,
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("收到退出信号")
		cancel()
	}()

	log.Println("feed刷新器启动")
	refresher.Run(ctx)
}
