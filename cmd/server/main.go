package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/bmh201708/ResearchPilot/config"
	"github.com/bmh201708/ResearchPilot/internal/api"
	"github.com/bmh201708/ResearchPilot/internal/api/handler"
	"github.com/bmh201708/ResearchPilot/internal/database"
	"github.com/bmh201708/ResearchPilot/internal/pkg/cache"
	"github.com/bmh201708/ResearchPilot/internal/pkg/llm"
	"github.com/bmh201708/ResearchPilot/internal/pkg/oss"
	"github.com/bmh201708/ResearchPilot/internal/pkg/pubsub"
	"github.com/bmh201708/ResearchPilot/internal/pkg/scholar"
	"github.com/bmh201708/ResearchPilot/internal/pkg/wechat"
	"github.com/bmh201708/ResearchPilot/internal/pkg/ws"
	"github.com/bmh201708/ResearchPilot/internal/repository"
	"github.com/bmh201708/ResearchPilot/internal/review"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

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

	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 仓储层
	userRepo := repository.NewUserRepository(db)
	paperRepo := repository.NewPaperRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	missionRepo := repository.NewMissionRepository(db)

	// 外部服务客户端
	wechatClient := wechat.NewClient(cfg.Wechat.AppID, cfg.Wechat.AppSecret)
	openAlexClient := scholar.NewOpenAlexClient(cfg.Feed.OpenAlexAPIKey)
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)

	var avatarUploader service.AvatarUploader
	if cfg.OSS.AccessKeyID != "" {
		ossClient, err := oss.NewClient(cfg.OSS)
		if err != nil {
			log.Fatalf("初始化OSS失败: %v", err)
		}
		avatarUploader = ossClient
	} else {
		log.Println("未配置OSS，头像上传不可用")
	}

	// 评审模拟流水线
	registry := review.NewRegistry(time.Duration(cfg.Review.TaskTTLSeconds) * time.Second)
	extractor := review.NewExtractor(cfg.Review.AllowedHostSuffixes)
	generator := review.NewGenerator(llmClient)
	notifier := service.NewTaskProgressNotifier(pubsub.NewPublisher(redisClient))
	runner := review.NewRunner(registry, extractor, generator, notifier)

	feedCache := cache.NewFeedCache(redisClient, time.Duration(cfg.Feed.CacheTTLSeconds)*time.Second)

	// 服务层
	authService := service.NewAuthService(userRepo, wechatClient, cfg.JWT)
	userService := service.NewUserService(userRepo, paperRepo, interactionRepo, commentRepo, projectRepo, missionRepo, avatarUploader)
	paperService := service.NewPaperService(paperRepo, interactionRepo, commentRepo, openAlexClient, feedCache, cfg.Feed.DefaultKeywords)
	projectService := service.NewProjectService(projectRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, userRepo)
	reviewService := service.NewReviewService(registry, runner, cfg.LLM.Model,
		llm.BuildChatCompletionsURL(cfg.LLM.BaseURL))

	// WebSocket网关：订阅redis进度频道，推给在线用户
	hub := ws.NewHub()
	go hub.Run()
	go func() {
		subscriber := pubsub.NewSubscriber(redisClient)
		err := subscriber.Subscribe(context.Background(), func(userID string, msg *pubsub.ProgressMessage) {
			payload, err := json.Marshal(msg)
			if err != nil {
				return
			}
			hub.SendToUser(userID, payload)
		})
		if err != nil && err != context.Canceled {
			log.Printf("进度订阅退出: %v", err)
		}
	}()

	handlers := &api.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Paper:     handler.NewPaperHandler(paperService),
		Project:   handler.NewProjectHandler(projectService),
		Comment:   handler.NewCommentHandler(commentService),
		Review:    handler.NewReviewHandler(reviewService),
		WebSocket: handler.NewWebSocketHandler(hub),
	}

	r := api.SetupRouter(cfg, handlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("服务启动于 %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
