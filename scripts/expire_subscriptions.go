// 手动触发订阅过期清理脚本
//
// 主应用按 subscription.sweep_cron 定时执行同样的清理。
// 此脚本仅用于手动触发，例如调整订阅数据或排查到期问题之后。
//
// 用法: go run scripts/expire_subscriptions.go

package main

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/service"
	"acceluni_backend/pkg/database"
	"acceluni_backend/pkg/logger"
	"context"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	subscriptions := service.NewSubscriptionService(repository.NewSubscriptionRepository(db), cfg.Subscription)

	log.Println("手动触发订阅过期清理...")
	n, err := subscriptions.ExpireSubscriptions(context.Background())
	if err != nil {
		log.Fatalf("清理失败: %v", err)
	}
	log.Printf("完成！共 %d 条订阅已过期", n)
}
