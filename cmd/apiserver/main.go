package main

// @title           UCenter Backend API
// @version         1.0
// @description     用户中心脚手架后端 API，提供统一响应、请求校验与用户 CRUD

// @host      localhost:8080
// @BasePath  /api/v1

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ucenter/internal/app/config"
	"ucenter/internal/app/domains/modules/mduser"
	"ucenter/internal/app/domains/repo/rpuser"
	"ucenter/internal/app/domains/services/svuser"
	"ucenter/internal/app/infra/persistence/mysql"
	"ucenter/internal/app/infra/persistence/redis"
	"ucenter/internal/app/pkg/logger"
	"ucenter/internal/app/server/handlers/user"
	"ucenter/internal/app/server/routers"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	appLog, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	// 3. 初始化基础设施
	db, err := mysql.NewDB(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to connect mysql: %v", err)
	}

	var cache mduser.UserCache
	if cfg.Redis.Enabled {
		userCache, err := redis.NewUserCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer userCache.Close()
		cache = userCache
	}

	// 4. 组装依赖
	userRepo := rpuser.NewUserRepository(db)
	userModule := mduser.NewUserModule(userRepo, cache, appLog)
	userService := svuser.NewUserService(userModule)
	userHandler := user.NewUserHandler(userService)

	engine := routers.SetupRoutes(userHandler, appLog)

	// 5. 启动 HTTP Server（后台 goroutine）
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 6. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}
}
