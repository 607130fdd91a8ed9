package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/middleware"
	"main/server"
	"main/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables BEFORE initializing logger
	if err := godotenv.Load(".env"); err != nil {
		// Use fmt for initial logging since logger is not initialized yet
		fmt.Printf("No .env file found, using environment variables: %v\n", err)
	}

	// Initialize logger AFTER loading environment variables
	utils.InitLogger()
	defer utils.Logger.Sync()

	// Настраиваем graceful shutdown
	// Перехватываем сигналы завершения программы (Ctrl+C, kill, и т.д.)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Run web server with graceful shutdown
	runWebServerWithGracefulShutdown(shutdown)
}

func runWebServerWithGracefulShutdown(shutdown chan os.Signal) {
	// Setup router with GraphQL server
	router, err := server.SetupRouter()
	if err != nil {
		utils.Logger.Fatal("Failed to setup router",
			zap.Error(err))
	}

	port := os.Getenv("APP_CORE_PORT")
	if port == "" {
		port = "9010" // Default port if not specified
	}

	// Создаем HTTP-сервер
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		utils.Logger.Info(fmt.Sprintf("Server started on port %s", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("Server startup failed",
				zap.Error(err),
			)
		}
	}()

	// Ожидаем сигнал завершения
	<-shutdown
	utils.Logger.Info("Shutdown signal received, gracefully shutting down...")

	// Создаем единый контекст с таймаутом для всего процесса shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Подготавливаем блок для сброса логов
	flushLogs := func() {
		if err := utils.Logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "Error flushing logs: %v\n", err)
		}
	}

	// 1. Сначала останавливаем HTTP-сервер
	serverCtx, serverCancel := context.WithTimeout(ctx, 15*time.Second)
	defer serverCancel()

	if err := srv.Shutdown(serverCtx); err != nil {
		utils.Logger.Error("Server shutdown error",
			zap.Error(err),
		)
	} else {
		utils.Logger.Info("Server shutdown complete")
	}

	// Сбрасываем логи после остановки сервера
	flushLogs()

	// 2. Закрываем соединения с БД
	if err := middleware.CloseDatabaseClient(); err != nil {
		utils.Logger.Error("Database shutdown error",
			zap.Error(err),
		)
	} else {
		utils.Logger.Info("Database shutdown complete")
	}

	utils.Logger.Info("Graceful shutdown complete")
	flushLogs()
}
