package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/viper"

	mcpadapter "kanbodoro/internal/adapters/mcp"
	"kanbodoro/internal/adapters/scheduler"
	"kanbodoro/internal/application/workspace"
	"kanbodoro/internal/config"
	"kanbodoro/internal/domain"
	"kanbodoro/internal/ports"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default ./.kanbodoro/config.yaml or ~/.kanbodoro/config.yaml)")
	storeFlag := flag.String("store", "", "store driver: sqlite, file or memory")
	dataDirFlag := flag.String("data-dir", "", "directory holding the board")
	flag.Parse()

	v := viper.New()
	if err := config.Init(v, *cfgFile); err != nil {
		log.Fatalf("kanbodoro-mcp: %v", err)
	}
	if *storeFlag != "" {
		v.Set("store.driver", *storeFlag)
	}
	if *dataDirFlag != "" {
		v.Set("store.data_dir", *dataDirFlag)
	}
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatalf("kanbodoro-mcp: %v", err)
	}

	// stdout carries the protocol
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	kv, err := cfg.OpenStore()
	if err != nil {
		log.Fatalf("kanbodoro-mcp: %v", err)
	}

	ws, err := workspace.Open(kv, workspace.Options{
		Plan:         cfg.SessionPlan(),
		Logger:       logger,
		SeedDefaults: true,
		Notifier: ports.NotifierFunc(func(e domain.SessionEvent) {
			logger.Info(e.Message, slog.String("from", e.From.String()), slog.String("to", e.To.String()))
		}),
	})
	if err != nil {
		log.Fatalf("kanbodoro-mcp: %v", err)
	}
	defer ws.Close()

	board := mcpadapter.NewBoard(ws, logger)

	ticker, err := scheduler.NewTicker("pomodoro", time.Second)
	if err != nil {
		log.Fatalf("kanbodoro-mcp: %v", err)
	}
	if err := ticker.Start(); err != nil {
		log.Fatalf("kanbodoro-mcp: %v", err)
	}
	defer ticker.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go board.RunTicks(ctx, ticker.C())

	mcpServer := server.NewMCPServer(
		"kanbodoro-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, board)
	mcpadapter.RegisterWriteTools(mcpServer, board)

	logger.Info("serving MCP on stdio", slog.String("store", cfg.Store.Driver), slog.String("data_dir", cfg.Store.DataDir))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("kanbodoro-mcp stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
