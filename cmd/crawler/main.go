package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TodayWantLook/Crawler/internal/app"
	"github.com/TodayWantLook/Crawler/internal/config"
	"github.com/TodayWantLook/Crawler/internal/logger"
)

var (
	flagPage      int
	flagService   string
	flagUpdateDay string
)

var rootCmd = &cobra.Command{
	Use:   "crawler [--page <n>] [--service <naver|kakao>] [--update-day <category>]",
	Short: "Collects webtoon metadata from listing APIs and detail pages into the media store.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVar(&flagPage, "page", 1, "Listing page to process.")
	rootCmd.Flags().StringVar(&flagService, "service", "kakao", "Platform to crawl (naver or kakao).")
	rootCmd.Flags().StringVar(&flagUpdateDay, "update-day", "finished", "Listing category (mon..sun, finished, naverDaily).")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "crawler failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log.InfoObj("crawler starting", "config", cfg)

	runtime, err := app.NewCrawler(ctx, cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize crawler", "error", err.Error())
		return err
	}
	defer runtime.Close(context.Background())

	return runtime.Run(ctx, flagPage, flagService, flagUpdateDay)
}
