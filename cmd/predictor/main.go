package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/parthpatel/ufcpredict/internal/parser/ufcstats"
	"github.com/parthpatel/ufcpredict/internal/pkg/config"
	"github.com/parthpatel/ufcpredict/internal/pkg/logging"
	"github.com/parthpatel/ufcpredict/internal/pkg/models"
	"github.com/parthpatel/ufcpredict/internal/predictor"
	"github.com/parthpatel/ufcpredict/internal/report"
)

const defaultConfigPath = "configs/default.yaml"

func main() {
	fmt.Println("===== Welcome to the Live UFC Fight Predictor =====")
	fmt.Println("--- (Data scraped from ufcstats.com) ---")

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	var configPath string
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		// The predictor works fine on built-in defaults; a missing config only
		// matters if the user pointed at one explicitly.
		if configPath != defaultConfigPath {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = &config.Config{
			Report: config.ReportConfig{ChartPath: "fight_prediction.png"},
		}
	}

	logging.SetupLogger(&cfg.Logging, "predictor")

	// Telegram credentials may come from the environment instead of the config
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Report.TelegramBotToken = token
		slog.Info("Using Telegram bot token from environment")
	}
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		if chatID, err := strconv.ParseInt(chatIDStr, 10, 64); err == nil {
			cfg.Report.TelegramChatID = chatID
			slog.Info("Using Telegram chat ID from environment", "chat_id", chatID)
		}
	}

	nameA, nameB, err := fighterNames(flag.Args())
	if err != nil {
		log.Fatalf("Failed to read fighter names: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ufcstats.NewClient(&cfg.UFCStats)

	fmt.Println("\n--- Scraping Data (This may take a moment) ---")

	// The two fighter pipelines share nothing, so run them in parallel.
	var statsA, statsB models.FighterStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		statsA = lookupFighter(gctx, client, nameA)
		return nil
	})
	g.Go(func() error {
		statsB = lookupFighter(gctx, client, nameB)
		return nil
	})
	_ = g.Wait()

	fmt.Println("--- Scraping Complete ---")

	result := predictor.Score(statsA, statsB)

	report.Print(os.Stdout, result, statsA, statsB)

	if cfg.Report.ChartPath != "" {
		if err := report.RenderChart(cfg.Report.ChartPath, result, statsA, statsB); err != nil {
			slog.Warn("Failed to render prediction chart", "path", cfg.Report.ChartPath, "error", err)
		} else {
			fmt.Printf("Chart saved as '%s'.\n", cfg.Report.ChartPath)
		}
	}

	if cfg.Report.TelegramBotToken != "" && cfg.Report.TelegramChatID != 0 {
		notifier := report.NewTelegramNotifier(cfg.Report.TelegramBotToken, cfg.Report.TelegramChatID)
		if err := notifier.SendReport(report.Sprint(result, statsA, statsB)); err != nil {
			slog.Warn("Failed to send Telegram report", "error", err)
		}
	}
}

// lookupFighter runs the per-fighter pipeline. A malformed name is reported
// but still yields the zero-default record, so the prediction always runs.
func lookupFighter(ctx context.Context, client *ufcstats.Client, rawName string) models.FighterStats {
	stats, err := predictor.Lookup(ctx, client, rawName, displayName(rawName))
	if err != nil {
		if errors.Is(err, predictor.ErrInvalidName) {
			slog.Error("Invalid fighter name", "name", rawName)
		} else {
			slog.Error("Fighter lookup failed", "name", rawName, "error", err)
		}
	}
	return stats
}

// fighterNames takes the two names from positional args, or prompts for them.
func fighterNames(args []string) (string, string, error) {
	if len(args) >= 2 {
		return args[0], args[1], nil
	}

	var nameA, nameB string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Enter the full name for Fighter 1").
			Validate(nonEmpty).
			Value(&nameA),
		huh.NewInput().
			Title("Enter the full name for Fighter 2").
			Validate(nonEmpty).
			Value(&nameB),
	))
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return nameA, nameB, nil
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

var titleCaser = cases.Title(language.English)

// displayName normalizes the user-typed name for display: trimmed and
// title-cased, e.g. "  jon JONES " -> "Jon Jones".
func displayName(rawName string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(rawName)))
}
