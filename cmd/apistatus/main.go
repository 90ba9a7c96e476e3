package main

import (
	"context"
	"flag"
	"fmt"
	"sort"

	miragic "github.com/Miragic-AI/miragic-sdk"
	"go.uber.org/zap"
)

func main() {
	cfg := miragic.ConfigFromEnv()

	flag.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "API ключ (перекрывает ENV)")
	flag.StringVar(&cfg.BaseURL, "api-base-url", cfg.BaseURL, "базовый URL API")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	client, err := miragic.New(*cfg, miragic.WithLogger(sugar))
	if err != nil {
		sugar.Fatalw("Не удалось создать клиента", "error", err)
	}

	ctx := context.Background()

	status, err := client.APIStatus(ctx)
	if err != nil {
		sugar.Fatalw("Не удалось получить статус API", "error", err)
	}
	fmt.Println("API Status:")
	printSorted(status)

	usage, err := client.UsageStats(ctx)
	if err != nil {
		sugar.Fatalw("Не удалось получить статистику", "error", err)
	}
	fmt.Println("Usage Statistics:")
	printSorted(usage)

	fmt.Printf("SDK version: %s\n", miragic.Version)
}

func printSorted(m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, m[k])
	}
}
