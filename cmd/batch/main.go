package main

import (
	"context"
	"flag"
	"fmt"

	miragic "github.com/Miragic-AI/miragic-sdk"
	"github.com/Miragic-AI/miragic-sdk/internal/batch"
	"go.uber.org/zap"
)

func main() {
	cfg := miragic.ConfigFromEnv()

	op := flag.String("op", string(batch.OpRemoveBackground), "операция: remove-bg|blur-bg|upscale")
	strength := flag.Float64("strength", 0.8, "сила размытия для blur-bg, 0.0-1.0")
	scale := flag.Int("scale", 2, "коэффициент масштабирования для upscale, 1-8")
	flag.StringVar(&cfg.InputDir, "input-dir", cfg.InputDir, "директория с исходными изображениями")
	flag.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "директория для результатов")
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

	runner := batch.New(client, sugar)
	sum, err := runner.Run(context.Background(), cfg.InputDir, cfg.OutputDir, batch.Params{
		Operation:    batch.Operation(*op),
		BlurStrength: *strength,
		ScaleFactor:  *scale,
	})
	if err != nil {
		sugar.Fatalw("Пакетная обработка не удалась", "error", err)
	}

	fmt.Printf("Batch completed: %d processed, %d failed\n", sum.Processed, sum.Failed)
}
