package main

import (
	"context"
	"flag"
	"fmt"

	miragic "github.com/Miragic-AI/miragic-sdk"
	"go.uber.org/zap"
)

func main() {
	cfg := miragic.ConfigFromEnv()

	input := flag.String("input", "", "путь к входному изображению")
	output := flag.String("output", "", "путь для сохранения результата")
	strength := flag.Float64("strength", 0.8, "сила размытия фона, 0.0-1.0")
	centerFocus := flag.Bool("center-focus", false, "держать фокус в центре кадра")
	maxRadius := flag.Int("max-radius", -1, "максимальный радиус размытия в пикселях, -1 — серверное значение")
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

	if *input == "" || *output == "" {
		sugar.Fatalw("Не заданы пути", "usage", "blurbg -input in.jpg -output out.jpg -strength 0.8")
	}

	client, err := miragic.New(*cfg, miragic.WithLogger(sugar))
	if err != nil {
		sugar.Fatalw("Не удалось создать клиента", "error", err)
	}

	opts := &miragic.BlurOptions{CenterFocus: *centerFocus}
	if *maxRadius > 0 {
		opts.MaxRadius = maxRadius
	}

	res, err := client.BlurBackground(context.Background(), *input, *output, *strength, opts)
	if err != nil {
		sugar.Fatalw("Размытие фона не удалось", "error", err)
	}

	fmt.Printf("Background blurred: %s (%d bytes)\n", res.OutputPath, res.Bytes)
}
