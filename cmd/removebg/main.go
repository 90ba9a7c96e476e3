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
	threshold := flag.Int("threshold", -1, "порог сегментации 0-255, -1 — серверное значение")
	edges := flag.Bool("edge-refinement", false, "уточнять края объекта")
	hair := flag.Bool("hair-detection", false, "отдельная обработка волос")
	flag.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "API ключ (перекрывает ENV)")
	flag.StringVar(&cfg.BaseURL, "api-base-url", cfg.BaseURL, "базовый URL API")
	flag.Parse()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	if *input == "" || *output == "" {
		sugar.Fatalw("Не заданы пути", "usage", "removebg -input in.jpg -output out.png")
	}

	client, err := miragic.New(*cfg, miragic.WithLogger(sugar))
	if err != nil {
		sugar.Fatalw("Не удалось создать клиента", "error", err)
	}

	opts := &miragic.RemovalOptions{
		EdgeRefinement: *edges,
		HairDetection:  *hair,
	}
	if *threshold >= 0 {
		opts.Threshold = threshold
	}

	res, err := client.RemoveBackground(context.Background(), *input, *output, opts)
	if err != nil {
		sugar.Fatalw("Удаление фона не удалось", "error", err)
	}

	fmt.Printf("Background removed: %s (%d bytes)\n", res.OutputPath, res.Bytes)
}
