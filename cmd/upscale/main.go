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
	scale := flag.Int("scale", 2, "коэффициент масштабирования, 1-8")
	method := flag.String("method", "", "метод апскейла: lanczos|bicubic|nearest, пусто — серверный дефолт")
	sharpen := flag.Bool("sharpen", false, "повышать резкость после апскейла")
	noiseReduction := flag.Bool("noise-reduction", false, "подавлять шум")
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
		sugar.Fatalw("Не заданы пути", "usage", "upscale -input in.jpg -output out.jpg -scale 2")
	}

	client, err := miragic.New(*cfg, miragic.WithLogger(sugar))
	if err != nil {
		sugar.Fatalw("Не удалось создать клиента", "error", err)
	}

	opts := &miragic.UpscaleOptions{
		Method:         *method,
		Sharpen:        *sharpen,
		NoiseReduction: *noiseReduction,
	}

	res, err := client.UpscaleImage(context.Background(), *input, *output, *scale, opts)
	if err != nil {
		sugar.Fatalw("Апскейл не удался", "error", err)
	}

	fmt.Printf("Image upscaled: %s (%d bytes)\n", res.OutputPath, res.Bytes)
}
