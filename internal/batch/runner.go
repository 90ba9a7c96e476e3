package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	miragic "github.com/Miragic-AI/miragic-sdk"
	"go.uber.org/zap"
)

// Operation вид обработки для пакетного прогона.
type Operation string

const (
	OpRemoveBackground Operation = "remove-bg"
	OpBlurBackground   Operation = "blur-bg"
	OpUpscale          Operation = "upscale"
)

// Форматы, которые берём из входной директории; остальные файлы пропускаем.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// Params параметры пакетного прогона: одна операция применяется ко всем файлам.
type Params struct {
	Operation    Operation
	BlurStrength float64 // для OpBlurBackground
	ScaleFactor  int     // для OpUpscale
}

// Summary итог прогона.
type Summary struct {
	Processed int
	Failed    int
}

// Runner последовательный пакетный обработчик поверх клиента API.
// Очередей, троттлинга и повторов нет: файл за файлом, ошибка — в лог и дальше.
type Runner struct {
	client *miragic.Client
	logger *zap.SugaredLogger
}

func New(client *miragic.Client, logger *zap.SugaredLogger) *Runner {
	return &Runner{client: client, logger: logger}
}

// Run обрабатывает все поддерживаемые изображения из inputDir и складывает
// результаты в outputDir. Ошибка отдельного файла не прерывает прогон.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string, p Params) (Summary, error) {
	switch p.Operation {
	case OpRemoveBackground, OpBlurBackground, OpUpscale:
	default:
		return Summary{}, fmt.Errorf("unknown batch operation: %q", p.Operation)
	}

	paths, err := listImages(inputDir)
	if err != nil {
		return Summary{}, err
	}
	if len(paths) == 0 {
		r.logger.Infow("Нет изображений для обработки", "dir", inputDir)
		return Summary{}, nil
	}

	var sum Summary
	for i, path := range paths {
		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}

		outputPath := filepath.Join(outputDir, outputName(path, p))
		r.logger.Infow("Обработка изображения", "path", path, "n", i+1, "total", len(paths))

		if err := r.processOne(ctx, path, outputPath, p); err != nil {
			r.logger.Warnw("Не удалось обработать изображение", "path", path, "error", err)
			sum.Failed++
			continue
		}
		sum.Processed++
	}
	return sum, nil
}

func (r *Runner) processOne(ctx context.Context, inputPath, outputPath string, p Params) error {
	var err error
	switch p.Operation {
	case OpRemoveBackground:
		_, err = r.client.RemoveBackground(ctx, inputPath, outputPath, nil)
	case OpBlurBackground:
		_, err = r.client.BlurBackground(ctx, inputPath, outputPath, p.BlurStrength, nil)
	case OpUpscale:
		_, err = r.client.UpscaleImage(ctx, inputPath, outputPath, p.ScaleFactor, nil)
	}
	return err
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !supportedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// outputName имя результата: суффикс по операции, у удаления фона всегда png,
// потому что результат содержит альфа-канал.
func outputName(inputPath string, p Params) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	switch p.Operation {
	case OpRemoveBackground:
		return base + "_nobg.png"
	case OpBlurBackground:
		return base + "_blurred" + ext
	case OpUpscale:
		return fmt.Sprintf("%s_x%d%s", base, p.ScaleFactor, ext)
	}
	return base + "_processed" + ext
}
