package miragic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Пути операций, зафиксированы контрактом сервера.
const (
	endpointBackgroundRemoval = "background-removal"
	endpointBlurBackground    = "blur-background"
	endpointUpscale           = "upscale"
	endpointStatus            = "status"
	endpointUsage             = "usage"
)

// ErrAPIDisabled возвращается операциями, когда клиент создан с UseAPI=false.
// Локальная обработка изображений в SDK не входит, вся работа идёт через сервер.
var ErrAPIDisabled = errors.New("api mode is disabled: enable UseAPI and provide an API key")

// Result результат успешной операции: путь к записанному файлу и его размер.
type Result struct {
	OutputPath string
	Bytes      int
}

// StatusInfo снимок состояния сервера, только для чтения.
type StatusInfo map[string]any

// UsageStats статистика потребления API, только для чтения.
type UsageStats map[string]any

// Client клиент Miragic API. Поля не меняются после New, поэтому один
// клиент можно безопасно использовать из нескольких горутин.
type Client struct {
	cfg    Config
	base   *url.URL
	http   *http.Client
	logger *zap.SugaredLogger
}

type Option func(*Client)

// WithLogger подключает логгер; по умолчанию клиент молчит (zap.NewNop).
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient подменяет HTTP-транспорт, например в тестах.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New создаёт клиента и проверяет инварианты конфигурации:
// при UseAPI базовый URL должен быть абсолютным, а ключ — непустым.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout()},
		logger: zap.NewNop().Sugar(),
	}

	if cfg.UseAPI {
		if strings.TrimSpace(cfg.APIKey) == "" {
			return nil, errors.New("empty API key (set MIRAGIC_API_KEY in .env/ENV or pass via config)")
		}
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
		if err != nil || !base.IsAbs() || base.Host == "" {
			return nil, fmt.Errorf("invalid API base URL: %q", cfg.BaseURL)
		}
		c.base = base
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RemoveBackground удаляет фон: читает входной файл, отправляет его на сервер
// и записывает результат в outputPath. Один вызов — один сетевой раунд-трип.
func (c *Client) RemoveBackground(ctx context.Context, inputPath, outputPath string, opts *RemovalOptions) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	return c.process(ctx, endpointBackgroundRemoval, inputPath, outputPath, operationRequest{
		Parameters: opts.params(),
	})
}

// BlurBackground размывает фон с силой strength из диапазона [0.0, 1.0].
func (c *Client) BlurBackground(ctx context.Context, inputPath, outputPath string, strength float64, opts *BlurOptions) (Result, error) {
	if strength < 0.0 || strength > 1.0 {
		return Result{}, &ValidationError{Field: "blur_strength", Reason: fmt.Sprintf("must be within [0.0, 1.0], got %g", strength)}
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	return c.process(ctx, endpointBlurBackground, inputPath, outputPath, operationRequest{
		BlurStrength: &strength,
		Parameters:   opts.params(),
	})
}

// UpscaleImage увеличивает изображение в scale раз, scale из диапазона [1, 8].
func (c *Client) UpscaleImage(ctx context.Context, inputPath, outputPath string, scale int, opts *UpscaleOptions) (Result, error) {
	if scale < 1 || scale > 8 {
		return Result{}, &ValidationError{Field: "scale_factor", Reason: fmt.Sprintf("must be within [1, 8], got %d", scale)}
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	return c.process(ctx, endpointUpscale, inputPath, outputPath, operationRequest{
		ScaleFactor: &scale,
		Parameters:  opts.params(),
	})
}

// APIStatus запрашивает состояние сервера.
func (c *Client) APIStatus(ctx context.Context) (StatusInfo, error) {
	var out StatusInfo
	if err := c.get(ctx, endpointStatus, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UsageStats запрашивает статистику потребления API.
func (c *Client) UsageStats(ctx context.Context) (UsageStats, error) {
	var out UsageStats
	if err := c.get(ctx, endpointUsage, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// operationRequest тело POST-запроса операции. Поле image — base64 исходных байтов.
type operationRequest struct {
	Image        string         `json:"image"`
	Format       string         `json:"format"`
	BlurStrength *float64       `json:"blur_strength,omitempty"`
	ScaleFactor  *int           `json:"scale_factor,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
}

// process общий сценарий операции: параметры уже проверены, дальше
// файл → base64 → раунд-трип → атомарная запись результата.
func (c *Client) process(ctx context.Context, endpoint, inputPath, outputPath string, req operationRequest) (Result, error) {
	if !c.cfg.UseAPI {
		return Result{}, ErrAPIDisabled
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, &NotFoundError{Path: inputPath}
		}
		return Result{}, fmt.Errorf("read input file: %w", err)
	}

	req.Image = base64.StdEncoding.EncodeToString(data)
	if req.Format == "" {
		req.Format = sniffFormat(data, inputPath)
	}

	out, err := c.post(ctx, endpoint, req)
	if err != nil {
		return Result{}, err
	}

	if err := writeAtomic(outputPath, out); err != nil {
		return Result{}, fmt.Errorf("write output file: %w", err)
	}

	c.logger.Debugw("image processed",
		"endpoint", endpoint,
		"input", inputPath,
		"output", outputPath,
		"bytes", len(out),
	)
	return Result{OutputPath: outputPath, Bytes: len(out)}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload operationRequest) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.roundTrip(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	// Сервер отвечает либо JSON с base64, либо сырыми байтами изображения.
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return raw, nil
	}

	var out struct {
		Image string `json:"image"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Image == "" {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: "response contains no image data"}
	}
	decoded, err := base64.StdEncoding.DecodeString(out.Image)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return decoded, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if !c.cfg.UseAPI {
		return ErrAPIDisabled
	}

	resp, err := c.roundTrip(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(endpoint).String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("X-API-Key", c.cfg.APIKey)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	return resp, nil
}

// classifyTransport раскладывает ошибку транспорта по таксономии:
// дедлайны и сетевые таймауты — TimeoutError, остальное — TransportError.
// Отмена контекста вызывающим — не сбой, пробрасывается как есть.
func classifyTransport(err error) error {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &TimeoutError{Err: err}
	case errors.As(err, &nerr) && nerr.Timeout():
		return &TimeoutError{Err: err}
	case errors.Is(err, context.Canceled):
		return err
	}
	return &TransportError{Err: err}
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := string(bytes.TrimSpace(b))

	// Структурированную ошибку сервера разворачиваем до текста
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &apiErr) == nil {
		switch {
		case apiErr.Message != "":
			msg = apiErr.Message
		case apiErr.Error != "":
			msg = apiErr.Error
		}
	}
	if msg == "" {
		msg = resp.Status
	}
	return &RequestError{StatusCode: resp.StatusCode, Message: msg}
}
