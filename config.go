package miragic

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultBaseURL адрес продакшен-API, используется если MIRAGIC_API_BASE_URL не задан.
const DefaultBaseURL = "https://api.miragic.com/v1"

// Config конфигурация клиента. Заполняется один раз при создании клиента
// и после этого не меняется; для другой конфигурации создаётся новый клиент.
type Config struct {
	APIKey         string `env:"MIRAGIC_API_KEY"`      // API-ключ, обязателен при UseAPI
	UseAPI         bool   `env:"MIRAGIC_USE_API"`      // Режим работы через серверный API
	BaseURL        string `env:"MIRAGIC_API_BASE_URL"` // Базовый URL API, абсолютный
	TimeoutSeconds int    `env:"MIRAGIC_API_TIMEOUT"`  // Таймаут одного раунд-трипа, в секундах

	// Директории по умолчанию для пакетной обработки
	InputDir  string `env:"MIRAGIC_INPUT_DIR"`
	OutputDir string `env:"MIRAGIC_OUTPUT_DIR"`
}

// Defaults возвращает конфигурацию с предустановленными значениями.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		UseAPI:         true,
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: 30,
		InputDir:       "input",
		OutputDir:      "output",
	}
}

// ConfigFromEnv загружает конфигурацию: дефолты, затем .env и переменные окружения.
// Чтение окружения происходит только здесь, один раз, а не по ходу работы клиента.
func ConfigFromEnv() *Config {
	_ = godotenv.Load()

	cfg := Defaults()
	_ = env.Parse(cfg)
	return cfg
}

// Timeout таймаут раунд-трипа как time.Duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
