// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	Catalog         `yaml:"catalog"`
	GoogleSheets    `yaml:"google_sheets"`
	Sync            `yaml:"sync"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"5s"`
}

// Catalog структура для настройки источников каталога инструментов.
type Catalog struct {
	ToolsFile string        `yaml:"tools_file" env:"TOOLS_FILE"`
	CacheTTL  time.Duration `yaml:"cache_ttl" env-default:"1h"`
	// SheetRange диапазон листа с записями каталога, пустое значение
	// отключает табличный источник.
	SheetRange string `yaml:"sheet_range" env:"TOOLS_SHEET_RANGE"`
}

// GoogleSheets структура для доступа к Google Sheets от имени сервисного аккаунта.
type GoogleSheets struct {
	ServiceAccountEmail string `yaml:"service_account_email" env:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	PrivateKey          string `yaml:"private_key" env:"GOOGLE_PRIVATE_KEY"`
	SheetID             string `yaml:"sheet_id" env:"SHEET_ID"`
}

// Sync структура для настройки выгрузки подписчиков.
type Sync struct {
	// APIURL адрес admin-эндпоинта со списком подписчиков.
	APIURL     string `yaml:"api_url" env:"API_URL"`
	CronSecret string `yaml:"cron_secret" env:"CRON_SECRET"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH, при ошибке завершает процесс.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
