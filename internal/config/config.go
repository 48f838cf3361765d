package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Cache         Cache         `mapstructure:",squash"`
	OBRankingSync OBRankingSync `mapstructure:",squash"`
	DraftCleanup  DraftCleanup  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	SlowRequestMs  int      `mapstructure:"slow_request_ms"`
}

// SlowRequestThreshold é o tempo a partir do qual uma requisição é registrada como lenta
func (s Server) SlowRequestThreshold() time.Duration {
	if s.SlowRequestMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(s.SlowRequestMs) * time.Millisecond
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Auth guarda o segredo do JWT e o hash bcrypt da senha administrativa.
// Nenhuma credencial fica no código.
type Auth struct {
	SecretKey         string        `mapstructure:"secret_key"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type Cache struct {
	Enabled          bool   `mapstructure:"cache_enabled"`
	RedisURL         string `mapstructure:"redis_url"`
	RedisHost        string `mapstructure:"redis_host"`
	RedisPort        string `mapstructure:"redis_port"`
	RedisPassword    string `mapstructure:"redis_password"`
	RedisDB          int    `mapstructure:"redis_db"`
	ReportTTLSeconds int    `mapstructure:"report_cache_ttl_seconds"`
}

type OBRankingSync struct {
	CronSchedule string `mapstructure:"ob_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"ob_ranking_sync_enabled"`
}

type DraftCleanup struct {
	CronSchedule  string `mapstructure:"draft_cleanup_cron"`
	RetentionDays int    `mapstructure:"draft_cleanup_retention_days"`
	Enabled       bool   `mapstructure:"draft_cleanup_enabled"`
}

// Location devolve o fuso usado para "hoje" e "mês corrente" nos relatórios.
func (a App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.Warnf("Timezone inválido: %s, usando UTC", a.Timezone)
		return time.UTC
	}
	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("SLOW_REQUEST_MS", 500)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/orders?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_HOST", "127.0.0.1")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 60)

	viper.SetDefault("OB_RANKING_SYNC_CRON", "30 0 * * *") // Todos os dias às 00:30
	viper.SetDefault("OB_RANKING_SYNC_ENABLED", false)

	viper.SetDefault("DRAFT_CLEANUP_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("DRAFT_CLEANUP_RETENTION_DAYS", 30)
	viper.SetDefault("DRAFT_CLEANUP_ENABLED", false)

	viper.SetDefault("TIMEZONE", "Asia/Karachi")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Auth.AdminPasswordHash == "" {
		logrus.Warn("ADMIN_PASSWORD_HASH não configurado, rotas administrativas ficarão inacessíveis")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
