package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configは API サーバー全体の設定
type Config struct {
	Port string // サーバーポート（4000）

	DatabaseURL      string // あれば最優先
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret         string        // 空なら管理APIの認証なし
	AccessTTL         time.Duration // アクセストークンの有効期限
	AdminEmail        string
	AdminPasswordHash string // bcrypt

	RazorpayKeyID     string // 空なら /payments/* なし
	RazorpayKeySecret string

	Seed        bool     // 空DBに初期データを入れる
	CORSOrigins []string // 既定は "*"
	GoEnv       string   // dev/prod
}

// AuthEnabled は管理APIを JWT で守るかどうか。
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

// PaymentsEnabled は Razorpay の決済APIを載せるかどうか。
func (c Config) PaymentsEnabled() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// DSN は gorm/postgres の接続文字列。
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	ttl, err := durationDefault("ACCESS_TTL", 15*time.Minute)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "4000"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "catalog"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AccessTTL:         ttl,
		AdminEmail:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		RazorpayKeyID:     strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		Seed:        envBool("SEED", true),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
		GoEnv:       getenv("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.GoEnv == "prod" && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required in prod")
	}
	if (cfg.AdminEmail == "") != (cfg.AdminPasswordHash == "") {
		return Config{}, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set together")
	}
	if (cfg.RazorpayKeyID == "") != (cfg.RazorpayKeySecret == "") {
		return Config{}, fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set together")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}

func splitList(v string) []string {
	out := []string{}
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
