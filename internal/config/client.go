package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ClientConfig は catalogctl（ストアフロント/管理クライアント）の設定。
type ClientConfig struct {
	BaseURL string        // APIのベースURL
	Timeout time.Duration // 1リクエストのタイムアウト
	Token   string        // 管理APIの Bearer トークン（任意）
}

// LoadEnvFile は .env があれば読む（なければ何もしない）。
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := []string{}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

func LoadClient() (ClientConfig, error) {
	timeout, err := durationDefault("API_TIMEOUT", 10*time.Second)
	if err != nil {
		return ClientConfig{}, err
	}
	if timeout <= 0 {
		return ClientConfig{}, fmt.Errorf("API_TIMEOUT must be > 0")
	}

	base := strings.TrimRight(getenv("API_BASE_URL", "http://localhost:4000"), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ClientConfig{}, fmt.Errorf("API_BASE_URL is invalid: %q", base)
	}

	return ClientConfig{
		BaseURL: base,
		Timeout: timeout,
		Token:   strings.TrimSpace(os.Getenv("API_TOKEN")),
	}, nil
}
