package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 서비스 전체 설정
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Chat   ChatConfig
	Mock   MockConfig
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Addr string
}

// StoreConfig key-value 저장소 설정
type StoreConfig struct {
	// Path sqlite 파일 경로. 비우면 비영속(in-memory) 저장소를 쓴다.
	Path string
}

// ChatConfig 자동 답장 타이밍 설정
type ChatConfig struct {
	ReplyMinDelay time.Duration
	ReplyMaxDelay time.Duration
	ReplierSeed   int64
}

// MockConfig mock 데이터 생성 설정
type MockConfig struct {
	PostSeed int64
}

// Load 환경 변수에서 설정을 읽는다.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	postSeed, err := parseInt64Env("TRIP_POST_SEED", 1)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Store:  StoreConfig{Path: getEnvOrDefault("KV_PATH", "./korail_mate.db")},
		Chat:   chat,
		Mock:   MockConfig{PostSeed: postSeed},
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// ":8080" 또는 "127.0.0.1:8080" 형태도 허용한다.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadChatConfig() (ChatConfig, error) {
	minMs, err := parseInt64Env("CHAT_REPLY_MIN_MS", 800)
	if err != nil {
		return ChatConfig{}, err
	}
	maxMs, err := parseInt64Env("CHAT_REPLY_MAX_MS", 1600)
	if err != nil {
		return ChatConfig{}, err
	}
	seed, err := parseInt64Env("CHAT_REPLIER_SEED", time.Now().UnixNano())
	if err != nil {
		return ChatConfig{}, err
	}

	return ChatConfig{
		ReplyMinDelay: time.Duration(minMs) * time.Millisecond,
		ReplyMaxDelay: time.Duration(maxMs) * time.Millisecond,
		ReplierSeed:   seed,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseInt64Env(key string, defaultValue int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
