package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/traction-team/korail-mate/backend/internal/config"
	"github.com/traction-team/korail-mate/backend/internal/data"
	"github.com/traction-team/korail-mate/backend/internal/handler"
	chatservice "github.com/traction-team/korail-mate/backend/internal/service/chat"
	gateservice "github.com/traction-team/korail-mate/backend/internal/service/gate"
	profileservice "github.com/traction-team/korail-mate/backend/internal/service/profile"
	recommendservice "github.com/traction-team/korail-mate/backend/internal/service/recommend"
	tripservice "github.com/traction-team/korail-mate/backend/internal/service/trip"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	kv := openStore(cfg.Store)

	chatSvc := chatservice.NewService(
		kv,
		chatservice.NewReplier(cfg.Chat.ReplierSeed),
		cfg.Chat.ReplyMinDelay,
		cfg.Chat.ReplyMaxDelay,
	)
	defer chatSvc.Close()

	deps := handler.Deps{
		KV:        kv,
		Profile:   profileservice.NewService(kv),
		Chat:      chatSvc,
		Recommend: recommendservice.NewService(recommendservice.NewSessions(), data.Packages()),
		Gate:      gateservice.NewPolicy(kv),
		Posts:     tripservice.NewMockPosts(cfg.Mock.PostSeed),
		Wizard:    tripservice.NewWizard(kv),
	}

	router := handler.NewRouter(deps)
	startServer(ctx, cfg.Server, router)
}

// openStore 저장소를 연다. 열 수 없으면 프로토타입의 localStorage 부재와 같은
// 계약으로 동작 저하한다: 읽기는 기본값, 쓰기는 no-op.
func openStore(cfg config.StoreConfig) storage.KV {
	if cfg.Path == "" {
		log.Println("[kv] no path configured, using in-memory store")
		return storage.NewMemory()
	}

	kv, err := storage.OpenSQLite(cfg.Path)
	if err != nil {
		log.Printf("warning: failed to open kv store at %s: %v", cfg.Path, err)
		log.Println("continuing with a null store - flags and drafts will not persist")
		return storage.Null{}
	}
	log.Printf("[kv] sqlite store open at %s", cfg.Path)
	return kv
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Korail Mate backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
