package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/twkim02/todoc-chat-ai/internal/auth"
	"github.com/twkim02/todoc-chat-ai/internal/cache"
	"github.com/twkim02/todoc-chat-ai/internal/chat"
	"github.com/twkim02/todoc-chat-ai/internal/children"
	"github.com/twkim02/todoc-chat-ai/internal/config"
	"github.com/twkim02/todoc-chat-ai/internal/database"
	"github.com/twkim02/todoc-chat-ai/internal/handler"
	"github.com/twkim02/todoc-chat-ai/internal/journal"
	"github.com/twkim02/todoc-chat-ai/internal/logger"
	"github.com/twkim02/todoc-chat-ai/internal/repository"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Application
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.IsDevelopment())
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, redisClient); err != nil {
		// the onboarding check falls back to the database, so keep going
		sugar.Warnw("redis unreachable, onboarding cache disabled", "addr", cfg.Redis.Addr, "err", err)
	}

	repo := repository.NewRepository(pool)
	onboarding := cache.NewOnboarding(redisClient)

	handlerApp := &handler.Application{
		Logger:     log,
		UserRepo:   repo.User,
		ChildRepo:  repo.Child,
		EntryRepo:  repo.Entry,
		PostRepo:   repo.Post,
		TokenMaker: auth.NewJWTMaker(cfg.JWT.Secret),
		TokenTTL:   cfg.JWT.AccessTokenTTL,
		Children:   children.NewService(repo.Child, onboarding, log),
		Recents:    journal.NewStores(),
		Chat:       chat.NewHub(),
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
