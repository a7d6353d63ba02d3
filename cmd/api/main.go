package main

import (
	"context"

	"github.com/expgenwoo218/aibuup24/internal/auth"
	"github.com/expgenwoo218/aibuup24/internal/cache"
	"github.com/expgenwoo218/aibuup24/internal/config"
	"github.com/expgenwoo218/aibuup24/internal/database"
	"github.com/expgenwoo218/aibuup24/internal/gemini"
	"github.com/expgenwoo218/aibuup24/internal/handler"
	"github.com/expgenwoo218/aibuup24/internal/logger"
	"github.com/expgenwoo218/aibuup24/internal/publish"
	"github.com/expgenwoo218/aibuup24/internal/repository"
	"github.com/expgenwoo218/aibuup24/pkg"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.ConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		sugar.Fatal(err)
	}
	defer rdb.Close()

	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
	if err != nil {
		sugar.Fatal(err)
	}

	crypto, err := pkg.NewCrypto(cfg.Crypto.Secret)
	if err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool)

	h := &handler.Handler{
		Logger:       log,
		Repo:         repo,
		TokenMaker:   auth.NewJWTMaker(cfg.JWT.Secret),
		TokenTTL:     cfg.JWT.AccessTokenTTL,
		Sessions:     cache.NewSessionStore(rdb, cfg.Chat.SessionTTL),
		Publisher:    publish.NewPublisher(&repo.Post, &repo.Profile),
		Synth:        geminiClient,
		SynthTimeout: cfg.Gemini.Timeout,
		Crypto:       crypto,
	}

	app := &application{
		DB:         pool,
		Redis:      rdb,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
