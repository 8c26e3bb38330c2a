package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pmlaogao/portal/internal/access"
	"github.com/pmlaogao/portal/internal/config"
	"github.com/pmlaogao/portal/internal/httpserver"
	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/ipinfo"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/portal"
	"github.com/pmlaogao/portal/internal/quota"
	"github.com/pmlaogao/portal/internal/redis"
	"github.com/pmlaogao/portal/internal/sources/seedfile"
	"github.com/pmlaogao/portal/internal/storage"
	"github.com/pmlaogao/portal/internal/store"
	"github.com/pmlaogao/portal/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the storage backend. An empty Redis address means the portal runs
	// on the in-memory store and loses state on restart, which is fine for
	// local setups.
	var kv storage.KV
	var redisClient *goredis.Client
	if cfg.RedisAddr == "" {
		loggerClient.Info("no redis address configured, using in-memory storage")
		kv = storage.NewMemoryKV()
	} else {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		kv = storage.NewRedisKV(client)
	}

	st := store.New(kv, loggerClient)

	// An optional seed file replaces the built-in default links table.
	if cfg.SeedFile != "" {
		if err := applySeedFile(cfg.SeedFile, st, loggerClient); err != nil {
			loggerClient.Warn("failed to apply seed file, keeping built-in defaults",
				logger.String("file", cfg.SeedFile),
				logger.Error(err))
		}
	}

	counter := quota.New(kv, nil)
	controller := access.NewController(st.Members, counter, cfg.GuestQuota, nil, loggerClient)
	auth := access.NewAuthenticator(st.Members, cfg.AdminUser, cfg.AdminPass, cfg.UnlockCode, loggerClient)
	sessions := access.NewSessions()

	var resolver ipinfo.Resolver
	if cfg.GeoEndpoint == "" {
		loggerClient.Info("no geo endpoint configured, location lookups disabled")
		resolver = ipinfo.Static("")
	} else {
		resolver = ipinfo.NewHTTPResolver(cfg.GeoEndpoint, cfg.GeoTimeout, loggerClient)
	}

	svc := portal.NewService(st, controller, auth, sessions, resolver, loggerClient, nil)

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Portal:       svc,
		RedisClient:  redisClient,
		AltLoginURL:  cfg.AltLoginURL,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

// applySeedFile loads the YAML seed file and installs its links as the
// default table.
func applySeedFile(path string, st *store.Store, log logger.Logger) error {
	file, err := seedfile.NewLoader(path).Load()
	if err != nil {
		return err
	}
	links, err := seedfile.NewMapper().MapLinks(file)
	if err != nil {
		return err
	}
	st.Links.SetSeed(store.RenderLinks(links))
	log.Info("seed file applied", logger.Int("links", len(links)))
	return nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Portal v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Portal %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Portal stopped cleanly")
	return nil
}
