package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"cacaoloom.org/cacao-web/internal/admin"
	"cacaoloom.org/cacao-web/internal/catalog"
	"cacaoloom.org/cacao-web/internal/config"
	"cacaoloom.org/cacao-web/internal/content"
	"cacaoloom.org/cacao-web/internal/middleware"
	"cacaoloom.org/cacao-web/internal/order"
	"cacaoloom.org/cacao-web/internal/storage"
)

// package-level wiring, assigned in main() and by tests
var (
	cfg          config.Config
	logger       *zap.Logger
	store        *catalog.Store
	pages        *content.Loader
	tokenMinter  *admin.TokenMinter
	profileURL   = order.DefaultProfileURL
	passphrase   = admin.DefaultPassphrase
	templatesDir = "templates"
	publicDir    = "public"
	devMode      bool
)

func main() {
	cfg = config.Load()

	var addr string
	flag.StringVar(&addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&cfg.DataFile, "data", cfg.DataFile, "catalog database file")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	flag.Parse()

	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir
	devMode = cfg.Dev
	profileURL = cfg.ProfileURL
	passphrase = cfg.Passphrase

	logger = newLogger(cfg)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	backend, err := storage.OpenBolt(cfg.DataFile)
	if err != nil {
		logger.Fatal("open catalog database", zap.Error(err))
	}
	defer func() { _ = backend.Close() }()

	store = catalog.NewStore(backend, logger.Named("catalog"))
	pages = content.NewLoader(cfg.ContentDir, 5*time.Minute)
	tokenMinter = admin.NewTokenMinter(middleware.SigningKey())

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

// newRouter assembles the middleware stack and routes. Tests build the
// same router after swapping in their own store and loader.
func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that
	// controls those headers.
	r.Use(chimw.RealIP)
	r.Use(middleware.HTMX)
	r.Use(middleware.Session)
	r.Use(middleware.CSRF)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", middleware.AssetsWithCache(publicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/shop/grid", ShopGridFrag)
	r.Get("/products/{productID}/image.svg", ProductImageHandler)
	r.Get("/modal/product/{productID}", ProductModalFrag)
	r.Get("/modal/order/{productID}", OrderModalFrag)

	r.Get("/modal/admin", AdminUnlockFrag)
	r.Post("/admin/unlock", AdminUnlockHandler)
	r.Post("/admin/products", AdminAddHandler)
	r.Post("/admin/products/{productID}/delete", AdminRemoveHandler)
	r.Post("/admin/exit", AdminExitHandler)

	r.Get("/story", StoryHandler)

	return r
}

// newLogger follows the usual split: human console in dev, JSON in prod,
// optional rotated file sink when CACAO_WEB_LOG_FILE is set.
func newLogger(cfg config.Config) *zap.Logger {
	var zapConfig zap.Config
	if cfg.Prod {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if cfg.LogFile == "" {
		l, err := zapConfig.Build()
		if err != nil {
			panic(err)
		}
		return l
	}

	rotated := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotated),
			zapConfig.Level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			zapConfig.Level,
		),
	)
	return zap.New(core)
}
