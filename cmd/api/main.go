package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/njprem/GuideMe_Site/internal/catalog"
	"github.com/njprem/GuideMe_Site/internal/config"
	"github.com/njprem/GuideMe_Site/internal/logging"
	"github.com/njprem/GuideMe_Site/internal/repository/memory"
	storage "github.com/njprem/GuideMe_Site/internal/repository/minio"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
	"github.com/njprem/GuideMe_Site/internal/repository/sqlstore"
	"github.com/njprem/GuideMe_Site/internal/service"
	httpx "github.com/njprem/GuideMe_Site/internal/transport/http"
	"github.com/njprem/GuideMe_Site/internal/transport/mail"
	"github.com/njprem/GuideMe_Site/internal/util"
	"github.com/njprem/GuideMe_Site/internal/view"
)

func main() {
	cfg := config.Load()

	var mirror io.Writer
	var logstash *logging.LogstashWriter
	if cfg.LogstashTCPAddr != "" {
		w, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			logrus.WithError(err).Warn("logstash disabled")
		} else {
			logstash = w
			mirror = w
		}
	}
	log := logging.New(cfg.LogLevel, mirror)

	ctx := context.Background()

	likes, subscriptions, db := openRepositories(ctx, cfg, log)

	c, err := catalog.Default()
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}
	if cfg.AssetsEnabled() {
		resolveAssets(ctx, cfg, c, log)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.WithError(err).Fatal("parse templates")
	}

	var notifier ports.LaunchNotifier
	if cfg.MailEnabled() {
		notifier = mail.NewLaunchNoticeMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SiteURL)
	}

	searches := service.NewSearchService(service.NewDelayedBackend(cfg.SearchDelay), cfg.ListingPath, log)
	likeService := service.NewLikeService(likes, c)
	subscriptionService := service.NewLaunchSubscriptionService(subscriptions, notifier, log)
	tokens := util.NewVisitorTokenManager(cfg.SessionSecret, cfg.SessionTTL)

	e := httpx.NewRouter(cfg.AllowOrigins, log)
	e.Renderer = renderer
	e.Use(httpx.VisitorSession(tokens, cfg.SecureCookies, log))
	pages := httpx.RegisterPages(e, c, searches, likeService, log)
	httpx.RegisterLikes(e, likeService)
	httpx.RegisterLaunchNotify(e, pages, subscriptionService, cfg.NotifyRatePerMin)
	if err := httpx.RegisterSearchAPI(e, searches); err != nil {
		log.WithError(err).Fatal("compile search schema")
	}
	httpx.RegisterMetrics(e)
	if err := httpx.RegisterSwagger(e, cfg.SwaggerSpecPath, log); err != nil {
		log.WithError(err).Warn("swagger ui disabled")
	}

	errChan := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("GuideMe site listening")
		errChan <- e.Start(":" + cfg.Port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped unexpectedly")
		}
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
		}
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("close database")
		}
	}
	if logstash != nil {
		_ = logstash.Close()
	}
}

// openRepositories uses SQL storage when DATABASE_URL is set and keeps everything in memory otherwise.
func openRepositories(ctx context.Context, cfg config.Config, log *logrus.Logger) (ports.LikeRepository, ports.SubscriptionRepository, *sqlx.DB) {
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL not set, likes and subscriptions are kept in memory")
		return memory.NewLikeRepo(), memory.NewSubscriptionRepo(), nil
	}

	db, err := sqlstore.New(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	if err := sqlstore.Migrate(ctx, db); err != nil {
		log.WithError(err).Fatal("migrate database")
	}
	return sqlstore.NewLikeRepo(db), sqlstore.NewSubscriptionRepo(db), db
}

func resolveAssets(ctx context.Context, cfg config.Config, c *catalog.Catalog, log *logrus.Logger) {
	client, err := storage.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.WithError(err).Warn("minio client unavailable, using external images")
		return
	}
	store, err := storage.NewAssetStore(client, cfg.MinIOBucket, cfg.MinIOPublicURL)
	if err != nil {
		log.WithError(err).Warn("asset store unavailable, using external images")
		return
	}
	resolveCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := c.ResolveImages(resolveCtx, store); err != nil {
		log.WithError(err).Warn("some fixture images fall back to external URLs")
	}
}
