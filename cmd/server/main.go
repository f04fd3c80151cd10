// Command server runs the blog.
//
//	@title			blogcms
//	@version		1.0
//	@description	Server-rendered blog with a single-admin dashboard.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monishsatpuri/blogcms/internal/api"
	"github.com/monishsatpuri/blogcms/internal/api/middleware"
	"github.com/monishsatpuri/blogcms/internal/api/view"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
	"github.com/monishsatpuri/blogcms/internal/core/service"
	"github.com/monishsatpuri/blogcms/internal/infrastructure/auth"
	mongodb "github.com/monishsatpuri/blogcms/internal/infrastructure/db/mongo"
	redisdb "github.com/monishsatpuri/blogcms/internal/infrastructure/db/redis"
	"github.com/monishsatpuri/blogcms/internal/infrastructure/db/sqlite"
	"github.com/monishsatpuri/blogcms/internal/infrastructure/mail"
	"github.com/monishsatpuri/blogcms/internal/infrastructure/queue"
	"github.com/monishsatpuri/blogcms/internal/infrastructure/session"
	"github.com/monishsatpuri/blogcms/internal/pkg/config"
	"github.com/monishsatpuri/blogcms/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blogcms: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "blogcms",
	})

	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	// --- Stores ---
	posts, contacts, storePinger, closeStore, err := openStores(ctx, cfg.Store)
	if err != nil {
		return err
	}
	closers = append(closers, closeStore)

	sessions, closeSessions, err := openSessions(ctx, cfg)
	if err != nil {
		return err
	}
	closers = append(closers, closeSessions)

	verifier, err := newVerifier(cfg.Admin)
	if err != nil {
		return err
	}

	// --- Contact notifications ---
	var sender ports.ContactSender = mail.NewLogSender(logger.Component("mail"))
	if cfg.Mail.Enabled {
		sender = mail.NewSMTPSender(mail.Config{
			Server:    cfg.Mail.Server,
			Port:      cfg.Mail.Port,
			User:      cfg.Mail.User,
			Password:  cfg.Mail.Password,
			Recipient: cfg.Mail.Recipient,
		})
	}
	dispatcher := queue.NewDispatcher(0, 0, sender, logger.Component("dispatcher"))
	dispatcher.Start(ctx)
	closers = append(closers, dispatcher.Stop)

	// --- HTTP ---
	renderer, err := view.New(view.Params{
		BlogName: cfg.Blog.Name,
		Tagline:  cfg.Blog.Tagline,
		About:    cfg.Blog.About,
	})
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		Auth:     service.NewAuthService(verifier, sessions, cfg.Session.TTL, logger.Component("auth")),
		Content:  service.NewContentService(posts, logger.Component("content")),
		Reader:   service.NewReaderService(posts, cfg.Blog.HomePosts),
		Contacts: service.NewContactService(contacts, dispatcher, logger.Component("contact")),
		Cookies:  middleware.NewSessionCookie(cfg.Session.Secret, !cfg.IsDevelopment()),
		Renderer: renderer,
		Ready: map[string]ports.Pinger{
			cfg.Store.Driver:    storePinger,
			cfg.Session.Backend: sessions,
		},
		Log: logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.Store.Driver).Str("sessions", cfg.Session.Backend).Msg("server starting")
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}

func openStores(ctx context.Context, cfg config.StoreConfig) (ports.PostRepository, ports.ContactRepository, ports.Pinger, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, nil, nil, err
		}
		closeDB := func() { closeLogged("sqlite", db.Close) }
		return sqlite.NewPostRepository(db), sqlite.NewContactRepository(db), sqlite.NewPinger(db), closeDB, nil

	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.DatabaseURI(), Database: cfg.MongoDB})
		if err != nil {
			return nil, nil, nil, nil, err
		}
		disconnect := func() {
			closeLogged("mongo", func() error {
				dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return client.Disconnect(dctx)
			})
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			disconnect()
			return nil, nil, nil, nil, err
		}
		return mongodb.NewPostRepository(db), mongodb.NewContactRepository(db), mongodb.NewPinger(db), disconnect, nil
	}
}

type sessionBackend interface {
	ports.SessionStore
	ports.Pinger
}

func openSessions(ctx context.Context, cfg *config.Config) (sessionBackend, func(), error) {
	if cfg.Session.Backend == config.BackendMemory {
		return session.NewMemoryStore(), func() {}, nil
	}
	client, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	return redisdb.NewSessionStore(client), func() { closeLogged("redis", client.Close) }, nil
}

func newVerifier(cfg config.AdminConfig) (ports.CredentialVerifier, error) {
	if cfg.PasswordHash != "" {
		v, err := auth.NewBcryptVerifier(cfg.User, cfg.PasswordHash)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH: %w", err)
		}
		return v, nil
	}
	return auth.NewPlainVerifier(cfg.User, cfg.Password), nil
}

func closeLogged(name string, fn func() error) {
	if err := fn(); err != nil {
		log := logger.Component("shutdown")
		log.Warn().Err(err).Str("resource", name).Msg("close failed")
	}
}
