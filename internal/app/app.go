package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/growthbox-backend/internal/adapter/idgen"
	"github.com/heartmarshall/growthbox-backend/internal/adapter/media"
	"github.com/heartmarshall/growthbox-backend/internal/adapter/postgres"
	babyrepo "github.com/heartmarshall/growthbox-backend/internal/adapter/postgres/baby"
	followrepo "github.com/heartmarshall/growthbox-backend/internal/adapter/postgres/follow"
	recordrepo "github.com/heartmarshall/growthbox-backend/internal/adapter/postgres/record"
	userrepo "github.com/heartmarshall/growthbox-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/growthbox-backend/internal/auth"
	"github.com/heartmarshall/growthbox-backend/internal/config"
	"github.com/heartmarshall/growthbox-backend/internal/controller"
	"github.com/heartmarshall/growthbox-backend/internal/dateutil"
	"github.com/heartmarshall/growthbox-backend/internal/service/baby"
	"github.com/heartmarshall/growthbox-backend/internal/service/record"
	"github.com/heartmarshall/growthbox-backend/internal/service/social"
	"github.com/heartmarshall/growthbox-backend/internal/service/stats"
	"github.com/heartmarshall/growthbox-backend/internal/session"
	"github.com/heartmarshall/growthbox-backend/internal/transport/middleware"
	"github.com/heartmarshall/growthbox-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Journal.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	store, err := media.NewFSStore(logger, cfg.Media)
	if err != nil {
		return err
	}

	clock := dateutil.SystemClock{Loc: dateutil.ParseTimezone(cfg.Journal.Timezone)}
	ids := idgen.New()

	// Repositories.
	records := recordrepo.New(pool)
	babies := babyrepo.New(pool)
	follows := followrepo.New(pool)
	users := userrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	sessions := session.NewManager(logger, users, babies)
	defer sessions.Close()

	// Services.
	recordSvc := record.NewService(logger, records, ids, clock)
	statsSvc := stats.NewService(logger, recordSvc, clock)
	socialSvc := social.NewService(logger, follows, babies, txm, clock, cfg.Social)
	babySvc := baby.NewService(logger, babies, ids, sessions, clock)

	// Pages.
	calendar := controller.NewCalendar(logger, recordSvc, clock)
	editor := controller.NewEditor(logger, recordSvc, store, clock)
	detail := controller.NewDetail(logger, recordSvc)
	list := controller.NewRecordList(logger, recordSvc)
	followedList := controller.NewFollowedRecordList(logger, recordSvc)
	profile := controller.NewProfile(logger, babySvc, statsSvc, socialSvc, store, clock)
	followPage := controller.NewFollowPage(logger, socialSvc)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.PingCheck("database", pool),
			rest.HealthCheck{Name: "media", Run: store.Check, Optional: true},
		),
		Session: rest.NewSessionHandler(sessions, jwtManager, auth.NewIdentity, logger),
		Journal: rest.NewJournalHandler(sessions, calendar, editor, detail, list, logger),
		Social:  rest.NewSocialHandler(sessions, followPage, followedList, recordSvc, logger),
		Profile: rest.NewProfileHandler(sessions, profile, babySvc, logger),
		Media:   rest.NewMediaHandler(store, store.Root(), store.BaseURL(), logger),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(mux)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	events, unsubscribe := sessions.Subscribe(session.DefaultBuffer)
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logSessionEvents(gctx, logger, events)
		return nil
	})

	g.Go(func() error {
		sessions.RunEviction(gctx, cfg.Session.SweepInterval, cfg.Session.IdleTTL)
		return nil
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("application stopped",
		slog.Int("active_sessions", sessions.Active()),
		slog.Int64("dropped_events", sessions.Dropped()),
	)
	return err
}

// logSessionEvents records session lifecycle events until ctx is done or
// the manager closes the channel.
func logSessionEvents(ctx context.Context, logger *slog.Logger, events <-chan session.Event) {
	log := logger.With("component", "session_events")
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			attrs := []any{
				slog.String("kind", ev.Kind.String()),
				slog.String("owner", ev.Identity),
			}
			if ev.Profile != nil {
				attrs = append(attrs, slog.String("baby_id", ev.Profile.BabyID))
			}
			if ev.NewUser {
				attrs = append(attrs, slog.Bool("new_user", true))
			}
			if ev.Expired {
				attrs = append(attrs, slog.Bool("expired", true))
			}
			log.Debug("session event", attrs...)
		}
	}
}
