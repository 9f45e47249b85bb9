package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course-quiz-service/internal/app"
	"course-quiz-service/internal/catalog"
	"course-quiz-service/internal/config"
	"course-quiz-service/internal/domain"
	"course-quiz-service/internal/infra/memory"
	"course-quiz-service/internal/infra/postgres"
	infraredis "course-quiz-service/internal/infra/redis"
	"course-quiz-service/internal/logger"
	transport "course-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runServer(cmd.Context(), cfg, *port, log)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config, portFlag string, log *logger.Logger) error {
	if cfg.Postgres.URL != "" {
		if err := runMigrations(ctx, cfg, log); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	service, cleanup, err := buildService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", transport.NewWSHandler(service, log).ServeWS)
	transport.NewAPIHandler(service, log).Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting quiz service", "port", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildService picks Redis/Postgres backends when configured and in-memory ones otherwise.
func buildService(ctx context.Context, cfg config.Config, log *logger.Logger) (*app.QuizService, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var loader memory.CourseLoader = memory.NewStaticCourseLoader(catalog.Records())
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, pool.Close)
		loader = postgres.NewCourseLoader(pool)
		log.Info("courses loaded from postgres")
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	boardSize := cfg.Quiz.LeaderboardSize

	var (
		courses     app.CourseRepository
		progress    app.ProgressStore
		boards      app.LeaderboardStore
		enrollments app.EnrollmentStore
	)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = client.Close() })
		courses = infraredis.NewCourseRepository(client, loader, quizTTL, log)
		progress = infraredis.NewProgressStore(client, config.TTLDuration(cfg.Redis.TTL, 0))
		boards = infraredis.NewLeaderboardStore(client, boardSize)
		enrollments = infraredis.NewEnrollmentStore(client)
		log.Info("using redis stores", "addr", cfg.Redis.Addr)
	} else {
		courses = memory.NewCourseRepository(loader, quizTTL)
		progress = memory.NewProgressStore()
		boards = memory.NewLeaderboardStore(boardSize)
		enrollments = memory.NewEnrollmentStore()
		log.Warn("redis not configured, progress is kept in memory")
	}

	level, err := domain.ParseLevel(cfg.Quiz.DefaultLevel)
	if err != nil {
		return nil, cleanup, err
	}

	bank := app.NewQuestionBank(courses, cfg.Quiz.DefaultCourse)
	service := app.NewQuizService(bank, progress, boards, enrollments,
		app.WithLogger(log),
		app.WithDefaultLevel(level),
		app.WithLeaderboardSize(boardSize),
	)
	return service, cleanup, nil
}
