package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/caiosouza15/seufirmino-awards/auth"
	"github.com/caiosouza15/seufirmino-awards/cliparse"
	"github.com/caiosouza15/seufirmino-awards/db"
	"github.com/caiosouza15/seufirmino-awards/handlers"
	"github.com/caiosouza15/seufirmino-awards/images"
	"github.com/caiosouza15/seufirmino-awards/middleware"
	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/router"
	"github.com/caiosouza15/seufirmino-awards/store"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	server, closeDB, err := setup(context.Background(), cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "allow_reset", cfg.AllowReset)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setup opens the database, prepares storage and builds the server. The
// returned func closes the database.
func setup(ctx context.Context, cfg cliparse.Config) (*http.Server, func(), error) {
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", cfg.DatabaseType, err)
	}
	closeDB := func() { dbConn.Close() }

	if err := db.CreateSchema(dbConn); err != nil {
		closeDB()
		return nil, nil, err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	st := store.New(dbConn)
	logResultsContest(ctx, st, cfg.ResultsContestID)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := bootstrapAdmin(ctx, st, cfg); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("admin bootstrap: %w", err)
		}
	}

	bucket, err := imageBucket(ctx, cfg)
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("image storage: %w", err)
	}

	server := &http.Server{
		Handler: middleware.CORS(router.NewRouter(st, cfg, bucket)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}
	return server, closeDB, nil
}

// logResultsContest reports whether the results contest exists yet. A
// missing contest is not fatal: admins create it after startup and the
// results page reports an error until then.
func logResultsContest(ctx context.Context, st *store.Store, id string) {
	contest, err := st.GetContest(ctx, id)
	switch {
	case errors.Is(err, models.ErrNotFound):
		slog.Warn("results contest does not exist yet", "contest_id", id)
	case err != nil:
		slog.Warn("failed to load results contest", "contest_id", id, "error", err)
	default:
		slog.Info("Results contest", "contest_id", contest.ID, "name", contest.Name)
	}
}

func bootstrapAdmin(ctx context.Context, st *store.Store, cfg cliparse.Config) error {
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	user, err := st.UpsertAdminUser(ctx, handlers.NormalizeEmail(cfg.AdminEmail), hash)
	if err != nil {
		return err
	}
	slog.Info("Admin user ready", "user_id", user.ID, "email", user.Email)
	return nil
}

func imageBucket(ctx context.Context, cfg cliparse.Config) (images.Bucket, error) {
	if cfg.S3.Endpoint != "" {
		slog.Info("Storing images in S3", "endpoint", cfg.S3.Endpoint, "bucket", cfg.S3.Bucket)
		bucket, err := images.NewS3Bucket(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return bucket, nil
	}

	slog.Info("Storing images on disk", "dir", cfg.ImageDir)
	bucket, err := images.NewDirBucket(cfg.ImageDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	return bucket, nil
}
