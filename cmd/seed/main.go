package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"interview-admin-backend/internal/common/config"
	"interview-admin-backend/internal/common/logger"
	candidateModels "interview-admin-backend/internal/features/candidate/models"
	userModels "interview-admin-backend/internal/features/user/models"
	platformPostgres "interview-admin-backend/internal/platform/postgres"
	platformRedis "interview-admin-backend/internal/platform/redis"
	"interview-admin-backend/internal/storage"
	postgresStore "interview-admin-backend/internal/storage/postgres"
	redisStore "interview-admin-backend/internal/storage/redis"
)

// Loads a demo dataset into the configured store so a fresh install
// has something to show. Safe to re-run, puts are upserts.
func main() {
	cfg := config.Load()
	logger.Init("interview-admin-seed", cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var store storage.Store

	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		rdb, err := platformRedis.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		store = redisStore.New(rdb.Client)

	case config.StorageDriverPostgres:
		db, err := platformPostgres.Open(ctx, cfg.Postgres.URL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Postgres")
		}
		defer db.Close()
		store, err = postgresStore.New(ctx, db, true)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to prepare document store")
		}

	default:
		logger.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")
	}

	if err := seed(ctx, store); err != nil {
		logger.Fatal().Err(err).Msg("Seed failed")
	}
	logger.Info().Msg("Seed complete")
}

func seed(ctx context.Context, store storage.Store) error {
	now := time.Now().UTC()

	aliceRef := uuid.NewString()
	chenRef := uuid.NewString()

	users := []userModels.User{
		{
			ID:           uuid.NewString(),
			Name:         "Alice Carter",
			Email:        "alice@example.com",
			CreatedAt:    now.AddDate(0, -2, 0),
			Credits:      5,
			InterviewRef: aliceRef,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Bruno Keller",
			Email:     "bruno@example.com",
			CreatedAt: now.AddDate(0, -1, -10),
			Banned:    true,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Chen Wei",
			Email:        "chen@example.com",
			CreatedAt:    now.AddDate(0, 0, -12),
			Credits:      12,
			InterviewRef: chenRef,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Dana Novak",
			CreatedAt: now.AddDate(0, 0, -2),
		},
	}

	for _, u := range users {
		if err := store.Put(ctx, storage.CollectionUsers, u.ID, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	interviews := []map[string]interface{}{
		{"user_email": "alice@example.com", "title": "Backend Engineer Screen", "created_at": now.AddDate(0, -1, -20)},
		{"user_email": "alice@example.com", "title": "Frontend Engineer Screen", "created_at": now.AddDate(0, -1, -5)},
		{"user_email": "chen@example.com", "title": "SRE Loop", "created_at": now.AddDate(0, 0, -8)},
	}

	for _, iv := range interviews {
		id := uuid.NewString()
		iv["id"] = id
		if err := store.Put(ctx, storage.CollectionInterviews, id, iv); err != nil {
			return fmt.Errorf("seed interview %q: %w", iv["title"], err)
		}
	}

	candidates := []candidateModels.Candidate{
		{
			ID:           uuid.NewString(),
			InterviewRef: aliceRef,
			FullName:     "Sam Lee",
			CreatedAt:    now.AddDate(0, -1, -18),
			Feedback: &candidateModels.Feedback{
				Ratings: map[string]interface{}{"communication": 8, "coding": 7},
			},
		},
		{
			ID:           uuid.NewString(),
			InterviewRef: aliceRef,
			FullName:     "Priya Nair",
			CreatedAt:    now.AddDate(0, -1, -2),
		},
		{
			ID:           uuid.NewString(),
			InterviewRef: chenRef,
			FullName:     "Tomas Ruiz",
			CreatedAt:    now.AddDate(0, 0, -6),
			Feedback: &candidateModels.Feedback{
				Ratings: map[string]interface{}{"systems": 9, "coding": 6, "notes": nil},
			},
		},
	}

	for _, c := range candidates {
		if err := store.Put(ctx, storage.CollectionCandidates, c.ID, c); err != nil {
			return fmt.Errorf("seed candidate %s: %w", c.FullName, err)
		}
	}

	return nil
}
