package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"interview-admin-backend/internal/features/user/models"
	"interview-admin-backend/internal/storage"
)

type storeRepository struct {
	store storage.Store
}

// NewStoreRepository builds the repository on top of the document
// store gateway, so it works against either backend.
func NewStoreRepository(store storage.Store) UserRepository {
	return &storeRepository{store: store}
}

func (r *storeRepository) List(ctx context.Context) ([]models.User, error) {
	docs, err := r.store.List(ctx, storage.CollectionUsers, storage.ListOptions{
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err := json.Unmarshal(doc.Data, &user); err != nil {
			continue
		}
		if user.ID == "" {
			user.ID = doc.ID
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.store.Get(ctx, storage.CollectionUsers, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(doc.Data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	if user.ID == "" {
		user.ID = doc.ID
	}
	return &user, nil
}

// SetBanned flips exactly one field, nothing else on the record moves.
func (r *storeRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	err := r.store.Update(ctx, storage.CollectionUsers, id, map[string]interface{}{
		"banned": banned,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, storage.CollectionUsers, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *storeRepository) CountInterviewsByAuthor(ctx context.Context, email string) (int, error) {
	n, err := r.store.Count(ctx, storage.CollectionInterviews, storage.Where{
		Field: "user_email",
		Value: email,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count interviews: %w", err)
	}
	return int(n), nil
}

func (r *storeRepository) CountCandidatesByInterview(ctx context.Context, ref string) (int, error) {
	n, err := r.store.Count(ctx, storage.CollectionCandidates, storage.Where{
		Field: "interview_id",
		Value: ref,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return int(n), nil
}

func (r *storeRepository) DeleteInterviewsByAuthor(ctx context.Context, email string) (int64, error) {
	n, err := r.store.DeleteWhere(ctx, storage.CollectionInterviews, storage.Where{
		Field: "user_email",
		Value: email,
	})
	if err != nil {
		return n, fmt.Errorf("failed to delete interviews: %w", err)
	}
	return n, nil
}

func (r *storeRepository) DeleteCandidatesByInterview(ctx context.Context, ref string) (int64, error) {
	n, err := r.store.DeleteWhere(ctx, storage.CollectionCandidates, storage.Where{
		Field: "interview_id",
		Value: ref,
	})
	if err != nil {
		return n, fmt.Errorf("failed to delete candidates: %w", err)
	}
	return n, nil
}
