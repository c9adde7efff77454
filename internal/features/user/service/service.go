package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"interview-admin-backend/internal/common/export"
	"interview-admin-backend/internal/common/logger"
	"interview-admin-backend/internal/common/notify"
	"interview-admin-backend/internal/features/user/models"
	"interview-admin-backend/internal/features/user/query"
	"interview-admin-backend/internal/features/user/repository"
)

var ErrUserNotFound = errors.New("user not found")

const maxConcurrent = 5

const (
	actionLoadUsers  = "load_users"
	actionBanUser    = "ban_user"
	actionDeleteUser = "delete_user"
)

var usersExportHeader = []string{"Name", "Email", "Created", "Interviews", "Candidates", "Credits", "Status"}

type userService struct {
	repo     repository.UserRepository
	notifier notify.Notifier
}

func NewUserService(repo repository.UserRepository, notifier notify.Notifier) UserService {
	return &userService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *userService) ListUsers(ctx context.Context, state query.State) ([]models.Overview, error) {
	views, err := s.aggregate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load users")
		s.notifier.Failure(ctx, actionLoadUsers, "Failed to load users")
		return nil, err
	}
	return query.Apply(views, state), nil
}

func (s *userService) GetStats(ctx context.Context) (*models.Stats, error) {
	views, err := s.aggregate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load users")
		s.notifier.Failure(ctx, actionLoadUsers, "Failed to load users")
		return nil, err
	}

	stats := &models.Stats{TotalUsers: len(views)}
	for _, v := range views {
		if v.Banned {
			stats.BannedUsers++
		}
		if v.Status == models.StatusActive {
			stats.ActiveUsers++
		}
		stats.TotalInterviews += v.InterviewCount
		stats.TotalCandidates += v.CandidateCount
		stats.TotalCredits += v.Credits
	}
	return stats, nil
}

func (s *userService) SetBanned(ctx context.Context, id string, banned bool) (*models.Overview, error) {
	if err := s.repo.SetBanned(ctx, id, banned); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("user_id", id).Bool("banned", banned).Msg("Failed to update ban flag")
		s.notifier.Failure(ctx, actionBanUser, fmt.Sprintf("Failed to update user %s", id))
		return nil, err
	}

	outcome := "User unbanned"
	if banned {
		outcome = "User banned"
	}
	s.notifier.Success(ctx, actionBanUser, fmt.Sprintf("%s: %s", outcome, id))

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	view, err := s.enrich(ctx, *user)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) (*models.DeleteReport, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	report := &models.DeleteReport{UserID: id}

	// Dependent data goes first, best effort: a failed step is logged
	// and recorded, the workflow moves on. Empty keys skip the step,
	// an empty predicate would sweep unrelated records.
	if user.Email != "" {
		removed, err := s.repo.DeleteInterviewsByAuthor(ctx, user.Email)
		report.Steps = append(report.Steps, deleteStep("interviews", removed, err))
	} else {
		report.Steps = append(report.Steps, models.DeleteStep{Name: "interviews"})
	}

	if user.InterviewRef != "" {
		removed, err := s.repo.DeleteCandidatesByInterview(ctx, user.InterviewRef)
		report.Steps = append(report.Steps, deleteStep("candidates", removed, err))
	} else {
		report.Steps = append(report.Steps, models.DeleteStep{Name: "candidates"})
	}

	// The account record decides the overall outcome.
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("user_id", id).Msg("Failed to delete user")
		s.notifier.Failure(ctx, actionDeleteUser, fmt.Sprintf("Failed to delete user %s", id))
		report.Steps = append(report.Steps, models.DeleteStep{Name: "user", Error: err.Error()})
		return report, err
	}

	report.RootDeleted = true
	report.Steps = append(report.Steps, models.DeleteStep{Name: "user", Removed: 1})
	s.notifier.Success(ctx, actionDeleteUser, fmt.Sprintf("User deleted: %s", user.DisplayName()))
	return report, nil
}

func (s *userService) ExportUsers(ctx context.Context, state query.State) (string, []byte, error) {
	views, err := s.ListUsers(ctx, state)
	if err != nil {
		return "", nil, err
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.DisplayName(),
			v.Email,
			formatDate(v.CreatedAt),
			strconv.Itoa(v.InterviewCount),
			strconv.Itoa(v.CandidateCount),
			strconv.Itoa(v.Credits),
			v.Status,
		})
	}

	data, err := export.Table(usersExportHeader, rows)
	if err != nil {
		return "", nil, err
	}
	return export.Filename("users", time.Now().UTC()), data, nil
}

// aggregate rebuilds the enriched views for every user. Lookups fan
// out under a bounded semaphore; the first error wins and the whole
// pass fails, no partial results.
func (s *userService) aggregate(ctx context.Context) ([]models.Overview, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.Overview, len(users))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, user := range users {
		wg.Add(1)
		go func(i int, u models.User) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			view, err := s.enrich(ctx, u)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			views[i] = view
		}(i, user)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return views, nil
}

// enrich runs the two count lookups for one user in parallel. Users
// without an email or interview reference keep zero counts, an empty
// equality predicate would match foreign records.
func (s *userService) enrich(ctx context.Context, u models.User) (models.Overview, error) {
	var (
		interviews, candidates int
		ivErr, candErr         error
		wg                     sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if u.Email == "" {
			return
		}
		interviews, ivErr = s.repo.CountInterviewsByAuthor(ctx, u.Email)
	}()
	go func() {
		defer wg.Done()
		if u.InterviewRef == "" {
			return
		}
		candidates, candErr = s.repo.CountCandidatesByInterview(ctx, u.InterviewRef)
	}()
	wg.Wait()

	if ivErr != nil {
		return models.Overview{}, fmt.Errorf("count interviews for user %s: %w", u.ID, ivErr)
	}
	if candErr != nil {
		return models.Overview{}, fmt.Errorf("count candidates for user %s: %w", u.ID, candErr)
	}

	return models.Overview{
		User:           u,
		InterviewCount: interviews,
		CandidateCount: candidates,
		Status:         models.StatusLabel(u, interviews),
	}, nil
}

func deleteStep(name string, removed int64, err error) models.DeleteStep {
	step := models.DeleteStep{Name: name, Removed: removed}
	if err != nil {
		step.Error = err.Error()
		logger.Warn().Err(err).Str("step", name).Msg("Cascade step failed")
	}
	return step
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
