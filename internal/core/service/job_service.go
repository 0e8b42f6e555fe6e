package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrail/jobtrail-api/internal/api/metrics"
	"github.com/jobtrail/jobtrail-api/internal/core/domain"
	"github.com/jobtrail/jobtrail-api/internal/core/ports"
)

// JobListCache abstracts the per-owner list cache (Redis). Failures are
// never fatal: the service logs and falls through to the repository.
type JobListCache interface {
	Get(ctx context.Context, ownerID string) ([]*domain.Job, bool, error)
	Set(ctx context.Context, ownerID string, jobs []*domain.Job) error
	Invalidate(ctx context.Context, ownerID string) error
}

// JobService implements the ownership-scoped job use cases. Every
// repository call carries the caller's user id, so no operation can see
// or touch another tenant's records.
type JobService struct {
	repo   ports.JobRepository
	cache  JobListCache
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, cache JobListCache, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, cache: cache, logger: logger}
}

// List returns the caller's jobs, most recently updated first.
func (s *JobService) List(ctx context.Context, identity ports.Identity) ([]*domain.Job, error) {
	if s.cache != nil {
		jobs, hit, err := s.cache.Get(ctx, identity.UserID)
		if err != nil {
			s.logger.Warn().Err(err).Str("owner_id", identity.UserID).Msg("job list cache read failed")
		} else if hit {
			metrics.JobListCacheTotal.WithLabelValues("hit").Inc()
			return jobs, nil
		} else {
			metrics.JobListCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	jobs, err := s.repo.FindByOwner(ctx, identity.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", identity.UserID).Msg("failed to list jobs")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, identity.UserID, jobs); err != nil {
			s.logger.Warn().Err(err).Str("owner_id", identity.UserID).Msg("job list cache write failed")
		}
	}
	return jobs, nil
}

// Create persists a new job owned by the caller. Any client-supplied id
// or owner never reaches this point: ownership comes from the verified
// identity alone.
func (s *JobService) Create(ctx context.Context, identity ports.Identity, input ports.CreateJobInput) (*domain.Job, error) {
	company := strings.TrimSpace(input.Company)
	role := strings.TrimSpace(input.Role)
	if company == "" || role == "" {
		return nil, domain.ErrInvalidJob
	}
	if len(input.Notes) > domain.MaxNotesLength {
		return nil, domain.ErrInvalidJob
	}

	status := domain.StatusSaved
	if input.Status != "" {
		status = domain.JobStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidJob
		}
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Job{
		OwnerID:   identity.UserID,
		Company:   company,
		Role:      role,
		Status:    status,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", identity.UserID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobMutationsTotal.WithLabelValues("create").Inc()
	s.invalidate(ctx, identity.UserID)
	s.logger.Info().Str("job_id", created.ID).Str("owner_id", identity.UserID).Msg("job created")
	return created, nil
}

// Update merges the supplied fields into the caller's job. A job that
// does not exist and a job owned by someone else are indistinguishable:
// both return ErrJobNotFound.
func (s *JobService) Update(ctx context.Context, identity ports.Identity, id string, input ports.UpdateJobInput) (*domain.Job, error) {
	patch, err := buildPatch(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.FindAndUpdate(ctx, id, identity.UserID, patch)
	if err != nil {
		return nil, err
	}

	metrics.JobMutationsTotal.WithLabelValues("update").Inc()
	s.invalidate(ctx, identity.UserID)
	return updated, nil
}

// Delete permanently removes the caller's job. Repeating the call for
// the same id returns ErrJobNotFound.
func (s *JobService) Delete(ctx context.Context, identity ports.Identity, id string) error {
	if err := s.repo.FindAndDelete(ctx, id, identity.UserID); err != nil {
		return err
	}

	metrics.JobMutationsTotal.WithLabelValues("delete").Inc()
	s.invalidate(ctx, identity.UserID)
	s.logger.Info().Str("job_id", id).Str("owner_id", identity.UserID).Msg("job deleted")
	return nil
}

// buildPatch validates the partial update and converts it to the
// repository patch. An empty patch is rejected rather than treated as a
// no-op touch of updated_at.
func buildPatch(input ports.UpdateJobInput) (ports.JobPatch, error) {
	var patch ports.JobPatch

	if input.Company != nil {
		company := strings.TrimSpace(*input.Company)
		if company == "" {
			return patch, domain.ErrInvalidJob
		}
		patch.Company = &company
	}
	if input.Role != nil {
		role := strings.TrimSpace(*input.Role)
		if role == "" {
			return patch, domain.ErrInvalidJob
		}
		patch.Role = &role
	}
	if input.Status != nil {
		status := domain.JobStatus(*input.Status)
		if !status.IsValid() {
			return patch, domain.ErrInvalidJob
		}
		patch.Status = &status
	}
	if input.Notes != nil {
		if len(*input.Notes) > domain.MaxNotesLength {
			return patch, domain.ErrInvalidJob
		}
		patch.Notes = input.Notes
	}

	if patch.Empty() {
		return patch, domain.ErrInvalidJob
	}
	return patch, nil
}

func (s *JobService) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("job list cache invalidation failed")
	}
}
