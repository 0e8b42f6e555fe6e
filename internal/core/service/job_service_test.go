package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
	"github.com/jobtrail/jobtrail-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[string]*domain.Job // keyed by id
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	copy := cloneJob(job)
	r.nextID++
	copy.ID = "job_" + strconv.Itoa(r.nextID)
	r.jobs[copy.ID] = cloneJob(copy)
	return copy, nil
}

func (r *stubJobRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0)
	for _, j := range r.jobs {
		if j.OwnerID == ownerID {
			out = append(out, cloneJob(j))
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].UpdatedAt.After(out[k].UpdatedAt) })
	return out, nil
}

func (r *stubJobRepo) FindAndUpdate(_ context.Context, id, ownerID string, patch ports.JobPatch) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok || j.OwnerID != ownerID {
		return nil, domain.ErrJobNotFound
	}
	if patch.Company != nil {
		j.Company = *patch.Company
	}
	if patch.Role != nil {
		j.Role = *patch.Role
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	if patch.Notes != nil {
		j.Notes = *patch.Notes
	}
	j.UpdatedAt = time.Now().UTC()
	return cloneJob(j), nil
}

func (r *stubJobRepo) FindAndDelete(_ context.Context, id, ownerID string) error {
	j, ok := r.jobs[id]
	if !ok || j.OwnerID != ownerID {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type stubJobCache struct {
	entries     map[string][]*domain.Job
	invalidated int
}

func newStubJobCache() *stubJobCache {
	return &stubJobCache{entries: make(map[string][]*domain.Job)}
}

func (c *stubJobCache) Get(_ context.Context, ownerID string) ([]*domain.Job, bool, error) {
	jobs, ok := c.entries[ownerID]
	return jobs, ok, nil
}

func (c *stubJobCache) Set(_ context.Context, ownerID string, jobs []*domain.Job) error {
	c.entries[ownerID] = jobs
	return nil
}

func (c *stubJobCache) Invalidate(_ context.Context, ownerID string) error {
	delete(c.entries, ownerID)
	c.invalidated++
	return nil
}

func newTestJobService() (*JobService, *stubJobRepo, *stubJobCache) {
	repo := newStubJobRepo()
	cache := newStubJobCache()
	return NewJobService(repo, cache, zerolog.Nop()), repo, cache
}

var alice = ports.Identity{UserID: "user_a", Email: "alice@example.com"}
var bob = ports.Identity{UserID: "user_b", Email: "bob@example.com"}

func TestJobService_Create_ForcesOwnerAndDefaults(t *testing.T) {
	svc, _, _ := newTestJobService()

	job, err := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if job.OwnerID != alice.UserID {
		t.Fatalf("expected owner %s, got %s", alice.UserID, job.OwnerID)
	}
	if job.Status != domain.StatusSaved {
		t.Fatalf("expected default status SAVED, got %s", job.Status)
	}
	if job.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if job.CreatedAt.IsZero() || job.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestJobService_Create_Validation(t *testing.T) {
	svc, _, _ := newTestJobService()

	cases := []ports.CreateJobInput{
		{Company: "", Role: "SRE"},
		{Company: "Acme", Role: "  "},
		{Company: "Acme", Role: "SRE", Status: "PENDING"},
		{Company: "Acme", Role: "SRE", Notes: strings.Repeat("x", domain.MaxNotesLength+1)},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), alice, input); err != domain.ErrInvalidJob {
			t.Fatalf("case %d: expected ErrInvalidJob, got %v", i, err)
		}
	}
}

func TestJobService_List_ScopedAndOrdered(t *testing.T) {
	svc, repo, _ := newTestJobService()

	first, _ := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE"})
	second, _ := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Globex", Role: "Dev"})
	_, _ = svc.Create(context.Background(), bob, ports.CreateJobInput{Company: "Initech", Role: "QA"})

	// Make the ordering deterministic regardless of clock resolution.
	repo.jobs[first.ID].UpdatedAt = time.Now().UTC().Add(-time.Hour)
	repo.jobs[second.ID].UpdatedAt = time.Now().UTC()

	jobs, err := svc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs for alice, got %d", len(jobs))
	}
	if jobs[0].ID != second.ID || jobs[1].ID != first.ID {
		t.Fatalf("expected most recently updated first, got %s then %s", jobs[0].ID, jobs[1].ID)
	}
	for _, j := range jobs {
		if j.OwnerID != alice.UserID {
			t.Fatalf("foreign job leaked into listing: %+v", j)
		}
	}
}

func TestJobService_List_ServesFromCache(t *testing.T) {
	svc, repo, cache := newTestJobService()

	created, _ := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE"})

	if _, err := svc.List(context.Background(), alice); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	// Mutate the store behind the cache's back: a second list must still
	// serve the cached snapshot.
	delete(repo.jobs, created.ID)

	jobs, err := svc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != created.ID {
		t.Fatalf("expected cached listing, got %+v", jobs)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("expected one cached owner entry")
	}
}

func TestJobService_Update_MergesAndRefreshes(t *testing.T) {
	svc, _, cache := newTestJobService()

	created, _ := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE", Notes: "first round"})
	createdAt := created.UpdatedAt

	time.Sleep(5 * time.Millisecond)

	status := "OFFER"
	updated, err := svc.Update(context.Background(), alice, created.ID, ports.UpdateJobInput{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusOffer {
		t.Fatalf("expected status OFFER, got %s", updated.Status)
	}
	if updated.Company != "Acme" || updated.Role != "SRE" || updated.Notes != "first round" {
		t.Fatalf("unpatched fields must survive the merge: %+v", updated)
	}
	if !updated.UpdatedAt.After(createdAt) {
		t.Fatalf("expected updated_at to advance: %v vs %v", updated.UpdatedAt, createdAt)
	}
	if cache.invalidated == 0 {
		t.Fatalf("expected cache invalidation on update")
	}
}

func TestJobService_Update_Validation(t *testing.T) {
	svc, _, _ := newTestJobService()

	created, _ := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE"})

	empty := ""
	bad := "PENDING"
	long := strings.Repeat("x", domain.MaxNotesLength+1)
	cases := []ports.UpdateJobInput{
		{},                // empty patch
		{Company: &empty}, // required field blanked out
		{Status: &bad},
		{Notes: &long},
	}
	for i, input := range cases {
		if _, err := svc.Update(context.Background(), alice, created.ID, input); err != domain.ErrInvalidJob {
			t.Fatalf("case %d: expected ErrInvalidJob, got %v", i, err)
		}
	}
}

func TestJobService_CrossTenantAccessIsNotFound(t *testing.T) {
	svc, _, _ := newTestJobService()

	created, _ := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE"})

	// Bob probes with Alice's exact job id: both mutations must report
	// not-found, never forbidden.
	status := "OFFER"
	if _, err := svc.Update(context.Background(), bob, created.ID, ports.UpdateJobInput{Status: &status}); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound for foreign update, got %v", err)
	}
	if err := svc.Delete(context.Background(), bob, created.ID); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound for foreign delete, got %v", err)
	}

	jobs, err := svc.List(context.Background(), bob)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty listing for bob, got %d", len(jobs))
	}
}

func TestJobService_Delete_SecondCallIsNotFound(t *testing.T) {
	svc, _, _ := newTestJobService()

	created, _ := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE"})

	if err := svc.Delete(context.Background(), alice, created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), alice, created.ID); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound on second delete, got %v", err)
	}
}

func TestJobService_RoundTrip(t *testing.T) {
	svc, _, _ := newTestJobService()

	created, err := svc.Create(context.Background(), alice, ports.CreateJobInput{Company: "Acme", Role: "SRE"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	status := "OFFER"
	if _, err := svc.Update(context.Background(), alice, created.ID, ports.UpdateJobInput{Status: &status}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	jobs, err := svc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected exactly one job, got %d", len(jobs))
	}
	if jobs[0].Status != domain.StatusOffer {
		t.Fatalf("expected status OFFER, got %s", jobs[0].Status)
	}
	if !jobs[0].UpdatedAt.After(created.CreatedAt) {
		t.Fatalf("expected updated_at later than creation time")
	}
}
