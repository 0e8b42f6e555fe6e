package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
	"github.com/jobtrail/jobtrail-api/internal/core/ports"
)

const jobsCollection = "jobs"

// JobRepository persists job records. Single-record lookups always match
// on (_id, owner_id) so a record owned by another user is
// indistinguishable from a missing one.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	Company   string             `bson:"company"`
	Role      string             `bson:"role"`
	Status    domain.JobStatus   `bson:"status"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mj *mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:        mj.ID.Hex(),
		OwnerID:   mj.OwnerID,
		Company:   mj.Company,
		Role:      mj.Role,
		Status:    mj.Status,
		Notes:     mj.Notes,
		CreatedAt: mj.CreatedAt,
		UpdatedAt: mj.UpdatedAt,
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		OwnerID:   job.OwnerID,
		Company:   job.Company,
		Role:      job.Role,
		Status:    job.Status,
		Notes:     job.Notes,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByOwner returns all jobs of ownerID, most recently updated first.
func (r *JobRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}

// FindAndUpdate merges patch into the record matching (id, ownerID) and
// returns the post-update document. A malformed id is reported as
// not-found: from the caller's perspective no such record exists.
func (r *JobRepository) FindAndUpdate(ctx context.Context, id, ownerID string, patch ports.JobPatch) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mj mongoJob
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "owner_id": ownerID},
		bson.M{"$set": set},
		opts,
	).Decode(&mj)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}

	return mj.toDomain(), nil
}

// FindAndDelete removes the record matching (id, ownerID).
func (r *JobRepository) FindAndDelete(ctx context.Context, id, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "owner_id": ownerID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrJobNotFound
		}
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// EnsureIndexes creates the owner index used by every list query.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "updated_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
