package otpRepo

import (
	"context"
	"sync"
	"time"

	"staffhub/database"
	"staffhub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryOTPRepo implements OTPRepository in process memory.
type MemoryOTPRepo struct {
	mu      sync.Mutex
	records map[string]models.OTPRecord
}

func NewMemoryOTPRepo() *MemoryOTPRepo {
	return &MemoryOTPRepo{records: make(map[string]models.OTPRecord)}
}

func (r *MemoryOTPRepo) Replace(_ context.Context, rec *models.OTPRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if prev, ok := r.records[rec.Email]; ok {
		rec.ID = prev.ID
	} else {
		rec.ID = primitive.NewObjectID()
	}
	r.records[rec.Email] = *rec
	return nil
}

func (r *MemoryOTPRepo) FindByEmail(_ context.Context, email string) (*models.OTPRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[email]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *MemoryOTPRepo) IncrementAttempts(_ context.Context, rec *models.OTPRecord, max int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.records[rec.Email]
	if !ok || cur.CodeHash != rec.CodeHash || cur.Attempts >= max {
		return 0, database.ErrNotFound
	}
	cur.Attempts++
	r.records[rec.Email] = cur
	return cur.Attempts, nil
}

func (r *MemoryOTPRepo) Consume(_ context.Context, rec *models.OTPRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.records[rec.Email]
	if !ok || cur.CodeHash != rec.CodeHash {
		return false, nil
	}
	delete(r.records, rec.Email)
	return true, nil
}
