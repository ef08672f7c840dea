package record

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrFileNotFound   = errors.New("file not found")
)

// Repository contains all DB interactions needed by the record service.
// Records own their files and medications; list results come back hydrated.
type Repository interface {
	CreateRecord(ctx context.Context, r health.HealthRecord) error
	GetRecordByID(ctx context.Context, userID, recordID uuid.UUID) (*health.HealthRecord, error)
	ListRecordsByUser(ctx context.Context, userID uuid.UUID) ([]health.HealthRecord, error)

	AddFile(ctx context.Context, recordID uuid.UUID, f health.HealthFile) error
	GetFile(ctx context.Context, userID, fileID uuid.UUID) (*health.HealthFile, error)

	AddMedication(ctx context.Context, recordID uuid.UUID, m health.Medication) error
}
