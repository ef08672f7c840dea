package record

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/objstore"
)

var ErrMissingField = errors.New("required field missing")

// Service is the backend record service: records live in Postgres, file
// bytes in object storage.
type Service struct {
	repo  Repository
	files objstore.ObjectStore
	now   func() time.Time
}

func NewService(repo Repository, files objstore.ObjectStore) *Service {
	return &Service{repo: repo, files: files, now: time.Now}
}

type CreateInput struct {
	Type         string
	Title        string
	Description  string
	DoctorName   string
	HospitalName string
	Date         time.Time
	NextFollowUp *time.Time
}

// Create validates the form and stores a new record with a generated id.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*health.HealthRecord, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if in.DoctorName == "" {
		return nil, fmt.Errorf("%w: doctorName", ErrMissingField)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date", ErrMissingField)
	}

	recType, err := health.ParseRecordType(in.Type)
	if err != nil {
		return nil, err
	}

	rec := health.HealthRecord{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         recType,
		Title:        in.Title,
		Description:  in.Description,
		DoctorName:   in.DoctorName,
		HospitalName: in.HospitalName,
		Date:         in.Date,
		Files:        []health.HealthFile{},
		Medications:  []health.Medication{},
		NextFollowUp: in.NextFollowUp,
		Status:       health.RecordStatusCompleted,
		CreatedAt:    s.now(),
	}

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return &rec, nil
}

// List returns all of the user's records with files and medications.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]health.HealthRecord, error) {
	recs, err := s.repo.ListRecordsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if recs == nil {
		recs = []health.HealthRecord{}
	}
	return recs, nil
}

// Search applies the dashboard search: case-insensitive substring over
// title/doctor/hospital, optional type filter ("" or "all" matches every
// type), newest first. An empty result is a valid empty state.
func (s *Service) Search(ctx context.Context, userID uuid.UUID, query, typeFilter string) ([]health.HealthRecord, error) {
	var typ health.RecordType
	if typeFilter != "" && typeFilter != "all" {
		parsed, err := health.ParseRecordType(typeFilter)
		if err != nil {
			return nil, err
		}
		typ = parsed
	}

	recs, err := s.repo.ListRecordsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	out := health.SearchRecords(recs, query, typ)
	if out == nil {
		out = []health.HealthRecord{}
	}
	return out, nil
}

type MedicationInput struct {
	Name          string
	Dosage        string
	Frequency     string
	Duration      string
	Instructions  string
	ReminderTimes []string
}

// AddMedication appends a medication to one of the user's records.
func (s *Service) AddMedication(ctx context.Context, userID, recordID uuid.UUID, in MedicationInput) (*health.Medication, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}

	if _, err := s.repo.GetRecordByID(ctx, userID, recordID); err != nil {
		return nil, err
	}

	med := health.Medication{
		ID:            uuid.New(),
		Name:          in.Name,
		Dosage:        in.Dosage,
		Frequency:     in.Frequency,
		Duration:      in.Duration,
		Instructions:  in.Instructions,
		ReminderTimes: in.ReminderTimes,
	}
	if err := s.repo.AddMedication(ctx, recordID, med); err != nil {
		return nil, fmt.Errorf("add medication: %w", err)
	}
	return &med, nil
}

// UploadFile stores the bytes in object storage and attaches a descriptor to
// the record. The object key embeds a fresh uuid so name collisions cannot
// overwrite an earlier upload.
func (s *Service) UploadFile(ctx context.Context, userID, recordID uuid.UUID, name string, data []byte) (*health.HealthFile, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: file name", ErrMissingField)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file content", ErrMissingField)
	}

	if _, err := s.repo.GetRecordByID(ctx, userID, recordID); err != nil {
		return nil, err
	}

	f := health.HealthFile{
		ID:         uuid.New(),
		Name:       name,
		Type:       fileTypeForName(name),
		UploadedAt: s.now(),
	}
	f.Path = fmt.Sprintf("records/%s/%s_%s", recordID, f.ID, name)

	if err := s.files.Put(ctx, f.Path, data, contentTypeFor(f.Type)); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}
	if err := s.repo.AddFile(ctx, recordID, f); err != nil {
		return nil, fmt.Errorf("attach file: %w", err)
	}
	return &f, nil
}

// DownloadFile streams a previously uploaded file back.
func (s *Service) DownloadFile(ctx context.Context, userID, fileID uuid.UUID) (io.ReadCloser, *health.HealthFile, error) {
	f, err := s.repo.GetFile(ctx, userID, fileID)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.files.Get(ctx, f.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch file: %w", err)
	}
	return body, f, nil
}

func fileTypeForName(name string) health.FileType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return health.FilePDF
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return health.FileImage
	}
	return health.FileDoc
}

func contentTypeFor(t health.FileType) string {
	switch t {
	case health.FilePDF:
		return "application/pdf"
	case health.FileImage:
		return "image/*"
	}
	return "application/octet-stream"
}
