package record

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/objstore"
)

// memoryRepo is an in-memory Repository for tests.
type memoryRepo struct {
	records map[uuid.UUID]*health.HealthRecord
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[uuid.UUID]*health.HealthRecord)}
}

func (m *memoryRepo) CreateRecord(ctx context.Context, r health.HealthRecord) error {
	cp := r
	m.records[r.ID] = &cp
	return nil
}

func (m *memoryRepo) GetRecordByID(ctx context.Context, userID, recordID uuid.UUID) (*health.HealthRecord, error) {
	r, ok := m.records[recordID]
	if !ok || r.UserID != userID {
		return nil, ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memoryRepo) ListRecordsByUser(ctx context.Context, userID uuid.UUID) ([]health.HealthRecord, error) {
	var out []health.HealthRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryRepo) AddFile(ctx context.Context, recordID uuid.UUID, f health.HealthFile) error {
	r, ok := m.records[recordID]
	if !ok {
		return ErrRecordNotFound
	}
	r.Files = append(r.Files, f)
	return nil
}

func (m *memoryRepo) GetFile(ctx context.Context, userID, fileID uuid.UUID) (*health.HealthFile, error) {
	for _, r := range m.records {
		if r.UserID != userID {
			continue
		}
		for i := range r.Files {
			if r.Files[i].ID == fileID {
				cp := r.Files[i]
				return &cp, nil
			}
		}
	}
	return nil, ErrFileNotFound
}

func (m *memoryRepo) AddMedication(ctx context.Context, recordID uuid.UUID, med health.Medication) error {
	r, ok := m.records[recordID]
	if !ok {
		return ErrRecordNotFound
	}
	r.Medications = append(r.Medications, med)
	return nil
}

func newTestService() (*Service, *memoryRepo, *objstore.MemoryStore) {
	repo := newMemoryRepo()
	files := objstore.NewMemoryStore()
	return NewService(repo, files), repo, files
}

func mustCreate(t *testing.T, svc *Service, userID uuid.UUID, title string) *health.HealthRecord {
	t.Helper()
	rec, err := svc.Create(context.Background(), userID, CreateInput{
		Type:       "checkup",
		Title:      title,
		DoctorName: "Dr. Priya Nair",
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}
	return rec
}

func TestCreateRecord(t *testing.T) {
	svc, _, _ := newTestService()
	userID := uuid.New()

	rec := mustCreate(t, svc, userID, "Annual Checkup")
	if rec.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if rec.Status != health.RecordStatusCompleted {
		t.Errorf("status = %q, want completed", rec.Status)
	}
	if rec.Files == nil || rec.Medications == nil {
		t.Error("expected empty, non-nil sub-collections")
	}

	got, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Annual Checkup" {
		t.Errorf("list = %+v, want the created record", got)
	}
}

func TestCreateRecordValidation(t *testing.T) {
	svc, _, _ := newTestService()
	userID := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   CreateInput
	}{
		{"missing title", CreateInput{Type: "checkup", DoctorName: "Dr. Nair", Date: date}},
		{"missing doctor", CreateInput{Type: "checkup", Title: "Checkup", Date: date}},
		{"missing date", CreateInput{Type: "checkup", Title: "Checkup", DoctorName: "Dr. Nair"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), userID, tc.in); !errors.Is(err, ErrMissingField) {
				t.Errorf("err = %v, want ErrMissingField", err)
			}
		})
	}

	t.Run("bad type", func(t *testing.T) {
		_, err := svc.Create(context.Background(), userID, CreateInput{
			Type: "surgery", Title: "Checkup", DoctorName: "Dr. Nair", Date: date,
		})
		if err == nil {
			t.Error("expected error for unknown record type")
		}
	})
}

func TestSearchRecords(t *testing.T) {
	svc, _, _ := newTestService()
	userID := uuid.New()

	mustCreate(t, svc, userID, "Cardiology Consultation")
	mustCreate(t, svc, userID, "Blood Test")

	got, err := svc.Search(context.Background(), userID, "cardio", "all")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Cardiology Consultation" {
		t.Errorf("search = %+v, want only the cardiology record", got)
	}

	t.Run("no match is empty not nil", func(t *testing.T) {
		got, err := svc.Search(context.Background(), userID, "dermatology", "")
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("search = %v, want empty slice", got)
		}
	})

	t.Run("bad type filter rejected", func(t *testing.T) {
		if _, err := svc.Search(context.Background(), userID, "", "surgery"); err == nil {
			t.Error("expected error for unknown type filter")
		}
	})
}

func TestAddMedication(t *testing.T) {
	svc, repo, _ := newTestService()
	userID := uuid.New()
	rec := mustCreate(t, svc, userID, "Consultation")

	med, err := svc.AddMedication(context.Background(), userID, rec.ID, MedicationInput{
		Name:      "Paracetamol",
		Dosage:    "500mg",
		Frequency: "twice daily",
	})
	if err != nil {
		t.Fatalf("add medication: %v", err)
	}
	if med.ID == uuid.Nil {
		t.Error("expected generated medication id")
	}

	stored, _ := repo.GetRecordByID(context.Background(), userID, rec.ID)
	if len(stored.Medications) != 1 || stored.Medications[0].Name != "Paracetamol" {
		t.Errorf("medications = %+v, want the added one", stored.Medications)
	}

	t.Run("name required", func(t *testing.T) {
		if _, err := svc.AddMedication(context.Background(), userID, rec.ID, MedicationInput{}); !errors.Is(err, ErrMissingField) {
			t.Errorf("err = %v, want ErrMissingField", err)
		}
	})

	t.Run("other user's record rejected", func(t *testing.T) {
		_, err := svc.AddMedication(context.Background(), uuid.New(), rec.ID, MedicationInput{Name: "Ibuprofen"})
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("err = %v, want ErrRecordNotFound", err)
		}
	})
}

func TestUploadAndDownloadFile(t *testing.T) {
	svc, _, _ := newTestService()
	userID := uuid.New()
	rec := mustCreate(t, svc, userID, "Blood Test")

	content := []byte("%PDF-1.4 fake report")
	f, err := svc.UploadFile(context.Background(), userID, rec.ID, "report.pdf", content)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if f.Type != health.FilePDF {
		t.Errorf("type = %q, want pdf", f.Type)
	}
	if !strings.HasPrefix(f.Path, "records/"+rec.ID.String()+"/") {
		t.Errorf("path = %q, want records/<recordID>/ prefix", f.Path)
	}

	body, meta, err := svc.DownloadFile(context.Background(), userID, f.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer body.Close()
	got, _ := io.ReadAll(body)
	if string(got) != string(content) {
		t.Errorf("downloaded %q, want %q", got, content)
	}
	if meta.Name != "report.pdf" {
		t.Errorf("name = %q, want report.pdf", meta.Name)
	}

	t.Run("other user cannot download", func(t *testing.T) {
		if _, _, err := svc.DownloadFile(context.Background(), uuid.New(), f.ID); !errors.Is(err, ErrFileNotFound) {
			t.Errorf("err = %v, want ErrFileNotFound", err)
		}
	})
}

func TestFileTypeForName(t *testing.T) {
	tests := []struct {
		name string
		want health.FileType
	}{
		{"report.pdf", health.FilePDF},
		{"scan.PNG", health.FileImage},
		{"photo.jpeg", health.FileImage},
		{"notes.docx", health.FileDoc},
		{"noextension", health.FileDoc},
	}
	for _, tc := range tests {
		if got := fileTypeForName(tc.name); got != tc.want {
			t.Errorf("fileTypeForName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
