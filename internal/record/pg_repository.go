package record

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

// Helpers

func scanRecord(row pgx.Row) (*health.HealthRecord, error) {
	var r health.HealthRecord
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Type,
		&r.Title,
		&r.Description,
		&r.DoctorName,
		&r.HospitalName,
		&r.Date,
		&r.NextFollowUp,
		&r.Status,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	r.Files = []health.HealthFile{}
	r.Medications = []health.Medication{}
	return &r, nil
}

// Interface methods

func (r *PgRepository) CreateRecord(ctx context.Context, rec health.HealthRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO health_records (
			id, user_id, type, title, description, doctor_name, hospital_name,
			date, next_follow_up, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		rec.ID, rec.UserID, rec.Type, rec.Title, rec.Description,
		rec.DoctorName, rec.HospitalName, rec.Date, rec.NextFollowUp,
		rec.Status, rec.CreatedAt,
	)
	return err
}

func (r *PgRepository) GetRecordByID(ctx context.Context, userID, recordID uuid.UUID) (*health.HealthRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, type, title, description, doctor_name, hospital_name,
		       date, next_follow_up, status, created_at
		FROM health_records
		WHERE id = $1 AND user_id = $2
	`, recordID, userID)

	rec, err := scanRecord(row)
	if err != nil {
		return nil, err
	}
	if err := r.hydrate(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *PgRepository) ListRecordsByUser(ctx context.Context, userID uuid.UUID) ([]health.HealthRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, title, description, doctor_name, hospital_name,
		       date, next_follow_up, status, created_at
		FROM health_records
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []health.HealthRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := r.hydrate(ctx, &result[i]); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PgRepository) AddFile(ctx context.Context, recordID uuid.UUID, f health.HealthFile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO record_files (id, record_id, name, type, path, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, f.ID, recordID, f.Name, f.Type, f.Path, f.UploadedAt)
	return err
}

func (r *PgRepository) GetFile(ctx context.Context, userID, fileID uuid.UUID) (*health.HealthFile, error) {
	var f health.HealthFile
	err := r.pool.QueryRow(ctx, `
		SELECT f.id, f.name, f.type, f.path, f.uploaded_at
		FROM record_files f
		JOIN health_records hr ON hr.id = f.record_id
		WHERE f.id = $1 AND hr.user_id = $2
	`, fileID, userID).Scan(&f.ID, &f.Name, &f.Type, &f.Path, &f.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PgRepository) AddMedication(ctx context.Context, recordID uuid.UUID, m health.Medication) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO record_medications (id, record_id, name, dosage, frequency, duration, instructions, reminder_times)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.ID, recordID, m.Name, m.Dosage, m.Frequency, m.Duration, m.Instructions, m.ReminderTimes)
	return err
}

// hydrate loads the owned sub-collections for one record.
func (r *PgRepository) hydrate(ctx context.Context, rec *health.HealthRecord) error {
	fileRows, err := r.pool.Query(ctx, `
		SELECT id, name, type, path, uploaded_at
		FROM record_files
		WHERE record_id = $1
		ORDER BY uploaded_at
	`, rec.ID)
	if err != nil {
		return err
	}
	defer fileRows.Close()

	for fileRows.Next() {
		var f health.HealthFile
		if err := fileRows.Scan(&f.ID, &f.Name, &f.Type, &f.Path, &f.UploadedAt); err != nil {
			return err
		}
		rec.Files = append(rec.Files, f)
	}
	if err := fileRows.Err(); err != nil {
		return err
	}

	medRows, err := r.pool.Query(ctx, `
		SELECT id, name, dosage, frequency, duration, instructions, reminder_times
		FROM record_medications
		WHERE record_id = $1
		ORDER BY name
	`, rec.ID)
	if err != nil {
		return err
	}
	defer medRows.Close()

	for medRows.Next() {
		var m health.Medication
		if err := medRows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &m.Duration, &m.Instructions, &m.ReminderTimes); err != nil {
			return err
		}
		rec.Medications = append(rec.Medications, m)
	}
	return medRows.Err()
}
