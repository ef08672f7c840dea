package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const userColumns = `
	id, name, email, phone, abha_id, user_type, preferred_language,
	date_of_birth, gender, address,
	emergency_name, emergency_phone, emergency_relationship,
	created_at, updated_at
`

func scanUser(row pgx.Row) (*health.User, error) {
	var u health.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.AbhaID,
		&u.UserType,
		&u.PreferredLanguage,
		&u.DateOfBirth,
		&u.Gender,
		&u.Address,
		&u.EmergencyContact.Name,
		&u.EmergencyContact.Phone,
		&u.EmergencyContact.Relationship,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PgRepository) CreateUser(ctx context.Context, cred Credential) error {
	u := cred.User
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (
			id, name, email, phone, abha_id, user_type, preferred_language,
			date_of_birth, gender, address,
			emergency_name, emergency_phone, emergency_relationship,
			password_hash, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`,
		u.ID, u.Name, u.Email, u.Phone, u.AbhaID, u.UserType, u.PreferredLanguage,
		u.DateOfBirth, u.Gender, u.Address,
		u.EmergencyContact.Name, u.EmergencyContact.Phone, u.EmergencyContact.Relationship,
		cred.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PgRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*health.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *PgRepository) GetCredentialByEmail(ctx context.Context, email string) (*Credential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`, password_hash
		FROM users
		WHERE email = $1
	`, email)

	var u health.User
	var hash string
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.AbhaID,
		&u.UserType,
		&u.PreferredLanguage,
		&u.DateOfBirth,
		&u.Gender,
		&u.Address,
		&u.EmergencyContact.Name,
		&u.EmergencyContact.Phone,
		&u.EmergencyContact.Relationship,
		&u.CreatedAt,
		&u.UpdatedAt,
		&hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &Credential{User: u, PasswordHash: hash}, nil
}

func (r *PgRepository) UpdateUser(ctx context.Context, u health.User) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $2,
		    email = $3,
		    phone = $4,
		    abha_id = $5,
		    user_type = $6,
		    preferred_language = $7,
		    date_of_birth = $8,
		    gender = $9,
		    address = $10,
		    emergency_name = $11,
		    emergency_phone = $12,
		    emergency_relationship = $13,
		    updated_at = $14
		WHERE id = $1
	`,
		u.ID, u.Name, u.Email, u.Phone, u.AbhaID, u.UserType, u.PreferredLanguage,
		u.DateOfBirth, u.Gender, u.Address,
		u.EmergencyContact.Name, u.EmergencyContact.Phone, u.EmergencyContact.Relationship,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
