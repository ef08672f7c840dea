package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/auth"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingField       = errors.New("required field missing")
)

// Service is the profile/session manager: registration, login, partial
// profile updates and the stored language preference.
type Service struct {
	repo   Repository
	store  store.Store
	secret string
	now    func() time.Time
}

func NewService(repo Repository, st store.Store, jwtSecret string) *Service {
	return &Service{
		repo:   repo,
		store:  st,
		secret: jwtSecret,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Name              string
	Email             string
	Phone             string
	Password          string
	AbhaID            string
	UserType          string
	PreferredLanguage string
	DateOfBirth       string
	Gender            string
	Address           string
	EmergencyContact  health.EmergencyContact
}

// Register validates the form, creates the user row and opens a session.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*health.User, string, error) {
	if in.Name == "" {
		return nil, "", fmt.Errorf("%w: name", ErrMissingField)
	}
	if in.Email == "" {
		return nil, "", fmt.Errorf("%w: email", ErrMissingField)
	}
	if in.Phone == "" {
		return nil, "", fmt.Errorf("%w: phone", ErrMissingField)
	}
	if len(in.Password) < 8 {
		return nil, "", fmt.Errorf("%w: password (min 8 chars)", ErrMissingField)
	}

	userType, err := health.ParseUserType(in.UserType)
	if err != nil {
		return nil, "", err
	}
	lang, err := health.ParseLanguage(in.PreferredLanguage)
	if err != nil {
		return nil, "", err
	}
	var gender health.Gender
	if in.Gender != "" {
		gender, err = health.ParseGender(in.Gender)
		if err != nil {
			return nil, "", err
		}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	nowTs := s.now()
	u := health.User{
		ID:                uuid.New(),
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Phone,
		AbhaID:            in.AbhaID,
		UserType:          userType,
		PreferredLanguage: lang,
		DateOfBirth:       in.DateOfBirth,
		Gender:            gender,
		Address:           in.Address,
		EmergencyContact:  in.EmergencyContact,
		CreatedAt:         nowTs,
		UpdatedAt:         nowTs,
	}

	if err := s.repo.CreateUser(ctx, Credential{User: u, PasswordHash: hash}); err != nil {
		return nil, "", err
	}

	s.saveSession(ctx, u)

	token, err := auth.MakeToken(u.ID.String(), s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &u, token, nil
}

// Login checks credentials and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (*health.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	cred, err := s.repo.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("load credential: %w", err)
	}
	if !auth.CheckPassword(cred.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	u := cred.User
	s.saveSession(ctx, u)

	token, err := auth.MakeToken(u.ID.String(), s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &u, token, nil
}

// Profile returns the stored user.
func (s *Service) Profile(ctx context.Context, id uuid.UUID) (*health.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// UpdateInput carries a partial profile update. Nil fields are untouched.
// The id is immutable and never part of the input.
type UpdateInput struct {
	Name              *string
	Email             *string
	Phone             *string
	AbhaID            *string
	UserType          *string
	PreferredLanguage *string
	DateOfBirth       *string
	Gender            *string
	Address           *string
	EmergencyContact  *health.EmergencyContact
}

// UpdateProfile merges the given fields into the user and refreshes
// updatedAt. Enum fields are validated before anything is written.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateInput) (*health.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.UserType != nil {
		ut, err := health.ParseUserType(*in.UserType)
		if err != nil {
			return nil, err
		}
		u.UserType = ut
	}
	if in.PreferredLanguage != nil {
		lang, err := health.ParseLanguage(*in.PreferredLanguage)
		if err != nil {
			return nil, err
		}
		u.PreferredLanguage = lang
	}
	if in.Gender != nil {
		g, err := health.ParseGender(*in.Gender)
		if err != nil {
			return nil, err
		}
		u.Gender = g
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.AbhaID != nil {
		u.AbhaID = *in.AbhaID
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = *in.DateOfBirth
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.EmergencyContact != nil {
		u.EmergencyContact = *in.EmergencyContact
	}

	u.UpdatedAt = s.now()

	if err := s.repo.UpdateUser(ctx, *u); err != nil {
		return nil, err
	}

	s.saveSession(ctx, *u)
	if in.PreferredLanguage != nil {
		_ = s.store.Write(ctx, store.UserKey(store.KeyLanguage, id.String()), u.PreferredLanguage)
	}

	return u, nil
}

// Language returns the stored preference, falling back to the profile value
// and finally to English.
func (s *Service) Language(ctx context.Context, id uuid.UUID) health.Language {
	lang := health.Language("")
	_ = s.store.Read(ctx, store.UserKey(store.KeyLanguage, id.String()), &lang)
	if _, err := health.ParseLanguage(string(lang)); err == nil {
		return lang
	}

	if u, err := s.repo.GetUserByID(ctx, id); err == nil {
		if _, err := health.ParseLanguage(string(u.PreferredLanguage)); err == nil {
			return u.PreferredLanguage
		}
	}
	return health.LangEnglish
}

func (s *Service) SetLanguage(ctx context.Context, id uuid.UUID, raw string) (health.Language, error) {
	lang, err := health.ParseLanguage(raw)
	if err != nil {
		return "", err
	}
	if err := s.store.Write(ctx, store.UserKey(store.KeyLanguage, id.String()), lang); err != nil {
		return "", err
	}
	return lang, nil
}

// Logout drops the session snapshot and the per-user dashboard collections.
func (s *Service) Logout(ctx context.Context, id uuid.UUID) error {
	uid := id.String()
	return s.store.Delete(ctx,
		store.UserKey(store.KeyCurrentUser, uid),
		store.UserKey(store.KeyAppointments, uid),
		store.UserKey(store.KeyAlerts, uid),
	)
}

// saveSession keeps the current-user snapshot fresh; a store failure here is
// logged by the caller path, never fatal to the request.
func (s *Service) saveSession(ctx context.Context, u health.User) {
	_ = s.store.Write(ctx, store.UserKey(store.KeyCurrentUser, u.ID.String()), u)
}
