package user

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
)

type memoryRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]Credential
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[uuid.UUID]Credential)}
}

func (r *memoryRepo) CreateUser(ctx context.Context, cred Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.users {
		if c.User.Email == cred.User.Email {
			return ErrEmailTaken
		}
	}
	r.users[cred.User.ID] = cred
	return nil
}

func (r *memoryRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*health.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := c.User
	return &u, nil
}

func (r *memoryRepo) GetCredentialByEmail(ctx context.Context, email string) (*Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.users {
		if c.User.Email == email {
			cc := c
			return &cc, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryRepo) UpdateUser(ctx context.Context, u health.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.users[u.ID]
	if !ok {
		return ErrUserNotFound
	}
	c.User = u
	r.users[u.ID] = c
	return nil
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:              "Asha Kumar",
		Email:             "asha@example.com",
		Phone:             "+91 9876543210",
		Password:          "testpass123",
		UserType:          "migrant",
		PreferredLanguage: "ml",
		Gender:            "female",
		EmergencyContact:  health.EmergencyContact{Name: "Ravi", Phone: "+91 9000000000", Relationship: "spouse"},
	}
}

func newTestService() (*Service, *memoryRepo, *store.MemoryStore) {
	repo := newMemoryRepo()
	st := store.NewMemoryStore()
	return NewService(repo, st, "test-secret"), repo, st
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, token, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == uuid.Nil || token == "" {
		t.Fatal("missing id or token")
	}
	if u.CreatedAt.IsZero() || !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Fatal("timestamps not initialized")
	}

	got, token2, err := svc.Login(ctx, "asha@example.com", "testpass123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID || token2 == "" {
		t.Fatal("login returned wrong user")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"missing phone", func(in *RegisterInput) { in.Phone = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
		{"bad user type", func(in *RegisterInput) { in.UserType = "visitor" }},
		{"bad language", func(in *RegisterInput) { in.PreferredLanguage = "de" }},
		{"bad gender", func(in *RegisterInput) { in.Gender = "unknown" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			if _, _, err := svc.Register(context.Background(), in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(ctx, validInput()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "asha@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "testpass123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpdateProfileMergesPartially(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	newPhone := "+91 9111111111"
	newLang := "ta"
	updated, err := svc.UpdateProfile(ctx, u.ID, UpdateInput{
		Phone:             &newPhone,
		PreferredLanguage: &newLang,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Phone != newPhone {
		t.Fatal("phone not updated")
	}
	if updated.PreferredLanguage != health.LangTamil {
		t.Fatal("language not updated")
	}
	if updated.Name != u.Name || updated.Email != u.Email {
		t.Fatal("untouched fields changed")
	}
	if updated.ID != u.ID {
		t.Fatal("id must be immutable")
	}
	if !updated.UpdatedAt.After(u.UpdatedAt) && !updated.UpdatedAt.Equal(u.UpdatedAt) {
		t.Fatal("updatedAt not refreshed")
	}
}

func TestUpdateProfileRejectsBadEnum(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	bad := "martian"
	if _, err := svc.UpdateProfile(ctx, u.ID, UpdateInput{UserType: &bad}); err == nil {
		t.Fatal("expected enum validation error")
	}

	// nothing written on validation failure
	stored, _ := repo.GetUserByID(ctx, u.ID)
	if stored.UserType != health.UserMigrant {
		t.Fatal("profile mutated despite validation failure")
	}
}

func TestLanguagePreference(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// falls back to profile language before any explicit preference
	if got := svc.Language(ctx, u.ID); got != health.LangMalayalam {
		t.Fatalf("expected ml fallback, got %s", got)
	}

	if _, err := svc.SetLanguage(ctx, u.ID, "hi"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if got := svc.Language(ctx, u.ID); got != health.LangHindi {
		t.Fatalf("expected hi, got %s", got)
	}

	if _, err := svc.SetLanguage(ctx, u.ID, "xx"); err == nil {
		t.Fatal("expected invalid language error")
	}

	// unknown user defaults to English
	if got := svc.Language(ctx, uuid.New()); got != health.LangEnglish {
		t.Fatalf("expected en default, got %s", got)
	}
}

func TestLogoutClearsSessionKeys(t *testing.T) {
	svc, _, st := newTestService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	uid := u.ID.String()
	_ = st.Write(ctx, store.UserKey(store.KeyAppointments, uid), []string{"a"})
	_ = st.Write(ctx, store.UserKey(store.KeyAlerts, uid), []string{"b"})

	if err := svc.Logout(ctx, u.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	var snapshot health.User
	_ = st.Read(ctx, store.UserKey(store.KeyCurrentUser, uid), &snapshot)
	if snapshot.ID != uuid.Nil {
		t.Fatal("session snapshot survived logout")
	}

	var appts []string
	_ = st.Read(ctx, store.UserKey(store.KeyAppointments, uid), &appts)
	if len(appts) != 0 {
		t.Fatal("appointments survived logout")
	}
}
