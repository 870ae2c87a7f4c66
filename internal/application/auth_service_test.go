package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danuartha/auth-service/internal/domain/entity"
	repo "github.com/danuartha/auth-service/internal/domain/repository"
	"github.com/danuartha/auth-service/pkg/helpers"
)

// fakeRepo is an in-memory UserRepository with store-enforced email
// uniqueness, mirroring the postgres implementation's contract.
type fakeRepo struct {
	byEmail map[string]*entity.User
	byID    map[int64]*entity.User
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*entity.User{}, byID: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return repo.ErrEmailTaken
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.byEmail[u.Email] = &cp
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestService() (*Service, *fakeRepo) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	fr := newFakeRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewService(fr, jwt, nil, logger), fr
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, fr := newTestService()

	u, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if u.ID == 0 {
		t.Error("Register() did not assign an id")
	}
	stored := fr.byEmail["a@x.com"]
	if stored.PasswordHash == "p" || stored.PasswordHash == "" {
		t.Errorf("stored password hash %q is not a hash", stored.PasswordHash)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, fr := newTestService()

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "p"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	_, err := svc.Register(context.Background(), "B", "a@x.com", "q")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("Register() error = %v, want %v", err, ErrEmailTaken)
	}
	if len(fr.byID) != 1 {
		t.Errorf("duplicate register created a row: %d users", len(fr.byID))
	}
}

func TestLoginRoundtrip(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	token, exp, err := svc.Login(context.Background(), "a@x.com", "p")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("Login() expiry %v already elapsed", exp)
	}

	uid, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if uid != u.ID {
		t.Errorf("ValidateToken() user id = %d, want %d", uid, u.ID)
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "p"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "nobody@x.com", "p")
	_, _, wrongPwdErr := svc.Login(context.Background(), "a@x.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("Login() unknown email error = %v, want %v", unknownErr, ErrInvalidCredentials)
	}
	if !errors.Is(wrongPwdErr, ErrInvalidCredentials) {
		t.Errorf("Login() wrong password error = %v, want %v", wrongPwdErr, ErrInvalidCredentials)
	}
	if unknownErr.Error() != wrongPwdErr.Error() {
		t.Errorf("Login() failure messages differ: %q vs %q", unknownErr, wrongPwdErr)
	}
}

func TestValidateTokenRejectsForged(t *testing.T) {
	svc, _ := newTestService()

	other := helpers.NewJWTManager("other-secret", time.Hour)
	forged, _, err := other.Generate(1)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(forged); err == nil {
		t.Error("ValidateToken() accepted a token signed with another secret")
	}
	if _, err := svc.ValidateToken("garbage"); err == nil {
		t.Error("ValidateToken() accepted garbage")
	}
}

func TestGetProfile(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	got, err := svc.GetProfile(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetProfile() unexpected error: %v", err)
	}
	if got.Name != "A" || got.Email != "a@x.com" {
		t.Errorf("GetProfile() = %q/%q, want A/a@x.com", got.Name, got.Email)
	}
}

func TestGetProfileVanishedUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetProfile() error = %v, want %v", err, ErrUserNotFound)
	}
}
