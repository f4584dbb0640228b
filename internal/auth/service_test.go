package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/gorravana/boutique-backend/pkg/auth"
	"github.com/gorravana/boutique-backend/pkg/config"
	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/redis"
	"github.com/gorravana/boutique-backend/pkg/security"
)

type fakeRepo struct {
	admin     *models.AdminUser
	lastLogin *time.Time
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if f.admin == nil || f.admin.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *f.admin
	return &copy, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*models.AdminUser, error) {
	if f.admin == nil || f.admin.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *f.admin
	return &copy, nil
}

func (f *fakeRepo) TouchLastLogin(_ context.Context, _ uuid.UUID, at time.Time) error {
	f.lastLogin = &at
	return nil
}

type fakeCodes struct {
	data     map[string]string
	counters map[string]int64
}

func newFakeCodes() *fakeCodes {
	return &fakeCodes{data: map[string]string{}, counters: map[string]int64{}}
}

func (f *fakeCodes) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCodes) Get(_ context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeCodes) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
		delete(f.counters, key)
	}
	return nil
}

func (f *fakeCodes) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeCodes) FixedWindowAllow(_ context.Context, scope string, limit int64, _ time.Duration) (bool, int64, error) {
	f.counters[scope]++
	return f.counters[scope] <= limit, f.counters[scope], nil
}

func (f *fakeCodes) TwoFactorKey(adminID string) string {
	return "gv:2fa:" + adminID
}

type fakeMailer struct {
	sentTo   string
	sentCode string
	fail     bool
}

func (f *fakeMailer) SendTwoFactorCode(_ context.Context, email string, code string) error {
	if f.fail {
		return errors.New(errors.CodeDependency, "smtp down")
	}
	f.sentTo = email
	f.sentCode = code
	return nil
}

func testConfigs() (config.JWTConfig, config.TwoFactorConfig) {
	return config.JWTConfig{
			Secret:            "test-secret-test-secret-test-1234",
			Issuer:            "boutique-test",
			ExpirationMinutes: 60,
		}, config.TwoFactorConfig{
			CodeTTL:     10 * time.Minute,
			MaxAttempts: 3,
		}
}

func seedAdmin(t *testing.T) *models.AdminUser {
	t.Helper()
	hash, err := security.HashPassword("hunter2hunter2", config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	return &models.AdminUser{
		ID:           uuid.New(),
		Email:        "admin@gorravana.mx",
		Name:         "Admin",
		PasswordHash: hash,
	}
}

func TestLoginHappyPathSendsCode(t *testing.T) {
	repo := &fakeRepo{admin: seedAdmin(t)}
	codes := newFakeCodes()
	mailer := &fakeMailer{}
	jwtCfg, tfCfg := testConfigs()
	svc, err := NewService(repo, codes, mailer, jwtCfg, tfCfg)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	challenge, err := svc.Login(context.Background(), "admin@gorravana.mx", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if challenge.AdminID != repo.admin.ID {
		t.Fatalf("unexpected challenge %+v", challenge)
	}
	if mailer.sentTo != "admin@gorravana.mx" || len(mailer.sentCode) != twoFactorDigits {
		t.Fatalf("code not delivered: to=%q code=%q", mailer.sentTo, mailer.sentCode)
	}
	if codes.data[codes.TwoFactorKey(repo.admin.ID.String())] != mailer.sentCode {
		t.Fatal("stored and mailed codes must match")
	}
}

func TestLoginBadCredentialsIndistinguishable(t *testing.T) {
	repo := &fakeRepo{admin: seedAdmin(t)}
	jwtCfg, tfCfg := testConfigs()
	svc, _ := NewService(repo, newFakeCodes(), &fakeMailer{}, jwtCfg, tfCfg)
	ctx := context.Background()

	_, errUnknown := svc.Login(ctx, "nobody@gorravana.mx", "hunter2hunter2")
	_, errWrongPass := svc.Login(ctx, "admin@gorravana.mx", "wrong-password")

	for _, err := range []error{errUnknown, errWrongPass} {
		typed := errors.As(err)
		if typed == nil || typed.Code() != errors.CodeUnauthorized || typed.Message() != "invalid credentials" {
			t.Fatalf("expected uniform unauthorized error, got %v", err)
		}
	}
}

func TestLoginRateLimited(t *testing.T) {
	repo := &fakeRepo{admin: seedAdmin(t)}
	codes := newFakeCodes()
	jwtCfg, tfCfg := testConfigs()
	svc, _ := NewService(repo, codes, &fakeMailer{}, jwtCfg, tfCfg)
	ctx := context.Background()

	codes.counters["admin_login:admin@gorravana.mx"] = loginRateLimit

	_, err := svc.Login(ctx, "admin@gorravana.mx", "hunter2hunter2")
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeRateLimit {
		t.Fatalf("expected rate limit, got %v", err)
	}
}

func TestVerifyCodeMintsSession(t *testing.T) {
	repo := &fakeRepo{admin: seedAdmin(t)}
	codes := newFakeCodes()
	mailer := &fakeMailer{}
	jwtCfg, tfCfg := testConfigs()
	svc, _ := NewService(repo, codes, mailer, jwtCfg, tfCfg)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin@gorravana.mx", "hunter2hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	session, err := svc.VerifyCode(ctx, repo.admin.ID, mailer.sentCode)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if session.Token == "" {
		t.Fatal("session must carry a token")
	}
	if session.Admin.PasswordHash != "" {
		t.Fatal("password hash must never leave the service")
	}
	if repo.lastLogin == nil {
		t.Fatal("last login must be touched")
	}

	claims, err := pkgauth.ParseAdminToken(jwtCfg, session.Token)
	if err != nil {
		t.Fatalf("parsing minted token: %v", err)
	}
	if claims.AdminID != repo.admin.ID {
		t.Fatalf("token subject mismatch: %s", claims.AdminID)
	}

	// The code is single-use.
	_, err = svc.VerifyCode(ctx, repo.admin.ID, mailer.sentCode)
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeUnauthorized {
		t.Fatalf("replayed code must fail, got %v", err)
	}
}

func TestVerifyCodeAttemptLimit(t *testing.T) {
	repo := &fakeRepo{admin: seedAdmin(t)}
	codes := newFakeCodes()
	mailer := &fakeMailer{}
	jwtCfg, tfCfg := testConfigs()
	svc, _ := NewService(repo, codes, mailer, jwtCfg, tfCfg)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin@gorravana.mx", "hunter2hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}

	for range tfCfg.MaxAttempts {
		if _, err := svc.VerifyCode(ctx, repo.admin.ID, "000000"); err == nil {
			t.Fatal("wrong code must fail")
		}
	}

	// The next attempt trips the limit and burns the code, so even the real
	// one no longer works.
	_, err := svc.VerifyCode(ctx, repo.admin.ID, mailer.sentCode)
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeRateLimit {
		t.Fatalf("expected rate limit after max attempts, got %v", err)
	}
	_, err = svc.VerifyCode(ctx, repo.admin.ID, mailer.sentCode)
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeUnauthorized {
		t.Fatalf("burned code must be unauthorized, got %v", err)
	}
}
