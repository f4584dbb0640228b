package auth

import (
	"context"
	stderrors "errors"
	"fmt"
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

const (
	twoFactorDigits = 6
	loginRateLimit  = 10
	loginRateWindow = 15 * time.Minute
)

type adminReader interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// codeStore is the slice of the redis client the 2FA flow needs.
type codeStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
	TwoFactorKey(adminID string) string
}

// Mailer delivers the 2FA code. The SMTP/provider wiring lives at the edge;
// the service only knows the port.
type Mailer interface {
	SendTwoFactorCode(ctx context.Context, email string, code string) error
}

// Challenge is the pending-2FA handle returned by Login.
type Challenge struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email"`
}

// Session is the completed login result.
type Session struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Admin     models.AdminUser `json:"admin"`
}

// Service implements the two-step admin login: password check, then an
// emailed numeric code.
type Service interface {
	Login(ctx context.Context, email string, password string) (*Challenge, error)
	VerifyCode(ctx context.Context, adminID uuid.UUID, code string) (*Session, error)
}

type service struct {
	repo      adminReader
	codes     codeStore
	mailer    Mailer
	jwtCfg    config.JWTConfig
	twoFactor config.TwoFactorConfig
	now       func() time.Time
}

// NewService constructs the admin auth service.
func NewService(repo adminReader, codes codeStore, mailer Mailer, jwtCfg config.JWTConfig, twoFactor config.TwoFactorConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("auth repository required")
	}
	if codes == nil {
		return nil, fmt.Errorf("code store required")
	}
	if mailer == nil {
		return nil, fmt.Errorf("mailer required")
	}
	return &service{
		repo:      repo,
		codes:     codes,
		mailer:    mailer,
		jwtCfg:    jwtCfg,
		twoFactor: twoFactor,
		now:       time.Now,
	}, nil
}

// Login checks the password and emails a one-time code. Credential failures
// are indistinguishable on purpose: unknown email and wrong password return
// the same error.
func (s *service) Login(ctx context.Context, email string, password string) (*Challenge, error) {
	allowed, _, err := s.codes.FixedWindowAllow(ctx, "admin_login:"+email, loginRateLimit, loginRateWindow)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "checking login rate limit")
	}
	if !allowed {
		return nil, errors.New(errors.CodeRateLimit, "too many login attempts")
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeUnauthorized, "invalid credentials")
		}
		return nil, errors.Wrap(errors.CodeDependency, err, "loading admin account")
	}

	ok, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, errors.New(errors.CodeUnauthorized, "invalid credentials")
	}

	code, err := security.GenerateNumericCode(twoFactorDigits)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "generating 2fa code")
	}

	key := s.codes.TwoFactorKey(admin.ID.String())
	if err := s.codes.Set(ctx, key, code, s.twoFactor.CodeTTL); err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "storing 2fa code")
	}
	if err := s.mailer.SendTwoFactorCode(ctx, admin.Email, code); err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "sending 2fa code")
	}

	return &Challenge{AdminID: admin.ID, Email: admin.Email}, nil
}

// VerifyCode exchanges a valid emailed code for a signed session token. The
// code is single-use and attempt-limited.
func (s *service) VerifyCode(ctx context.Context, adminID uuid.UUID, code string) (*Session, error) {
	key := s.codes.TwoFactorKey(adminID.String())

	attempts, err := s.codes.IncrWithTTL(ctx, key+":attempts", s.twoFactor.CodeTTL)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "counting 2fa attempts")
	}
	if attempts > int64(s.twoFactor.MaxAttempts) {
		_ = s.codes.Del(ctx, key, key+":attempts")
		return nil, errors.New(errors.CodeRateLimit, "too many code attempts")
	}

	stored, err := s.codes.Get(ctx, key)
	if err == redis.Nil {
		return nil, errors.New(errors.CodeUnauthorized, "code expired or not requested")
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "loading 2fa code")
	}
	if stored != code {
		return nil, errors.New(errors.CodeUnauthorized, "invalid code")
	}

	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeUnauthorized, "invalid code")
		}
		return nil, errors.Wrap(errors.CodeDependency, err, "loading admin account")
	}

	_ = s.codes.Del(ctx, key, key+":attempts")

	now := s.now().UTC()
	token, err := pkgauth.MintAdminToken(s.jwtCfg, now, admin.ID, admin.Email)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "minting session token")
	}
	if err := s.repo.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "updating last login")
	}

	admin.PasswordHash = ""
	return &Session{
		Token:     token,
		ExpiresAt: now.Add(s.jwtCfg.Expiration()),
		Admin:     *admin,
	}, nil
}
