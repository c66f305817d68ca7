package user

import (
	"context"
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/security"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// DefaultCodeTTL is how long an emailed code stays valid
const DefaultCodeTTL = 15 * time.Minute

// Options tunes the account flows
type Options struct {
	// EmailVerification stages registrations until the emailed code is confirmed
	EmailVerification bool
	// CodeTTL is the lifetime of verification and reset codes
	CodeTTL time.Duration
}

// UserUseCase handles registration, sessions and account changes
type UserUseCase struct {
	uow          persistence.UnitOfWork
	hasher       security.PasswordHasher
	tokens       security.TokenService
	codes        security.CodeGenerator
	mailer       notification.Mailer
	cache        cacheport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	opts         Options
}

var _ usecase.AuthUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	codes security.CodeGenerator,
	mailer notification.Mailer,
	cache cacheport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *UserUseCase {
	if opts.CodeTTL <= 0 {
		opts.CodeTTL = DefaultCodeTTL
	}
	return &UserUseCase{
		uow:          uow,
		hasher:       hasher,
		tokens:       tokens,
		codes:        codes,
		mailer:       mailer,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
		opts:         opts,
	}
}

// Authenticate resolves a session token to its identity
func (u *UserUseCase) Authenticate(token string) (*entity.Identity, error) {
	return u.tokens.Parse(token)
}

// issueToken signs a session token for user
func (u *UserUseCase) issueToken(user *entity.User) (string, error) {
	return u.tokens.Issue(user.Identity())
}

// newCode generates a code and returns it with its hash
func (u *UserUseCase) newCode() (code, hash string, err error) {
	code, err = u.codes.Generate()
	if err != nil {
		return "", "", err
	}
	hash, err = u.hasher.Hash(code)
	if err != nil {
		return "", "", err
	}
	return code, hash, nil
}

// checkCode validates a pending code, recording a failed attempt on mismatch
func (u *UserUseCase) checkCode(ctx context.Context, v *entity.VerificationCode, code string) error {
	if v.Expired(u.timeProvider.Now()) {
		return errs.ErrVerificationExpired
	}
	if !u.hasher.Compare(v.CodeHash, code) {
		if err := u.uow.GetVerificationRepository(ctx).IncrementAttempts(ctx, v.ID); err != nil {
			u.logger.Warn("Failed to record verification attempt", map[string]any{
				"email": v.Email,
				"error": err.Error(),
			})
		}
		return errs.ErrInvalidVerificationCode
	}
	return nil
}
