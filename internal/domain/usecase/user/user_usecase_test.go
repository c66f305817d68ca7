package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	mockcache "github.com/fintrack/fintrack-api/mocks/port/cache"
	coremocks "github.com/fintrack/fintrack-api/mocks/port/core"
	mocknotification "github.com/fintrack/fintrack-api/mocks/port/notification"
	persistencemocks "github.com/fintrack/fintrack-api/mocks/port/persistence"
	securitymocks "github.com/fintrack/fintrack-api/mocks/port/security"
)

var fixedTime = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

type fixture struct {
	useCase  *UserUseCase
	uow      *persistencemocks.MockUnitOfWork
	users    *persistencemocks.MockUserRepository
	codesRep *persistencemocks.MockVerificationRepository
	hasher   *securitymocks.MockPasswordHasher
	tokens   *securitymocks.MockTokenService
	codes    *securitymocks.MockCodeGenerator
	mailer   *mocknotification.MockMailer
	cache    *mockcache.MockCache
}

func newFixture(t *testing.T, opts Options) *fixture {
	f := &fixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		users:    persistencemocks.NewMockUserRepository(t),
		codesRep: persistencemocks.NewMockVerificationRepository(t),
		hasher:   securitymocks.NewMockPasswordHasher(t),
		tokens:   securitymocks.NewMockTokenService(t),
		codes:    securitymocks.NewMockCodeGenerator(t),
		mailer:   mocknotification.NewMockMailer(t),
		cache:    mockcache.NewMockCache(t),
	}

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()

	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetVerificationRepository(mock.Anything).Return(f.codesRep).Maybe()

	f.useCase = NewUserUseCase(f.uow, f.hasher, f.tokens, f.codes, f.mailer, f.cache, mockTime, mockLogger, opts)
	return f
}

func (f *fixture) expectCommit() {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	req := usecase.RegisterRequest{Name: "Ada", Email: "  Ada@Example.com ", Password: "secret1"}

	t.Run("Successful user creation", func(t *testing.T) {
		f := newFixture(t, Options{})

		// Setup mocks
		f.users.EXPECT().ExistsByEmail(mock.Anything, "ada@example.com").Return(false, nil).Once()
		f.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
		f.users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ada@example.com" && u.PasswordHash == "hashed" && u.Name == "Ada"
		})).RunAndReturn(func(ctx context.Context, u *entity.User) error {
			u.ID = 7
			return nil
		}).Once()
		f.tokens.EXPECT().Issue(entity.Identity{UserID: 7, Name: "Ada", Email: "ada@example.com"}).Return("jwt", nil).Once()

		// Execute
		result, err := f.useCase.Register(ctx, req)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, "jwt", result.Token)
		assert.False(t, result.PendingVerification)
	})

	t.Run("Registration with email verification", func(t *testing.T) {
		f := newFixture(t, Options{EmailVerification: true, CodeTTL: 10 * time.Minute})

		f.users.EXPECT().ExistsByEmail(mock.Anything, "ada@example.com").Return(false, nil).Once()
		f.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
		f.codes.EXPECT().Generate().Return("123456", nil).Once()
		f.hasher.EXPECT().Hash("123456").Return("code-hash", nil).Once()
		f.codesRep.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(v *entity.VerificationCode) bool {
			return v.Purpose == entity.PurposeRegister &&
				v.CodeHash == "code-hash" &&
				v.PasswordHash == "hashed" &&
				v.ExpiresAt.Equal(fixedTime.Add(10*time.Minute))
		})).Return(nil).Once()
		f.mailer.EXPECT().SendCode(mock.Anything, "ada@example.com", "123456", entity.PurposeRegister).Return(nil).Once()

		result, err := f.useCase.Register(ctx, req)

		require.NoError(t, err)
		assert.True(t, result.PendingVerification)
		assert.Empty(t, result.Token)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Email already registered", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().ExistsByEmail(mock.Anything, "ada@example.com").Return(true, nil).Once()

		_, err := f.useCase.Register(ctx, req)
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newFixture(t, Options{})

		_, err := f.useCase.Register(ctx, usecase.RegisterRequest{Name: "", Email: "a@b.co", Password: "secret1"})
		assert.True(t, errs.IsValidationError(err))

		_, err = f.useCase.Register(ctx, usecase.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "secret1"})
		assert.True(t, errs.IsValidationError(err))

		_, err = f.useCase.Register(ctx, usecase.RegisterRequest{Name: "Ada", Email: "a@b.co", Password: "short"})
		assert.True(t, errs.IsValidationError(err))
	})
}

func TestVerifyRegistration(t *testing.T) {
	ctx := context.Background()
	pending := func() *entity.VerificationCode {
		return &entity.VerificationCode{
			ID:           3,
			Email:        "ada@example.com",
			Purpose:      entity.PurposeRegister,
			Name:         "Ada",
			PasswordHash: "hashed",
			CodeHash:     "code-hash",
			ExpiresAt:    fixedTime.Add(time.Minute),
		}
	}

	t.Run("Correct code creates the user", func(t *testing.T) {
		f := newFixture(t, Options{EmailVerification: true})

		f.codesRep.EXPECT().Get(mock.Anything, "ada@example.com", entity.PurposeRegister).Return(pending(), nil).Once()
		f.hasher.EXPECT().Compare("code-hash", "123456").Return(true).Once()
		f.expectCommit()
		f.users.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil).Once()
		f.codesRep.EXPECT().Delete(mock.Anything, uint64(3)).Return(nil).Once()
		f.tokens.EXPECT().Issue(mock.Anything).Return("jwt", nil).Once()

		token, err := f.useCase.VerifyRegistration(ctx, "ada@example.com", "123456")

		require.NoError(t, err)
		assert.Equal(t, "jwt", token)
	})

	t.Run("Wrong code counts an attempt", func(t *testing.T) {
		f := newFixture(t, Options{EmailVerification: true})

		f.codesRep.EXPECT().Get(mock.Anything, "ada@example.com", entity.PurposeRegister).Return(pending(), nil).Once()
		f.hasher.EXPECT().Compare("code-hash", "000000").Return(false).Once()
		f.codesRep.EXPECT().IncrementAttempts(mock.Anything, uint64(3)).Return(nil).Once()

		_, err := f.useCase.VerifyRegistration(ctx, "ada@example.com", "000000")
		assert.ErrorIs(t, err, errs.ErrInvalidVerificationCode)
	})

	t.Run("Expired code", func(t *testing.T) {
		f := newFixture(t, Options{EmailVerification: true})

		v := pending()
		v.ExpiresAt = fixedTime.Add(-time.Second)
		f.codesRep.EXPECT().Get(mock.Anything, "ada@example.com", entity.PurposeRegister).Return(v, nil).Once()

		_, err := f.useCase.VerifyRegistration(ctx, "ada@example.com", "123456")
		assert.ErrorIs(t, err, errs.ErrVerificationExpired)
	})

	t.Run("Too many attempts", func(t *testing.T) {
		f := newFixture(t, Options{EmailVerification: true})

		v := pending()
		v.Attempts = entity.MaxVerificationAttempts
		f.codesRep.EXPECT().Get(mock.Anything, "ada@example.com", entity.PurposeRegister).Return(v, nil).Once()

		_, err := f.useCase.VerifyRegistration(ctx, "ada@example.com", "123456")
		assert.ErrorIs(t, err, errs.ErrVerificationExpired)
	})

	t.Run("Nothing pending", func(t *testing.T) {
		f := newFixture(t, Options{EmailVerification: true})
		f.codesRep.EXPECT().Get(mock.Anything, "ada@example.com", entity.PurposeRegister).Return(nil, errs.ErrVerificationNotFound).Once()

		_, err := f.useCase.VerifyRegistration(ctx, "ada@example.com", "123456")
		assert.ErrorIs(t, err, errs.ErrInvalidVerificationCode)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 7, Name: "Ada", Email: "ada@example.com", PasswordHash: "hashed"}

	t.Run("Valid credentials", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(user, nil).Once()
		f.hasher.EXPECT().Compare("hashed", "secret1").Return(true).Once()
		f.tokens.EXPECT().Issue(user.Identity()).Return("jwt", nil).Once()

		token, err := f.useCase.Login(ctx, "ADA@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "jwt", token)
	})

	t.Run("Unknown email and wrong password look the same", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, errs.ErrUserNotFound).Once()
		f.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(user, nil).Once()
		f.hasher.EXPECT().Compare("hashed", "wrong").Return(false).Once()

		_, err1 := f.useCase.Login(ctx, "nobody@example.com", "secret1")
		_, err2 := f.useCase.Login(ctx, "ada@example.com", "wrong")

		assert.ErrorIs(t, err1, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, err2, errs.ErrInvalidCredentials)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown email is silent", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, errs.ErrUserNotFound).Once()

		assert.NoError(t, f.useCase.RequestPasswordReset(ctx, "nobody@example.com"))
	})

	t.Run("Known email receives a code", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(&entity.User{ID: 7, Email: "ada@example.com"}, nil).Once()
		f.codes.EXPECT().Generate().Return("654321", nil).Once()
		f.hasher.EXPECT().Hash("654321").Return("code-hash", nil).Once()
		f.codesRep.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(v *entity.VerificationCode) bool {
			return v.Purpose == entity.PurposeReset && v.Email == "ada@example.com"
		})).Return(nil).Once()
		f.mailer.EXPECT().SendCode(mock.Anything, "ada@example.com", "654321", entity.PurposeReset).Return(nil).Once()

		assert.NoError(t, f.useCase.RequestPasswordReset(ctx, "ada@example.com"))
	})

	t.Run("Reset with a valid code", func(t *testing.T) {
		f := newFixture(t, Options{})
		reset := &entity.VerificationCode{ID: 4, Email: "ada@example.com", Purpose: entity.PurposeReset, CodeHash: "code-hash", ExpiresAt: fixedTime.Add(time.Minute)}
		user := &entity.User{ID: 7, Email: "ada@example.com", PasswordHash: "old"}

		f.codesRep.EXPECT().Get(mock.Anything, "ada@example.com", entity.PurposeReset).Return(reset, nil).Once()
		f.hasher.EXPECT().Compare("code-hash", "654321").Return(true).Once()
		f.hasher.EXPECT().Hash("newsecret").Return("new", nil).Once()
		f.expectCommit()
		f.users.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(user, nil).Once()
		f.users.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		f.codesRep.EXPECT().Delete(mock.Anything, uint64(4)).Return(nil).Once()

		require.NoError(t, f.useCase.ResetPassword(ctx, "ada@example.com", "654321", "newsecret"))
		assert.Equal(t, "new", user.PasswordHash)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	newUser := func() *entity.User {
		return &entity.User{ID: 7, Name: "Ada", Email: "ada@example.com", PasswordHash: "hashed"}
	}

	t.Run("Wrong current password", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(newUser(), nil).Once()
		f.hasher.EXPECT().Compare("hashed", "nope").Return(false).Once()

		err := f.useCase.UpdateUser(ctx, 7, "nope", entity.ChangeName{Name: "Grace"})
		assert.ErrorIs(t, err, errs.ErrIncorrectPassword)
	})

	tests := []struct {
		name   string
		update entity.UserUpdate
		setup  func(f *fixture)
		check  func(t *testing.T, u *entity.User)
	}{
		{
			name:   "Change name",
			update: entity.ChangeName{Name: "Grace"},
			check:  func(t *testing.T, u *entity.User) { assert.Equal(t, "Grace", u.Name) },
		},
		{
			name:   "Change email",
			update: entity.ChangeEmail{Email: "Grace@Example.com"},
			setup: func(f *fixture) {
				f.users.EXPECT().ExistsByEmail(mock.Anything, "grace@example.com").Return(false, nil).Once()
			},
			check: func(t *testing.T, u *entity.User) { assert.Equal(t, "grace@example.com", u.Email) },
		},
		{
			name:   "Change password",
			update: entity.ChangePassword{NewPassword: "another1"},
			setup: func(f *fixture) {
				f.hasher.EXPECT().Hash("another1").Return("rehashed", nil).Once()
			},
			check: func(t *testing.T, u *entity.User) { assert.Equal(t, "rehashed", u.PasswordHash) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			user := newUser()

			f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(user, nil).Once()
			f.hasher.EXPECT().Compare("hashed", "secret1").Return(true).Once()
			if tt.setup != nil {
				tt.setup(f)
			}
			f.users.EXPECT().Update(mock.Anything, user).Return(nil).Once()

			require.NoError(t, f.useCase.UpdateUser(ctx, 7, "secret1", tt.update))
			tt.check(t, user)
			assert.Equal(t, fixedTime, user.UpdatedAt)
		})
	}

	t.Run("Email taken by another user", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(newUser(), nil).Once()
		f.hasher.EXPECT().Compare("hashed", "secret1").Return(true).Once()
		f.users.EXPECT().ExistsByEmail(mock.Anything, "grace@example.com").Return(true, nil).Once()

		err := f.useCase.UpdateUser(ctx, 7, "secret1", entity.ChangeEmail{Email: "grace@example.com"})
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Cascade delete", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, PasswordHash: "hashed"}, nil).Once()
		f.hasher.EXPECT().Compare("hashed", "secret1").Return(true).Once()
		f.expectCommit()
		f.users.EXPECT().Delete(mock.Anything, uint64(7)).Return(nil).Once()
		f.cache.EXPECT().DeleteByPrefix(mock.Anything, "fintrack:user:7:").Return(nil).Once()

		assert.NoError(t, f.useCase.DeleteAccount(ctx, 7, "secret1"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, PasswordHash: "hashed"}, nil).Once()
		f.hasher.EXPECT().Compare("hashed", "bad").Return(false).Once()

		assert.ErrorIs(t, f.useCase.DeleteAccount(ctx, 7, "bad"), errs.ErrIncorrectPassword)
	})
}
