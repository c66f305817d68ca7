package persistence

import (
	"context"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// UserRepository defines the methods to interact with account data
type UserRepository interface {
	// Create stores a new user and sets its ID
	//
	// Possible errors:
	// - ErrEmailTaken: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether the email is registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update saves name, email and password hash
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrEmailTaken: If the new email belongs to another user
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user and every row the user owns
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// ListIDs returns the IDs of all users in ascending order
	ListIDs(ctx context.Context) ([]uint64, error)
}

// VerificationRepository stores emailed registration and reset codes
type VerificationRepository interface {
	// Upsert replaces the code for (email, purpose) and sets its ID
	Upsert(ctx context.Context, code *entity.VerificationCode) error

	// Get returns the code for (email, purpose)
	//
	// Possible errors:
	// - ErrVerificationNotFound: If nothing is pending
	Get(ctx context.Context, email string, purpose entity.VerificationPurpose) (*entity.VerificationCode, error)

	// IncrementAttempts records a wrong guess
	IncrementAttempts(ctx context.Context, id uint64) error

	// Delete removes a code after use
	Delete(ctx context.Context, id uint64) error
}
