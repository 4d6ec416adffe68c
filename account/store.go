package account

import (
	"context"

	"github.com/skillsenselab/seahorse/database"
)

// Store is the credential store: durable lookup and creation of user
// records. Implementations must enforce email uniqueness at the constraint
// level; Create on a taken email fails with a duplicate-key error.
type Store interface {
	// FindByEmail returns the record for the email, or (nil, nil) when no
	// record exists. Errors are infrastructure failures only.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a new record, assigning its id.
	Create(ctx context.Context, user *User) error
}

// GormStore implements Store on the service database.
type GormStore struct {
	db *database.DB
}

// NewStore creates a credential store backed by the given database.
func NewStore(db *database.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.db.Gorm.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) Create(ctx context.Context, user *User) error {
	return s.db.Gorm.WithContext(ctx).Create(user).Error
}
