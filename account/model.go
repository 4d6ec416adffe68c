// Package account implements credential-holder records and the registration
// and login flows that operate on them.
package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsenselab/seahorse/database"
)

// User is a credential-holder record. It is created once at registration and
// never mutated by this service.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Email is the lookup key. The unique index is the authoritative guard
	// against concurrent duplicate registrations; the flow's own existence
	// check is only a fast path.
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// PasswordHash holds the bcrypt hash. The plaintext is never persisted
	// and the hash never serialized.
	PasswordHash string `gorm:"not null" json:"-"`

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the record id.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Migrations returns the schema migrations for this package.
func Migrations() []database.Migration {
	return []database.Migration{
		{
			ID:          "20240115_create_users",
			Description: "create users table with unique email index",
			Up: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&User{})
			},
		},
	}
}
