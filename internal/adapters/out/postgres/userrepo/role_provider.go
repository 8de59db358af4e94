// Package userrepo resolves marketplace users to their platform roles.
package userrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure for marketplace users.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string

	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// GormRoleProvider implements RoleProvider using GORM.
type GormRoleProvider struct {
	db *gorm.DB
}

// NewGormRoleProvider creates a new GORM role provider.
func NewGormRoleProvider(db *gorm.DB) *GormRoleProvider {
	return &GormRoleProvider{db: db}
}

// GetRole resolves a user's platform role.
func (p *GormRoleProvider) GetRole(ctx context.Context, userID kernel.UUID) (kernel.Role, error) {
	if err := userID.Validate(); err != nil {
		return kernel.RoleUnknown, err
	}

	var dto UserDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.RoleUnknown, errs.NewObjectNotFoundError("userId", userID.String())
		}
		return kernel.RoleUnknown, err
	}

	return kernel.RoleFromString(dto.Role)
}
