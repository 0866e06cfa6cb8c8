package authz

import (
	"errors"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrForbidden    = errors.New("role is not allowed to perform this action")
)

// Guard resolves a caller and checks their role against an explicit
// set of permitted roles. Every privileged request goes through it
// with a fresh lookup; nothing about the role is cached between
// requests.
type Guard struct {
	db *gorm.DB
}

func NewGuard(db *gorm.DB) *Guard {
	return &Guard{db: db}
}

// Authorize returns the caller if they exist and hold one of the
// permitted roles. ErrUserNotFound if the id resolves to nobody,
// ErrForbidden on role mismatch. No side effects.
func (g *Guard) Authorize(callerID uuid.UUID, roles ...models.Role) (*models.User, error) {
	var user models.User
	if err := g.db.First(&user, "id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	for _, r := range roles {
		if user.Role == r {
			return &user, nil
		}
	}
	return nil, ErrForbidden
}
