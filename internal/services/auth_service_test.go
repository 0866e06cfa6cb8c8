package services

import (
	"errors"
	"testing"

	"github.com/olegkh/autoservice-crm/internal/config"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return NewAuthService(db, cfg)
}

func TestLogin_UnknownPhone(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)

	if err := auth.Login("+70000000000"); !errors.Is(err, ErrPhoneNotRegistered) {
		t.Fatalf("expected ErrPhoneNotRegistered, got %v", err)
	}
}

func TestVerify_WrongCode(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	user := createUser(t, db, "Иван Петров", models.RoleOperator)

	if _, err := auth.Verify(user.Phone, "9999"); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestVerify_IssuesTokenPair(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	user := createUser(t, db, "Иван Петров", models.RoleOperator)

	resp, err := auth.Verify(user.Phone, "1234")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if resp.User.ID != user.ID || resp.User.Role != models.RoleOperator {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	var stored models.RefreshToken
	if err := db.First(&stored, "user_id = ?", user.ID).Error; err != nil {
		t.Fatalf("expected a stored refresh token: %v", err)
	}
	if stored.TokenHash == resp.RefreshToken {
		t.Fatal("refresh token must be stored hashed, not raw")
	}
}

func TestRefresh_RotatesAndRevokes(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	user := createUser(t, db, "Иван Петров", models.RoleOperator)

	first, err := auth.Verify(user.Phone, "1234")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	second, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("expected a new refresh token")
	}

	// The old token is revoked and cannot be replayed.
	if _, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	db := newTestDB(t)
	auth := newAuthService(db)
	user := createUser(t, db, "Иван Петров", models.RoleOperator)

	resp, err := auth.Verify(user.Phone, "1234")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if err := auth.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
}
