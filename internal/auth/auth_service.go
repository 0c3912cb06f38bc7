package auth

import (
	"errors"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/common"
	"github.com/DhavalSuthar-24/crickethub/pkg/token"
	"github.com/DhavalSuthar-24/crickethub/utils"
)

var ErrInvalidPassword = errors.New("invalid admin password")

// Authenticator guards the admin surface with one fixed secret.
type Authenticator interface {
	// Enabled is false when no password is configured; admin routes are then open.
	Enabled() bool
	CheckPassword(password string) bool
	Login(password string) (*LoginResponse, error)
	VerifyToken(tokenString string) (*token.Claims, error)
}

type adminAuthenticator struct {
	password     string
	passwordHash string
	secret       string
	expiry       time.Duration
}

// NewAuthenticator reads the admin password settings from cfg.
// ADMIN_PASSWORD may itself hold a bcrypt hash.
func NewAuthenticator(cfg *config.Config) Authenticator {
	a := &adminAuthenticator{
		password:     cfg.Admin.Password,
		passwordHash: cfg.Admin.PasswordHash,
		secret:       cfg.JWT.AdminTokenSecret,
		expiry:       time.Duration(cfg.JWT.AdminTokenExpiryHours) * time.Hour,
	}
	if a.passwordHash == "" && utils.IsBcryptHash(a.password) {
		a.passwordHash, a.password = a.password, ""
	}
	return a
}

func (a *adminAuthenticator) Enabled() bool {
	return a.password != "" || a.passwordHash != ""
}

func (a *adminAuthenticator) CheckPassword(password string) bool {
	if password == "" {
		return false
	}
	if a.passwordHash != "" {
		return utils.CheckPassword(a.passwordHash, password)
	}
	return utils.EqualPlain(a.password, password)
}

func (a *adminAuthenticator) Login(password string) (*LoginResponse, error) {
	if a.Enabled() && !a.CheckPassword(password) {
		return nil, ErrInvalidPassword
	}
	signed, expiresAt, err := token.GenerateJWT(common.RoleAdmin, common.RoleAdmin, a.secret, a.expiry)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

func (a *adminAuthenticator) VerifyToken(tokenString string) (*token.Claims, error) {
	return token.ValidateJWT(tokenString, a.secret)
}
