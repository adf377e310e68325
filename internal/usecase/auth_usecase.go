package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"servicevale/internal/auth"
	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountEmailTaken   = errors.New("account email already registered")
	ErrInvalidAccountEmail = errors.New("invalid account email")
	ErrInvalidAccountRole  = errors.New("invalid account role")
	ErrRecoveryRejected    = errors.New("recovery secret invalid or expired")
)

const recoveryTTL = time.Hour

// IAuthUseCase covers login, account registration and the password-recovery
// flow. RequestRecovery never reveals whether the email exists; the recovery
// secret leaves the system only inside the deep link.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.Account, error)
	Register(ctx context.Context, email, password string, role entities.Role) (entities.Account, error)
	RequestRecovery(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, link, newPassword string) error
	Profile(ctx context.Context, email string) (entities.Account, error)
}

type AuthUseCase struct {
	accounts interfaces.IAccountRepository
	tokens   *auth.TokenService
	log      *logrus.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(accounts interfaces.IAccountRepository, tokens *auth.TokenService, log *logrus.Logger) *AuthUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AuthUseCase{accounts: accounts, tokens: tokens, log: log}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", entities.Account{}, auth.ErrInvalidCredentials
	}

	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.Account{}, err
	}
	if acc.Email == "" || !auth.CheckPassword(acc.PasswordHash, password) {
		return "", entities.Account{}, auth.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(acc.Email, acc.Role)
	if err != nil {
		return "", entities.Account{}, err
	}
	return token, acc, nil
}

func (u *AuthUseCase) Register(ctx context.Context, email, password string, role entities.Role) (entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Account{}, ErrInvalidAccountEmail
	}
	if !entities.IsValidRole(role) {
		return entities.Account{}, ErrInvalidAccountRole
	}
	if err := auth.ValidatePassword(password); err != nil {
		return entities.Account{}, err
	}

	if existing, err := u.accounts.GetByEmail(ctx, email); err != nil {
		return entities.Account{}, err
	} else if existing.Email != "" {
		return entities.Account{}, ErrAccountEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return entities.Account{}, err
	}

	now := time.Now().UTC()
	acc := entities.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.accounts.Create(ctx, acc)
}

// RequestRecovery mints a one-time secret, stores its hash and hands the deep
// link to the delivery channel (logged here). Unknown emails are accepted
// silently so the endpoint cannot be used to probe for accounts.
func (u *AuthUseCase) RequestRecovery(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if acc.Email == "" {
		u.log.WithField("email", email).Info("recovery requested for unknown account, ignoring")
		return nil
	}

	secret, hash, err := auth.NewRecoverySecret()
	if err != nil {
		return err
	}
	if err := u.accounts.SetRecovery(ctx, acc.Email, hash, time.Now().Add(recoveryTTL)); err != nil {
		return err
	}

	link := fmt.Sprintf("servicevale://reset-password?userId=%s&secret=%s", acc.Email, secret)
	u.log.WithField("email", acc.Email).WithField("link", link).Info("recovery link issued")
	return nil
}

// ResetPassword consumes a recovery deep link. A malformed link is ignored
// without error; a well-formed link with a bad or expired secret is rejected.
func (u *AuthUseCase) ResetPassword(ctx context.Context, link, newPassword string) error {
	userID, secret, ok := auth.ParseRecoveryLink(link)
	if !ok {
		u.log.WithField("link", link).Info("malformed recovery link, ignoring")
		return nil
	}

	acc, err := u.accounts.GetByEmail(ctx, strings.ToLower(userID))
	if err != nil {
		return err
	}
	if acc.Email == "" || !auth.CheckRecoverySecret(acc.RecoveryHash, acc.RecoveryExpiry, secret) {
		return ErrRecoveryRejected
	}
	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := u.accounts.UpdatePasswordHash(ctx, acc.Email, hash); err != nil {
		return err
	}
	// The secret is single use whatever happens next.
	if err := u.accounts.ClearRecovery(ctx, acc.Email); err != nil {
		u.log.WithError(err).WithField("email", acc.Email).Warn("failed clearing recovery secret")
	}
	return nil
}

func (u *AuthUseCase) Profile(ctx context.Context, email string) (entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Account{}, ErrInvalidAccountEmail
	}
	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return entities.Account{}, err
	}
	if acc.Email == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return acc, nil
}
