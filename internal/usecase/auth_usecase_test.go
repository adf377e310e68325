package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"servicevale/internal/auth"
	"servicevale/internal/domain/entities"
	mock_interfaces "servicevale/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIAccountRepository, *auth.TokenService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthUseCase(accounts, tokens, nil), accounts, tokens
}

func accountWithPassword(t *testing.T, email, password string, role entities.Role) entities.Account {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return entities.Account{Email: email, PasswordHash: hash, Role: role}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown account", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "ghost@vale.in").Return(entities.Account{}, nil)

		_, _, err := uc.Login(context.Background(), "ghost@vale.in", "whatever")
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		acc := accountWithPassword(t, "boy@vale.in", "Secur3!pass", entities.RoleEngineer)
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(acc, nil)

		_, _, err := uc.Login(context.Background(), "boy@vale.in", "wrong")
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues a parseable token", func(t *testing.T) {
		uc, accounts, tokens := newAuthUseCase(t)
		acc := accountWithPassword(t, "boy@vale.in", "Secur3!pass", entities.RoleEngineer)
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(acc, nil)

		token, got, err := uc.Login(context.Background(), " Boy@Vale.in ", "Secur3!pass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != "boy@vale.in" {
			t.Fatalf("unexpected account %+v", got)
		}
		claims, err := tokens.Parse(token)
		if err != nil {
			t.Fatalf("token parse failed: %v", err)
		}
		if claims.Email != "boy@vale.in" || claims.Role != "engineer" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("weak password", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)
		_, err := uc.Register(context.Background(), "boy@vale.in", "weak", entities.RoleEngineer)
		if !errors.Is(err, auth.ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)
		_, err := uc.Register(context.Background(), "boy@vale.in", "Secur3!pass", "superuser")
		if !errors.Is(err, ErrInvalidAccountRole) {
			t.Fatalf("expected ErrInvalidAccountRole, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(entities.Account{Email: "boy@vale.in"}, nil)

		_, err := uc.Register(context.Background(), "boy@vale.in", "Secur3!pass", entities.RoleEngineer)
		if !errors.Is(err, ErrAccountEmailTaken) {
			t.Fatalf("expected ErrAccountEmailTaken, got %v", err)
		}
	})

	t.Run("success stores a hash, never the password", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(entities.Account{}, nil)
		accounts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Account{})).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) {
				if a.PasswordHash == "" || a.PasswordHash == "Secur3!pass" {
					t.Fatalf("unexpected password hash %q", a.PasswordHash)
				}
				if !auth.CheckPassword(a.PasswordHash, "Secur3!pass") {
					t.Fatal("stored hash does not verify")
				}
				return a, nil
			},
		)

		if _, err := uc.Register(context.Background(), "boy@vale.in", "Secur3!pass", entities.RoleEngineer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_RequestRecovery(t *testing.T) {
	t.Run("unknown email accepted silently", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "ghost@vale.in").Return(entities.Account{}, nil)

		// No SetRecovery expectation: nothing is stored for unknown emails.
		if err := uc.RequestRecovery(context.Background(), "ghost@vale.in"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("known email stores a hashed secret with expiry", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(entities.Account{Email: "boy@vale.in"}, nil)
		accounts.EXPECT().SetRecovery(gomock.Any(), "boy@vale.in", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, hash string, expiry time.Time) error {
				if hash == "" {
					t.Fatal("expected a stored recovery hash")
				}
				if until := time.Until(expiry); until < 50*time.Minute || until > 70*time.Minute {
					t.Fatalf("unexpected expiry window %v", until)
				}
				return nil
			},
		)

		if err := uc.RequestRecovery(context.Background(), "boy@vale.in"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_ResetPassword(t *testing.T) {
	recoveryLink := func(email, secret string) string {
		return fmt.Sprintf("servicevale://reset-password?userId=%s&secret=%s", email, secret)
	}

	t.Run("malformed link is ignored without repo calls", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)
		if err := uc.ResetPassword(context.Background(), "servicevale://reset-password?userId=only", "Secur3!new"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		_, hash, err := auth.NewRecoverySecret()
		if err != nil {
			t.Fatalf("mint failed: %v", err)
		}
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(entities.Account{
			Email: "boy@vale.in", RecoveryHash: hash, RecoveryExpiry: time.Now().Add(time.Hour),
		}, nil)

		err = uc.ResetPassword(context.Background(), recoveryLink("boy@vale.in", "forged"), "Secur3!new")
		if !errors.Is(err, ErrRecoveryRejected) {
			t.Fatalf("expected ErrRecoveryRejected, got %v", err)
		}
	})

	t.Run("valid secret rewrites the password and burns the secret", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		secret, hash, err := auth.NewRecoverySecret()
		if err != nil {
			t.Fatalf("mint failed: %v", err)
		}
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(entities.Account{
			Email: "boy@vale.in", RecoveryHash: hash, RecoveryExpiry: time.Now().Add(time.Hour),
		}, nil)
		accounts.EXPECT().UpdatePasswordHash(gomock.Any(), "boy@vale.in", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, newHash string) error {
				if !auth.CheckPassword(newHash, "Secur3!new") {
					t.Fatal("stored hash does not verify the new password")
				}
				return nil
			},
		)
		accounts.EXPECT().ClearRecovery(gomock.Any(), "boy@vale.in").Return(nil)

		if err := uc.ResetPassword(context.Background(), recoveryLink("boy@vale.in", secret), "Secur3!new"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_Profile(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "ghost@vale.in").Return(entities.Account{}, nil)

		if _, err := uc.Profile(context.Background(), "ghost@vale.in"); !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, accounts, _ := newAuthUseCase(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "boy@vale.in").Return(entities.Account{
			Email: "boy@vale.in", Role: entities.RoleEngineer,
		}, nil)

		acc, err := uc.Profile(context.Background(), "boy@vale.in")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acc.Role != entities.RoleEngineer {
			t.Fatalf("unexpected account %+v", acc)
		}
	})
}
