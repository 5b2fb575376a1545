// Package services implements the client side of GophDrive on top of the
// gRPC client: identity (sign in, sign up, session) and the file store
// (objects through presigned URLs, metadata through the API).
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdrive/internal/client/client"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/cryptox"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
)

// Credential is what the user types on the sign in and sign up screens.
type Credential struct {
	Email    string
	Password string
}

type AuthService struct {
	client client.Client
	meta   metadata.Repository
	logger logging.Logger
}

func NewAuthService(c client.Client, meta metadata.Repository, l logging.Logger) *AuthService {
	return &AuthService{client: c, meta: meta, logger: l.With("module", "auth")}
}

// Restore loads the persisted token pair into the client and keeps it in
// sync with transparent refreshes.
func (a *AuthService) Restore(ctx context.Context) error {
	access, err := a.meta.Get(ctx, metadata.KeyAccessToken)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	refresh, err := a.meta.Get(ctx, metadata.KeyRefreshToken)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	a.client.SetTokens(access, refresh)
	a.client.OnTokensRefreshed(func(access, refresh string) {
		if err := a.saveTokens(context.Background(), access, refresh); err != nil {
			a.logger.Error(context.Background(), "persisting refreshed tokens", "err", err)
		}
	})
	return nil
}

func (a *AuthService) saveTokens(ctx context.Context, access, refresh string) error {
	if err := a.meta.Set(ctx, metadata.KeyAccessToken, access); err != nil {
		return err
	}
	return a.meta.Set(ctx, metadata.KeyRefreshToken, refresh)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignIn fetches the user's salt, derives the verifier locally and logs in.
// Rejections come back as *common.AuthError.
func (a *AuthService) SignIn(ctx context.Context, cred Credential) error {
	email := normalizeEmail(cred.Email)

	salt, err := a.client.GetSalt(ctx, email)
	if err != nil {
		return authError("sign in", err)
	}

	key := cryptox.DeriveKey([]byte(cred.Password), salt)
	defer common.WipeByteArray(key)

	if err := a.client.Login(ctx, email, cryptox.MakeVerifier(key)); err != nil {
		return authError("sign in", err)
	}

	access, refresh := a.client.Tokens()
	if err := a.saveTokens(ctx, access, refresh); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	if err := a.meta.Set(ctx, metadata.KeyEmail, email); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// SignUp registers a new account. The user signs in separately afterwards.
func (a *AuthService) SignUp(ctx context.Context, cred Credential) error {
	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	verifier := cryptox.VerifierFor([]byte(cred.Password), salt)

	if _, err := a.client.Register(ctx, normalizeEmail(cred.Email), salt, verifier); err != nil {
		return authError("sign up", err)
	}
	return nil
}

// SignOut revokes the session on the server and always forgets it locally.
func (a *AuthService) SignOut(ctx context.Context) error {
	remoteErr := a.client.Logout(ctx)

	if err := a.meta.Delete(ctx, metadata.KeyAccessToken, metadata.KeyRefreshToken, metadata.KeyUserID); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	if remoteErr != nil {
		return fmt.Errorf("sign out: %w", remoteErr)
	}
	return nil
}

// GetSession returns nil without error when nobody is signed in or the
// stored session is no longer accepted by the server.
func (a *AuthService) GetSession(ctx context.Context) (*models.Session, error) {
	if access, refresh := a.client.Tokens(); access == "" && refresh == "" {
		return nil, nil
	}

	s, err := a.client.GetSession(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		a.client.SetTokens("", "")
		if derr := a.meta.Delete(ctx, metadata.KeyAccessToken, metadata.KeyRefreshToken, metadata.KeyUserID); derr != nil {
			a.logger.Warn(ctx, "clearing stale session", "err", derr)
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := a.meta.Set(ctx, metadata.KeyUserID, s.UserID); err != nil {
		a.logger.Warn(ctx, "caching user id", "err", err)
	}
	return s, nil
}

// GetCurrentUser returns the signed-in user's id, or "" when there is none.
func (a *AuthService) GetCurrentUser(ctx context.Context) (string, error) {
	s, err := a.GetSession(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.UserID, nil
}

// LastEmail is the email of the most recent successful sign in, if any.
func (a *AuthService) LastEmail(ctx context.Context) string {
	v, err := a.meta.Get(ctx, metadata.KeyEmail)
	if err != nil {
		return ""
	}
	return v
}

// authError turns transport errors into user-facing messages. Errors that
// have no sensible message are returned wrapped as is.
func authError(op string, err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return &common.AuthError{Message: "Invalid login credentials", Err: err}
	case errors.Is(err, common.ErrorAlreadyExists):
		return &common.AuthError{Message: "User already registered", Err: err}
	case errors.Is(err, common.ErrorInvalidArg):
		return &common.AuthError{Message: "Invalid email or password", Err: err}
	case errors.Is(err, client.ErrUnavailable):
		return &common.AuthError{Message: "Server unavailable, try again later", Err: err}
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
