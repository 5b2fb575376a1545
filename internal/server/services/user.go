// Package services contains the server's business logic: accounts and
// tokens in UserService, file metadata and storage URLs in FileService.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/cryptox"
	"github.com/dmitrijs2005/gophdrive/internal/dbx"
	"github.com/dmitrijs2005/gophdrive/internal/server/auth"
	"github.com/dmitrijs2005/gophdrive/internal/server/config"
	"github.com/dmitrijs2005/gophdrive/internal/server/metrics"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	metrics                      *metrics.Metrics
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, mt *metrics.Metrics) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		metrics:                      mt,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account. Duplicate emails yield
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email string, salt, verifier []byte) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || len(salt) == 0 || len(verifier) == 0 {
		return nil, common.ErrorInvalidArg
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{Email: email, Salt: salt, Verifier: verifier})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// GetSalt returns the user's salt, or a random one for unknown emails so
// the endpoint does not reveal which accounts exist.
func (s *UserService) GetSalt(ctx context.Context, email string) ([]byte, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.GenerateRandByteArray(cryptox.SaltSize), nil
		}
		return nil, common.ErrorInternal
	}
	return user.Salt, nil
}

func (s *UserService) Login(ctx context.Context, email string, verifierCandidate []byte) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.metrics.Login(false)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if subtle.ConstantTimeCompare(user.Verifier, verifierCandidate) != 1 {
		s.metrics.Login(false)
		return nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user, s.db)
	if err != nil {
		return nil, err
	}
	s.metrics.Login(true)
	return pair, nil
}

// RefreshToken swaps a valid refresh token for a new pair. The old token is
// deleted and the new one stored in the same transaction.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(time.Now()) {
		_ = repo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user, tx)
		return genErr
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes every refresh token of the user. Access tokens already
// issued stay valid until they expire.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.repomanager.RefreshTokens(s.db).DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("error revoking tokens: %w", err)
	}
	return nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return u, nil
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User, db dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(db).Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
