package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/server/auth"
	"github.com/dmitrijs2005/gophdrive/internal/server/config"
	"github.com/dmitrijs2005/gophdrive/internal/server/metrics"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = &models.User{ID: "u1", Email: "alice@example.com", Salt: []byte("SALT"), Verifier: []byte("right")}

func newUserService(t *testing.T, rm *fakeRepoManager) (*UserService, *metrics.Metrics) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	m := metrics.New(prometheus.NewRegistry())
	return NewUserService(db, rm, cfg, m), m
}

func TestRegister(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s, _ := newUserService(t, rm)
	ctx := context.Background()

	u, err := s.Register(ctx, "  Alice@Example.com ", []byte("s"), []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	_, err = s.Register(ctx, "alice@example.com", []byte("s"), []byte("v"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.Register(ctx, "bob@example.com", nil, []byte("v"))
	assert.ErrorIs(t, err, common.ErrorInvalidArg)

	rm.u.createErr = errBoom
	_, err = s.Register(ctx, "carol@example.com", []byte("s"), []byte("v"))
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "error creating user")
}

func TestGetSalt(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmail: map[string]*models.User{alice.Email: alice}}}
	s, _ := newUserService(t, rm)

	salt, err := s.GetSalt(context.Background(), "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, []byte("SALT"), salt)

	salt, err = s.GetSalt(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Len(t, salt, 32, "unknown users get a random salt")

	rm.u.getErr = errBoom
	_, err = s.GetSalt(context.Background(), "x@example.com")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogin(t *testing.T) {
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byEmail: map[string]*models.User{alice.Email: alice}},
		r: &fakeRefreshRepo{},
	}
	s, m := newUserService(t, rm)
	ctx := context.Background()

	_, err := s.Login(ctx, "ghost@example.com", []byte("x"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, alice.Email, []byte("wrong"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	pair, err := s.Login(ctx, alice.Email, []byte("right"))
	require.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, []string{pair.RefreshToken}, rm.r.created)

	claims, err := auth.ParseToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, alice.Email, claims.Email)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Logins.WithLabelValues(metrics.ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues(metrics.ResultSuccess)))

	rm.r.createErr = errBoom
	_, err = s.Login(ctx, alice.Email, []byte("right"))
	assert.ErrorIs(t, err, common.ErrorInternal)

	rm.u.getErr = errBoom
	_, err = s.Login(ctx, alice.Email, []byte("right"))
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestRefreshToken(t *testing.T) {
	users := &fakeUsersRepo{byID: map[string]*models.User{"u1": alice}}

	t.Run("rotates in a transaction", func(t *testing.T) {
		rm := &fakeRepoManager{u: users, r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", ExpiresAt: time.Now().Add(10 * time.Minute)},
		}}
		s, _ := newUserService(t, rm)
		db, mock := newSQLMockDB(t)
		s.db = db
		mock.ExpectBegin()
		mock.ExpectCommit()

		pair, err := s.RefreshToken(context.Background(), "old")
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.Equal(t, []string{"old"}, rm.r.deleted)
		assert.Equal(t, []string{pair.RefreshToken}, rm.r.created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown token", func(t *testing.T) {
		rm := &fakeRepoManager{u: users, r: &fakeRefreshRepo{}}
		s, _ := newUserService(t, rm)

		_, err := s.RefreshToken(context.Background(), "nope")
		assert.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("expired token is dropped", func(t *testing.T) {
		rm := &fakeRepoManager{u: users, r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)},
		}}
		s, _ := newUserService(t, rm)

		_, err := s.RefreshToken(context.Background(), "stale")
		assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
		assert.Equal(t, []string{"stale"}, rm.r.deleted)
	})

	t.Run("find error", func(t *testing.T) {
		rm := &fakeRepoManager{u: users, r: &fakeRefreshRepo{findErr: errBoom}}
		s, _ := newUserService(t, rm)

		_, err := s.RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "error searching refresh token")
	})

	t.Run("delete error rolls back", func(t *testing.T) {
		rm := &fakeRepoManager{u: users, r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", ExpiresAt: time.Now().Add(time.Minute)},
			delErr:  errBoom,
		}}
		s, _ := newUserService(t, rm)
		db, mock := newSQLMockDB(t)
		s.db = db
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := s.RefreshToken(context.Background(), "r")
		assert.ErrorContains(t, err, "error deleting refresh token")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLogout(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRefreshRepo{}}
	s, _ := newUserService(t, rm)

	require.NoError(t, s.Logout(context.Background(), "u1"))
	assert.Equal(t, []string{"u1"}, rm.r.deletedUsers)

	rm.r.delErr = errBoom
	assert.ErrorIs(t, s.Logout(context.Background(), "u1"), errBoom)
}

func TestGetUser(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{byID: map[string]*models.User{"u1": alice}}}
	s, _ := newUserService(t, rm)

	u, err := s.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, alice.Email, u.Email)

	_, err = s.GetUser(context.Background(), "u2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
