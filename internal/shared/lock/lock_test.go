package lock

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type sequenceIDs struct{ n atomic.Int64 }

func (s *sequenceIDs) Generate(context.Context) (string, error) {
	return "owner-" + strconv.FormatInt(s.n.Add(1), 10), nil
}

type RedisLockerSuite struct {
	suite.Suite

	mr     *miniredis.Miniredis
	locker *RedisLocker
	other  *RedisLocker
}

func (s *RedisLockerSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	ids := &sequenceIDs{}
	s.locker = NewRedisLocker(client, ids, WithRedisPrefix("test:"))
	s.other = NewRedisLocker(client, ids, WithRedisPrefix("test:"))
}

func (s *RedisLockerSuite) TestAcquireIsExclusiveAcrossLockers() {
	ctx := context.Background()

	lease, ok, err := s.locker.Acquire(ctx, "image_style_deliver:thumb:abc", time.Minute)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("image_style_deliver:thumb:abc", lease.Name)
	s.NotEmpty(lease.Token)

	_, ok, err = s.other.Acquire(ctx, "image_style_deliver:thumb:abc", time.Minute)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.locker.Release(ctx, lease))
	s.False(s.mr.Exists("test:image_style_deliver:thumb:abc"))

	_, ok, err = s.other.Acquire(ctx, "image_style_deliver:thumb:abc", time.Minute)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *RedisLockerSuite) TestExpiredLeaseCannotReleaseNextHolder() {
	ctx := context.Background()

	first, ok, err := s.locker.Acquire(ctx, "k", time.Second)
	s.Require().NoError(err)
	s.Require().True(ok)

	s.mr.FastForward(2 * time.Second)

	// Same locker, same name: the second lease must survive the first Release.
	second, ok, err := s.locker.Acquire(ctx, "k", time.Minute)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.NotEqual(first.Token, second.Token)

	s.ErrorIs(s.locker.Release(ctx, first), ErrNotHeld)
	s.True(s.mr.Exists("test:k"))

	_, ok, err = s.other.Acquire(ctx, "k", time.Minute)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.locker.Release(ctx, second))
	s.False(s.mr.Exists("test:k"))
}

func (s *RedisLockerSuite) TestRefreshExtendsOwnLease() {
	ctx := context.Background()

	lease, ok, err := s.locker.Acquire(ctx, "k", time.Second)
	s.Require().NoError(err)
	s.Require().True(ok)

	ok, err = s.locker.Refresh(ctx, lease, time.Minute)
	s.Require().NoError(err)
	s.True(ok)
	s.Greater(s.mr.TTL("test:k"), 30*time.Second)

	s.mr.FastForward(2 * time.Second)

	_, ok, err = s.other.Acquire(ctx, "k", time.Minute)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisLockerSuite) TestRefreshAfterExpiry() {
	ctx := context.Background()

	lease, ok, err := s.locker.Acquire(ctx, "k", time.Second)
	s.Require().NoError(err)
	s.Require().True(ok)

	s.mr.FastForward(2 * time.Second)

	_, ok, err = s.other.Acquire(ctx, "k", time.Minute)
	s.Require().NoError(err)
	s.Require().True(ok)

	ok, err = s.locker.Refresh(ctx, lease, time.Minute)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisLockerSuite) TestReleaseWithoutAcquire() {
	err := s.locker.Release(context.Background(), Lease{Name: "never", Token: "owner-99"})
	s.ErrorIs(err, ErrNotHeld)

	err = s.locker.Release(context.Background(), Lease{Name: "never"})
	s.ErrorIs(err, ErrNotHeld)
}

func (s *RedisLockerSuite) TestAcquireRejectsEmptyName() {
	_, _, err := s.locker.Acquire(context.Background(), "", time.Second)
	s.Error(err)
}

func (s *RedisLockerSuite) TestConcurrentAcquireHasOneWinner() {
	ctx := context.Background()
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := s.locker.Acquire(ctx, "race", time.Minute)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
}

func TestRedisLockerSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerSuite))
}

func newSQLXMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return sqlx.NewDb(sqlDB, "sqlmock"), mockDB
}

type SQLXLockerSuite struct{ suite.Suite }

func (s *SQLXLockerSuite) TestAcquire_TableDriven() {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	dbErr := errors.New("connection reset")
	selectQuery := regexp.QuoteMeta("SELECT expire")

	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		assertion func(bool, error)
	}{
		{
			name: "acquires when no row exists",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(selectQuery).WithArgs("k").WillReturnRows(sqlmock.NewRows([]string{"expire"}))
				m.ExpectExec(regexp.QuoteMeta("INSERT INTO semaphore (name, value, expire)")).
					WithArgs("k", "owner-1", now.Add(30*time.Second)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			assertion: func(ok bool, err error) {
				require.NoError(s.T(), err)
				assert.True(s.T(), ok)
			},
		},
		{
			name: "loses insert race",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(selectQuery).WithArgs("k").WillReturnRows(sqlmock.NewRows([]string{"expire"}))
				m.ExpectExec(regexp.QuoteMeta("INSERT INTO semaphore (name, value, expire)")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectCommit()
			},
			assertion: func(ok bool, err error) {
				require.NoError(s.T(), err)
				assert.False(s.T(), ok)
			},
		},
		{
			name: "held by someone else",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(selectQuery).WithArgs("k").
					WillReturnRows(sqlmock.NewRows([]string{"expire"}).AddRow(now.Add(10 * time.Second)))
				m.ExpectCommit()
			},
			assertion: func(ok bool, err error) {
				require.NoError(s.T(), err)
				assert.False(s.T(), ok)
			},
		},
		{
			name: "takes over expired row",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(selectQuery).WithArgs("k").
					WillReturnRows(sqlmock.NewRows([]string{"expire"}).AddRow(now.Add(-time.Second)))
				m.ExpectExec(regexp.QuoteMeta("UPDATE semaphore")).
					WithArgs("k", "owner-1", now.Add(30*time.Second)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			assertion: func(ok bool, err error) {
				require.NoError(s.T(), err)
				assert.True(s.T(), ok)
			},
		},
		{
			name: "wraps query errors",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(selectQuery).WithArgs("k").WillReturnError(dbErr)
				m.ExpectRollback()
			},
			assertion: func(ok bool, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, dbErr)
				assert.False(s.T(), ok)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			tc.setupMock(mockDB)

			locker := NewSQLXLocker(db, &sequenceIDs{})
			locker.now = func() time.Time { return now }

			_, ok, err := locker.Acquire(context.Background(), "k", 0)
			tc.assertion(ok, err)
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *SQLXLockerSuite) TestReleaseDeletesOwnRow() {
	now := time.Now().UTC()
	db, mockDB := newSQLXMock(s.T())

	mockDB.ExpectBegin()
	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT expire")).WithArgs("k").WillReturnRows(sqlmock.NewRows([]string{"expire"}))
	mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO semaphore")).WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectCommit()
	mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM semaphore WHERE name = $1 AND value = $2")).
		WithArgs("k", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM semaphore WHERE name = $1 AND value = $2")).
		WithArgs("k", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	locker := NewSQLXLocker(db, &sequenceIDs{})
	locker.now = func() time.Time { return now }

	lease, ok, err := locker.Acquire(context.Background(), "k", time.Minute)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(Lease{Name: "k", Token: "owner-1"}, lease)

	s.Require().NoError(locker.Release(context.Background(), lease))
	s.ErrorIs(locker.Release(context.Background(), lease), ErrNotHeld)
	s.Require().NoError(mockDB.ExpectationsWereMet())
}

func (s *SQLXLockerSuite) TestRefresh_TableDriven() {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	dbErr := errors.New("connection reset")
	refreshQuery := regexp.QuoteMeta("UPDATE semaphore")
	lease := Lease{Name: "k", Token: "owner-1"}

	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		assertion func(bool, error)
	}{
		{
			name: "extends own row",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(refreshQuery).
					WithArgs("k", "owner-1", now.Add(time.Minute)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertion: func(ok bool, err error) {
				require.NoError(s.T(), err)
				assert.True(s.T(), ok)
			},
		},
		{
			name: "row taken over by another owner",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(refreshQuery).
					WithArgs("k", "owner-1", now.Add(time.Minute)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertion: func(ok bool, err error) {
				require.NoError(s.T(), err)
				assert.False(s.T(), ok)
			},
		},
		{
			name: "wraps exec errors",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(refreshQuery).WillReturnError(dbErr)
			},
			assertion: func(ok bool, err error) {
				assert.ErrorIs(s.T(), err, dbErr)
				assert.False(s.T(), ok)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			tc.setupMock(mockDB)

			locker := NewSQLXLocker(db, &sequenceIDs{})
			locker.now = func() time.Time { return now }

			ok, err := locker.Refresh(context.Background(), lease, time.Minute)
			tc.assertion(ok, err)
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func TestSQLXLockerSuite(t *testing.T) {
	suite.Run(t, new(SQLXLockerSuite))
}
