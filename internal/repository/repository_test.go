package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/image-derivative-api/internal/domain"
	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
	repositorymocks "github.com/joshuarp/image-derivative-api/internal/mock/repository"
	"github.com/joshuarp/image-derivative-api/internal/shared/config"
)

func newSQLXMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return sqlx.NewDb(sqlDB, "sqlmock"), mockDB
}

type AuthLoginRepositorySuite struct{ suite.Suite }

func (s *AuthLoginRepositorySuite) TestGetUserAuthByEmail_TableDriven() {
	repoErr := errors.New("query failed")

	tests := []struct {
		name      string
		email     string
		setupMock func(sqlmock.Sqlmock)
		assertion func(error)
	}{
		{
			name:  "invalid when email empty",
			email: "   ",
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:  "invalid when user not found",
			email: "user@example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id::text AS id, email, password_hash, status, role")).
					WithArgs("user@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:  "wraps query errors",
			email: "user@example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id::text AS id, email, password_hash, status, role")).
					WithArgs("user@example.com").
					WillReturnError(repoErr)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "get user auth by email failed")
				assert.ErrorIs(s.T(), err, repoErr)
			},
		},
		{
			name:  "invalid when status not active",
			email: "user@example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "status", "role"}).
					AddRow("user-1", "user@example.com", "hashed", "inactive", "admin")
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id::text AS id, email, password_hash, status, role")).
					WithArgs("user@example.com").
					WillReturnRows(rows)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:  "success",
			email: "user@example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "status", "role"}).
					AddRow("user-1", "user@example.com", "hashed", "active", "admin")
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id::text AS id, email, password_hash, status, role")).
					WithArgs("user@example.com").
					WillReturnRows(rows)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewAuthLoginRepository(db)
			if tc.setupMock != nil {
				tc.setupMock(mockDB)
			}

			result, err := repo.GetUserAuthByEmail(context.Background(), tc.email)
			tc.assertion(err)
			if err == nil {
				assert.Equal(s.T(), "user-1", result.ID)
				assert.Equal(s.T(), "user@example.com", result.Email)
				assert.Equal(s.T(), "admin", result.Role)
			}
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func TestAuthLoginRepositorySuite(t *testing.T) {
	suite.Run(t, new(AuthLoginRepositorySuite))
}


type ImageStyleRepositorySuite struct{ suite.Suite }

func (s *ImageStyleRepositorySuite) TestGetStyle_TableDriven() {
	queryErr := errors.New("query failed")
	effectID := uuid.NewString()

	tests := []struct {
		name      string
		id        string
		setupMock func(sqlmock.Sqlmock)
		assertion func(domain.ImageStyle, error)
	}{
		{
			name: "empty id is not found",
			id:   "  ",
			assertion: func(_ domain.ImageStyle, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStyleNotFound)
			},
		},
		{
			name: "unknown style",
			id:   "missing",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, label")).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			assertion: func(_ domain.ImageStyle, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStyleNotFound)
			},
		},
		{
			name: "wraps style query errors",
			id:   "thumbnail",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, label")).
					WithArgs("thumbnail").
					WillReturnError(queryErr)
			},
			assertion: func(_ domain.ImageStyle, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, queryErr)
				assert.ErrorContains(s.T(), err, "get image style failed")
			},
		},
		{
			name: "rejects malformed effect data",
			id:   "thumbnail",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, label")).
					WithArgs("thumbnail").
					WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).AddRow("thumbnail", "Thumbnail"))
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT style_id, uuid::text AS uuid, kind, weight, data")).
					WithArgs("thumbnail").
					WillReturnRows(sqlmock.NewRows([]string{"style_id", "uuid", "kind", "weight", "data"}).
						AddRow("thumbnail", effectID, "scale", 1, []byte("{not json")))
			},
			assertion: func(_ domain.ImageStyle, err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "decode effect")
			},
		},
		{
			name: "style with ordered effects",
			id:   "thumbnail",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, label")).
					WithArgs("thumbnail").
					WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).AddRow("thumbnail", "Thumbnail"))
				mockDB.ExpectQuery(regexp.QuoteMeta("SELECT style_id, uuid::text AS uuid, kind, weight, data")).
					WithArgs("thumbnail").
					WillReturnRows(sqlmock.NewRows([]string{"style_id", "uuid", "kind", "weight", "data"}).
						AddRow("thumbnail", effectID, "scale", 1, []byte(`{"width":100,"height":100}`)).
						AddRow("thumbnail", uuid.NewString(), "desaturate", 2, nil))
			},
			assertion: func(style domain.ImageStyle, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "thumbnail", style.ID)
				assert.Equal(s.T(), "Thumbnail", style.Label)
				require.Len(s.T(), style.Effects, 2)
				assert.Equal(s.T(), effectID, style.Effects[0].UUID)
				assert.Equal(s.T(), domain.EffectScale, style.Effects[0].Kind)
				assert.EqualValues(s.T(), 100, style.Effects[0].Data["width"])
				assert.Equal(s.T(), domain.EffectDesaturate, style.Effects[1].Kind)
				assert.Nil(s.T(), style.Effects[1].Data)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewImageStyleRepository(db)
			if tc.setupMock != nil {
				tc.setupMock(mockDB)
			}

			style, err := repo.GetStyle(context.Background(), tc.id)
			tc.assertion(style, err)
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *ImageStyleRepositorySuite) TestListStyles() {
	db, mockDB := newSQLXMock(s.T())
	repo := NewImageStyleRepository(db)

	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, label")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label"}).
			AddRow("large", "Large").
			AddRow("thumbnail", "Thumbnail"))
	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT style_id, uuid::text AS uuid, kind, weight, data")).
		WillReturnRows(sqlmock.NewRows([]string{"style_id", "uuid", "kind", "weight", "data"}).
			AddRow("thumbnail", uuid.NewString(), "scale", 1, []byte(`{"width":100}`)).
			AddRow("thumbnail", uuid.NewString(), "convert", 2, []byte(`{"extension":"gif"}`)))

	styles, err := repo.ListStyles(context.Background())
	s.Require().NoError(err)
	s.Require().Len(styles, 2)
	s.Equal("large", styles[0].ID)
	s.Empty(styles[0].Effects)
	s.Len(styles[1].Effects, 2)
	s.Equal("gif", styles[1].DerivativeExtension("png"))
	s.Require().NoError(mockDB.ExpectationsWereMet())
}

func TestImageStyleRepositorySuite(t *testing.T) {
	suite.Run(t, new(ImageStyleRepositorySuite))
}

const styleConfigYAML = `
styles:
  definitions:
    thumbnail:
      label: Thumbnail (100x100)
      effects:
        - kind: convert
          weight: 5
          data:
            extension: jpg
        - kind: scale
          weight: 1
          data:
            width: 100
            height: 100
    wide:
      effects:
        - kind: resize
          data:
            width: 800
            height: 200
`

func newYAMLConfig(t *testing.T, content string) config.ConfigProvider {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Init(config.Options{YAMLPath: path})
	require.NoError(t, err)
	return cfg
}

type ConfigStyleRepositorySuite struct{ suite.Suite }

func (s *ConfigStyleRepositorySuite) TestGetStyle() {
	repo := NewConfigStyleRepository(newYAMLConfig(s.T(), styleConfigYAML))

	style, err := repo.GetStyle(context.Background(), "thumbnail")
	s.Require().NoError(err)
	s.Equal("Thumbnail (100x100)", style.Label)
	s.Require().Len(style.Effects, 2)
	s.Equal(domain.EffectScale, style.Effects[0].Kind)
	s.Equal(domain.EffectConvert, style.Effects[1].Kind)
	s.Equal("a.png.jpg", style.AddExtension("a.png"))

	_, err = repo.GetStyle(context.Background(), "missing")
	s.ErrorIs(err, vo.ErrStyleNotFound)
}

func (s *ConfigStyleRepositorySuite) TestListStyles() {
	repo := NewConfigStyleRepository(newYAMLConfig(s.T(), styleConfigYAML))

	styles, err := repo.ListStyles(context.Background())
	s.Require().NoError(err)
	s.Require().Len(styles, 2)
	s.Equal("thumbnail", styles[0].ID)
	s.Equal("wide", styles[1].ID)
	s.Equal("wide", styles[1].Label)
}

func (s *ConfigStyleRepositorySuite) TestNoDefinitions() {
	repo := NewConfigStyleRepository(newYAMLConfig(s.T(), "app:\n  name: test\n"))

	styles, err := repo.ListStyles(context.Background())
	s.Require().NoError(err)
	s.Empty(styles)

	_, err = repo.GetStyle(context.Background(), "thumbnail")
	s.ErrorIs(err, vo.ErrStyleNotFound)
}

func TestConfigStyleRepositorySuite(t *testing.T) {
	suite.Run(t, new(ConfigStyleRepositorySuite))
}

type CachedStyleRepositorySuite struct {
	suite.Suite

	source *repositorymocks.StyleSource
	repo   *CachedStyleRepository
}

func (s *CachedStyleRepositorySuite) SetupTest() {
	s.source = repositorymocks.NewStyleSource(s.T())
	repo, err := NewCachedStyleRepository(s.source, 2)
	s.Require().NoError(err)
	s.repo = repo
}

func (s *CachedStyleRepositorySuite) TestGetStyleHitsSourceOnce() {
	style := domain.ImageStyle{ID: "thumbnail", Label: "Thumbnail"}
	s.source.EXPECT().GetStyle(mock.Anything, "thumbnail").Return(style, nil).Once()

	for i := 0; i < 3; i++ {
		got, err := s.repo.GetStyle(context.Background(), "thumbnail")
		s.Require().NoError(err)
		s.Equal(style, got)
	}
}

func (s *CachedStyleRepositorySuite) TestErrorsAreNotCached() {
	s.source.EXPECT().GetStyle(mock.Anything, "missing").Return(domain.ImageStyle{}, vo.ErrStyleNotFound).Twice()

	_, err := s.repo.GetStyle(context.Background(), "missing")
	s.ErrorIs(err, vo.ErrStyleNotFound)
	_, err = s.repo.GetStyle(context.Background(), "missing")
	s.ErrorIs(err, vo.ErrStyleNotFound)
}

func (s *CachedStyleRepositorySuite) TestInvalidateAndPurge() {
	s.source.EXPECT().GetStyle(mock.Anything, "a").Return(domain.ImageStyle{ID: "a"}, nil).Times(3)
	s.source.EXPECT().GetStyle(mock.Anything, "b").Return(domain.ImageStyle{ID: "b"}, nil).Twice()

	ctx := context.Background()
	_, _ = s.repo.GetStyle(ctx, "a")
	_, _ = s.repo.GetStyle(ctx, "b")

	s.repo.Invalidate("a")
	_, _ = s.repo.GetStyle(ctx, "a")
	_, _ = s.repo.GetStyle(ctx, "b")

	s.repo.Purge()
	_, _ = s.repo.GetStyle(ctx, "a")
	_, _ = s.repo.GetStyle(ctx, "b")
}

func (s *CachedStyleRepositorySuite) TestListStylesPassesThrough() {
	s.source.EXPECT().ListStyles(mock.Anything).Return([]domain.ImageStyle{{ID: "a"}}, nil).Twice()

	for i := 0; i < 2; i++ {
		styles, err := s.repo.ListStyles(context.Background())
		s.Require().NoError(err)
		s.Len(styles, 1)
	}
}

func TestCachedStyleRepositorySuite(t *testing.T) {
	suite.Run(t, new(CachedStyleRepositorySuite))
}
