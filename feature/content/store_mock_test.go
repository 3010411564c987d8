package content

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestFindByTitle_QueriesExactTitleAndType(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id"}).AddRow(7)
	mock.ExpectQuery("SELECT `id` FROM `posts` WHERE title = \\? AND type = \\?").
		WillReturnRows(rows)

	id, err := store.FindByTitle(context.Background(), "Exact Title", "post")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTitle_PropagatesQueryErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, zap.NewNop())

	mock.ExpectQuery("SELECT `id` FROM `posts`").
		WillReturnError(assert.AnError)

	_, err := store.FindByTitle(context.Background(), "Any", "post")
	assert.Error(t, err)
}
