package items

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"hotwire-demo/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLiteStore(t *testing.T) *GormStore {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestGormStore_SeedAndList(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()

	n, err := store.Seed(ctx, DefaultItems()...)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// A second seed is a no-op once the table has rows.
	n, err = store.Seed(ctx, DefaultItems()...)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultItems(), list)
}

func TestGormStore_Add(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	_, err := store.Seed(ctx, DefaultItems()...)
	require.NoError(t, err)

	item, err := store.Add(ctx, "Third Item")
	require.NoError(t, err)
	assert.Equal(t, Item{ID: 3, Name: "Third Item"}, item)

	item, err = store.Add(ctx, "Fourth Item")
	require.NoError(t, err)
	assert.Equal(t, 4, item.ID)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Third Item", list[2].Name)
}

func TestGormStore_ListError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `items`").WillReturnError(assert.AnError)

	_, err = NewGormStore(db).List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to list items")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ConcurrentAdd(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	_, err := store.Seed(ctx, DefaultItems()...)
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Add(ctx, "item "+strconv.Itoa(i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, n+2)
	for i, it := range list {
		assert.Equal(t, i+1, it.ID)
	}
}

// Each Add must count and insert before the next one counts, otherwise two
// requests pick the same ID on databases that do not serialise writers.
func TestGormStore_AddSerialised(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	for _, count := range []int{2, 3} {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `items`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(count))
		mock.ExpectExec("INSERT INTO `items`").
			WillReturnResult(sqlmock.NewResult(int64(count+1), 1))
		mock.ExpectCommit()
	}

	store := NewGormStore(db)
	ids := make([]int, 2)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item, err := store.Add(context.Background(), "item "+strconv.Itoa(i))
			assert.NoError(t, err)
			ids[i] = item.ID
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{3, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
