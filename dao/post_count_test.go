package dao

import (
	"Agora/models"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Subscription{},
		&models.UserPostCount{},
	))
	return db
}

func TestPostCountDAO_IncrLazyCreate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewPostCountDAO(db)

	// 首次自增懒创建记录
	require.NoError(t, d.Incr(ctx, db, 100, 1))
	pc, err := d.GetByUser(ctx, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pc.Count)

	require.NoError(t, d.Incr(ctx, db, 100, 1))
	require.NoError(t, d.Incr(ctx, db, 100, 3))
	pc, err = d.GetByUser(ctx, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 5, pc.Count)

	var rows int64
	require.NoError(t, db.Model(&models.UserPostCount{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestPostCountDAO_GetByUserDefaultZero(t *testing.T) {
	db := newTestDB(t)
	d := NewPostCountDAO(db)

	pc, err := d.GetByUser(context.Background(), 9999)
	require.NoError(t, err)
	assert.EqualValues(t, 9999, pc.UserID)
	assert.Zero(t, pc.Count)
}

func TestSubscriptionDAO_SetStatusReusesRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewSubscriptionDAO(db)

	require.NoError(t, d.SetStatus(ctx, db, 1, 100, 1))
	require.NoError(t, d.SetStatus(ctx, db, 1, 100, 0))
	require.NoError(t, d.SetStatus(ctx, db, 1, 100, 1))

	var rows int64
	require.NoError(t, db.Model(&models.Subscription{}).
		Where("thread_id = ? AND user_id = ?", 1, 100).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	count, err := d.CountActive(ctx, db, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}