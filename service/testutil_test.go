package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/dao/cache"
	"Agora/models"
	"Agora/types"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db        *gorm.DB
	cfg       *config.Config
	forums    *ForumService
	threads   *ThreadService
	posts     *PostService
	subs      *SubscriptionService
	reconcile *ReconcileService
	prop      *PropagationService
	lock      *cache.LockStorage
	redis     *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
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
		&models.Category{},
		&models.Forum{},
		&models.Thread{},
		&models.Post{},
		&models.Subscription{},
		&models.UserPostCount{},
	))

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Forum: &config.Forum{
			EditWindowMinutes: 30,
			ActivityStream:    "agora:activity",
		},
	}

	categoryDAO := dao.NewCategoryDAO(db)
	forumDAO := dao.NewForumDAO(db)
	threadDAO := dao.NewThreadDAO(db)
	postDAO := dao.NewPostDAO(db)
	subscriptionDAO := dao.NewSubscriptionDAO(db)
	postCountDAO := dao.NewPostCountDAO(db)
	lock := cache.NewLockStorage(rds)

	prop := &PropagationService{
		Config:       cfg,
		PostCountDAO: postCountDAO,
		Sink:         NopSink{},
	}
	reconcile := &ReconcileService{
		DB:              db,
		Config:          cfg,
		ForumDAO:        forumDAO,
		ThreadDAO:       threadDAO,
		PostDAO:         postDAO,
		SubscriptionDAO: subscriptionDAO,
		Lock:            lock,
	}
	policy := &EditPolicy{Config: cfg}

	return &testEnv{
		db:  db,
		cfg: cfg,
		forums: &ForumService{
			DB:          db,
			CategoryDAO: categoryDAO,
			ForumDAO:    forumDAO,
			ThreadDAO:   threadDAO,
		},
		threads: &ThreadService{
			DB:              db,
			ForumDAO:        forumDAO,
			ThreadDAO:       threadDAO,
			PostDAO:         postDAO,
			SubscriptionDAO: subscriptionDAO,
			Propagation:     prop,
			Reconcile:       reconcile,
			Policy:          policy,
		},
		posts: &PostService{
			PostDAO:      postDAO,
			PostCountDAO: postCountDAO,
			Policy:       policy,
		},
		subs: &SubscriptionService{
			DB:              db,
			ThreadDAO:       threadDAO,
			SubscriptionDAO: subscriptionDAO,
			Propagation:     prop,
		},
		reconcile: reconcile,
		prop:      prop,
		lock:      lock,
		redis:     mr,
	}
}

// mustCreateForum 建版块 parentID 为空表示根版块
func (e *testEnv) mustCreateForum(t *testing.T, title string, parentID *uint64) *models.Forum {
	t.Helper()
	forum, err := e.forums.CreateForum(context.Background(), &types.CreateForumRequest{
		Title:    title,
		ParentID: parentID,
	})
	require.NoError(t, err)
	return forum
}

// mustCreateThread 发主题帖 返回主题响应(含首帖)
func (e *testEnv) mustCreateThread(t *testing.T, forumID, userID uint64, title string) *types.ThreadResponse {
	t.Helper()
	thread, err := e.threads.CreateThread(context.Background(), &types.CreateThreadRequest{
		ForumID: forumID,
		Title:   title,
		Content: "首帖内容",
	}, userID)
	require.NoError(t, err)
	return thread
}

// mustCreateReply 回帖
func (e *testEnv) mustCreateReply(t *testing.T, threadID, userID uint64) *types.PostResponse {
	t.Helper()
	post, err := e.threads.CreateReply(context.Background(), &types.CreateReplyRequest{
		ThreadID: threadID,
		Content:  "回帖内容",
	}, userID)
	require.NoError(t, err)
	return post
}

func (e *testEnv) loadForum(t *testing.T, id uint64) *models.Forum {
	t.Helper()
	var f models.Forum
	require.NoError(t, e.db.First(&f, id).Error)
	return &f
}

func (e *testEnv) loadThread(t *testing.T, id uint64) *models.Thread {
	t.Helper()
	var th models.Thread
	require.NoError(t, e.db.First(&th, id).Error)
	return &th
}

// recordingSink 录下每条活动事件 供断言
type recordingSink struct {
	mu     sync.Mutex
	events []recordedEvent
	ch     chan recordedEvent
}

type recordedEvent struct {
	kind   string
	fields map[string]any
}

func newRecordingSink() *recordingSink {
	return &recordingSink{ch: make(chan recordedEvent, 16)}
}

func (s *recordingSink) Publish(ctx context.Context, kind string, fields map[string]any) error {
	ev := recordedEvent{kind: kind, fields: fields}
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	s.ch <- ev
	return nil
}

func (s *recordingSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
