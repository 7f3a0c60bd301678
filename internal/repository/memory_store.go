package repository

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/socialsync/dashboard-api/internal/models"
)

// MemoryStore backs the in-memory variants of every repository. Maps
// and the per-table counters are guarded by one RWMutex; ids are
// monotonic and never reused. The tx parameters of the repository
// interfaces are ignored here, the mutex already makes each call atomic.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[int64]*models.User
	platforms     map[int64]*models.ConnectedPlatform
	posts         map[int64]*models.Post
	postPlatforms map[int64]*models.PostPlatform
	analytics     map[int64]*models.Analytics
	mediaAssets   map[int64]*models.MediaAsset

	nextUserID         int64
	nextPlatformID     int64
	nextPostID         int64
	nextPostPlatformID int64
	nextAnalyticsID    int64
	nextMediaAssetID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int64]*models.User),
		platforms:     make(map[int64]*models.ConnectedPlatform),
		posts:         make(map[int64]*models.Post),
		postPlatforms: make(map[int64]*models.PostPlatform),
		analytics:     make(map[int64]*models.Analytics),
		mediaAssets:   make(map[int64]*models.MediaAsset),
	}
}

func cloneUser(u *models.User) *models.User {
	out := *u
	return &out
}

func clonePlatform(cp *models.ConnectedPlatform) *models.ConnectedPlatform {
	out := *cp
	return &out
}

func clonePost(p *models.Post) *models.Post {
	out := *p
	if p.ScheduledTime != nil {
		t := *p.ScheduledTime
		out.ScheduledTime = &t
	}
	return &out
}

func clonePostPlatform(pp *models.PostPlatform) *models.PostPlatform {
	out := *pp
	return &out
}

func cloneAnalytics(a *models.Analytics) *models.Analytics {
	out := *a
	return &out
}

type memoryUserRepository struct {
	store *MemoryStore
}

func NewMemoryUserRepository(store *MemoryStore) UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return 0, ErrDuplicate
		}
	}

	r.store.nextUserID++
	stored := cloneUser(user)
	stored.ID = r.store.nextUserID
	r.store.users[stored.ID] = stored

	user.ID = stored.ID
	return stored.ID, nil
}

type memoryPlatformRepository struct {
	store *MemoryStore
}

func NewMemoryPlatformRepository(store *MemoryStore) PlatformRepository {
	return &memoryPlatformRepository{store: store}
}

func (r *memoryPlatformRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.ConnectedPlatform, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var platforms []*models.ConnectedPlatform
	for _, cp := range r.store.platforms {
		if cp.UserID == userID {
			platforms = append(platforms, clonePlatform(cp))
		}
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].ID < platforms[j].ID })
	return platforms, nil
}

func (r *memoryPlatformRepository) Upsert(ctx context.Context, cp *models.ConnectedPlatform) (*models.ConnectedPlatform, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.platforms {
		if existing.UserID == cp.UserID && existing.Platform == cp.Platform {
			existing.Connected = cp.Connected
			existing.AccessToken = cp.AccessToken
			existing.RefreshToken = cp.RefreshToken
			existing.PlatformUsername = cp.PlatformUsername
			return clonePlatform(existing), nil
		}
	}

	r.store.nextPlatformID++
	stored := clonePlatform(cp)
	stored.ID = r.store.nextPlatformID
	r.store.platforms[stored.ID] = stored
	return clonePlatform(stored), nil
}

func (r *memoryPlatformRepository) Disconnect(ctx context.Context, userID int64, platform string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.platforms {
		if existing.UserID == userID && existing.Platform == platform {
			existing.Connected = false
			return true, nil
		}
	}
	return false, nil
}

type memoryPostRepository struct {
	store *MemoryStore
}

func NewMemoryPostRepository(store *MemoryStore) PostRepository {
	return &memoryPostRepository{store: store}
}

func (r *memoryPostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	post, ok := r.store.posts[id]
	if !ok {
		return nil, nil
	}
	return clonePost(post), nil
}

func (r *memoryPostRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var posts []*models.Post
	for _, post := range r.store.posts {
		if post.UserID == userID {
			posts = append(posts, clonePost(post))
		}
	}

	// Newest first, id as the tie-break for posts created within the
	// same timestamp granularity.
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

func (r *memoryPostRepository) ListScheduled(ctx context.Context, userID int64) ([]*models.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var posts []*models.Post
	for _, post := range r.store.posts {
		if post.UserID == userID && post.Status == models.PostStatusScheduled {
			posts = append(posts, clonePost(post))
		}
	}

	// Soonest first, null scheduled times last, then newest created.
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch {
		case a.ScheduledTime == nil && b.ScheduledTime == nil:
		case a.ScheduledTime == nil:
			return false
		case b.ScheduledTime == nil:
			return true
		case !a.ScheduledTime.Equal(*b.ScheduledTime):
			return a.ScheduledTime.Before(*b.ScheduledTime)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return posts, nil
}

func (r *memoryPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPostID++
	stored := clonePost(post)
	stored.ID = r.store.nextPostID
	stored.CreatedAt = time.Now()
	r.store.posts[stored.ID] = stored

	post.ID = stored.ID
	post.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (r *memoryPostRepository) Update(ctx context.Context, id int64, upd *models.PostUpdate) (*models.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post, ok := r.store.posts[id]
	if !ok {
		return nil, nil
	}

	if upd.Content != nil {
		post.Content = *upd.Content
	}
	if upd.MediaURL != nil {
		post.MediaURL = upd.MediaURL
	}
	if upd.Status != nil {
		post.Status = *upd.Status
	}
	if upd.ScheduledTime != nil {
		post.ScheduledTime = upd.ScheduledTime
	}
	return clonePost(post), nil
}

func (r *memoryPostRepository) Remove(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.posts[id]; !ok {
		return false, nil
	}
	delete(r.store.posts, id)
	return true, nil
}

type memoryPostPlatformRepository struct {
	store *MemoryStore
}

func NewMemoryPostPlatformRepository(store *MemoryStore) PostPlatformRepository {
	return &memoryPostPlatformRepository{store: store}
}

func (r *memoryPostPlatformRepository) ListByPostID(ctx context.Context, postID int64) ([]*models.PostPlatform, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var platforms []*models.PostPlatform
	for _, pp := range r.store.postPlatforms {
		if pp.PostID == postID {
			platforms = append(platforms, clonePostPlatform(pp))
		}
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].ID < platforms[j].ID })
	return platforms, nil
}

func (r *memoryPostPlatformRepository) Create(ctx context.Context, tx *sql.Tx, pp *models.PostPlatform) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPostPlatformID++
	stored := clonePostPlatform(pp)
	stored.ID = r.store.nextPostPlatformID
	r.store.postPlatforms[stored.ID] = stored

	pp.ID = stored.ID
	return stored.ID, nil
}

func (r *memoryPostPlatformRepository) RemoveByPostID(ctx context.Context, tx *sql.Tx, postID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, pp := range r.store.postPlatforms {
		if pp.PostID == postID {
			delete(r.store.postPlatforms, id)
		}
	}
	return nil
}

type memoryAnalyticsRepository struct {
	store *MemoryStore
}

func NewMemoryAnalyticsRepository(store *MemoryStore) AnalyticsRepository {
	return &memoryAnalyticsRepository{store: store}
}

func (r *memoryAnalyticsRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Analytics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var snapshots []*models.Analytics
	for _, a := range r.store.analytics {
		if a.UserID == userID {
			snapshots = append(snapshots, cloneAnalytics(a))
		}
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].ID < snapshots[j].ID })
	return snapshots, nil
}

func (r *memoryAnalyticsRepository) Create(ctx context.Context, a *models.Analytics) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextAnalyticsID++
	stored := cloneAnalytics(a)
	stored.ID = r.store.nextAnalyticsID
	r.store.analytics[stored.ID] = stored

	a.ID = stored.ID
	return stored.ID, nil
}

type memoryMediaAssetRepository struct {
	store *MemoryStore
}

func NewMemoryMediaAssetRepository(store *MemoryStore) MediaAssetRepository {
	return &memoryMediaAssetRepository{store: store}
}

func (r *memoryMediaAssetRepository) GetByID(ctx context.Context, id int64) (*models.MediaAsset, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ma, ok := r.store.mediaAssets[id]
	if !ok {
		return nil, nil
	}
	out := *ma
	return &out, nil
}

func (r *memoryMediaAssetRepository) Create(ctx context.Context, ma *models.MediaAsset) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextMediaAssetID++
	stored := *ma
	stored.ID = r.store.nextMediaAssetID
	stored.CreatedAt = time.Now()
	r.store.mediaAssets[stored.ID] = &stored

	ma.ID = stored.ID
	ma.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}
