package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

// fakeStore is an in-memory repository.Repository for service tests.
type fakeStore struct {
	users      map[int64]*models.User
	categories map[int64]*models.Category
	channels   map[int64]*models.Channel
	scripts    map[int64]*models.Script
	mindMaps   map[int64]*models.MindMap
	nextID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[int64]*models.User),
		categories: make(map[int64]*models.Category),
		channels:   make(map[int64]*models.Channel),
		scripts:    make(map[int64]*models.Script),
		mindMaps:   make(map[int64]*models.MindMap),
	}
}

var _ repository.Repository = (*fakeStore)(nil)

func (f *fakeStore) next() int64 {
	f.nextID++
	return f.nextID
}

func matches(value, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(search))
}

func pageSlice[T any](items []T, ps repository.PageSort) []T {
	ps = ps.Normalized()
	start := ps.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + ps.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// --- users ------------------------------------------------------------------

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) error {
	user.UserID = f.next()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.UserID] = &cp
	return nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UserExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := f.GetUserByUsername(ctx, username)
	return u != nil, nil
}

func (f *fakeStore) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	cp := *user
	f.users[user.UserID] = &cp
	return nil
}

func (f *fakeStore) ListUsers(ctx context.Context, params repository.ListUsersParams) ([]models.User, int64, error) {
	var all []models.User
	for _, u := range f.users {
		if matches(u.Username, params.Search) || matches(u.Email, params.Search) {
			all = append(all, *u)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	return pageSlice(all, params.PageSort), int64(len(all)), nil
}

func (f *fakeStore) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// --- categories -------------------------------------------------------------

func (f *fakeStore) CreateCategory(ctx context.Context, category *models.Category) error {
	category.CategoryID = f.next()
	category.CreatedAt = time.Now()
	cp := *category
	f.categories[category.CategoryID] = &cp
	return nil
}

func (f *fakeStore) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) CategoryExistsByName(ctx context.Context, userID int64, name string) (bool, error) {
	for _, c := range f.categories {
		if c.UserID == userID && c.CategoryName == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	cp := *category
	f.categories[category.CategoryID] = &cp
	return nil
}

func (f *fakeStore) DeleteCategory(ctx context.Context, id int64) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeStore) ListCategories(ctx context.Context, params repository.ListCategoriesParams) ([]models.Category, int64, error) {
	var all []models.Category
	for _, c := range f.categories {
		if c.UserID == params.UserID && matches(c.CategoryName, params.Search) {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CategoryID < all[j].CategoryID })
	return pageSlice(all, params.PageSort), int64(len(all)), nil
}

func (f *fakeStore) CountCategoriesByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	for _, c := range f.categories {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

// --- channels ---------------------------------------------------------------

func (f *fakeStore) CreateChannel(ctx context.Context, channel *models.Channel) error {
	channel.ChannelID = f.next()
	channel.CreatedAt = time.Now()
	channel.UpdatedAt = channel.CreatedAt
	cp := *channel
	f.channels[channel.ChannelID] = &cp
	return nil
}

func (f *fakeStore) GetChannelByID(ctx context.Context, id int64) (*models.Channel, error) {
	c, ok := f.channels[id]
	if !ok || c.Deleted {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) ChannelExistsByName(ctx context.Context, userID int64, name string) (bool, error) {
	for _, c := range f.channels {
		if !c.Deleted && c.UserID == userID && c.ChannelName == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateChannel(ctx context.Context, channel *models.Channel) error {
	channel.UpdatedAt = time.Now()
	cp := *channel
	f.channels[channel.ChannelID] = &cp
	return nil
}

func (f *fakeStore) SoftDeleteChannel(ctx context.Context, id int64) error {
	if c, ok := f.channels[id]; ok {
		c.Deleted = true
		c.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeStore) ListChannels(ctx context.Context, params repository.ListChannelsParams) ([]models.Channel, int64, error) {
	var all []models.Channel
	for _, c := range f.channels {
		if !c.Deleted && c.UserID == params.UserID && matches(c.ChannelName, params.Search) {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ChannelID < all[j].ChannelID })
	return pageSlice(all, params.PageSort), int64(len(all)), nil
}

func (f *fakeStore) CountChannelsByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	for _, c := range f.channels {
		if !c.Deleted && c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) PurgeDeletedChannels(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	for id, c := range f.channels {
		if c.Deleted && c.UpdatedAt.Before(before) {
			delete(f.channels, id)
			n++
		}
	}
	return n, nil
}

// --- scripts ----------------------------------------------------------------

func (f *fakeStore) CreateScript(ctx context.Context, script *models.Script) error {
	script.ScriptID = f.next()
	script.CreatedAt = time.Now()
	script.UpdatedAt = script.CreatedAt
	for i := range script.Chapters {
		script.Chapters[i].ChapterID = f.next()
		script.Chapters[i].ScriptID = script.ScriptID
		script.Chapters[i].CreatedAt = script.CreatedAt
	}
	cp := copyScript(script)
	f.scripts[script.ScriptID] = cp
	return nil
}

func (f *fakeStore) GetScriptByID(ctx context.Context, id int64) (*models.Script, error) {
	s, ok := f.scripts[id]
	if !ok {
		return nil, nil
	}
	cp := copyScript(s)
	sort.Slice(cp.Chapters, func(i, j int) bool {
		return cp.Chapters[i].ChapterNumber < cp.Chapters[j].ChapterNumber
	})
	return cp, nil
}

func (f *fakeStore) UpdateScript(ctx context.Context, script *models.Script) error {
	script.UpdatedAt = time.Now()
	for i := range script.Chapters {
		ch := &script.Chapters[i]
		if ch.ChapterID == 0 {
			ch.ChapterID = f.next()
			ch.CreatedAt = time.Now()
		}
		ch.ScriptID = script.ScriptID
	}
	// Chapter rows are written whole, matching the store's Save-based
	// merge: whatever CreatedAt the caller passes is what persists.
	f.scripts[script.ScriptID] = copyScript(script)
	return nil
}

func (f *fakeStore) DeleteScript(ctx context.Context, id int64) error {
	delete(f.scripts, id)
	return nil
}

func (f *fakeStore) ListScripts(ctx context.Context, params repository.ListScriptsParams) ([]models.Script, int64, error) {
	var all []models.Script
	for _, s := range f.scripts {
		if s.UserID != params.UserID || !matches(s.Title, params.Search) {
			continue
		}
		if params.ChannelID != nil && (s.ChannelID == nil || *s.ChannelID != *params.ChannelID) {
			continue
		}
		if params.CategoryID != nil && (s.CategoryID == nil || *s.CategoryID != *params.CategoryID) {
			continue
		}
		if params.Status != "" && s.Status != params.Status {
			continue
		}
		if params.Difficulty != nil && s.Difficulty != *params.Difficulty {
			continue
		}
		if params.DateFrom != nil && (s.ReleaseDate == nil || s.ReleaseDate.Before(*params.DateFrom)) {
			continue
		}
		if params.DateTo != nil && (s.ReleaseDate == nil || s.ReleaseDate.After(*params.DateTo)) {
			continue
		}
		all = append(all, *copyScript(s))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ScriptID < all[j].ScriptID })
	return pageSlice(all, params.PageSort), int64(len(all)), nil
}

func copyScript(s *models.Script) *models.Script {
	cp := *s
	cp.Chapters = append([]models.ScriptChapter(nil), s.Chapters...)
	return &cp
}

func (f *fakeStore) CountScriptsByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	for _, s := range f.scripts {
		if s.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountScriptsByChannel(ctx context.Context, channelID int64) (int64, error) {
	var n int64
	for _, s := range f.scripts {
		if s.ChannelID != nil && *s.ChannelID == channelID {
			n++
		}
	}
	return n, nil
}

// --- mind maps --------------------------------------------------------------

func (f *fakeStore) CreateMindMap(ctx context.Context, mindMap *models.MindMap) error {
	mindMap.MindMapID = f.next()
	mindMap.CreatedAt = time.Now()
	mindMap.UpdatedAt = mindMap.CreatedAt
	cp := *mindMap
	f.mindMaps[mindMap.MindMapID] = &cp
	return nil
}

func (f *fakeStore) GetMindMapByID(ctx context.Context, id int64) (*models.MindMap, error) {
	m, ok := f.mindMaps[id]
	if !ok || m.IsDeleted {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStore) UpdateMindMap(ctx context.Context, mindMap *models.MindMap) error {
	mindMap.UpdatedAt = time.Now()
	cp := *mindMap
	f.mindMaps[mindMap.MindMapID] = &cp
	return nil
}

func (f *fakeStore) SoftDeleteMindMap(ctx context.Context, id int64) error {
	if m, ok := f.mindMaps[id]; ok {
		m.IsDeleted = true
		m.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeStore) ListMindMaps(ctx context.Context, params repository.ListMindMapsParams) ([]models.MindMap, int64, error) {
	var all []models.MindMap
	for _, m := range f.mindMaps {
		if !m.IsDeleted && m.UserID == params.UserID && matches(m.Title, params.Search) {
			all = append(all, *m)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MindMapID < all[j].MindMapID })
	return pageSlice(all, params.PageSort), int64(len(all)), nil
}

func (f *fakeStore) CountMindMapsByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	for _, m := range f.mindMaps {
		if !m.IsDeleted && m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) PurgeDeletedMindMaps(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	for id, m := range f.mindMaps {
		if m.IsDeleted && m.UpdatedAt.Before(before) {
			delete(f.mindMaps, id)
			n++
		}
	}
	return n, nil
}

// --- cascade ----------------------------------------------------------------

func (f *fakeStore) DeleteUserCascade(ctx context.Context, userID int64) (repository.CascadeResult, error) {
	var result repository.CascadeResult
	for id, s := range f.scripts {
		if s.UserID == userID {
			result.Chapters += int64(len(s.Chapters))
			result.Scripts++
			delete(f.scripts, id)
		}
	}
	for id, m := range f.mindMaps {
		if m.UserID == userID {
			result.MindMaps++
			delete(f.mindMaps, id)
		}
	}
	for id, c := range f.channels {
		if c.UserID == userID {
			result.Channels++
			delete(f.channels, id)
		}
	}
	for id, c := range f.categories {
		if c.UserID == userID {
			result.Categories++
			delete(f.categories, id)
		}
	}
	delete(f.users, userID)
	return result, nil
}
