package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/dto"
)

func newScriptService(store *fakeStore) *ScriptService {
	return &ScriptService{Repo: store, Channels: store, Categories: store, Logger: zap.NewNop()}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestScriptCreateWithChapters(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	ctx := context.Background()
	owner := seedUser(store, "alice")

	script, err := svc.Create(ctx, owner, dto.CreateScriptRequest{
		Title:       "Intro to Go",
		Difficulty:  intPtr(3),
		ReleaseDate: strPtr("2026-01-15"),
		Chapters: []dto.ChapterRequest{
			{ChapterNumber: 2, Title: "Middle", Content: "b"},
			{ChapterNumber: 1, Title: "Start", Content: "a"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(script.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(script.Chapters))
	}
	if script.ReleaseDate == nil || *script.ReleaseDate != "2026-01-15" {
		t.Fatalf("release_date = %v", script.ReleaseDate)
	}

	// Chapters come back ordered by number.
	got, err := svc.Get(ctx, owner, script.ScriptID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Chapters[0].ChapterNumber != 1 || got.Chapters[1].ChapterNumber != 2 {
		t.Fatalf("chapters out of order: %+v", got.Chapters)
	}
}

func TestScriptDuplicateChapterNumbers(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	ctx := context.Background()
	owner := seedUser(store, "alice")

	_, err := svc.Create(ctx, owner, dto.CreateScriptRequest{
		Title: "Dup",
		Chapters: []dto.ChapterRequest{
			{ChapterNumber: 1, Content: "a"},
			{ChapterNumber: 1, Content: "b"},
		},
	})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestScriptDifficultyValidation(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	ctx := context.Background()
	owner := seedUser(store, "alice")

	for _, d := range []int{0, 6, -1} {
		_, err := svc.Create(ctx, owner, dto.CreateScriptRequest{Title: "x", Difficulty: intPtr(d)})
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Fatalf("difficulty %d: want validation error, got %v", d, err)
		}
	}
}

func TestScriptBadReleaseDate(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	ctx := context.Background()
	owner := seedUser(store, "alice")

	_, err := svc.Create(ctx, owner, dto.CreateScriptRequest{Title: "x", ReleaseDate: strPtr("15/01/2026")})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestScriptCrossOwnerRefs(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	chSvc := &ChannelService{Repo: store, Scripts: store, Logger: zap.NewNop()}
	ctx := context.Background()
	owner := seedUser(store, "alice")
	other := seedUser(store, "bob")

	channel, err := chSvc.Create(ctx, other, dto.CreateChannelRequest{ChannelName: "Bob's"})
	if err != nil {
		t.Fatalf("create channel: %v", err)
	}

	_, err = svc.Create(ctx, owner, dto.CreateScriptRequest{Title: "x", ChannelID: &channel.ChannelID})
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("want forbidden, got %v", err)
	}
}

func TestScriptSoftDeletedChannelRef(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	chSvc := &ChannelService{Repo: store, Scripts: store, Logger: zap.NewNop()}
	ctx := context.Background()
	owner := seedUser(store, "alice")

	channel, err := chSvc.Create(ctx, owner, dto.CreateChannelRequest{ChannelName: "Main"})
	if err != nil {
		t.Fatalf("create channel: %v", err)
	}
	if err := chSvc.Delete(ctx, owner, channel.ChannelID); err != nil {
		t.Fatalf("delete channel: %v", err)
	}

	_, err = svc.Create(ctx, owner, dto.CreateScriptRequest{Title: "x", ChannelID: &channel.ChannelID})
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("want forbidden, got %v", err)
	}
}

func TestScriptUpdateChapterReplace(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	ctx := context.Background()
	owner := seedUser(store, "alice")

	script, err := svc.Create(ctx, owner, dto.CreateScriptRequest{
		Title: "Merge",
		Chapters: []dto.ChapterRequest{
			{ChapterNumber: 1, Title: "A", Content: "a"},
			{ChapterNumber: 2, Title: "B", Content: "b"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	origFirstID := script.Chapters[0].ChapterID
	origFirstCreated := script.Chapters[0].CreatedAt
	if origFirstCreated.IsZero() {
		t.Fatalf("chapter 1 created_at not set on create")
	}

	updated, err := svc.Update(ctx, owner, script.ScriptID, dto.UpdateScriptRequest{
		Chapters: []dto.ChapterRequest{
			{ChapterNumber: 1, Title: "A2", Content: "a2"},
			{ChapterNumber: 3, Title: "C", Content: "c"},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(updated.Chapters))
	}
	if updated.Chapters[0].ChapterNumber != 1 || updated.Chapters[1].ChapterNumber != 3 {
		t.Fatalf("chapter numbers: %+v", updated.Chapters)
	}
	if updated.Chapters[0].ChapterID != origFirstID {
		t.Fatalf("chapter 1 recreated: id %d != %d", updated.Chapters[0].ChapterID, origFirstID)
	}
	if updated.Chapters[0].Title != "A2" {
		t.Fatalf("chapter 1 title = %q, want A2", updated.Chapters[0].Title)
	}
	if !updated.Chapters[0].CreatedAt.Equal(origFirstCreated) {
		t.Fatalf("chapter 1 created_at = %v, want %v", updated.Chapters[0].CreatedAt, origFirstCreated)
	}
	if updated.Chapters[1].CreatedAt.IsZero() {
		t.Fatalf("chapter 3 created_at not set on insert")
	}
}

func TestScriptUpdatePartial(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	ctx := context.Background()
	owner := seedUser(store, "alice")

	script, err := svc.Create(ctx, owner, dto.CreateScriptRequest{
		Title:    "Original",
		Chapters: []dto.ChapterRequest{{ChapterNumber: 1, Content: "a"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Nil chapters leaves the chapter set untouched.
	updated, err := svc.Update(ctx, owner, script.ScriptID, dto.UpdateScriptRequest{
		Status: strPtr("published"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Original" || updated.Status != "published" {
		t.Fatalf("unexpected result: %+v", updated)
	}
	if len(updated.Chapters) != 1 {
		t.Fatalf("chapters = %d, want 1", len(updated.Chapters))
	}
}

func TestScriptListFilters(t *testing.T) {
	store := newFakeStore()
	svc := newScriptService(store)
	ctx := context.Background()
	owner := seedUser(store, "alice")

	reqs := []dto.CreateScriptRequest{
		{Title: "draft one", Status: "draft", Difficulty: intPtr(1)},
		{Title: "done one", Status: "published", Difficulty: intPtr(3), ReleaseDate: strPtr("2026-02-01")},
		{Title: "done two", Status: "published", Difficulty: intPtr(3), ReleaseDate: strPtr("2026-05-01")},
	}
	for _, req := range reqs {
		if _, err := svc.Create(ctx, owner, req); err != nil {
			t.Fatalf("create %s: %v", req.Title, err)
		}
	}

	page, err := svc.List(ctx, owner, dto.ListScriptsQuery{Status: "published"})
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if page.Pagination.Total != 2 {
		t.Fatalf("status filter total = %d, want 2", page.Pagination.Total)
	}

	page, err = svc.List(ctx, owner, dto.ListScriptsQuery{
		DateFrom: strPtr("2026-01-01"),
		DateTo:   strPtr("2026-03-01"),
	})
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if page.Pagination.Total != 1 {
		t.Fatalf("date filter total = %d, want 1", page.Pagination.Total)
	}

	if _, err := svc.List(ctx, owner, dto.ListScriptsQuery{DateFrom: strPtr("nope")}); !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}
