package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sudo-self/links/internal/api"
	"github.com/sudo-self/links/internal/store"
	"github.com/sudo-self/links/internal/testutil"
	"github.com/sudo-self/links/internal/visitor"
)

// testEnv wires the API router to a real store over in-memory SQLite.
type testEnv struct {
	Router http.Handler
	Likes  *store.LikeStore
}

func newTestEnv(t *testing.T, topN int) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	ls := store.NewLikeStore(db, "sqlite3")

	router := api.NewAPIRouter(api.Deps{
		Likes:   ls,
		Visitor: visitor.NewResolver(false),
		TopN:    topN,
	})
	return &testEnv{Router: router, Likes: ls}
}

// do runs a request through the router, carrying any cookies along.
func (env *testEnv) do(t *testing.T, method, path string, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	// Carry forward: new cookies take precedence, else keep what we had.
	if fresh := rec.Result().Cookies(); len(fresh) > 0 {
		cookies = fresh
	}
	return rec, cookies
}

func decodeLike(t *testing.T, rec *httptest.ResponseRecorder) api.LikeResponse {
	t.Helper()
	var resp api.LikeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v; body: %s", err, rec.Body.String())
	}
	return resp
}

func TestGetLikes_UnseenPage(t *testing.T) {
	env := newTestEnv(t, 10)

	rec, cookies := env.do(t, "GET", "/likes/never-seen", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	resp := decodeLike(t, rec)
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Page.PageID != "never-seen" || resp.Page.LikeCount != 0 {
		t.Errorf("page = %q/%d, want never-seen/0", resp.Page.PageID, resp.Page.LikeCount)
	}
	if resp.HasLiked {
		t.Error("hasLiked = true, want false")
	}

	// A fresh visitor gets an identity cookie on the first response.
	if len(cookies) != 1 || cookies[0].Name != visitor.CookieName {
		t.Errorf("cookies = %v, want one %s cookie", cookies, visitor.CookieName)
	}
}

func TestLikeFlow_EndToEnd(t *testing.T) {
	env := newTestEnv(t, 10)

	// First-ever like.
	rec, cookies := env.do(t, "POST", "/likes/demo-page", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d; body: %s", rec.Code, rec.Body.String())
	}
	resp := decodeLike(t, rec)
	if !resp.Success || resp.Page.LikeCount != 1 || !resp.HasLiked {
		t.Fatalf("first POST = %+v, want success/1/hasLiked", resp)
	}

	// Immediate repeat from the same visitor: no change.
	rec, cookies = env.do(t, "POST", "/likes/demo-page", cookies)
	resp = decodeLike(t, rec)
	if !resp.Success || resp.Page.LikeCount != 1 || !resp.HasLiked {
		t.Fatalf("repeat POST = %+v, want success/1/hasLiked", resp)
	}

	// Unlike returns to zero.
	rec, _ = env.do(t, "DELETE", "/likes/demo-page", cookies)
	resp = decodeLike(t, rec)
	if !resp.Success || resp.Page.LikeCount != 0 || resp.HasLiked {
		t.Fatalf("DELETE = %+v, want success/0/not-liked", resp)
	}
}

func TestUnlike_WithoutLike(t *testing.T) {
	env := newTestEnv(t, 10)

	rec, _ := env.do(t, "DELETE", "/likes/demo-page", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (domain rejection, not server error)", rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Error == "" {
		t.Error("error message missing")
	}
	if resp.HasLiked == nil || *resp.HasLiked {
		t.Error("hasLiked missing or true, want explicit false")
	}
}

func TestAddFromBody(t *testing.T) {
	env := newTestEnv(t, 10)

	req := httptest.NewRequest("POST", "/likes", strings.NewReader(`{"page_id":"body-page"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	resp := decodeLike(t, rec)
	if !resp.Success || resp.Page.PageID != "body-page" || resp.Page.LikeCount != 1 {
		t.Errorf("resp = %+v, want body-page at 1", resp)
	}
}

func TestAddFromBody_MissingPageID(t *testing.T) {
	env := newTestEnv(t, 10)

	for _, body := range []string{`{}`, ``, `{"visitor":"tok"}`} {
		req := httptest.NewRequest("POST", "/likes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		env.Router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestAddFromBody_CallerVisitorToken(t *testing.T) {
	env := newTestEnv(t, 10)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/likes", strings.NewReader(`{"page_id":"p","visitor":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		env.Router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
		}
		resp := decodeLike(t, rec)
		if resp.Page.LikeCount != 1 {
			t.Errorf("like_count = %d on call %d, want 1 (caller token is the identity)", resp.Page.LikeCount, i+1)
		}
		// Caller-supplied tokens do not get a cookie issued.
		if got := rec.Result().Cookies(); len(got) != 0 {
			t.Errorf("cookies = %v, want none", got)
		}
	}
}

func TestLeaderboard_Ordering(t *testing.T) {
	env := newTestEnv(t, 10)
	ctx := context.Background()

	counts := map[string]int{"page-a": 5, "page-b": 3, "page-c": 9, "page-d": 1}
	for page, n := range counts {
		for i := 0; i < n; i++ {
			if _, err := env.Likes.Add(ctx, page, fmt.Sprintf("visitor-%d", i)); err != nil {
				t.Fatalf("seed %s: %v", page, err)
			}
		}
	}

	rec, _ := env.do(t, "GET", "/likes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}

	var resp api.LeaderboardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	want := []int64{9, 5, 3, 1}
	if len(resp.Pages) != len(want) {
		t.Fatalf("len(pages) = %d, want %d", len(resp.Pages), len(want))
	}
	for i, n := range want {
		if resp.Pages[i].LikeCount != n {
			t.Errorf("pages[%d].like_count = %d, want %d", i, resp.Pages[i].LikeCount, n)
		}
	}
}

func TestLeaderboard_TruncatesToTopN(t *testing.T) {
	env := newTestEnv(t, 2)
	ctx := context.Background()

	for _, page := range []string{"page-a", "page-b", "page-c"} {
		if _, err := env.Likes.Add(ctx, page, "visitor-1"); err != nil {
			t.Fatalf("seed %s: %v", page, err)
		}
	}

	rec, _ := env.do(t, "GET", "/likes", nil)
	var resp api.LeaderboardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Pages) != 2 {
		t.Errorf("len(pages) = %d, want 2", len(resp.Pages))
	}
}

func TestCORS_Preflight(t *testing.T) {
	env := newTestEnv(t, 10)

	req := httptest.NewRequest("OPTIONS", "/likes/demo-page", nil)
	req.Header.Set("Origin", "https://links.jessejesse.com")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("Access-Control-Allow-Origin missing")
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") {
		t.Errorf("Access-Control-Allow-Methods = %q, want DELETE allowed", got)
	}
}

func TestStoreState_VisibleAcrossRequests(t *testing.T) {
	env := newTestEnv(t, 10)

	// Two different anonymous visitors like the same page.
	rec, _ := env.do(t, "POST", "/likes/shared-page", nil)
	if resp := decodeLike(t, rec); resp.Page.LikeCount != 1 {
		t.Fatalf("first visitor: like_count = %d, want 1", resp.Page.LikeCount)
	}
	rec, cookies := env.do(t, "POST", "/likes/shared-page", nil)
	if resp := decodeLike(t, rec); resp.Page.LikeCount != 2 {
		t.Fatalf("second visitor: like_count = %d, want 2", resp.Page.LikeCount)
	}

	// The second visitor reads back their own membership.
	rec, _ = env.do(t, "GET", "/likes/shared-page", cookies)
	resp := decodeLike(t, rec)
	if resp.Page.LikeCount != 2 || !resp.HasLiked {
		t.Errorf("read-back = %+v, want 2/hasLiked", resp)
	}
}
