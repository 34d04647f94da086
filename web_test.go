package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var err error
	db, err = openMemoryDB()
	if err != nil {
		t.Fatalf("openMemoryDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	initAdminToken()
	return newRouter(DefaultConfig())
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexRendersSections(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	for _, id := range []string{"home", "about", "projects", "experience", "contact"} {
		if doc.Find("section#" + id).Length() != 1 {
			t.Errorf("expected exactly one #%s section", id)
		}
	}
	if got := doc.Find("#projects .card").Length(); got != len(Projects) {
		t.Errorf("expected %d project cards, got %d", len(Projects), got)
	}
}

func TestWorkContentFragment(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/work-content")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if got := doc.Find(".entry").Length(); got != len(WorkHistory) {
		t.Errorf("expected %d work entries, got %d", len(WorkHistory), got)
	}
	if !strings.Contains(doc.Text(), "Target") {
		t.Error("expected the work fragment to include the employer")
	}
}

func TestContactValidationBlocksBadSubmissions(t *testing.T) {
	r := testRouter(t)

	cases := []url.Values{
		{"fullName": {""}, "email": {"foo@bar.com"}, "message": {"hi"}},
		{"fullName": {"Zach"}, "email": {"foo@bar"}, "message": {"hi"}},
		{"fullName": {"Zach"}, "email": {"foo@bar.com"}, "message": {""}},
	}
	for i, form := range cases {
		w := postForm(t, r, "/contact", form)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		if err != nil {
			t.Fatalf("case %d: parsing response: %v", i, err)
		}
		if doc.Find(".form-error").Length() != 1 {
			t.Errorf("case %d: expected an error fragment", i)
		}
	}

	msgs, err := recentMessages(10)
	if err != nil {
		t.Fatalf("recentMessages: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no stored messages for blocked submissions, got %d", len(msgs))
	}
}

func TestContactValidSubmissionStoresMessage(t *testing.T) {
	r := testRouter(t)

	w := postForm(t, r, "/contact", url.Values{
		"fullName": {"Zach"},
		"email":    {"foo@bar.com"},
		"message":  {"hello there"},
	})
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	// SMTP is unconfigured in tests, so the message lands in the outbox
	// and the user still sees success.
	if doc.Find(".form-success").Length() != 1 {
		t.Fatal("expected a success fragment")
	}

	msgs, err := recentMessages(10)
	if err != nil {
		t.Fatalf("recentMessages: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one stored message, got %d", len(msgs))
	}
	if msgs[0].Name != "Zach" || msgs[0].Email != "foo@bar.com" {
		t.Errorf("stored message fields wrong: %+v", msgs[0])
	}
	if msgs[0].Delivered {
		t.Error("expected the message to be marked undelivered without SMTP")
	}
	if msgs[0].ID == "" {
		t.Error("expected a generated message id")
	}
}

func TestHealthz(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestAdminStatsRequiresAuth(t *testing.T) {
	r := testRouter(t)

	w := get(t, r, "/admin/api/stats")
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect to login, got %d", w.Code)
	}

	req := httptest.NewRequest("GET", "/admin/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: adminToken})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with the admin cookie, got %d", rec.Code)
	}

	var stats AdminStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
}

func TestAdminLoginSetsCookie(t *testing.T) {
	r := testRouter(t)

	w := postForm(t, r, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect to dashboard, got %d", w.Code)
	}
	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_token" && c.Value == adminToken {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the admin token cookie to be set")
	}

	w = postForm(t, r, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", w.Code)
	}
}

func TestVisitorTrackingRespectsDNT(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("DNT", "1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHashIPConsistentAndTruncated(t *testing.T) {
	hashingSalt = "test-salt"
	a := hashIP("203.0.113.9")
	b := hashIP("203.0.113.9")
	c := hashIP("203.0.113.10")
	if a != b {
		t.Error("expected consistent hashes per IP")
	}
	if a == c {
		t.Error("expected different IPs to hash differently")
	}
	if len(a) != 16 {
		t.Errorf("expected a 16-character truncated hash, got %d", len(a))
	}
}
