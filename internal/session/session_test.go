package session

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStateApply(t *testing.T) {
	var s State
	if s.HasResult() {
		t.Fatal("zero state has a result")
	}

	s = s.Apply("a+b")
	if s.Snippet != "a+b" {
		t.Fatalf("Snippet = %q, want a+b", s.Snippet)
	}

	s = s.Apply("")
	if s.Snippet != "a+b" {
		t.Errorf("empty result replaced snippet: %q", s.Snippet)
	}

	s = s.Apply("c")
	if s.Snippet != "c" {
		t.Errorf("Snippet = %q, want c (no merge)", s.Snippet)
	}
}

func TestStoreIsolatesSessions(t *testing.T) {
	st := NewStore(time.Hour)
	st.Save("a", State{Snippet: "x"})

	if got := st.Load("a").Snippet; got != "x" {
		t.Errorf("Load(a) = %q, want x", got)
	}
	if st.Load("b").HasResult() {
		t.Error("Load(b) returned another session's snippet")
	}
}

func TestStoreBegin(t *testing.T) {
	st := NewStore(time.Hour)

	done, err := st.Begin("a")
	if err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if _, err := st.Begin("a"); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Begin() = %v, want ErrBusy", err)
	}
	if _, err := st.Begin("b"); err != nil {
		t.Fatalf("Begin(b) error: %v", err)
	}

	done()
	done()

	again, err := st.Begin("a")
	if err != nil {
		t.Fatalf("Begin() after done error: %v", err)
	}
	again()
}

func TestID(t *testing.T) {
	st := NewStore(time.Hour)
	rec := httptest.NewRecorder()
	id := st.ID(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if id == "" {
		t.Fatal("empty session id")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != id {
		t.Fatalf("cookies = %v, want one %s=%s", cookies, CookieName, id)
	}
	if cookies[0].MaxAge != 3600 {
		t.Errorf("cookie MaxAge = %d, want 3600", cookies[0].MaxAge)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	if got := st.ID(rec, req); got != id {
		t.Errorf("ID() = %q, want existing %q", got, id)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("existing session was issued a new cookie")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-uuid"})
	if got := st.ID(httptest.NewRecorder(), req); got == "not-a-uuid" {
		t.Error("invalid cookie value accepted as session id")
	}
}

func TestStoreDropsSessionsWithoutResult(t *testing.T) {
	st := NewStore(time.Hour)

	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("s%d", i)
		done, err := st.Begin(id)
		if err != nil {
			t.Fatal(err)
		}
		st.Save(id, st.Load(id).Apply(""))
		done()
	}
	if n := st.Len(); n != 0 {
		t.Errorf("sessions retained after empty extractions = %d, want 0", n)
	}
}

func TestStoreKeepsSessionWithResultAfterDone(t *testing.T) {
	st := NewStore(time.Hour)
	done, _ := st.Begin("a")
	st.Save("a", st.Load("a").Apply("x"))
	done()

	if got := st.Load("a").Snippet; got != "x" {
		t.Errorf("Snippet = %q, want x", got)
	}
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	st := NewStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	st.Save("old", State{Snippet: "x"})
	now = now.Add(30 * time.Second)
	st.Save("fresh", State{Snippet: "y"})

	now = now.Add(45 * time.Second)
	st.Save("new", State{Snippet: "z"})

	if st.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after idle eviction", st.Len())
	}
	if st.Load("old").HasResult() {
		t.Error("idle session still returned a snippet")
	}
	if st.Load("fresh").Snippet != "y" {
		t.Error("active session was evicted")
	}
}

func TestStoreKeepsInFlightSessionPastTTL(t *testing.T) {
	st := NewStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	done, _ := st.Begin("slow")
	now = now.Add(time.Hour)
	st.Save("other", State{Snippet: "y"})

	if _, err := st.Begin("slow"); !errors.Is(err, ErrBusy) {
		t.Errorf("in-flight session was evicted: Begin() = %v", err)
	}
	done()
}
