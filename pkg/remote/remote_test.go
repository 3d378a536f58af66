package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tableflip.dev/shifthope/pkg/schedule"
)

func TestEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"employees":["sato","suzuki"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	got, err := c.Employees(context.Background())
	if err != nil {
		t.Fatalf("Employees: %v", err)
	}
	if len(got) != 2 || got[0] != "sato" || got[1] != "suzuki" {
		t.Fatalf("employees = %v", got)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("employeeName") != "sato" || q.Get("year") != "2025" || q.Get("month") != "3" {
			t.Fatalf("query = %v", q)
		}
		w.Write([]byte(`{"monthNotes":"from sheet","days":{"2025-3-10":{"allDay":true,"slot1":null,"slot2":null,"notes":""}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	sub, err := c.Fetch(context.Background(), "sato", 2025, time.March)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if sub.MonthNotes == nil || *sub.MonthNotes != "from sheet" {
		t.Fatalf("monthNotes = %v", sub.MonthNotes)
	}
	k := schedule.DateKey{Year: 2025, Month: time.March, Day: 10}
	if e := sub.Days[k]; e == nil || !e.AllDay {
		t.Fatalf("days = %v", sub.Days)
	}
}

func TestFetchAppendsToExistingQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("token") != "abc" || q.Get("employeeName") != "sato" {
			t.Fatalf("query = %v", q)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "?token=abc")
	if _, err := c.Fetch(context.Background(), "sato", 2025, time.March); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
}

func TestFetchNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>login page</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Fetch(context.Background(), "sato", 2025, time.March); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSubmit(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
			t.Fatalf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Submit(context.Background(), Payload{
		EmployeeName: "sato",
		Year:         2025,
		Month:        3,
		Days: map[schedule.DateKey]*schedule.Entry{
			{Year: 2025, Month: time.March, Day: 10}: {AllDay: true},
		},
		SubmittedAt: time.Date(2025, time.March, 20, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.EmployeeName != "sato" || got.Month != 3 {
		t.Fatalf("payload = %+v", got)
	}
	if len(got.Days) != 1 {
		t.Fatalf("days = %v", got.Days)
	}
}

func TestNotConfigured(t *testing.T) {
	c := New("")
	if _, err := c.Employees(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Employees err = %v", err)
	}
	if err := c.Submit(context.Background(), Payload{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Submit err = %v", err)
	}
}

func TestOutcomeString(t *testing.T) {
	if SubmittedRemotely.String() != "submitted remotely" {
		t.Fatalf("SubmittedRemotely = %q", SubmittedRemotely)
	}
	if SubmittedLocallyOnly.String() != "submitted locally only" {
		t.Fatalf("SubmittedLocallyOnly = %q", SubmittedLocallyOnly)
	}
}

func TestSubmitErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Submit(context.Background(), Payload{}); err == nil {
		t.Fatal("want error for 500 response")
	}
}
