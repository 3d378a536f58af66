package submit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/shifthope/pkg/clock"
	"tableflip.dev/shifthope/pkg/remote"
	"tableflip.dev/shifthope/pkg/schedule"
	"tableflip.dev/shifthope/pkg/state"
	"tableflip.dev/shifthope/pkg/store"
)

type memoryPersistence struct {
	values map[string]string
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{values: map[string]string{}}
}

func (m *memoryPersistence) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryPersistence) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memoryPersistence) Remove(key string) error {
	delete(m.values, key)
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// seed fills the current month with two timed days and one note-only day.
func seed(t *testing.T, p store.Persistence) (year int, monthDays int) {
	t.Helper()
	svc := state.New(p)
	st := svc.State()

	key := func(d int) schedule.DateKey {
		return schedule.DateKey{Year: st.Year, Month: st.Month, Day: d}
	}

	e := &schedule.Entry{}
	e.SetSlots(schedule.NewSlot(clock.Minutes(540), clock.Minutes(720)), nil)
	svc.SaveDay(key(3), e)
	svc.SetAllDay(key(4))

	noteOnly := &schedule.Entry{}
	noteOnly.SetNotes("maybe")
	svc.SaveDay(key(5), noteOnly)

	svc.SetEmployee("yamada")
	return st.Year, 2
}

func TestRunPostsPayload(t *testing.T) {
	p := newMemoryPersistence()
	year, timedDays := seed(t, p)

	var got remote.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("payload: %v", err)
		}
	}))
	defer srv.Close()

	s := Submit{Persistence: p, Client: remote.New(srv.URL)}
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if res.Outcome != remote.SubmittedRemotely {
		t.Fatalf("outcome = %s", res.Outcome)
	}
	if res.DayCount != timedDays {
		t.Fatalf("day count = %d, want %d", res.DayCount, timedDays)
	}
	if got.EmployeeName != "yamada" || got.Year != year {
		t.Fatalf("payload = %+v", got)
	}
	if len(got.Days) != 3 {
		t.Fatalf("payload days = %d, want 3 (note-only day included)", len(got.Days))
	}
	if got.SubmittedAt.IsZero() {
		t.Fatal("payload missing submittedAt")
	}

	if !state.New(p).State().Submitted {
		t.Fatal("submitted flag not persisted")
	}
}

func TestRunWithoutEndpoint(t *testing.T) {
	p := newMemoryPersistence()
	seed(t, p)

	s := Submit{Persistence: p, Client: remote.New("")}
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != remote.SubmittedLocallyOnly {
		t.Fatalf("outcome = %s", res.Outcome)
	}
	if !state.New(p).State().Submitted {
		t.Fatal("submitted flag not persisted")
	}
}

func TestRunKeepsLocalMarkOnWireFailure(t *testing.T) {
	p := newMemoryPersistence()
	seed(t, p)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := Submit{Persistence: p, Client: remote.New(srv.URL)}
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != remote.Failed || res.Reason == nil {
		t.Fatalf("result = %+v", res)
	}
	if !state.New(p).State().Submitted {
		t.Fatal("local mark should survive a failed post")
	}
}

func TestRunRequiresEmployee(t *testing.T) {
	s := Submit{Persistence: newMemoryPersistence(), Client: remote.New("")}
	if _, err := s.Run(context.Background()); err == nil {
		t.Fatal("want error without an employee name")
	}
}

func TestRunEmployeeOverride(t *testing.T) {
	p := newMemoryPersistence()
	seed(t, p)

	s := Submit{Persistence: p, Client: remote.New(""), Employee: "suzuki"}
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := state.New(p).State().EmployeeName; got != "suzuki" {
		t.Fatalf("employee = %q, want override stored", got)
	}
}

func TestRunFallbackEmployee(t *testing.T) {
	var got remote.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
	}))
	defer srv.Close()

	p := newMemoryPersistence()
	svc := state.New(p)
	st := svc.State()
	svc.SetAllDay(schedule.DateKey{Year: st.Year, Month: st.Month, Day: 10})

	s := Submit{Persistence: p, Client: remote.New(srv.URL), Fallback: "tanaka"}
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != remote.SubmittedRemotely {
		t.Fatalf("outcome = %v", res.Outcome)
	}
	if got.EmployeeName != "tanaka" {
		t.Fatalf("payload employee = %q, want fallback", got.EmployeeName)
	}
	// The fallback is per-run; nothing is stored.
	if name := state.New(p).State().EmployeeName; name != "" {
		t.Fatalf("stored employee = %q, want empty", name)
	}
}
