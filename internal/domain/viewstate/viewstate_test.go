package viewstate

import (
	"testing"
	"time"
)

type rec struct {
	id     string
	status string
}

func idOf(r rec) string { return r.id }

func TestSplice(t *testing.T) {
	t.Run("remembered records go ahead of the page, newest first", func(t *testing.T) {
		s := New[rec](time.Minute, 10)
		s.Remember("pending", "a", rec{id: "a"})
		s.Remember("pending", "b", rec{id: "b"})

		got := s.Splice("pending", []rec{{id: "x"}, {id: "y"}}, idOf, nil)
		if len(got) != 4 {
			t.Fatalf("expected 4 records, got %d", len(got))
		}
		if got[0].id != "b" || got[1].id != "a" || got[2].id != "x" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("page copy supersedes the remembered copy", func(t *testing.T) {
		s := New[rec](time.Minute, 10)
		s.Remember("pending", "a", rec{id: "a", status: "stale"})

		got := s.Splice("pending", []rec{{id: "a", status: "indexed"}}, idOf, nil)
		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d", len(got))
		}
		if got[0].status != "indexed" {
			t.Fatalf("expected indexed copy to win, got %+v", got[0])
		}

		// The remembered copy was dropped, not just hidden.
		got = s.Splice("pending", nil, idOf, nil)
		if len(got) != 0 {
			t.Fatalf("expected remembered copy gone, got %+v", got)
		}
	})

	t.Run("keep predicate filters without dropping", func(t *testing.T) {
		s := New[rec](time.Minute, 10)
		s.Remember("pending", "a", rec{id: "a", status: "completed"})
		s.Remember("pending", "b", rec{id: "b", status: "pending"})

		onlyPending := func(r rec) bool { return r.status == "pending" }
		got := s.Splice("pending", nil, idOf, onlyPending)
		if len(got) != 1 || got[0].id != "b" {
			t.Fatalf("unexpected result: %+v", got)
		}

		// A later splice without the predicate still sees both.
		got = s.Splice("pending", nil, idOf, nil)
		if len(got) != 2 {
			t.Fatalf("expected both entries kept, got %+v", got)
		}
	})

	t.Run("remember replaces an entry with the same id", func(t *testing.T) {
		s := New[rec](time.Minute, 10)
		s.Remember("pending", "a", rec{id: "a", status: "v1"})
		s.Remember("pending", "a", rec{id: "a", status: "v2"})

		got := s.Splice("pending", nil, idOf, nil)
		if len(got) != 1 || got[0].status != "v2" {
			t.Fatalf("expected single v2 entry, got %+v", got)
		}
	})

	t.Run("expired entries are pruned", func(t *testing.T) {
		s := New[rec](time.Nanosecond, 10)
		s.Remember("pending", "a", rec{id: "a"})
		time.Sleep(time.Millisecond)

		got := s.Splice("pending", []rec{{id: "x"}}, idOf, nil)
		if len(got) != 1 || got[0].id != "x" {
			t.Fatalf("expected only the page, got %+v", got)
		}
	})

	t.Run("per-scope cap drops the oldest", func(t *testing.T) {
		s := New[rec](time.Minute, 2)
		s.Remember("pending", "a", rec{id: "a"})
		s.Remember("pending", "b", rec{id: "b"})
		s.Remember("pending", "c", rec{id: "c"})

		got := s.Splice("pending", nil, idOf, nil)
		if len(got) != 2 || got[0].id != "c" || got[1].id != "b" {
			t.Fatalf("expected newest two, got %+v", got)
		}
	})

	t.Run("scopes are independent", func(t *testing.T) {
		s := New[rec](time.Minute, 10)
		s.Remember("pending", "a", rec{id: "a"})

		got := s.Splice("completed", nil, idOf, nil)
		if len(got) != 0 {
			t.Fatalf("expected empty scope, got %+v", got)
		}
	})
}

func TestForget(t *testing.T) {
	s := New[rec](time.Minute, 10)
	s.Remember("pending", "a", rec{id: "a"})
	s.Remember("pending", "b", rec{id: "b"})
	s.Forget("pending", "a")

	got := s.Splice("pending", nil, idOf, nil)
	if len(got) != 1 || got[0].id != "b" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
