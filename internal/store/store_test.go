package store

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateSessionAndPoints(t *testing.T) {
	s := tempDB(t)

	sess, err := s.CreateSession("warmup")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.SessionID == "" {
		t.Fatal("expected non-empty session ID")
	}
	if sess.Label != "warmup" {
		t.Fatalf("label = %q, want warmup", sess.Label)
	}

	throws := []geom.Vec2{
		{X: 1.5, Y: -2.25}, {X: 0, Y: 0}, {X: -3.125, Y: 4.5},
	}
	for _, p := range throws {
		if err := s.AddPoint(sess.SessionID, p); err != nil {
			t.Fatalf("AddPoint: %v", err)
		}
	}

	got, err := s.SessionPoints(sess.SessionID)
	if err != nil {
		t.Fatalf("SessionPoints: %v", err)
	}
	if len(got) != len(throws) {
		t.Fatalf("got %d points, want %d", len(got), len(throws))
	}
	for i := range throws {
		if got[i] != throws[i] {
			t.Fatalf("point %d = %+v, want %+v (insertion order must hold)", i, got[i], throws[i])
		}
	}
}

func TestSessionPointsEmptySession(t *testing.T) {
	s := tempDB(t)

	sess, err := s.CreateSession("empty")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	points, err := s.SessionPoints(sess.SessionID)
	if err != nil {
		t.Fatalf("SessionPoints: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected no points, got %d", len(points))
	}
}

func TestListSessions(t *testing.T) {
	s := tempDB(t)

	if _, err := s.CreateSession("first"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := s.CreateSession("second"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	sessions, err := s.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	for _, sess := range sessions {
		if sess.SessionID == "" || sess.CreatedAt.IsZero() {
			t.Fatalf("incomplete session row: %+v", sess)
		}
	}
}

func TestSolveLogRoundTrip(t *testing.T) {
	s := tempDB(t)

	entries := []SolveEntry{
		{RunID: "run-1", Rule: "double", State: 501, Value: 14.25, AimX: 12.5, AimY: -3.75, Samples: 10000, ElapsedMS: 1250},
		{RunID: "run-1", Rule: "double", State: 40, Value: 1.5, AimX: 0, AimY: -166, Samples: 10000, ElapsedMS: 310},
	}
	for _, e := range entries {
		if err := s.LogSolve(e); err != nil {
			t.Fatalf("LogSolve: %v", err)
		}
	}

	got, err := s.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	// Newest first.
	if got[0].State != 40 || got[1].State != 501 {
		t.Fatalf("unexpected order: states %d, %d", got[0].State, got[1].State)
	}
	if got[1].Value != 14.25 || got[1].AimX != 12.5 || got[1].AimY != -3.75 {
		t.Fatalf("entry fields lost: %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("created_at not stored")
	}
}

func TestRecentSolvesHonorsLimit(t *testing.T) {
	s := tempDB(t)

	for i := 0; i < 5; i++ {
		if err := s.LogSolve(SolveEntry{RunID: "run", Rule: "any", State: i + 1, Value: 1}); err != nil {
			t.Fatalf("LogSolve: %v", err)
		}
	}

	got, err := s.RecentSolves(3)
	if err != nil {
		t.Fatalf("RecentSolves: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
}
