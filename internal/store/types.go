package store

import "time"

// #region session
// Session is one recorded calibration session: a labeled group of throw
// samples aimed at a fixed reference point.
type Session struct {
	SessionID string
	Label     string
	CreatedAt time.Time
}
// #endregion session

// #region solve-entry
// SolveEntry is one logged solver result. RunID groups the entries of a
// single program run.
type SolveEntry struct {
	RunID     string
	Rule      string
	State     int
	Value     float64
	AimX      float64
	AimY      float64
	Samples   int
	ElapsedMS int64
	CreatedAt time.Time
}
// #endregion solve-entry
