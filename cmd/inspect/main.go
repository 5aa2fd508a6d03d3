package main

import (
	"fmt"
	"log"

	"github.com/danielpatrickdp/darts-advisor/internal/config"
	"github.com/danielpatrickdp/darts-advisor/internal/store"
)

// #region main
// Prints the stored calibration sessions and the most recent solver
// results.
func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	sessions, err := db.ListSessions()
	if err != nil {
		log.Fatalf("list sessions: %v", err)
	}
	fmt.Printf("calibration sessions: %d\n", len(sessions))
	for _, sess := range sessions {
		points, err := db.SessionPoints(sess.SessionID)
		if err != nil {
			log.Fatalf("session points: %v", err)
		}
		fmt.Printf("  %s  %-20s %3d throws  %s\n",
			sess.SessionID, sess.Label, len(points),
			sess.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	solves, err := db.RecentSolves(20)
	if err != nil {
		log.Fatalf("recent solves: %v", err)
	}
	fmt.Printf("\nrecent solves: %d\n", len(solves))
	for _, e := range solves {
		fmt.Printf("  state %3d  rule %-6s value %10.3f  aim (%7.1f, %7.1f)  %dms\n",
			e.State, e.Rule, e.Value, e.AimX, e.AimY, e.ElapsedMS)
	}
}
// #endregion main
