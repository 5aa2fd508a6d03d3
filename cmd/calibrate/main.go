package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/darts-advisor/internal/config"
	"github.com/danielpatrickdp/darts-advisor/internal/dist"
	"github.com/danielpatrickdp/darts-advisor/internal/geom"
	"github.com/danielpatrickdp/darts-advisor/internal/store"
)

// #region main
// Records throw positions into a new calibration session. Input is one
// `x y` pair per line on stdin; on EOF the fitted distribution
// parameters are printed.
func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	label := "calibration"
	if len(os.Args) > 1 {
		label = os.Args[1]
	}

	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	session, err := db.CreateSession(label)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	fmt.Printf("session %s (%s)\n", session.SessionID, session.Label)
	fmt.Println("Enter throw positions as 'x y', one per line (EOF to finish):")

	var points []geom.Vec2
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Printf("skipping %q: expected 'x y'", line)
			continue
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			log.Printf("skipping %q: expected numbers", line)
			continue
		}

		p := geom.Vec2{X: x, Y: y}
		if err := db.AddPoint(session.SessionID, p); err != nil {
			log.Fatalf("store point: %v", err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}

	fmt.Printf("recorded %d throws\n", len(points))

	fitted, err := dist.NewNormalQuadratureFromPoints(points, cfg.Seed)
	if err != nil {
		log.Fatalf("fit distribution: %v", err)
	}
	mean := fitted.Mean()
	cov := fitted.Cov()
	fmt.Printf("mean: (%.3f, %.3f)\n", mean.X, mean.Y)
	fmt.Printf("cov:  [[%.3f, %.3f], [%.3f, %.3f]]\n",
		cov[0][0], cov[0][1], cov[1][0], cov[1][1])
}
// #endregion main
