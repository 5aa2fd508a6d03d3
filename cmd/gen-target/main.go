package main

import (
	"flag"
	"log"
	"os"

	"github.com/danielpatrickdp/darts-advisor/internal/target"
)

// #region main
// Generates the standard board as a target file. Every bed is emitted as
// convex pieces so the quadrature integrator is valid on all of them.
func main() {
	subdivisions := flag.Int("subdivisions", 8, "arc subdivisions per 18-degree sector edge")
	output := flag.String("out", "target.out", "output path")
	flag.Parse()

	pieces := target.GenerateBoard(*subdivisions)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer f.Close()

	if err := target.WriteBoard(f, pieces); err != nil {
		log.Fatalf("write board: %v", err)
	}
	log.Printf("wrote %d beds to %s (subdivisions=%d)", len(pieces), *output, *subdivisions)
}
// #endregion main
