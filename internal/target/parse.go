package target

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// #region tokenizer

// tokens reads whitespace-separated fields, mirroring the stream format
// the target files use: layout of lines is irrelevant, only field order.
type tokens struct {
	scanner *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokens{scanner: s}
}

func (t *tokens) next() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return t.scanner.Text(), nil
}

func (t *tokens) nextInt() (int, error) {
	word, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", word)
	}
	return v, nil
}

func (t *tokens) nextFloat() (float64, error) {
	word, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number, got %q", word)
	}
	return v, nil
}

// #endregion tokenizer

// #region parse

// Parse reads a target from its text form: a bed count, then per bed a
// header `score nverts color type` (the color token is discarded)
// followed by nverts coordinate pairs. Scores are stored negated, since
// hitting a bed deducts points.
func Parse(r io.Reader) (*Target, error) {
	tok := newTokens(r)

	numBeds, err := tok.nextInt()
	if err != nil {
		return nil, fmt.Errorf("read bed count: %w", err)
	}
	if numBeds <= 0 {
		return nil, ErrNoBeds
	}

	beds := make([]Bed, 0, numBeds)
	for i := 0; i < numBeds; i++ {
		bed, err := parseBed(tok)
		if err != nil {
			return nil, fmt.Errorf("read bed %d: %w", i, err)
		}
		beds = append(beds, bed)
	}

	return New(beds)
}

func parseBed(tok *tokens) (Bed, error) {
	score, err := tok.nextInt()
	if err != nil {
		return Bed{}, fmt.Errorf("score: %w", err)
	}

	numVerts, err := tok.nextInt()
	if err != nil {
		return Bed{}, fmt.Errorf("vertex count: %w", err)
	}
	if numVerts < 3 {
		return Bed{}, fmt.Errorf("vertex count %d is below 3", numVerts)
	}

	// Color token is carried for renderers only.
	if _, err := tok.next(); err != nil {
		return Bed{}, fmt.Errorf("color: %w", err)
	}

	typeWord, err := tok.next()
	if err != nil {
		return Bed{}, fmt.Errorf("hit type: %w", err)
	}
	hitType := Normal
	switch typeWord {
	case "double":
		hitType = Double
	case "treble":
		hitType = Treble
	}

	verts := make([]geom.Vec2, numVerts)
	for i := range verts {
		x, err := tok.nextFloat()
		if err != nil {
			return Bed{}, fmt.Errorf("vertex %d x: %w", i, err)
		}
		y, err := tok.nextFloat()
		if err != nil {
			return Bed{}, fmt.Errorf("vertex %d y: %w", i, err)
		}
		verts[i] = geom.Vec2{X: x, Y: y}
	}

	return Bed{
		Shape: geom.NewPolygon(verts),
		Hit:   HitData{Type: hitType, Diff: -score},
	}, nil
}

// Load reads a target from a file.
func Load(path string) (*Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open target file: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// #endregion parse
