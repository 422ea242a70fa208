// Package profile reads IES LM-63 photometric profiles and samples them as
// normalized intensity, for shaping the light of spot and point lights.
package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

var (
	ErrInvalid       = errors.New("invalid photometric profile")
	ErrUnexpectedEOF = errors.New("unexpected end of photometric profile")
)

type Format int

const (
	LM63_1991 Format = iota
	LM63_1995
	LM63_2002
)

var headers = map[string]Format{
	"IESNA91":          LM63_1991,
	"IESNA:LM-63-1995": LM63_1995,
	"IESNA:LM-63-2002": LM63_2002,
}

func (f Format) String() string {
	switch f {
	case LM63_1991:
		return "LM-63-1991"
	case LM63_1995:
		return "LM-63-1995"
	case LM63_2002:
		return "LM-63-2002"
	}
	return "unknown"
}

// Symmetry is derived from the last horizontal angle of the profile.
type Symmetry int

const (
	// Lateral profiles have a single horizontal plane.
	Lateral Symmetry = iota
	// Quadrant profiles cover 0-90 degrees and are mirrored in both planes.
	Quadrant
	// Hemisphere profiles cover 0-180 degrees and are mirrored once.
	Hemisphere
	// None covers the full 0-360 degrees.
	None
)

func (s Symmetry) String() string {
	switch s {
	case Lateral:
		return "lateral"
	case Quadrant:
		return "quadrant"
	case Hemisphere:
		return "hemisphere"
	case None:
		return "none"
	}
	return "unknown"
}

// Profile holds the photometric data of one luminaire. Candela values are stored
// per horizontal angle, each row holding one value per vertical angle.
type Profile struct {
	Format   Format
	Keywords map[string]string
	Tilt     string

	Lamps             int
	LumensPerLamp     float32
	CandelaMultiplier float32
	PhotometricType   int
	UnitsType         int
	Width             float32
	Length            float32
	Height            float32
	BallastFactor     float32
	InputWatts        float32

	VerticalAngles   []float32
	HorizontalAngles []float32
	Candelas         []float32
	MaxCandela       float32
	Symmetry         Symmetry
}

func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse reads an LM-63 profile. Numbers may be split over lines freely after the
// TILT line.
func Parse(r io.Reader) (*Profile, error) {
	s := &scanner{lines: bufio.NewScanner(r)}

	header, ok := s.line()
	if !ok {
		return nil, s.eof("header")
	}
	format, ok := headers[strings.TrimSpace(header)]
	if !ok {
		return nil, fmt.Errorf("profile: %w: header %q", ErrInvalid, header)
	}

	p := &Profile{Format: format, Keywords: make(map[string]string)}
	for {
		line, ok := s.line()
		if !ok {
			return nil, s.eof("TILT")
		}
		line = strings.TrimSpace(line)
		if tilt, found := strings.CutPrefix(line, "TILT="); found {
			p.Tilt = tilt
			break
		}
		if key, value, found := parseKeyword(line); found {
			p.Keywords[key] = value
		}
	}
	if p.Tilt == "INCLUDE" {
		for range 4 {
			if _, ok := s.line(); !ok {
				return nil, s.eof("tilt data")
			}
		}
	}

	if err := p.parseData(s); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) parseData(s *scanner) error {
	var numVertical, numHorizontal int
	var future float32

	fields := []struct {
		name string
		f    *float32
		i    *int
	}{
		{"number of lamps", nil, &p.Lamps},
		{"lumens per lamp", &p.LumensPerLamp, nil},
		{"candela multiplier", &p.CandelaMultiplier, nil},
		{"number of vertical angles", nil, &numVertical},
		{"number of horizontal angles", nil, &numHorizontal},
		{"photometric type", nil, &p.PhotometricType},
		{"units type", nil, &p.UnitsType},
		{"width", &p.Width, nil},
		{"length", &p.Length, nil},
		{"height", &p.Height, nil},
		{"ballast factor", &p.BallastFactor, nil},
		{"future use", &future, nil},
		{"input watts", &p.InputWatts, nil},
	}
	for _, fd := range fields {
		var err error
		if fd.i != nil {
			err = s.readInt(fd.i, fd.name)
		} else {
			err = s.readFloat(fd.f, fd.name)
		}
		if err != nil {
			return err
		}
	}

	if numVertical <= 0 || numHorizontal <= 0 {
		return fmt.Errorf("profile: %w: %d vertical and %d horizontal angles", ErrInvalid, numVertical, numHorizontal)
	}

	var err error
	if p.VerticalAngles, err = s.readFloats(numVertical, "vertical angles"); err != nil {
		return err
	}
	if p.HorizontalAngles, err = s.readFloats(numHorizontal, "horizontal angles"); err != nil {
		return err
	}
	if p.Candelas, err = s.readFloats(numVertical*numHorizontal, "candela values"); err != nil {
		return err
	}
	for _, c := range p.Candelas {
		p.MaxCandela = math32.Max(p.MaxCandela, c)
	}

	switch last := p.HorizontalAngles[numHorizontal-1]; last {
	case 0:
		p.Symmetry = Lateral
	case 90:
		p.Symmetry = Quadrant
	case 180:
		p.Symmetry = Hemisphere
	case 360:
		p.Symmetry = None
	default:
		return fmt.Errorf("profile: %w: last horizontal angle %g", ErrInvalid, last)
	}
	return nil
}

// parseKeyword splits a "[KEY] value" line.
func parseKeyword(line string) (key, value string, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return "", "", false
	}
	return line[1:end], strings.TrimSpace(line[end+1:]), true
}

// scanner hands out whole lines for the header and comma or space separated
// numbers for the data that follows.
type scanner struct {
	lines  *bufio.Scanner
	tokens []string
}

func (s *scanner) line() (string, bool) {
	if !s.lines.Scan() {
		return "", false
	}
	return s.lines.Text(), true
}

func (s *scanner) eof(what string) error {
	if err := s.lines.Err(); err != nil {
		return fmt.Errorf("profile: reading %s: %w", what, err)
	}
	return fmt.Errorf("profile: %w: reading %s", ErrUnexpectedEOF, what)
}

func (s *scanner) token(what string) (string, error) {
	for len(s.tokens) == 0 {
		line, ok := s.line()
		if !ok {
			return "", s.eof(what)
		}
		s.tokens = strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
	}
	t := s.tokens[0]
	s.tokens = s.tokens[1:]
	return t, nil
}

func (s *scanner) readFloat(dst *float32, what string) error {
	t, err := s.token(what)
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(t, 32)
	if err != nil {
		return fmt.Errorf("profile: %w: %s %q", ErrInvalid, what, t)
	}
	*dst = float32(f)
	return nil
}

func (s *scanner) readInt(dst *int, what string) error {
	var f float32
	if err := s.readFloat(&f, what); err != nil {
		return err
	}
	*dst = int(f)
	return nil
}

func (s *scanner) readFloats(n int, what string) ([]float32, error) {
	values := make([]float32, n)
	for i := range values {
		if err := s.readFloat(&values[i], what); err != nil {
			return nil, err
		}
	}
	return values, nil
}
