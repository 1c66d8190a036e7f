package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

var errPathData = errors.New("svgpath: malformed path data")

// dataScanner walks the bytes of a `d` attribute.
type dataScanner struct {
	b []byte
	i int
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t'
}

func (s *dataScanner) skip() {
	for s.i < len(s.b) && isSeparator(s.b[s.i]) {
		s.i++
	}
}

func (s *dataScanner) done() bool {
	s.skip()
	return s.i >= len(s.b)
}

func (s *dataScanner) number() (float64, error) {
	s.skip()
	f, n := strconv.ParseFloat(s.b[s.i:])
	if n == 0 {
		return 0, fmt.Errorf("%w: number expected at offset %d", errPathData, s.i)
	}
	s.i += n
	return f, nil
}

func (s *dataScanner) numbers(dst []float64) error {
	for i := range dst {
		f, err := s.number()
		if err != nil {
			return err
		}
		dst[i] = f
	}
	return nil
}

// arc flags may be written without separators, as in "a1 1 0 00 1 1"
func (s *dataScanner) flag() (bool, error) {
	s.skip()
	if s.i < len(s.b) && (s.b[s.i] == '0' || s.b[s.i] == '1') {
		s.i++
		return s.b[s.i-1] == '1', nil
	}
	return false, fmt.Errorf("%w: arc flag expected at offset %d", errPathData, s.i)
}

func isPathCommand(c byte) bool {
	switch c | 0x20 {
	case 'm', 'z', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a':
		return true
	}
	return false
}

// ParseData compiles the content of a `d` attribute.
// On error, the path parsed so far is returned with the error,
// so that callers may render up to the first bad command.
func ParseData(d string) (Path, error) {
	var (
		s            = dataScanner{b: []byte(d)}
		p            Path
		cmd, prevCmd byte
		cur, start   Point
		ctrl         Point // last control point, reflected by S and T
		args         [7]float64
	)
	for !s.done() {
		if c := s.b[s.i]; isPathCommand(c) {
			cmd = c
			s.i++
		} else if cmd == 0 {
			return p, fmt.Errorf("%w: command expected at offset %d", errPathData, s.i)
		}
		var off Point
		relative := cmd >= 'a'
		if relative {
			off = cur
		}
		lower := cmd | 0x20
		if len(p) == 0 && lower != 'm' {
			return p, fmt.Errorf("%w: path must start with a moveto, got %q", errPathData, cmd)
		}
		switch lower {
		case 'm':
			if err := s.numbers(args[:2]); err != nil {
				return p, err
			}
			cur = off.Add(Point{args[0], args[1]})
			start = cur
			p.Start(cur)
			// following pairs are implicit line commands
			if relative {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'z':
			p.Stop(true)
			cur = start
			cmd = 0
		case 'l':
			if err := s.numbers(args[:2]); err != nil {
				return p, err
			}
			cur = off.Add(Point{args[0], args[1]})
			p.Line(cur)
		case 'h':
			if err := s.numbers(args[:1]); err != nil {
				return p, err
			}
			cur.X = off.X + args[0]
			p.Line(cur)
		case 'v':
			if err := s.numbers(args[:1]); err != nil {
				return p, err
			}
			cur.Y = off.Y + args[0]
			p.Line(cur)
		case 'c':
			if err := s.numbers(args[:6]); err != nil {
				return p, err
			}
			c1 := off.Add(Point{args[0], args[1]})
			ctrl = off.Add(Point{args[2], args[3]})
			cur = off.Add(Point{args[4], args[5]})
			p.CubeBezier(c1, ctrl, cur)
		case 's':
			if err := s.numbers(args[:4]); err != nil {
				return p, err
			}
			c1 := cur
			if prevCmd == 'c' || prevCmd == 's' {
				c1 = Point{2*cur.X - ctrl.X, 2*cur.Y - ctrl.Y}
			}
			ctrl = off.Add(Point{args[0], args[1]})
			cur = off.Add(Point{args[2], args[3]})
			p.CubeBezier(c1, ctrl, cur)
		case 'q':
			if err := s.numbers(args[:4]); err != nil {
				return p, err
			}
			ctrl = off.Add(Point{args[0], args[1]})
			cur = off.Add(Point{args[2], args[3]})
			p.QuadBezier(ctrl, cur)
		case 't':
			if err := s.numbers(args[:2]); err != nil {
				return p, err
			}
			if prevCmd == 'q' || prevCmd == 't' {
				ctrl = Point{2*cur.X - ctrl.X, 2*cur.Y - ctrl.Y}
			} else {
				ctrl = cur
			}
			cur = off.Add(Point{args[0], args[1]})
			p.QuadBezier(ctrl, cur)
		case 'a':
			if err := s.numbers(args[:3]); err != nil {
				return p, err
			}
			largeArc, err := s.flag()
			if err != nil {
				return p, err
			}
			sweep, err := s.flag()
			if err != nil {
				return p, err
			}
			if err := s.numbers(args[3:5]); err != nil {
				return p, err
			}
			end := off.Add(Point{args[3], args[4]})
			p.arcTo(args[0], args[1], args[2], largeArc, sweep, cur.X, cur.Y, end.X, end.Y)
			cur = end
		}
		prevCmd = lower
	}
	return p, nil
}
