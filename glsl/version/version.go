// Package version reads the #version directive of a GLSL ES shader and
// checks it against semantic version constraints.
package version

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Default is the language version of a shader without a #version directive.
const Default = 100

var ErrMalformed = errors.New("malformed #version directive")

type Directive struct {
	// Number is the version as written, e.g. 300. It is Default when the
	// directive is absent.
	Number  int
	Profile string
	// Line is the 1-based line of the directive, or 0 when it is absent.
	Line int
}

func (d Directive) Present() bool {
	return d.Line > 0
}

// Semver maps the directive number to a semantic version: 100 is 1.0.0,
// 300 is 3.0.0 and 310 is 3.1.0.
func (d Directive) Semver() *semver.Version {
	return semver.New(uint64(d.Number/100), uint64(d.Number%100/10), uint64(d.Number%10), "", "")
}

func (d Directive) String() string {
	if d.Profile == "" {
		return strconv.Itoa(d.Number)
	}
	return fmt.Sprintf("%d %s", d.Number, d.Profile)
}

// Detect finds the #version directive. Only blank lines and comments may
// come before it; a #version after any other content is ignored, as is
// everything after the first line of code.
func Detect(src []byte) (Directive, error) {
	s := scanner{src: src, line: 1}
	s.skipSpace()
	if s.pos >= len(s.src) || s.src[s.pos] != '#' {
		return Directive{Number: Default}, nil
	}
	fields := strings.Fields(strings.TrimPrefix(s.directive(), "#"))
	if len(fields) == 0 || fields[0] != "version" {
		// No other directive may precede #version.
		return Directive{Number: Default}, nil
	}
	return parseDirective(fields[1:], s.line)
}

func parseDirective(args []string, line int) (Directive, error) {
	if len(args) == 0 || len(args) > 2 {
		return Directive{}, fmt.Errorf("line %d: %w", line, ErrMalformed)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return Directive{}, fmt.Errorf("line %d: %w: %q is not a version number", line, ErrMalformed, args[0])
	}
	d := Directive{Number: n, Line: line}
	if len(args) == 2 {
		d.Profile = args[1]
	}
	return d, nil
}

// Check detects the version of src and reports an error if it does not
// satisfy constraint, e.g. ">= 3.0".
func Check(src []byte, constraint string) (Directive, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return Directive{}, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	d, err := Detect(src)
	if err != nil {
		return d, err
	}
	if !c.Check(d.Semver()) {
		return d, fmt.Errorf("GLSL ES version %s (%s) does not satisfy %s", d, d.Semver(), constraint)
	}
	return d, nil
}

type scanner struct {
	src  []byte
	pos  int
	line int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == '\n':
			s.line++
			s.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			s.pos++
		case bytes.HasPrefix(s.src[s.pos:], []byte("//")):
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case bytes.HasPrefix(s.src[s.pos:], []byte("/*")):
			end := bytes.Index(s.src[s.pos+2:], []byte("*/"))
			if end < 0 {
				end = len(s.src) - s.pos - 2
			} else {
				end += 2
			}
			comment := s.src[s.pos : s.pos+2+end]
			s.line += bytes.Count(comment, []byte("\n"))
			s.pos += len(comment)
		default:
			return
		}
	}
}

// directive returns the rest of the current line, without any trailing
// comment.
func (s *scanner) directive() string {
	end := bytes.IndexByte(s.src[s.pos:], '\n')
	if end < 0 {
		end = len(s.src) - s.pos
	}
	text := string(s.src[s.pos : s.pos+end])
	if i := strings.Index(text, "//"); i >= 0 {
		text = text[:i]
	}
	if i := strings.Index(text, "/*"); i >= 0 {
		text = text[:i]
	}
	return text
}
