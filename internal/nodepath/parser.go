package nodepath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rootSegment is the mandatory first segment of every path.
const rootSegment = "root"

// MaxSteps is the longest path Parse accepts, counting every repeat.
const MaxSteps = 1 << 16

// ErrInvalidPath is wrapped by every parse failure.
var ErrInvalidPath = errors.New("invalid node path")

// stepRegex matches a single step, e.g. `left`, `r` or `right[3]`.
var stepRegex = regexp.MustCompile(`^(left|right|l|r)(?:\[(\d+)\])?$`)

// Parse converts the canonical string form into a Path.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	segments := strings.Split(raw, ".")
	if segments[0] != rootSegment {
		return nil, fmt.Errorf("%w: %q must start with %q", ErrInvalidPath, raw, rootSegment)
	}

	path := Path{}
	for _, segment := range segments[1:] {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPath, raw)
		}

		matches := stepRegex.FindStringSubmatch(segment)
		if matches == nil {
			return nil, fmt.Errorf("%w: unknown step %q", ErrInvalidPath, segment)
		}

		side := Left
		if matches[1] == "right" || matches[1] == "r" {
			side = Right
		}

		repeat := 1
		if matches[2] != "" {
			n, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("%w: repeat count in %q: %w", ErrInvalidPath, segment, err)
			}
			if n == 0 {
				return nil, fmt.Errorf("%w: repeat count in %q must be positive", ErrInvalidPath, segment)
			}
			repeat = n
		}
		if repeat > MaxSteps-len(path) {
			return nil, fmt.Errorf("%w: %q is longer than %d steps", ErrInvalidPath, raw, MaxSteps)
		}
		for range repeat {
			path = append(path, side)
		}
	}

	return path, nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
