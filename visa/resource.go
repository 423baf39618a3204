package visa

import (
	"fmt"
	"strconv"
	"strings"
)

// Resource is a parsed VISA-style resource identifier.
//
// Resource identifiers are "::"-separated, with an interface scheme (and
// optional board index) first and an optional resource type last:
//
//	TCPIP::192.168.0.10::5025::SOCKET
//	TCPIP0::psu.lab.local::INSTR
//	ASRL::/dev/ttyUSB0::9600::INSTR
type Resource struct {
	// Raw is the identifier as given.
	Raw string
	// Scheme is the upper-cased interface scheme, e.g. "TCPIP" or "ASRL".
	Scheme string
	// Board is the optional interface index suffixed to the scheme, e.g. 0 for "TCPIP0".
	Board int
	// Args are the segments between the scheme and the resource type.
	Args []string
	// Type is the resource type suffix, "INSTR" if not given.
	Type string
}

// ParseResource parses a VISA-style resource identifier.
//
// It fails with a connection-kind error wrapping ErrEmptyResource or
// ErrInvalidResource; it does not verify that a transport is registered for the
// scheme.
func ParseResource(raw string) (*Resource, error) {
	if raw == "" {
		return nil, &Error{Kind: KindConnection, Op: "parse resource", Err: ErrEmptyResource}
	}

	segments := strings.Split(raw, "::")
	scheme, board, err := splitScheme(segments[0])
	if err != nil {
		return nil, &Error{Kind: KindConnection, Op: "parse resource", Resource: raw, Err: err}
	}

	rsrc := &Resource{
		Raw:    raw,
		Scheme: scheme,
		Board:  board,
		Type:   "INSTR",
	}

	args := segments[1:]
	if n := len(args); n > 0 {
		last := strings.ToUpper(args[n-1])
		if last == "INSTR" || last == "SOCKET" {
			rsrc.Type = last
			args = args[:n-1]
		}
	}
	rsrc.Args = args

	return rsrc, nil
}

// splitScheme splits a leading segment such as "TCPIP0" into the scheme and the
// optional board index.
func splitScheme(segment string) (string, int, error) {
	i := 0
	for i < len(segment) && isAlpha(segment[i]) {
		i++
	}
	if i == 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidResource, segment)
	}

	scheme := strings.ToUpper(segment[:i])
	if i == len(segment) {
		return scheme, 0, nil
	}

	board, err := strconv.Atoi(segment[i:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad board index in %q", ErrInvalidResource, segment)
	}

	return scheme, board, nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// MatchResource reports whether the resource identifier matches a VISA-style
// filter pattern. '?' matches one character, '*' matches any run of characters,
// and matching is case-insensitive. An empty filter matches everything.
func MatchResource(filter, resource string) bool {
	if filter == "" {
		return true
	}
	return matchPattern(strings.ToUpper(filter), strings.ToUpper(resource))
}

func matchPattern(pattern, s string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// collapse consecutive stars
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if matchPattern(pattern, s[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(s) == 0 {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]
		default:
			if len(s) == 0 || pattern[0] != s[0] {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]
		}
	}
	return len(s) == 0
}
