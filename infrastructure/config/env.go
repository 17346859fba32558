package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	domainconfig "github.com/felixgeelhaar/graphs/domain/config"
)

var (
	// ${VAR}, ${VAR:-default}, ${VAR:?message}
	bracketVar = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:[-?])([^}]*))?\}`)
	// $VAR
	simpleVar = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expand substitutes environment variables in input.
//
// Unset variables expand to the empty string unless strict is set, in which
// case they are reported. ${VAR:?message} always reports an unset or empty
// VAR.
func expand(input string, strict bool) (string, error) {
	var missing []string

	lookup := func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok && strict {
			missing = append(missing, name)
		}
		return value
	}

	out := bracketVar.ReplaceAllStringFunc(input, func(match string) string {
		m := bracketVar.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		switch op {
		case ":-":
			if v := os.Getenv(name); v != "" {
				return v
			}
			return arg
		case ":?":
			if v := os.Getenv(name); v != "" {
				return v
			}
			missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
			return match
		default:
			return lookup(name)
		}
	})

	out = simpleVar.ReplaceAllStringFunc(out, func(match string) string {
		return lookup(match[1:])
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", domainconfig.ErrMissingEnvVar, strings.Join(missing, ", "))
	}
	return out, nil
}

// ExpandEnv expands environment variables, leaving unset ones empty.
func ExpandEnv(input string) string {
	out, _ := expand(input, false)
	return out
}

// ExpandEnvStrict expands environment variables and returns an error for
// missing ones.
func ExpandEnvStrict(input string) (string, error) {
	return expand(input, true)
}
