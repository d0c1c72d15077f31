// Package flagx helps several components share one command line: each
// picks out only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// flagName strips the leading dashes, so -config and --config are the same flag.
func flagName(arg string) string {
	return strings.TrimLeft(arg, "-")
}

// FilterArgs returns the subset of args made of the allowed flags and their
// values. Both "-f value" and "-f=value" are kept; the single or double dash
// form of a flag matches either spelling in allowedFlags. A following token
// that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[flagName(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if _, found := allowed[flagName(name)]; found {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, found := allowed[flagName(arg)]; !found {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFile returns the value of -c / -config from args, or "" when absent.
// The last occurrence wins.
func ConfigFile(args []string) string {
	return stringFlag(args, "config file path", "c", "config")
}

// EnvFile returns the value of -env from args, or "" when absent.
func EnvFile(args []string) string {
	return stringFlag(args, "dotenv file path", "env")
}

func stringFlag(args []string, usage string, names ...string) string {
	var value string

	allowed := make([]string, 0, len(names))
	fs := flag.NewFlagSet(names[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", usage)
		allowed = append(allowed, "-"+n)
	}
	_ = fs.Parse(FilterArgs(args, allowed))

	return value
}
