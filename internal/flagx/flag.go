// Package flagx lets several loaders share os.Args without tripping over each
// other's flags: each loader filters the arguments down to the names it owns
// before handing them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
//
// Both "-c value" and "-c=value" are recognised. A value is taken from the
// next argument only when that argument does not itself start with '-'.
// Long "--name" spellings match their single-dash entry in allowed.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		if !isKnown(known, name) {
			continue
		}

		filtered = append(filtered, arg)
		if hasValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

func isKnown(known map[string]struct{}, name string) bool {
	if _, ok := known[name]; ok {
		return true
	}
	if strings.HasPrefix(name, "--") {
		_, ok := known[name[1:]]
		return ok
	}
	return false
}

// ConfigFile returns the JSON config path given with -c or -config, or "".
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
