// Package flagx holds argument helpers that let several configuration
// layers share one command line: each layer picks out only the flags it
// owns, and commands read their positional arguments separately.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args that belongs to allowedFlags,
// together with their values.
//
// Both "-f value" and "-f=value" forms are recognised. A value is only
// taken from the next argument when it does not itself start with '-'.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// Positional returns the arguments that are not flags. valueFlags lists the
// flags that consume the following argument as their value; any other flag
// (boolean or unknown) stands alone. Everything after "--" is positional.
func Positional(args []string, valueFlags []string) []string {
	takesValue := make(map[string]struct{}, len(valueFlags))
	for _, f := range valueFlags {
		takesValue[f] = struct{}{}
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			return append(out, args[i+1:]...)
		}

		if len(arg) < 2 || !strings.HasPrefix(arg, "-") {
			out = append(out, arg)
			continue
		}

		if strings.Contains(arg, "=") {
			continue
		}

		if _, ok := takesValue[arg]; ok && i+1 < len(args) {
			i++
		}
	}

	return out
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// Other arguments are ignored. An empty string means no file was requested.
func JsonConfigFlags(args []string) string {
	var config string

	filtered := FilterArgs(args, []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(filtered)

	return config
}

// FilterBoolArgs returns the occurrences of the boolean flags in names, in
// either "-f" or "-f=value" form. Unlike FilterArgs it never takes the
// following argument as a value.
func FilterBoolArgs(args []string, names []string) []string {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}

	filtered := make([]string, 0)
	for _, arg := range args {
		name := strings.SplitN(arg, "=", 2)[0]
		if _, ok := allowed[name]; ok {
			filtered = append(filtered, arg)
		}
	}
	return filtered
}
