package console

// CurrentFlags holds the modifier flags (like -v, --copy) of the command group being executed.
var CurrentFlags []string

func hasFlag(names ...string) bool {
	for _, f := range CurrentFlags {
		for _, n := range names {
			if f == n {
				return true
			}
		}
	}
	return false
}

// Verbose returns true if the --verbose flag is set.
func Verbose() bool {
	return hasFlag("-v", "--verbose")
}
