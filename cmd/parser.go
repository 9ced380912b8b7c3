package cmd

import (
	"HueKit/internal/version"
	"fmt"
	"strings"
)

// ArgError describes a malformed command line. Its message renders the
// offending command line with a caret under the failing argument.
type ArgError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The command being processed (e.g. "--to")
}

func (e *ArgError) Error() string {
	indent := "   "

	var cmdLineParts []string
	cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName))

	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}

	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"
	// indent + "'" + command name + " "
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}

	// %c is the command, %o the failing option
	replacer := strings.NewReplacer(
		"%c", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", e.FailingCommand),
		"%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt),
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(GetUsage(e.FailingCommand), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of modifiers and a command with its arguments
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// CommandSlice returns the command and its arguments as a slice
func (cg CommandGroup) CommandSlice() []string {
	var s []string
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

var modifiers = map[string]bool{
	"-v": true, "--verbose": true,
	"-x": true, "--debug": true,
	"-c": true, "--copy": true,
	"-g": true, "--gui": true,
}

// arity is the number of arguments a command consumes. max < 0 means
// everything up to the next flag.
type arity struct {
	min, max int
}

var arities = map[string]arity{
	"-i": {1, -1}, "--info": {1, -1},
	"-t": {2, -1}, "--to": {2, -1},
	"--hex-to-rgba":  {1, -1},
	"--hsla-to-rgba": {1, -1},
	"--rgba-to-hex":  {1, -1},
	"-C": {2, 2}, "--contrast": {2, 2},
	"-F": {1, -1}, "--foreground": {1, -1},
	"-p": {1, 2}, "--palette": {1, 2},
	"--palette-export": {1, 2},
	"--config-set":     {2, 2},
	"-I": {0, 1}, "--inspect": {0, 1},
}

func (a arity) describe() string {
	switch {
	case a.min == a.max && a.min == 1:
		return "an argument"
	case a.min == a.max:
		return fmt.Sprintf("%d arguments", a.min)
	case a.min == 1:
		return "at least one argument"
	}
	return fmt.Sprintf("at least %d arguments", a.min)
}

// expandArgs splits combined short flags (-vc -> -v -c) and --name=value pairs.
func expandArgs(args []string) []string {
	var expanded []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--") && strings.Contains(arg, "="):
			name, value, _ := strings.Cut(arg, "=")
			expanded = append(expanded, name, value)
		case strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2:
			for _, c := range arg[1:] {
				expanded = append(expanded, fmt.Sprintf("-%c", c))
			}
		default:
			expanded = append(expanded, arg)
		}
	}
	return expanded
}

// Parse splits the command line into groups. Modifiers apply to the command
// that follows them; each command consumes its own arguments.
func Parse(args []string) ([]CommandGroup, error) {
	expandedArgs := expandArgs(args)

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") || arg == "-" {
			return nil, &ArgError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			i++
			continue
		}

		if lookupFlag(arg) == nil {
			return nil, &ArgError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		cmdIndex := i
		currentGroup.Command = arg
		lastCommand = arg
		i++

		switch arg {
		case "-h", "--help":
			// Optional target is the next flag
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
		default:
			a := arities[arg]
			for a.max < 0 || len(currentGroup.Args) < a.max {
				if i >= len(expandedArgs) || strings.HasPrefix(expandedArgs[i], "-") {
					break
				}
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
			if len(currentGroup.Args) < a.min {
				return nil, &ArgError{
					Args:           expandedArgs,
					Index:          cmdIndex,
					FailingCommand: arg,
					Message:        fmt.Sprintf("Command %%c requires %s.", a.describe()),
				}
			}
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	// Trailing modifiers form a group of their own
	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}
