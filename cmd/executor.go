package cmd

import (
	"HueKit/internal/config"
	"HueKit/internal/console"
	"HueKit/internal/inspect"
	"HueKit/internal/logger"
	"HueKit/internal/paths"
	"HueKit/internal/version"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
)

// CmdState holds the state of modifiers for a single command group.
type CmdState struct {
	Copy bool
	GUI  bool
}

// Output receives command output. Nil means the terminal.
var Output io.Writer

// Swapped out by tests.
var (
	copyToClipboard = clipboard.WriteAll
	runInspector    = inspect.Run
)

func output() io.Writer {
	if Output != nil {
		return Output
	}
	return console.Stdout()
}

// Execute runs the logic for a sequence of command groups.
// It stops at the first failing command and returns the process exit code.
func Execute(ctx context.Context, groups []CommandGroup) int {
	conf := config.LoadAppConfig()
	if conf.NewerThanRunning() {
		logger.Warn(ctx, "'{{_File_}}%s{{|-|}}' was written by {{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}], which is newer than this one [{{_Version_}}%s{{|-|}}].",
			paths.GetConfigFilePath(), version.ApplicationName, conf.Version, version.Version)
	}

	logger.Trace(ctx, "Parsed %d command groups", len(groups))

	ranCommand := false
	wantGUI := false

	for _, group := range groups {
		state := CmdState{}

		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			case "-c", "--copy":
				state.Copy = true
			case "-g", "--gui":
				state.GUI = true
				wantGUI = true
			}
		}
		console.CurrentFlags = group.Flags

		cmdStr := strings.Join(append([]string{version.CommandName}, group.FullSlice()...), " ")
		logger.Info(ctx, "%s command: '{{_UserCommand_}}%s{{|-|}}'", version.ApplicationName, cmdStr)
		logger.Debug(ctx, "Execution Args -> State: %+v, Command: %v", state, group.CommandSlice())

		if group.Command == "" {
			continue
		}
		ranCommand = true

		var buf bytes.Buffer
		err := runGroup(ctx, &group, &state, &conf, &buf)
		if _, werr := io.Copy(output(), &buf); werr != nil && err == nil {
			err = werr
		}
		if err == nil && state.Copy {
			err = copyOutput(ctx, buf.String())
		}

		// Modifiers only apply to their own command
		logger.SetLevel(logger.LevelNotice)
		console.CurrentFlags = nil

		if err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
	}

	if !ranCommand {
		if wantGUI {
			group := CommandGroup{Command: "--inspect"}
			if err := handleInspect(ctx, &group, &conf, output()); err != nil {
				logger.Error(ctx, "%v", err)
				return 1
			}
			return 0
		}
		PrintHelp(output(), "")
	}

	return 0
}

// runGroup dispatches a single command, writing its output to w.
func runGroup(ctx context.Context, group *CommandGroup, state *CmdState, conf *config.AppConfig, w io.Writer) error {
	if state.GUI {
		if initial, ok := guiTarget(group); ok {
			inspectGroup := CommandGroup{Command: "--inspect", Args: []string{initial}}
			return handleInspect(ctx, &inspectGroup, conf, w)
		}
		logger.Warn(ctx, "The '{{_UserCommand_}}%s{{|-|}}' command has no interactive mode.", group.Command)
	}

	switch group.Command {
	case "-h", "--help":
		target := ""
		if len(group.Args) > 0 {
			target = group.Args[0]
		}
		PrintHelp(w, target)
		return nil
	case "-V", "--version":
		return handleVersion(w)
	case "-i", "--info":
		return handleInfo(ctx, group, conf, w)
	case "-t", "--to":
		return handleConvert(ctx, group, conf, w)
	case "--hex-to-rgba", "--hsla-to-rgba", "--rgba-to-hex":
		return handleLenient(ctx, group, w)
	case "-C", "--contrast":
		return handleContrast(ctx, group, conf, w)
	case "-F", "--foreground":
		return handleForeground(ctx, group, conf, w)
	case "-p", "--palette":
		return handlePalette(ctx, group, conf, w)
	case "--palette-list":
		return handlePaletteList(ctx, conf, w)
	case "--palette-export":
		return handlePaletteExport(ctx, group, conf, w)
	case "--config-show":
		return handleConfigShow(ctx, conf, w)
	case "--config-set":
		return handleConfigSet(ctx, group, conf)
	case "-I", "--inspect":
		return handleInspect(ctx, group, conf, w)
	}
	return fmt.Errorf("the '{{_UserCommand_}}%s{{|-|}}' command is not implemented", group.Command)
}

// guiTarget returns the color a command would open the inspector with.
func guiTarget(group *CommandGroup) (string, bool) {
	switch group.Command {
	case "-i", "--info", "-C", "--contrast", "-F", "--foreground",
		"--hex-to-rgba", "--hsla-to-rgba", "--rgba-to-hex":
		if len(group.Args) > 0 {
			return group.Args[0], true
		}
	case "-t", "--to":
		if len(group.Args) > 1 {
			return group.Args[1], true
		}
	case "-I", "--inspect":
		if len(group.Args) > 0 {
			return group.Args[0], true
		}
		return "", true
	}
	return "", false
}

func copyOutput(ctx context.Context, out string) error {
	text := strings.TrimSpace(console.Strip(out))
	if text == "" {
		logger.Warn(ctx, "Nothing to copy to the clipboard.")
		return nil
	}
	if err := copyToClipboard(text); err != nil {
		return fmt.Errorf("copying to the clipboard: %w", err)
	}
	logger.Info(ctx, "Copied to the clipboard.")
	return nil
}

func handleVersion(w io.Writer) error {
	console.Fprintln(w, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	if version.Commit != "none" {
		console.Fprintln(w, fmt.Sprintf("Commit {{_Version_}}%s{{|-|}} built {{_Version_}}%s{{|-|}}", version.Commit, version.BuildDate))
	}
	return nil
}

func handleInspect(ctx context.Context, group *CommandGroup, conf *config.AppConfig, w io.Writer) error {
	initial := ""
	if len(group.Args) > 0 {
		initial = group.Args[0]
	}
	result, err := runInspector(ctx, initial, *conf)
	if err != nil {
		return err
	}
	if result != "" {
		fmt.Fprintln(w, result)
	}
	return nil
}
