package main

import (
	"HueKit/cmd"
	"HueKit/internal/console"
	"HueKit/internal/logger"
	"HueKit/internal/version"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cleanup(ctx)

	// logger.Fatal panics with FatalError once it has logged
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); !ok {
				panic(r)
			}
			exitCode = 1
		}
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName))
		}
	}()

	groups, err := cmd.Parse(args)
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}
	return cmd.Execute(ctx, groups)
}

func cleanup(ctx context.Context) {
	logger.Debug(ctx, "Closing the log file.")
	logger.Cleanup()
}
