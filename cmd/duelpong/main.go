package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/diegok/duelpong/internal/app"
	"github.com/diegok/duelpong/internal/config"
)

const (
	logDir      = "logs"
	logFileName = "duelpong.log"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		log.Printf("exiting with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to a file in debug mode and discards it otherwise,
// since the terminal belongs to the game screen.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  duelpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintf(os.Stderr, "  --width <n>     Field width (default: %d)\n", config.DefaultWidth)
	fmt.Fprintf(os.Stderr, "  --height <n>    Field height (default: %d)\n", config.DefaultHeight)
	fmt.Fprintf(os.Stderr, "  --fps <n>       Frames per second (default: %d)\n", config.DefaultFPS)
	fmt.Fprintln(os.Stderr, "  --seed <n>      Random seed, 0 for time-based (default: 0)")
	fmt.Fprintf(os.Stderr, "  --debug         Write a log to %s\n", filepath.Join(logDir, logFileName))
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options can also be set in the environment or a .env file:")
	fmt.Fprintf(os.Stderr, "  %s, %s, %s, %s, %s\n",
		config.EnvWidth, config.EnvHeight, config.EnvFPS, config.EnvSeed, config.EnvDebug)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Left player   W / S")
	fmt.Fprintln(os.Stderr, "  Right player  Up / Down")
	fmt.Fprintln(os.Stderr, "  Quit          q, Esc, Ctrl+C")
}
