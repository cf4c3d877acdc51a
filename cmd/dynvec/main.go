// Command dynvec is an interactive calculator over dynvec vectors.
//
//	dynvec -eval "set a 1,2,3; set b 4,5,6; cross a b c"
//	dynvec -config dynvec.yaml -mem-limit 64MiB
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/str"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/internal/config"
	"github.com/hupe1980/dynvec/internal/kernel"
)

var (
	configPath  = flag.String("config", "", "Path to a YAML config file.")
	evalString  = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	interactive = flag.Bool("i", false, "Start the shell after running -eval.")
	kernelName  = flag.String("kernel", "", "Force a kernel backend: generic, unrolled or gonum.")
	memLimit    = flag.String("mem-limit", "", "Memory budget shared by all vectors, e.g. 64MiB.")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn or error.")
	logFormat   = flag.String("log-format", "", "Log format: text or json.")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	if b, ok := cfg.Backend(); ok {
		kernel.Use(b)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	s, err := newSession(cfg, logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	defer s.close()

	if *evalString != "" {
		failed, quit := s.runLine(*evalString)
		if quit || !*interactive {
			if failed {
				return 1
			}
			return 0
		}
	}

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.REPL.Prompt,
		HistoryFile:     cfg.REPL.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer reader.Close()

	for {
		line, err := reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return 0
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return 0
		}

		if _, quit := s.runLine(line); quit {
			return 0
		}
	}
}

// runLine dispatches every semicolon-separated command of line, printing
// errors as it goes.
func (s *session) runLine(line string) (failed, quit bool) {
	for _, cmd := range str.SplitBy(line, ";") {
		err := s.dispatch(cmd)
		if errors.Is(err, errQuit) {
			return failed, true
		}
		if err != nil {
			failed = true
			s.printError(err)
		}
	}
	return failed, false
}

// loadConfig reads -config, if any, and lets flags override it.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *kernelName != "" {
		cfg.Kernel = *kernelName
	}
	if *memLimit != "" {
		cfg.Memory.Limit = *memLimit
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig) (*dynvec.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return dynvec.NewLogger(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return dynvec.NewLogger(slog.NewTextHandler(os.Stderr, opts)), nil
}
