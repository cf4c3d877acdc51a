package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/internal/config"
	"github.com/hupe1980/dynvec/resource"
)

// lastResult names the vector a command writes to when no destination is given.
const lastResult = "_"

var errQuit = errors.New("quit")

// session holds the named vectors of one shell. Every vector shares the
// session's memory budget, logger and metrics.
type session struct {
	vars    map[string]*dynvec.Vector
	ctrl    *resource.Controller
	metrics *dynvec.BasicMetricsCollector
	opts    []dynvec.Option
	out     io.Writer
}

func newSession(cfg *config.Config, logger *dynvec.Logger, out io.Writer) (*session, error) {
	limit, err := cfg.Memory.LimitBytes()
	if err != nil {
		return nil, err
	}

	s := &session{
		vars:    make(map[string]*dynvec.Vector),
		ctrl:    resource.NewController(resource.Config{MemoryLimitBytes: limit}),
		metrics: &dynvec.BasicMetricsCollector{},
		out:     out,
	}
	s.opts = []dynvec.Option{
		dynvec.WithLogger(logger),
		dynvec.WithResourceController(s.ctrl),
		dynvec.WithMetricsCollector(s.metrics),
	}
	return s, nil
}

// dispatch runs a single command.
func (s *session) dispatch(cmd string) error {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	for _, h := range handlers {
		if h.Name != name {
			continue
		}
		if len(args) < h.MinArgs || (h.MaxArgs >= 0 && len(args) > h.MaxArgs) {
			return fmt.Errorf("usage: %s", h.Usage)
		}
		return h.Callback(s, args)
	}
	return fmt.Errorf("command not found: %s", name)
}

func (s *session) printError(err error) {
	if kind := dynvec.KindOf(err); kind != dynvec.KindUnknown {
		fmt.Fprintf(s.out, "error [%s]: %v\n", kind, err)
		return
	}
	fmt.Fprintf(s.out, "error: %v\n", err)
}

func (s *session) lookup(name string) (*dynvec.Vector, error) {
	v, ok := s.vars[name]
	if !ok {
		return nil, fmt.Errorf("unknown vector %q", name)
	}
	return v, nil
}

// store binds v to name, releasing the vector it replaces.
func (s *session) store(name string, v *dynvec.Vector) {
	if old, ok := s.vars[name]; ok && old != v {
		_ = old.Release()
	}
	s.vars[name] = v
}

// produce runs fn with the vector bound to dst as output, so dst may be one
// of the operands. A missing or differently sized dst gets a fresh vector
// that is bound only if fn succeeds.
func (s *session) produce(dst string, size int, fn func(result *dynvec.Vector) error) error {
	if r, ok := s.vars[dst]; ok && r.Len() == size {
		if err := fn(r); err != nil {
			return err
		}
		return s.show(dst)
	}

	r, err := dynvec.New(size, s.opts...)
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		_ = r.Release()
		return err
	}
	s.store(dst, r)
	return s.show(dst)
}

func (s *session) show(name string) error {
	v, err := s.lookup(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = ", name)
	return v.Fprint(s.out)
}

func (s *session) names() []string {
	return slices.Sorted(maps.Keys(s.vars))
}

// completer offers command names, then vector names for the arguments.
func (s *session) completer() *readline.PrefixCompleter {
	vars := func(string) []string { return s.names() }

	items := make([]readline.PrefixCompleterInterface, 0, len(handlers))
	for _, h := range handlers {
		if h.MaxArgs == 0 {
			items = append(items, readline.PcItem(h.Name))
			continue
		}
		items = append(items, readline.PcItem(h.Name,
			readline.PcItemDynamic(vars, readline.PcItemDynamic(vars)),
		))
	}
	return readline.NewPrefixCompleter(items...)
}

// close releases every vector so the budget drains to zero.
func (s *session) close() {
	for name, v := range s.vars {
		_ = v.Release()
		delete(s.vars, name)
	}
}
