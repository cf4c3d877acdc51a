package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/str"
	"github.com/evilsocket/islazy/tui"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/internal/kernel"
)

type handlerCb func(s *session, args []string) error

type handler struct {
	Name        string
	Usage       string
	Description string
	MinArgs     int
	MaxArgs     int // -1 for no limit
	Callback    handlerCb
}

var handlers = []handler{}

func init() {
	handlers = []handler{
		helpHandler,
		infoHandler,
		quitHandler,
		exitHandler,
		// variables
		setHandler,
		showHandler,
		listHandler,
		delHandler,
		getHandler,
		putHandler,
		appendHandler,
		resizeHandler,
		reserveHandler,
		shrinkHandler,
		copyHandler,
		// scalar results
		scalarHandler("magnitude", "Euclidean length of v.", dynvec.Magnitude),
		scalarHandler("sum", "Compensated sum of the elements of v.", (*dynvec.Vector).Sum),
		scalarHandler("mean", "Arithmetic mean of the elements of v.", (*dynvec.Vector).Mean),
		scalarHandler("min", "Smallest element of v.", (*dynvec.Vector).Min),
		scalarHandler("max", "Largest element of v.", (*dynvec.Vector).Max),
		pairHandler("dot", "Dot product of a and b.", dynvec.Dot),
		pairHandler("distance", "Euclidean distance between a and b.", dynvec.Distance),
		pairHandler("angle", "Angle between a and b in radians.", dynvec.Angle),
		pairHandler("cosine", "Cosine similarity of a and b.", dynvec.CosineSimilarity),
		equalHandler,
		// in place
		inPlaceHandler("normalize", "Scale v to unit length.", (*dynvec.Vector).Normalize),
		inPlaceHandler("abs", "Replace each element of v with its absolute value.", (*dynvec.Vector).Abs),
		inPlaceHandler("floor", "Round each element of v down.", (*dynvec.Vector).Floor),
		inPlaceHandler("ceil", "Round each element of v up.", (*dynvec.Vector).Ceil),
		inPlaceHandler("round", "Round each element of v to the nearest integer.", (*dynvec.Vector).Round),
		inPlaceHandler("zero", "Set every element of v to 0.", (*dynvec.Vector).Zero),
		// vector results
		binaryHandler("add", "Store a + b in dst.", dynvec.Add),
		binaryHandler("sub", "Store a - b in dst.", dynvec.Sub),
		binaryHandler("mult", "Store the elementwise product of a and b in dst.", dynvec.Mult),
		binaryHandler("div", "Store the elementwise quotient a / b in dst.", dynvec.Div),
		crossHandler,
		binaryHandler("project", "Store the projection of a onto b in dst.", dynvec.Project),
		binaryHandler("reject", "Store a minus its projection onto b in dst.", dynvec.Reject),
		binaryHandler("reflect", "Store a reflected about b in dst.", dynvec.Reflect),
		negateHandler,
		scaleHandler,
		interpHandler("lerp", "Store the linear interpolation from a to b at t in dst.", dynvec.Lerp),
		interpHandler("slerp", "Store the spherical interpolation from a to b at t in dst.", dynvec.Slerp),
	}
}

func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return x, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return i, nil
}

// parseValues accepts "1,2,3", "1 2 3" or any mix of the two.
func parseValues(args []string) ([]float64, error) {
	values := []float64{}
	for _, part := range str.Comma(strings.Join(args, ",")) {
		x, err := parseFloat(part)
		if err != nil {
			return nil, err
		}
		values = append(values, x)
	}
	return values, nil
}

func destination(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return lastResult
}

func printScalar(s *session, x float64) error {
	_, err := fmt.Fprintf(s.out, "%s\n", strconv.FormatFloat(x, 'f', 6, 64))
	return err
}

var helpHandler = handler{
	Name:        "help",
	Usage:       "help",
	Description: "Show the available commands and their descriptions.",
	Callback: func(s *session, args []string) error {
		rows := [][]string{}
		for _, h := range handlers {
			rows = append(rows, []string{h.Usage, h.Description})
		}
		tui.Table(s.out, []string{"command", "description"}, rows)
		return nil
	},
}

var infoHandler = handler{
	Name:        "info",
	Usage:       "info",
	Description: "Show kernel, memory and allocation statistics.",
	Callback: func(s *session, args []string) error {
		limit := "unlimited"
		if l := s.ctrl.MemoryLimit(); l > 0 {
			limit = humanize.IBytes(uint64(l))
		}
		stats := s.metrics.GetStats()

		rows := [][]string{
			{"kernel", kernel.Active().String()},
			{"kernel override", strconv.FormatBool(kernel.IsOverridden())},
			{"fma", strconv.FormatBool(kernel.HasFMA())},
			{"vectors", strconv.Itoa(len(s.vars))},
			{"memory used", humanize.IBytes(uint64(s.ctrl.MemoryUsage()))},
			{"memory peak", humanize.IBytes(uint64(s.ctrl.PeakMemoryUsage()))},
			{"memory limit", limit},
			{"grows", humanize.Comma(stats.GrowCount)},
			{"shrinks", humanize.Comma(stats.ShrinkCount)},
			{"releases", humanize.Comma(stats.ReleaseCount)},
			{"refused allocations", humanize.Comma(stats.AllocFailures)},
		}
		tui.Table(s.out, []string{"name", "value"}, rows)
		return nil
	},
}

var quitHandler = handler{
	Name:        "quit",
	Usage:       "quit",
	Description: "Leave the shell.",
	Callback: func(s *session, args []string) error {
		return errQuit
	},
}

var exitHandler = handler{
	Name:        "exit",
	Usage:       "exit",
	Description: "Leave the shell.",
	Callback:    quitHandler.Callback,
}

var setHandler = handler{
	Name:        "set",
	Usage:       "set <v> <x,y,...>",
	Description: "Bind v to a new vector holding the given values.",
	MinArgs:     1,
	MaxArgs:     -1,
	Callback: func(s *session, args []string) error {
		values, err := parseValues(args[1:])
		if err != nil {
			return err
		}
		v, err := dynvec.FromSlice(values, s.opts...)
		if err != nil {
			return err
		}
		s.store(args[0], v)
		return s.show(args[0])
	},
}

var showHandler = handler{
	Name:        "show",
	Usage:       "show <v>",
	Description: "Print v.",
	MinArgs:     1,
	MaxArgs:     1,
	Callback: func(s *session, args []string) error {
		return s.show(args[0])
	},
}

var listHandler = handler{
	Name:        "list",
	Usage:       "list",
	Description: "List the bound vectors with their size and capacity.",
	Callback: func(s *session, args []string) error {
		rows := [][]string{}
		for _, name := range s.names() {
			v := s.vars[name]
			rows = append(rows, []string{
				name,
				strconv.Itoa(v.Len()),
				strconv.Itoa(v.Cap()),
				humanize.IBytes(uint64(v.Cap()) * dynvec.ElementSize),
			})
		}
		tui.Table(s.out, []string{"name", "size", "capacity", "memory"}, rows)
		return nil
	},
}

var delHandler = handler{
	Name:        "del",
	Usage:       "del <v>",
	Description: "Release v and unbind it.",
	MinArgs:     1,
	MaxArgs:     1,
	Callback: func(s *session, args []string) error {
		v, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		delete(s.vars, args[0])
		return v.Release()
	},
}

var getHandler = handler{
	Name:        "get",
	Usage:       "get <v> <i>",
	Description: "Print element i of v.",
	MinArgs:     2,
	MaxArgs:     2,
	Callback: func(s *session, args []string) error {
		v, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		i, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		x, err := v.Get(i)
		if err != nil {
			return err
		}
		return printScalar(s, x)
	},
}

var putHandler = handler{
	Name:        "put",
	Usage:       "put <v> <i> <x>",
	Description: "Store x at element i of v.",
	MinArgs:     3,
	MaxArgs:     3,
	Callback: func(s *session, args []string) error {
		v, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		i, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		x, err := parseFloat(args[2])
		if err != nil {
			return err
		}
		if err := v.Set(i, x); err != nil {
			return err
		}
		return s.show(args[0])
	},
}

var appendHandler = handler{
	Name:        "append",
	Usage:       "append <v> <x,y,...>",
	Description: "Append values to v.",
	MinArgs:     2,
	MaxArgs:     -1,
	Callback: func(s *session, args []string) error {
		v, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		values, err := parseValues(args[1:])
		if err != nil {
			return err
		}
		if err := v.Append(values...); err != nil {
			return err
		}
		return s.show(args[0])
	},
}

var resizeHandler = handler{
	Name:        "resize",
	Usage:       "resize <v> <n> [zero]",
	Description: "Set the size of v, zeroing new slots when 'zero' is given.",
	MinArgs:     2,
	MaxArgs:     3,
	Callback: func(s *session, args []string) error {
		v, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		n, err := parseIndex(args[1])
		if err != nil {
			return err
		}

		resize := v.Resize
		if len(args) == 3 {
			if !strings.EqualFold(args[2], "zero") {
				return fmt.Errorf("usage: resize <v> <n> [zero]")
			}
			resize = v.ResizeZero
		}
		if err := resize(n); err != nil {
			return err
		}
		return s.show(args[0])
	},
}

var reserveHandler = handler{
	Name:        "reserve",
	Usage:       "reserve <v> <n>",
	Description: "Grow the capacity of v to at least n.",
	MinArgs:     2,
	MaxArgs:     2,
	Callback: func(s *session, args []string) error {
		v, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		n, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		return v.Reserve(n)
	},
}

var shrinkHandler = handler{
	Name:        "shrink",
	Usage:       "shrink <v>",
	Description: "Reduce the capacity of v to its size.",
	MinArgs:     1,
	MaxArgs:     1,
	Callback: func(s *session, args []string) error {
		v, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		return v.ShrinkToFit()
	},
}

var copyHandler = handler{
	Name:        "copy",
	Usage:       "copy <src> <dst>",
	Description: "Deep-copy src into dst, creating dst if needed.",
	MinArgs:     2,
	MaxArgs:     2,
	Callback: func(s *session, args []string) error {
		src, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		if dst, ok := s.vars[args[1]]; ok {
			if err := dynvec.Copy(src, dst); err != nil {
				return err
			}
			return s.show(args[1])
		}

		dst, err := src.Clone()
		if err != nil {
			return err
		}
		s.store(args[1], dst)
		return s.show(args[1])
	},
}

var equalHandler = handler{
	Name:        "equal",
	Usage:       "equal <a> <b> [tol]",
	Description: "Report whether a and b match within tol (default 0).",
	MinArgs:     2,
	MaxArgs:     3,
	Callback: func(s *session, args []string) error {
		a, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		b, err := s.lookup(args[1])
		if err != nil {
			return err
		}
		tol := 0.0
		if len(args) == 3 {
			if tol, err = parseFloat(args[2]); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(s.out, dynvec.Equal(a, b, tol))
		return err
	},
}

var crossHandler = handler{
	Name:        "cross",
	Usage:       "cross <a> <b> [dst]",
	Description: "Store the 3-D cross product a × b in dst.",
	MinArgs:     2,
	MaxArgs:     3,
	Callback: func(s *session, args []string) error {
		a, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		b, err := s.lookup(args[1])
		if err != nil {
			return err
		}
		return s.produce(destination(args, 2), 3, func(r *dynvec.Vector) error {
			return dynvec.Cross(a, b, r)
		})
	},
}

var negateHandler = handler{
	Name:        "negate",
	Usage:       "negate <a> [dst]",
	Description: "Store -a in dst.",
	MinArgs:     1,
	MaxArgs:     2,
	Callback: func(s *session, args []string) error {
		a, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		return s.produce(destination(args, 1), a.Len(), func(r *dynvec.Vector) error {
			return dynvec.Negate(a, r)
		})
	},
}

var scaleHandler = handler{
	Name:        "scale",
	Usage:       "scale <a> <s> [dst]",
	Description: "Store a * s in dst.",
	MinArgs:     2,
	MaxArgs:     3,
	Callback: func(s *session, args []string) error {
		a, err := s.lookup(args[0])
		if err != nil {
			return err
		}
		k, err := parseFloat(args[1])
		if err != nil {
			return err
		}
		return s.produce(destination(args, 2), a.Len(), func(r *dynvec.Vector) error {
			return dynvec.Scale(a, k, r)
		})
	},
}

func scalarHandler(name, description string, fn func(*dynvec.Vector) (float64, error)) handler {
	return handler{
		Name:        name,
		Usage:       name + " <v>",
		Description: description,
		MinArgs:     1,
		MaxArgs:     1,
		Callback: func(s *session, args []string) error {
			v, err := s.lookup(args[0])
			if err != nil {
				return err
			}
			x, err := fn(v)
			if err != nil {
				return err
			}
			return printScalar(s, x)
		},
	}
}

func pairHandler(name, description string, fn func(a, b *dynvec.Vector) (float64, error)) handler {
	return handler{
		Name:        name,
		Usage:       name + " <a> <b>",
		Description: description,
		MinArgs:     2,
		MaxArgs:     2,
		Callback: func(s *session, args []string) error {
			a, err := s.lookup(args[0])
			if err != nil {
				return err
			}
			b, err := s.lookup(args[1])
			if err != nil {
				return err
			}
			x, err := fn(a, b)
			if err != nil {
				return err
			}
			return printScalar(s, x)
		},
	}
}

func inPlaceHandler(name, description string, fn func(*dynvec.Vector) error) handler {
	return handler{
		Name:        name,
		Usage:       name + " <v>",
		Description: description,
		MinArgs:     1,
		MaxArgs:     1,
		Callback: func(s *session, args []string) error {
			v, err := s.lookup(args[0])
			if err != nil {
				return err
			}
			if err := fn(v); err != nil {
				return err
			}
			return s.show(args[0])
		},
	}
}

func binaryHandler(name, description string, fn func(a, b, result *dynvec.Vector) error) handler {
	return handler{
		Name:        name,
		Usage:       name + " <a> <b> [dst]",
		Description: description,
		MinArgs:     2,
		MaxArgs:     3,
		Callback: func(s *session, args []string) error {
			a, err := s.lookup(args[0])
			if err != nil {
				return err
			}
			b, err := s.lookup(args[1])
			if err != nil {
				return err
			}
			return s.produce(destination(args, 2), a.Len(), func(r *dynvec.Vector) error {
				return fn(a, b, r)
			})
		},
	}
}

func interpHandler(name, description string, fn func(a, b *dynvec.Vector, t float64, result *dynvec.Vector) error) handler {
	return handler{
		Name:        name,
		Usage:       name + " <a> <b> <t> [dst]",
		Description: description,
		MinArgs:     3,
		MaxArgs:     4,
		Callback: func(s *session, args []string) error {
			a, err := s.lookup(args[0])
			if err != nil {
				return err
			}
			b, err := s.lookup(args[1])
			if err != nil {
				return err
			}
			t, err := parseFloat(args[2])
			if err != nil {
				return err
			}
			return s.produce(destination(args, 3), a.Len(), func(r *dynvec.Vector) error {
				return fn(a, b, t, r)
			})
		},
	}
}
