package dynvec

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Fprint writes the debug rendering "[v0, v1, ..., vn]\n" to w, six
// decimals per element. It is meant for tests and inspection, not storage.
func (v *Vector) Fprint(w io.Writer) error {
	if err := check(v); err != nil {
		return err
	}

	var sb strings.Builder
	v.render(&sb)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// Print writes the debug rendering to stdout.
func (v *Vector) Print() error {
	return v.Fprint(os.Stdout)
}

// String returns the debug rendering without the trailing newline.
func (v *Vector) String() string {
	if v == nil {
		return "<nil>"
	}
	if check(v) != nil {
		return "<invalid>"
	}

	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

// LogValue implements slog.LogValuer. It logs the shape, not the contents.
func (v *Vector) LogValue() slog.Value {
	if err := check(v); err != nil {
		return slog.StringValue(err.Error())
	}
	return slog.GroupValue(
		slog.Int("size", v.size),
		slog.Int("capacity", len(v.elements)),
		slog.String("bytes", formatBytes(len(v.elements))),
	)
}

func (v *Vector) render(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, x := range v.data() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'f', 6, 64))
	}
	sb.WriteByte(']')
}

// formatBytes renders the footprint of n elements, e.g. "128 B" or "1.0 MiB".
func formatBytes(n int) string {
	return humanize.IBytes(uint64(n) * ElementSize)
}
