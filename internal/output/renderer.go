// Package output draws directory trees as prefixed text lines.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/temirov/ftrek/internal/types"
	"github.com/temirov/ftrek/internal/walk"
)

const (
	directorySuffix = "/"

	errorWriteOutputFormat = "writing output: %w"
)

// Options configures a Renderer.
type Options struct {
	// Color enables kind-based styling.
	Color bool
	// OnSkip receives subtrees the renderer could not expand.
	OnSkip walk.SkipReporter
}

// Renderer writes one line per entry to its writer.
type Renderer struct {
	writer io.Writer
	styler Styler
	onSkip walk.SkipReporter
}

// NewRenderer returns a renderer writing to writer.
func NewRenderer(writer io.Writer, options Options) *Renderer {
	return &Renderer{
		writer: writer,
		styler: NewStyler(options.Color),
		onSkip: options.OnSkip,
	}
}

// writeRootLine writes the depth-0 label. A directory root is shown as the
// caller's string followed by a slash; any other root by its base name.
func (renderer *Renderer) writeRootLine(root string, kind types.EntryKind) error {
	label := filepath.Base(root)
	if kind == types.EntryKindDirectory {
		label = root + directorySuffix
	}
	return renderer.writeLine(renderer.styler.Style(label, kind))
}

// writeEntryLine writes a prefixed entry at depth len(ancestorFlags)+1.
func (renderer *Renderer) writeEntryLine(ancestorFlags []bool, isLast bool, name string, kind types.EntryKind) error {
	var builder strings.Builder
	writeTreePrefix(&builder, ancestorFlags, isLast)
	label := name
	if kind == types.EntryKindDirectory {
		label += directorySuffix
	}
	builder.WriteString(renderer.styler.Style(label, kind))
	return renderer.writeLine(builder.String())
}

func (renderer *Renderer) writeLine(line string) error {
	if _, writeError := fmt.Fprintln(renderer.writer, line); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writeError)
	}
	return nil
}

func (renderer *Renderer) skip(path string, cause error) {
	if renderer.onSkip != nil {
		renderer.onSkip(path, cause)
	}
}
