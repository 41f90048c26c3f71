// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"fmt"
	"regexp"

	"github.com/atotto/clipboard"
)

const errorCopyFormat = "copy to clipboard: %w"

// styleSequencePattern matches SGR escape sequences such as "\x1b[34m".
var styleSequencePattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard with terminal styling removed.
func (service *Service) Copy(text string) error {
	if copyError := clipboard.WriteAll(PlainText(text)); copyError != nil {
		return fmt.Errorf(errorCopyFormat, copyError)
	}
	return nil
}

// PlainText removes terminal color sequences from text.
func PlainText(text string) string {
	return styleSequencePattern.ReplaceAllString(text, "")
}

var _ Copier = (*Service)(nil)
