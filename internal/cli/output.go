package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	checkMark = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓")
	warnMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).SetString("!")
	infoMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).SetString("•")
)

// printer writes human-readable output. Lines get a colored mark when
// writing to a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, styled: isTerminal(w)}
}

func (p *printer) line(mark lipgloss.Style, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if p.styled {
		msg = mark.String() + " " + msg
	}

	fmt.Fprintln(p.w, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// relPath shortens path to be relative to the working directory when it is
// inside it.
func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(wd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}
