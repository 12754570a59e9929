package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/vimlet/internal/config"
	"github.com/dshills/vimlet/internal/engine/textarea"
	"github.com/dshills/vimlet/internal/input/vim"
	"github.com/dshills/vimlet/internal/renderer"
	"github.com/dshills/vimlet/internal/renderer/backend"
)

// Application owns the editor components and runs the event loop.
type Application struct {
	backend backend.Backend
	buffer  *textarea.TextArea
	interp  *vim.Interpreter
	view    *renderer.View
	logger  *Logger
	cfg     config.Config
}

// Options configures a new Application.
type Options struct {
	// Backend is the terminal to draw into. Required.
	Backend backend.Backend

	// Config holds the user settings.
	Config config.Config

	// Logger receives diagnostics. Nil disables logging.
	Logger *Logger
}

// New creates an application with an empty buffer.
func New(opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	view := renderer.NewView(opts.Backend)
	view.SetTabStop(opts.Config.TabStop)

	app := &Application{
		backend: opts.Backend,
		interp:  vim.New(),
		view:    view,
		logger:  logger,
		cfg:     opts.Config,
	}
	app.replaceBuffer(textarea.New())
	return app
}

// Buffer returns the text buffer.
func (app *Application) Buffer() *textarea.TextArea {
	return app.buffer
}

// LoadFile replaces the buffer content with the file at path.
// The path must name a readable regular file.
func (app *Application) LoadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	if !info.Mode().IsRegular() {
		return NewOperationError("open", path, ErrNotRegularFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return NewOperationError("read", path, err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	app.replaceBuffer(textarea.FromText(text))

	app.logger.WithComponent("app").Info("loaded %s (%d lines)", path, app.buffer.LineCount())
	return nil
}

// replaceBuffer swaps in a new buffer, carrying over viewport tuning.
func (app *Application) replaceBuffer(buf *textarea.TextArea) {
	buf.SetScrollMargin(app.cfg.ScrollMargin)
	app.buffer = buf
}

// WriteTo writes the buffer lines to w, one per line.
func (app *Application) WriteTo(w io.Writer) error {
	for _, line := range app.buffer.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
