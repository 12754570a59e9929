package app

import "github.com/dshills/vimlet/internal/renderer/backend"

// Run drives the editor until quit: draw a frame, wait for an event,
// feed key events to the interpreter. It returns ErrQuit on a quit
// command and nil when the backend shuts down underneath it.
func (app *Application) Run() error {
	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer func() {
		_ = app.backend.Shutdown()
	}()

	log := app.logger.WithComponent("eventloop")
	log.Info("editor started")

	for {
		app.view.Draw(app.buffer, app.interp.Mode())

		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			tr := app.interp.Handle(ev.Key, app.buffer)
			log.Debug("key %s -> %s mode=%s", ev.Key, tr, app.interp.Mode().Name())
			if tr.IsQuit() {
				log.Info("quit requested")
				return ErrQuit
			}

		case backend.EventResize:
			log.Debug("resize %dx%d", ev.Width, ev.Height)

		case backend.EventInterrupt:
			// Wakeup only; the redraw at the top of the loop is the point.

		case backend.EventNone:
			log.Info("backend closed")
			return nil
		}
	}
}
