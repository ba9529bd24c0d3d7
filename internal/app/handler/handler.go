// Package handler provides the result type and chaining for key handlers.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of offering a key to a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on to the next handler.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a key.
type Handler func(key string) Result

// Chain offers key to handlers in order until one consumes it.
func Chain(key string, handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return r
		}
	}
	return NotHandled
}
