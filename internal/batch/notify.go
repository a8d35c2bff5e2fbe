// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"io"
)

// Notification titles.
const (
	TitleSuccess = "Success"
	TitleError   = "Error"
)

// Notifier shows batch progress and failures to the user.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
}

// WriterNotifier prints notifications as text blocks.
type WriterNotifier struct {
	Out io.Writer
	Err io.Writer
}

// Info writes message to Out.
func (n WriterNotifier) Info(title, message string) {
	fmt.Fprintf(n.Out, "[%s] %s\n", title, message)
}

// Error writes message to Err, falling back to Out.
func (n WriterNotifier) Error(title, message string) {
	w := n.Err
	if w == nil {
		w = n.Out
	}
	fmt.Fprintf(w, "[%s] %s\n", title, message)
}
