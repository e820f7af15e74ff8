package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

// Toaster prints notifications as "[level] message" lines.
type Toaster struct {
	mu sync.Mutex
	w  io.Writer
}

func NewToaster(w io.Writer) *Toaster {
	return &Toaster{w: w}
}

// Notify implements services.Notifier.
func (t *Toaster) Notify(n services.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "[%s] %s\n", n.Level, n.Message)
}
