package admin

import (
	"sync"
	"time"
)

// DefaultNoticeTTL is how long a notice stays visible before auto-dismissal.
const DefaultNoticeTTL = 3 * time.Second

// Notice is a transient user-facing message.
type Notice struct {
	Text  string
	IsErr bool
}

// Notifier holds at most one active notice and dismisses it after a TTL.
type Notifier struct {
	mu     sync.Mutex
	ttl    time.Duration
	seq    int
	notice *Notice
	timer  *time.Timer
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notifier{ttl: ttl}
}

// Show replaces the current notice and schedules its dismissal. A newer
// notice cancels the pending dismissal of the one it replaces.
func (n *Notifier) Show(text string, isErr bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	seq := n.seq
	n.notice = &Notice{Text: text, IsErr: isErr}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() {
		n.dismiss(seq)
	})
}

// dismiss clears the notice only if no newer notice has been shown since.
func (n *Notifier) dismiss(seq int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.notice = nil
	}
}

// Current returns the active notice, or nil when none is showing.
func (n *Notifier) Current() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notice
}
