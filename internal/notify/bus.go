package notify

import "sync"

// Level tells the renderer how to present a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

type Notice struct {
	Level   Level
	Message string
}

// Bus is the process-wide notification channel. Services publish
// user-facing notices; whoever owns the presentation subscribes and
// renders them. Replaces per-screen toast state.
type Bus struct {
	mu   sync.Mutex
	subs []chan Notice
}

func NewBus() *Bus { return &Bus{} }

// Subscribe returns a buffered channel of notices. A slow subscriber drops
// notices rather than blocking publishers.
func (b *Bus) Subscribe() <-chan Notice {
	ch := make(chan Notice, 16)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

func (b *Bus) publish(n Notice) {
	b.mu.Lock()
	subs := append([]chan Notice{}, b.subs...)
	b.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- n:
		default:
		}
	}
}

func (b *Bus) Info(msg string)    { b.publish(Notice{Level: LevelInfo, Message: msg}) }
func (b *Bus) Success(msg string) { b.publish(Notice{Level: LevelSuccess, Message: msg}) }
func (b *Bus) Error(msg string)   { b.publish(Notice{Level: LevelError, Message: msg}) }
