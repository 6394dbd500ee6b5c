package effect

import "github.com/olivier-w/blurdrag/internal/spring"

// Phase is where a drag gesture is in its lifetime.
type Phase uint8

const (
	Began Phase = iota
	Changed
	Ended
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Sample is one gesture event. Translation is relative to where the gesture
// started, in logical points.
type Sample struct {
	Phase       Phase
	Translation spring.Point
}
