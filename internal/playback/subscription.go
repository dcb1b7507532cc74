package playback

import (
	"sync/atomic"
	"time"
)

const eventBufferSize = 16

// Subscription carries service events to one subscriber. Publishing never
// blocks the service: an event that finds its buffer full is dropped and
// counted.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	stateCh    chan StateChange
	trackCh    chan TrackChange
	positionCh chan PositionChange
	queueCh    chan QueueChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}

	dropped atomic.Uint64
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		queueCh:    make(chan QueueChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.PositionChanged = s.positionCh
	s.QueueChanged = s.queueCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// Dropped reports how many events were discarded because the subscriber
// fell behind.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendState(e StateChange)      { publish(s, s.stateCh, e) }
func (s *Subscription) sendTrack(e TrackChange)      { publish(s, s.trackCh, e) }
func (s *Subscription) sendQueue(e QueueChange)      { publish(s, s.queueCh, e) }
func (s *Subscription) sendError(e ErrorEvent)       { publish(s, s.errorCh, e) }
func (s *Subscription) sendPosition(p time.Duration) { publish(s, s.positionCh, PositionChange{Position: p}) }

func publish[T any](s *Subscription, ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
		s.dropped.Add(1)
	}
}
