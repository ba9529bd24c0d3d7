package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StepChanged  <-chan StepChange
	StateChanged <-chan StateChange
	Completed    <-chan Completed
	Done         <-chan struct{}

	// write ends
	stepCh     chan StepChange
	stateCh    chan StateChange
	completeCh chan Completed
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stepCh:     make(chan StepChange, eventBufferSize),
		stateCh:    make(chan StateChange, eventBufferSize),
		completeCh: make(chan Completed, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StepChanged = s.stepCh
	s.StateChanged = s.stateCh
	s.Completed = s.completeCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// trySend delivers e unless ch is full. A slow subscriber loses events
// rather than blocking the controller.
func trySend[T any](ch chan T, e T) {
	select {
	case ch <- e:
	default:
	}
}

func (s *Subscription) sendStep(e StepChange) { trySend(s.stepCh, e) }
func (s *Subscription) sendState(e StateChange) { trySend(s.stateCh, e) }
func (s *Subscription) sendCompleted(e Completed) { trySend(s.completeCh, e) }
