package carousel

// Subscribe returns a channel of state snapshots and a function that
// unsubscribes. The channel holds only the latest snapshot: a slow reader
// skips intermediate states but never blocks the controller. The current
// state is delivered immediately. The channel is closed on unsubscribe or
// when the controller closes.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan State, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.state

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

// commitLocked publishes the current state to every subscriber.
func (c *Controller) commitLocked() {
	c.state.Version++
	for _, ch := range c.subs {
		offerLatest(ch, c.state)
	}
}

func offerLatest(ch chan State, s State) {
	select {
	case ch <- s:
		return
	default:
	}
	// Full: drop the stale snapshot and retry once.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}
