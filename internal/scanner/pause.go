package scanner

import "sync"

// Pauser is a cooperative gate for worker goroutines. While paused,
// Wait blocks until the gate reopens; otherwise it is a cheap
// lock/check/unlock. The zero value is not usable, call NewPauser.
type Pauser struct {
	mu     sync.Mutex
	cond   *sync.Cond
	paused bool
}

func NewPauser() *Pauser {
	p := &Pauser{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Wait blocks the calling goroutine while the scan is paused.
func (p *Pauser) Wait() {
	p.mu.Lock()
	for p.paused {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// Toggle flips the gate and reports whether it is now paused.
func (p *Pauser) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = !p.paused
	if !p.paused {
		p.cond.Broadcast()
	}
	return p.paused
}

// IsPaused reports the current state.
func (p *Pauser) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}
