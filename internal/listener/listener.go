package listener

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
)

// State tracks the simulator lifecycle.
type State int

const (
	StateCreated State = iota
	StateBound
	StateListening
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateBound:
		return "bound"
	case StateListening:
		return "listening"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Simulator holds a TCP port open to stand in for a target service. It
// never accepts connections; reachability of the bound port is the whole
// simulation. The socket is owned exclusively by the simulator and is
// released on every exit path.
type Simulator struct {
	port int

	mu    sync.Mutex
	state State
	addr  net.Addr

	ready chan struct{}
}

// New creates a simulator for the given port.
func New(port int) *Simulator {
	return &Simulator{port: port, state: StateCreated, ready: make(chan struct{})}
}

// State returns the current lifecycle state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the bound address. It is valid once Ready is closed.
func (s *Simulator) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Ready is closed once the simulator has entered the listening state.
func (s *Simulator) Ready() <-chan struct{} {
	return s.ready
}

func (s *Simulator) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Run binds 0.0.0.0:<port> in stream mode, then blocks holding the socket
// until ctx is cancelled. A bind failure is returned before the listening
// state is reached; cancellation is a normal terminal transition, not an
// error. The socket is closed unconditionally once Run returns.
func (s *Simulator) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", s.port))
	if err != nil {
		s.setState(StateClosed)
		return fmt.Errorf("failed to bind port %d: %w", s.port, err)
	}
	defer func() {
		ln.Close()
		s.setState(StateClosed)
	}()

	s.mu.Lock()
	s.state = StateBound
	s.addr = ln.Addr()
	s.mu.Unlock()

	s.setState(StateListening)
	close(s.ready)
	log.Printf("Listener running on %s, interrupt to exit", ln.Addr())

	<-ctx.Done()
	log.Printf("Listener on %s shutting down", ln.Addr())
	return nil
}
