package browser

import (
	"context"
	"sync"
)

// LaunchFunc constructs a fresh Session. The chromedp launcher lives in
// chrome.go; tests inject stubs.
type LaunchFunc func(ctx context.Context) (Session, error)

// Manager owns the process-wide browser session. The session is created
// lazily on first Acquire and reused across queries; it is torn down only
// by Recycle (after a transport fault) or Terminate (process exit).
type Manager struct {
	launch LaunchFunc

	mu   sync.Mutex
	sess Session
}

func NewManager(launch LaunchFunc) *Manager {
	return &Manager{launch: launch}
}

// Acquire returns the existing session if one is alive, otherwise launches
// a new one. A launch failure surfaces as *SessionInitError.
func (m *Manager) Acquire(ctx context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess != nil {
		return m.sess, nil
	}

	sess, err := m.launch(ctx)
	if err != nil {
		return nil, &SessionInitError{Err: err}
	}
	m.sess = sess
	return sess, nil
}

// Recycle discards the cached session so the next Acquire launches a fresh
// one. Called after a transport fault; the caller is responsible for
// re-navigating before resuming.
func (m *Manager) Recycle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sess != nil {
		m.sess.Close()
		m.sess = nil
	}
}

// Terminate releases the session on shutdown. Safe to call more than once.
func (m *Manager) Terminate() {
	m.Recycle()
}
