package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lithammer/shortuuid/v4"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/seam-carver-mcp/internal/carving"
	"github.com/ironsheep/seam-carver-mcp/internal/picture"
)

var (
	// ErrSessionNotFound is returned for unknown or closed session ids.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions is returned when opening a session would exceed the limit.
	ErrTooManySessions = errors.New("too many open sessions")
)

// session is one carver plus the lock that serializes every call on it.
type session struct {
	mu     sync.Mutex
	id     string
	path   string
	carver *carving.SeamCarver
}

// sessionStore tracks open sessions by id.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	max      int
}

func newSessionStore(max int) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		max:      max,
	}
}

// open creates a carver for pic and registers it under a fresh id.
func (st *sessionStore) open(path string, pic *picture.Picture) (*session, error) {
	carver, err := carving.New(pic)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.sessions) >= st.max {
		return nil, fmt.Errorf("%w (limit %d)", ErrTooManySessions, st.max)
	}

	sess := &session{id: shortuuid.New(), path: path, carver: carver}
	st.sessions[sess.id] = sess

	logrus.WithFields(logrus.Fields{
		"session": sess.id,
		"path":    path,
		"width":   carver.Width(),
		"height":  carver.Height(),
	}).Info("session opened")
	return sess, nil
}

func (st *sessionStore) get(id string) (*session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	return sess, nil
}

func (st *sessionStore) close(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	delete(st.sessions, id)
	logrus.WithField("session", id).Info("session closed")
	return nil
}

func (st *sessionStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// withCarver runs fn while holding the session lock.
func (st *sessionStore) withCarver(id string, fn func(c *carving.SeamCarver) (interface{}, error)) (interface{}, error) {
	sess, err := st.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.carver)
}
