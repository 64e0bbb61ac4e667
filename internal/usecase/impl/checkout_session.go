package impl

import (
	"sync"

	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/shopspring/decimal"
)

// checkoutSession is the per-conversation scratch data of the checkout
// workflow. Sessions live in memory only and vanish on restart, which resets
// every conversation to Idle.
type checkoutSession struct {
	State     usecase.CheckoutState
	ProductID uint
	Name      string
	Address   string
	Phone     string
	Total     decimal.Decimal
}

// sessionStore keeps one session per chat behind a mutex. Telegram delivers
// updates for distinct chats concurrently.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*checkoutSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*checkoutSession)}
}

// state reports the current workflow state, Idle when no session exists.
func (s *sessionStore) state(chatID int64) usecase.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return usecase.StateIdle
	}

	return session.State
}

// get returns the session for a chat, creating an idle one if absent.
func (s *sessionStore) get(chatID int64) *checkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		session = &checkoutSession{State: usecase.StateIdle}
		s.sessions[chatID] = session
	}

	return session
}

// update applies fn to the chat's session under the lock.
func (s *sessionStore) update(chatID int64, fn func(session *checkoutSession)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		session = &checkoutSession{State: usecase.StateIdle}
		s.sessions[chatID] = session
	}
	fn(session)
}

// reset drops the chat's session entirely, returning it to Idle.
func (s *sessionStore) reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

// snapshot returns a copy of the chat's session, false when none exists.
func (s *sessionStore) snapshot(chatID int64) (checkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return checkoutSession{}, false
	}

	return *session, true
}
