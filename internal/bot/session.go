package bot

import "sync"

type State string

const (
	StateIdle           State = "idle"
	StateWaitingForAuth State = "waiting_for_auth"
	StateMainMenu       State = "main_menu"
)

// Session is the per-chat conversation state. Token is the API key returned
// by the telegram login and is empty until the chat is authenticated.
type Session struct {
	State State
	Token string
}

// SessionStore keeps sessions in memory, keyed by chat id. Sessions are lost
// on restart and users run /start again.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]Session)}
}

func (s *SessionStore) Get(chatID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return Session{State: StateIdle}
	}
	return session
}

func (s *SessionStore) SetState(chatID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions[chatID]
	session.State = state
	s.sessions[chatID] = session
}

// Authenticate stores the token and moves the chat to the main menu.
func (s *SessionStore) Authenticate(chatID int64, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = Session{State: StateMainMenu, Token: token}
}

// Reset forgets the token, for example after the API revoked it.
func (s *SessionStore) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}
