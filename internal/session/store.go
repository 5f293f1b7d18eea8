package session

import (
	"sync"

	"docchat/internal/domain/chatModel"
	"docchat/internal/metrics"
	"docchat/internal/rag/vectorindex"
	"docchat/pkg/logger_i"
)

var storeLogger = logger_i.NewLogger("SessionStore")

// Session is one user's container of conversational and document state. It
// exclusively owns its index and history; no other session ever touches them.
type Session struct {
	UserID  string
	Index   vectorindex.Index
	History []chatModel.Turn

	mu sync.Mutex
}

// Lock serializes event handling for this session. A handler holds it for
// the full duration of one inbound event, which gives per-user arrival-order
// processing while other users' sessions proceed concurrently.
func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Store maps user identity to that user's session. Sessions are created
// lazily and live until the process exits; there is no deletion API.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	newIndex vectorindex.Factory
	persona  string
}

func InitStore(factory vectorindex.Factory, persona string) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		newIndex: factory,
		persona:  persona,
	}
}

// GetOrCreate returns the session for userID, creating it on first access.
// Repeated calls with the same id return the same pointer. New histories are
// seeded with the persona system turn.
func (st *Store) GetOrCreate(userID string) *Session {
	st.mu.RLock()
	sess, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return sess
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	// another event for the same new user may have won the race
	if sess, ok := st.sessions[userID]; ok {
		return sess
	}

	sess = &Session{
		UserID: userID,
		Index:  st.newIndex(userID),
	}
	if st.persona != "" {
		sess.History = append(sess.History, chatModel.Turn{Role: chatModel.RoleSystem, Content: st.persona})
	}
	st.sessions[userID] = sess
	metrics.IncrementActiveSessionCount()
	storeLogger.Info("Created new session", "userId", userID)
	return sess
}

func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
