package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionTTL vida fija de una sesión desde su emisión (sin deslizamiento).
const SessionTTL = 8 * time.Hour

type session struct {
	userID    int64
	expiresAt time.Time
}

// SessionStore mapa server-side de token opaco → sesión. Es el único dueño
// del estado de sesión: nadie más lo muta. El valor que viaja en la cookie
// es "id.firma" con firma HMAC-SHA256 del secreto, de modo que un token
// inventado se rechaza sin tocar el mapa.
type SessionStore struct {
	mu       sync.Mutex
	secret   []byte
	ttl      time.Duration
	sessions map[string]session
}

// NewSessionStore construye el store con el secreto de firma y el TTL dado.
func NewSessionStore(secret string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

// Create abre una sesión para userID y devuelve el valor firmado a poner
// en la cookie.
func (s *SessionStore) Create(userID int64) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = session{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id + "." + s.sign(id)
}

// Resolve verifica la firma y resuelve el token a un userID. La expiración
// se comprueba en cada lookup; una sesión vencida se purga y se reporta como
// inexistente.
func (s *SessionStore) Resolve(token string) (int64, bool) {
	id, ok := s.verify(token)
	if !ok {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, id)
		return 0, false
	}
	return sess.userID, true
}

// Destroy elimina la sesión incondicionalmente; destruir una sesión ausente
// no es un error.
func (s *SessionStore) Destroy(token string) {
	id, ok := s.verify(token)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionStore) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// verify separa "id.firma" y compara la firma en tiempo constante.
func (s *SessionStore) verify(token string) (string, bool) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(id))) {
		return "", false
	}
	return id, true
}
