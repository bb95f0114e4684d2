package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "storefront-session"

	sessionKeyValue      = "session_key"
	pendingOrderIDValue  = "pending_order_id"
	pendingAmountValue   = "pending_amount"
	pendingCurrencyValue = "pending_currency"

	// SessionTTL bounds anonymous cart and wishlist ownership. DB rows older
	// than this are purged by the purge-sessions command.
	SessionTTL = 7 * 24 * time.Hour
)

// PendingOrder is the checkout payload stashed between begin-checkout and
// the verified callback.
type PendingOrder struct {
	GatewayOrderID string
	Amount         string
	Currency       string
}

type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(keyPairs ...[]byte) *SessionStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

func (s *SessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := s.store.Get(r, sessionCookieName)
	if err != nil {
		// A stale or re-keyed cookie decodes to a fresh session.
		log.Printf("SessionStore: error decoding session cookie: %v", err)
	}
	return session
}

// SessionKey returns the caller's anonymous identity, minting one on first
// contact.
func (s *SessionStore) SessionKey(w http.ResponseWriter, r *http.Request) (string, error) {
	session := s.getSession(r)

	if key, ok := session.Values[sessionKeyValue].(string); ok && key != "" {
		return key, nil
	}

	key := uuid.New().String()
	session.Values[sessionKeyValue] = key
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return key, nil
}

func (s *SessionStore) StashPendingOrder(w http.ResponseWriter, r *http.Request, pending PendingOrder) error {
	session := s.getSession(r)
	session.Values[pendingOrderIDValue] = pending.GatewayOrderID
	session.Values[pendingAmountValue] = pending.Amount
	session.Values[pendingCurrencyValue] = pending.Currency
	return session.Save(r, w)
}

func (s *SessionStore) PendingOrder(r *http.Request) (*PendingOrder, bool) {
	session := s.getSession(r)
	orderID, ok := session.Values[pendingOrderIDValue].(string)
	if !ok || orderID == "" {
		return nil, false
	}
	amount, _ := session.Values[pendingAmountValue].(string)
	currency, _ := session.Values[pendingCurrencyValue].(string)
	return &PendingOrder{GatewayOrderID: orderID, Amount: amount, Currency: currency}, true
}

func (s *SessionStore) ClearPendingOrder(w http.ResponseWriter, r *http.Request) error {
	session := s.getSession(r)
	delete(session.Values, pendingOrderIDValue)
	delete(session.Values, pendingAmountValue)
	delete(session.Values, pendingCurrencyValue)
	return session.Save(r, w)
}
