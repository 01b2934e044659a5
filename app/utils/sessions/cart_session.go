package sessions

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	cartCookieName = "lade-cart"

	cartItemsKey = "cart_items"
)

func init() {
	gob.Register(map[string]int{})
}

// CartStore keeps the guest cart in a signed cookie session. It is a display
// cache mirroring what the browser would hold in local storage; checkout takes
// an explicit snapshot and never reads it.
type CartStore interface {
	GetItems(r *http.Request) map[string]int
	SetItems(w http.ResponseWriter, r *http.Request, items map[string]int) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type CookieCartStore struct {
	store *sessions.CookieStore
}

func NewCookieCartStore(keyPairs ...[]byte) *CookieCartStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieCartStore{store: store}
}

func (c *CookieCartStore) getSession(r *http.Request) *sessions.Session {
	// Get never fails fatally for cookie stores; a bad cookie yields a fresh
	// session, which is the behavior we want for an ephemeral cache.
	session, _ := c.store.Get(r, cartCookieName)
	return session
}

func (c *CookieCartStore) GetItems(r *http.Request) map[string]int {
	session := c.getSession(r)
	items, ok := session.Values[cartItemsKey].(map[string]int)
	if !ok {
		return map[string]int{}
	}
	return items
}

func (c *CookieCartStore) SetItems(w http.ResponseWriter, r *http.Request, items map[string]int) error {
	session := c.getSession(r)
	session.Values[cartItemsKey] = items
	return session.Save(r, w)
}

func (c *CookieCartStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
