package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCartStoreRoundTrip(t *testing.T) {
	store := NewCookieCartStore([]byte("test-signing-key"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/cart/items", nil)

	require.NoError(t, store.SetItems(w, r, map[string]int{"prod-1": 2, "prod-2": 1}))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	next := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}

	items := store.GetItems(next)
	assert.Equal(t, map[string]int{"prod-1": 2, "prod-2": 1}, items)
}

func TestCookieCartStoreEmptyWithoutCookie(t *testing.T) {
	store := NewCookieCartStore([]byte("test-signing-key"))

	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	assert.Empty(t, store.GetItems(r))
}

func TestCookieCartStoreIgnoresTamperedCookie(t *testing.T) {
	store := NewCookieCartStore([]byte("test-signing-key"))

	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.AddCookie(&http.Cookie{Name: "lade-cart", Value: "garbage"})

	assert.Empty(t, store.GetItems(r))
}

func TestCookieCartStoreClear(t *testing.T) {
	store := NewCookieCartStore([]byte("test-signing-key"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/cart/items", nil)
	require.NoError(t, store.SetItems(w, r, map[string]int{"prod-1": 2}))

	cleared := httptest.NewRecorder()
	next := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	require.NoError(t, store.Clear(cleared, next))

	// The expiring cookie carries MaxAge<0 so the browser drops it.
	found := false
	for _, c := range cleared.Result().Cookies() {
		if c.Name == "lade-cart" {
			found = true
			assert.Negative(t, c.MaxAge)
		}
	}
	assert.True(t, found)
}
