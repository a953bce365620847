package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocab-tuister/core/accido"
)

func TestClientTokenMintsCookieOnce(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodPost, "/send-vocab", nil)
	rec := httptest.NewRecorder()

	token := ClientToken(rec, req)
	assert.NotEmpty(t, token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
}

func TestClientTokenReusesExistingCookie(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodPost, "/send-vocab", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "existing-token"})
	rec := httptest.NewRecorder()

	token := ClientToken(rec, req)
	assert.Equal(t, "existing-token", token)
	assert.Empty(t, rec.Result().Cookies())
}

func TestStoreVocabListRoundTrip(t *testing.T) {
	t.Parallel()
	store := NewStore()

	_, ok := store.VocabList("token-a")
	assert.False(t, ok)

	noun, err := accido.MakeNoun("agricola", "agricolae", accido.Masculine, accido.NewMeaning("farmer"))
	require.NoError(t, err)
	words := []accido.Word{noun}

	store.SetVocabList("token-a", words, "@ Noun\nfarmer: agricola, agricolae, (m)\n")

	got, ok := store.VocabList("token-a")
	require.True(t, ok)
	assert.Equal(t, words, got)

	_, ok = store.VocabList("token-b")
	assert.False(t, ok)
}

func TestStoreDrawSerializesConcurrentCallers(t *testing.T) {
	t.Parallel()
	store := NewStore()

	var mu sync.Mutex
	var inFlight, maxInFlight int
	release := make(chan struct{})

	fn := func() (any, error) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()
		<-release
		mu.Lock()
		inFlight--
		mu.Unlock()
		return "result", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := store.Draw("shared-token", fn)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	close(release)
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, "result", v)
	}
	assert.LessOrEqual(t, maxInFlight, 1)
}
