package transport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pass-finder/core/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 15*time.Second, transport.Config{}.Timeout())
	assert.Equal(t, 3*time.Second, transport.Config{TimeoutSeconds: 3}.Timeout())
}

func TestNewClient_UserAgent(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("User-Agent"))
	}))
	defer srv.Close()

	client := transport.NewClient(transport.Config{TimeoutSeconds: 2, UserAgent: "pass-finder-test"})
	assert.Equal(t, 2*time.Second, client.Timeout)

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom")
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"pass-finder-test", "custom"}, got)
}

func TestNewClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
	}))
	defer srv.Close()

	client := transport.NewClient(transport.Config{TimeoutSeconds: 1})
	_, err := client.Get(srv.URL)
	assert.Error(t, err)
}
