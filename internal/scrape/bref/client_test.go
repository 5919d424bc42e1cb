package bref

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	html, err := client.Fetch(context.Background(), server.URL+"/boxscores/")
	require.NoError(t, err)
	require.Contains(t, html, "ok")
}

func TestClientFetchNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Fetch(context.Background(), server.URL+"/boxscores/")
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusTooManyRequests, fetchErr.StatusCode)
}

func TestScheduleURL(t *testing.T) {
	client := NewClient("https://example.com")
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "https://example.com/boxscores/?month=3&day=5&year=2024", client.ScheduleURL(date))
}
