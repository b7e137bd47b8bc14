package ffapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ffinfo-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidUID(t *testing.T) {
	tests := []struct {
		uid   string
		valid bool
	}{
		{"123456", true},
		{"98765432101", true},
		{"12345", false},
		{"", false},
		{"12345a", false},
		{"abcdef", false},
		{" 123456", false},
		{"123456 ", false},
		{"12.3456", false},
		{"-123456", false},
	}
	for _, tt := range tests {
		t.Run(tt.uid, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidUID(tt.uid))
		})
	}
}

func newTestClient(infoURL, imageURL string) *Client {
	return NewClient(&model.Settings{
		InfoAPIURL:      infoURL,
		ProfileImageURL: imageURL,
	})
}

func TestFetchPlayerFound(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "123456789", r.URL.Query().Get("uid"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"basicInfo": {"nickname": "Player", "level": 62, "createAt": "1600000000"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	doc, err := client.FetchPlayer(context.Background(), "123456789")
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	require.NotNil(t, doc.BasicInfo)
	assert.Equal(t, "Player", doc.BasicInfo.Nickname.Value)
	assert.Equal(t, "62", doc.BasicInfo.Level.Value)
	assert.True(t, doc.BasicInfo.CreateAt.Valid)
	assert.EqualValues(t, 1600000000, doc.BasicInfo.CreateAt.Sec)
	assert.Nil(t, doc.PetInfo)
}

func TestFetchPlayerNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	_, err := client.FetchPlayer(context.Background(), "123456789")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestFetchPlayerServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	_, err := client.FetchPlayer(context.Background(), "123456789")
	assert.ErrorIs(t, err, ErrAPIUnavailable)
	assert.NotErrorIs(t, err, ErrPlayerNotFound)
}

func TestFetchPlayerTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server.URL, "")
	_, err := client.FetchPlayer(context.Background(), "123456789")
	assert.ErrorIs(t, err, ErrAPIUnavailable)
}

func TestFetchPlayerMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	_, err := client.FetchPlayer(context.Background(), "123456789")
	assert.ErrorIs(t, err, ErrAPIUnavailable)
}

func TestFetchProfileImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123456789", r.URL.Query().Get("uid"))
		w.Write(payload)
	}))
	defer server.Close()

	client := newTestClient("", server.URL)
	data, err := client.FetchProfileImage(context.Background(), "123456789")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFetchImageNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient("", server.URL)
	_, err := client.FetchProfileImage(context.Background(), "123456789")
	assert.Error(t, err)
}

func TestFetchOutfitImageUnconfigured(t *testing.T) {
	client := newTestClient("", "")
	_, err := client.FetchOutfitImage(context.Background(), "123456789")
	assert.Error(t, err)
}
