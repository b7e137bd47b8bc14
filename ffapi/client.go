// Package ffapi is the client for the third-party Free Fire statistics API
// and its companion image-generation endpoints.
package ffapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"ffinfo-bot/model"
)

var (
	// ErrPlayerNotFound is the expected outcome for a UID the API does not
	// know (HTTP 404). Everything else the API does wrong is ErrAPIUnavailable.
	ErrPlayerNotFound = errors.New("player not found")
	ErrAPIUnavailable = errors.New("stats API unavailable")
)

var uidPattern = regexp.MustCompile(`^[0-9]{6,}$`)

// ValidUID reports whether the player identifier is all digits and at least
// six characters. Commands reject anything else before touching the network.
func ValidUID(uid string) bool {
	return uidPattern.MatchString(uid)
}

type Client struct {
	http *http.Client

	infoURL         string
	profileImageURL string
	outfitImageURL  string
}

// NewClient builds a client with connection pooling and a 30 second overall
// budget per call. No retries: a failed attempt is terminal for the request.
func NewClient(settings *model.Settings) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   10,
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		infoURL:         settings.InfoAPIURL,
		profileImageURL: settings.ProfileImageURL,
		outfitImageURL:  settings.OutfitImageURL,
	}
}

// FetchPlayer requests the player document for the given UID.
func (c *Client) FetchPlayer(ctx context.Context, uid string) (*model.PlayerDocument, error) {
	body, status, err := c.get(ctx, c.infoURL, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPIUnavailable, err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, ErrPlayerNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrAPIUnavailable, status)
	}

	var doc model.PlayerDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrAPIUnavailable, err)
	}
	return &doc, nil
}

// FetchProfileImage fetches the generated profile image for the UID. Any
// failure is non-fatal to the info command; callers log and move on.
func (c *Client) FetchProfileImage(ctx context.Context, uid string) ([]byte, error) {
	return c.fetchImage(ctx, c.profileImageURL, uid)
}

// FetchOutfitImage fetches the generated outfit image for the UID.
func (c *Client) FetchOutfitImage(ctx context.Context, uid string) ([]byte, error) {
	return c.fetchImage(ctx, c.outfitImageURL, uid)
}

func (c *Client) fetchImage(ctx context.Context, endpoint, uid string) ([]byte, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("image endpoint not configured")
	}
	body, status, err := c.get(ctx, endpoint, uid)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", status)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint, uid string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?uid="+url.QueryEscape(uid), nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
