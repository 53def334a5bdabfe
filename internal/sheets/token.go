package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const grantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// refreshMargin refreshes cached tokens this long before their expiry so a
// token is never handed out moments before it goes stale.
const refreshMargin = time.Minute

type cachedToken struct {
	token     string
	expiresAt time.Time
}

// tokenCache reuses bearer tokens across requests while unexpired, keyed by
// client email + scope. Two concurrent cold requests may both mint a token;
// the last write wins and both tokens are valid.
type tokenCache struct {
	mu     sync.Mutex
	tokens map[string]cachedToken
}

func newTokenCache() *tokenCache {
	return &tokenCache{tokens: make(map[string]cachedToken)}
}

func (tc *tokenCache) get(key string, now time.Time) (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	entry, ok := tc.tokens[key]
	if !ok || !now.Before(entry.expiresAt.Add(-refreshMargin)) {
		return "", false
	}
	return entry.token, true
}

func (tc *tokenCache) put(key, token string, expiresAt time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.tokens[key] = cachedToken{token: token, expiresAt: expiresAt}
}

// exchangeToken trades a signed assertion for a bearer access token via the
// OAuth JWT-bearer grant. A single attempt, no retries.
func exchangeToken(ctx context.Context, client *http.Client, tokenURI, assertion string) (string, error) {
	form := url.Values{
		"grant_type": {grantType},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURI, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &AuthExchangeError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.AccessToken == "" {
		return "", &AuthExchangeError{Status: resp.StatusCode, Body: "response missing access_token"}
	}

	return parsed.AccessToken, nil
}
