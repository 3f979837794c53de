// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/arpeggio-project/arpeggio/lib/clock"
	"github.com/arpeggio-project/arpeggio/lib/netutil"
)

// Accounts service endpoints. Overridable via AuthOptions for tests.
const (
	// AuthURL is the authorization endpoint the user's browser visits
	// in the authorization-code flow.
	AuthURL = "https://accounts.spotify.com/authorize"

	// TokenURL is the token endpoint used by every flow to obtain and
	// refresh access tokens.
	TokenURL = "https://accounts.spotify.com/api/token"
)

// Credentials identify a registered Spotify application.
type Credentials struct {
	ID     string
	Secret string
}

// CredentialsFromEnv reads application credentials from the
// SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables.
func CredentialsFromEnv() (Credentials, error) {
	credentials := Credentials{
		ID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		Secret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
	}

	var missing []string
	if credentials.ID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if credentials.Secret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf("spotify: missing environment variables: %s", strings.Join(missing, ", "))
	}

	return credentials, nil
}

// Authenticator provides Authorization header values for API requests.
// Implementations handle token lifecycle (static for pre-baked tokens,
// auto-rotating for the OAuth2 flows).
type Authenticator interface {
	// AuthorizationHeader returns a valid Authorization header value
	// (e.g., "Bearer BQxy..."). May trigger a token fetch or refresh
	// if the current token is missing or near expiry.
	AuthorizationHeader(ctx context.Context) (string, error)
}

// AuthOptions carries the plumbing shared by the OAuth2 flows. The zero
// value selects the production accounts endpoints, the default HTTP
// client, the wall clock, and no token persistence.
type AuthOptions struct {
	// AuthURL overrides the authorization endpoint. Tests point this at
	// a local server.
	AuthURL string

	// TokenURL overrides the token endpoint.
	TokenURL string

	// HTTPClient is used for token endpoint requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	Clock clock.Clock

	// Store persists tokens across processes. Nil disables caching.
	Store TokenStore
}

func (options AuthOptions) withDefaults() AuthOptions {
	if options.AuthURL == "" {
		options.AuthURL = AuthURL
	}
	if options.TokenURL == "" {
		options.TokenURL = TokenURL
	}
	if options.HTTPClient == nil {
		options.HTTPClient = http.DefaultClient
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	return options
}

// --- Static token ---

// StaticToken is an Authenticator that always presents the same token.
// Useful in tests and for tokens obtained out of band.
type StaticToken struct {
	token Token
}

// NewStaticToken creates an Authenticator for a pre-existing token.
func NewStaticToken(token Token) *StaticToken {
	return &StaticToken{token: token}
}

func (auth *StaticToken) AuthorizationHeader(_ context.Context) (string, error) {
	if auth.token.AccessToken == "" {
		return "", fmt.Errorf("spotify: static token has no access token")
	}
	return "Bearer " + auth.token.AccessToken, nil
}

// --- Client-credentials flow ---

// ClientCredentials authenticates with the app-only client-credentials
// flow. The token grants access to public catalog data but no user
// endpoints. Tokens are fetched on first use and rotated under a mutex
// when within the expiry margin.
type ClientCredentials struct {
	creds   Credentials
	options AuthOptions

	mu    sync.Mutex
	token Token
}

// NewClientCredentials creates a client-credentials Authenticator.
func NewClientCredentials(creds Credentials, options AuthOptions) *ClientCredentials {
	return &ClientCredentials{creds: creds, options: options.withDefaults()}
}

func (auth *ClientCredentials) AuthorizationHeader(ctx context.Context) (string, error) {
	auth.mu.Lock()
	defer auth.mu.Unlock()

	if auth.token.Valid(auth.options.Clock) {
		return "Bearer " + auth.token.AccessToken, nil
	}

	// A concurrent invocation may have cached a fresh token already.
	if auth.token.AccessToken == "" && auth.options.Store != nil {
		cached, err := auth.options.Store.Load()
		if err == nil && cached.Valid(auth.options.Clock) {
			auth.token = cached
			return "Bearer " + cached.AccessToken, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("spotify: loading cached token: %w", err)
		}
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	token, err := fetchToken(ctx, auth.options, auth.creds, form)
	if err != nil {
		return "", err
	}

	auth.token = token
	if auth.options.Store != nil {
		if err := auth.options.Store.Save(token); err != nil {
			return "", fmt.Errorf("spotify: caching token: %w", err)
		}
	}

	return "Bearer " + token.AccessToken, nil
}

// --- Authorization-code flow ---

// OAuthConfig holds the user-authorization parameters for the
// authorization-code flow.
type OAuthConfig struct {
	// RedirectURI is where the accounts service sends the user after
	// consent. Must exactly match one registered for the application.
	RedirectURI string

	// Scopes are the authorizations to request.
	Scopes []string

	// ShowDialog forces the consent dialog even when the user has
	// already approved the application.
	ShowDialog bool
}

// AuthorizationCode authenticates a user via the OAuth2
// authorization-code flow: build an AuthorizeURL, have the user consent,
// Exchange the returned code, then present and auto-refresh the
// resulting token. Tokens are persisted to the configured store on
// every change so concurrent and future invocations reuse them.
type AuthorizationCode struct {
	creds   Credentials
	config  OAuthConfig
	options AuthOptions

	mu    sync.Mutex
	token Token
}

// NewAuthorizationCode creates an authorization-code Authenticator.
func NewAuthorizationCode(creds Credentials, config OAuthConfig, options AuthOptions) *AuthorizationCode {
	return &AuthorizationCode{creds: creds, config: config, options: options.withDefaults()}
}

// AuthorizeURL returns the URL the user must visit to grant consent.
// The state value is echoed back on the redirect; callers generate it
// with RandomState and verify the echo to prevent CSRF.
func (auth *AuthorizationCode) AuthorizeURL(state string) string {
	query := url.Values{
		"client_id":     {auth.creds.ID},
		"response_type": {"code"},
		"redirect_uri":  {auth.config.RedirectURI},
		"state":         {state},
	}
	if len(auth.config.Scopes) > 0 {
		query.Set("scope", ScopeList(auth.config.Scopes).String())
	}
	if auth.config.ShowDialog {
		query.Set("show_dialog", "true")
	}
	return auth.options.AuthURL + "?" + query.Encode()
}

// Exchange trades an authorization code for a token, stores it as the
// session's current token, and persists it.
func (auth *AuthorizationCode) Exchange(ctx context.Context, code string) (Token, error) {
	auth.mu.Lock()
	defer auth.mu.Unlock()

	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {auth.config.RedirectURI},
	}
	token, err := fetchToken(ctx, auth.options, auth.creds, form)
	if err != nil {
		return Token{}, err
	}

	return auth.adoptLocked(token)
}

// Refresh obtains a fresh access token using a refresh token. The
// accounts service may omit the refresh token from the response, in
// which case the one provided here is carried forward.
func (auth *AuthorizationCode) Refresh(ctx context.Context, refreshToken string) (Token, error) {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	return auth.refreshLocked(ctx, refreshToken)
}

func (auth *AuthorizationCode) AuthorizationHeader(ctx context.Context) (string, error) {
	auth.mu.Lock()
	defer auth.mu.Unlock()

	// Adopt a cached token on first use. A cached token that lacks the
	// configured scopes cannot serve this session and is ignored.
	if auth.token.AccessToken == "" && auth.options.Store != nil {
		cached, err := auth.options.Store.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("spotify: loading cached token: %w", err)
		}
		if err == nil && cached.Scopes.HasAll(auth.config.Scopes...) {
			auth.token = cached
		}
	}

	if auth.token.Valid(auth.options.Clock) {
		return "Bearer " + auth.token.AccessToken, nil
	}

	if auth.token.RefreshToken != "" {
		token, err := auth.refreshLocked(ctx, auth.token.RefreshToken)
		if err != nil {
			return "", err
		}
		return "Bearer " + token.AccessToken, nil
	}

	return "", fmt.Errorf("spotify: authorization required (no valid user token; complete the authorization-code flow first)")
}

// refreshLocked fetches a fresh token with the refresh-token grant.
// Must be called with auth.mu held.
func (auth *AuthorizationCode) refreshLocked(ctx context.Context, refreshToken string) (Token, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	token, err := fetchToken(ctx, auth.options, auth.creds, form)
	if err != nil {
		return Token{}, err
	}

	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}

	return auth.adoptLocked(token)
}

// adoptLocked records the token as current and persists it. Must be
// called with auth.mu held.
func (auth *AuthorizationCode) adoptLocked(token Token) (Token, error) {
	auth.token = token
	if auth.options.Store != nil {
		if err := auth.options.Store.Save(token); err != nil {
			return Token{}, fmt.Errorf("spotify: caching token: %w", err)
		}
	}
	return token, nil
}

// ParseRedirect extracts the authorization code and state from the
// redirect URL the user lands on (and typically pastes back into the
// terminal) after consenting. A denial surfaces the accounts service's
// error code.
func ParseRedirect(rawURL string) (code, state string, err error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", "", fmt.Errorf("spotify: parsing redirect URL: %w", err)
	}

	query := parsed.Query()
	if denied := query.Get("error"); denied != "" {
		return "", "", fmt.Errorf("spotify: authorization denied: %s", denied)
	}

	code = query.Get("code")
	if code == "" {
		return "", "", fmt.Errorf("spotify: redirect URL %q has no code parameter", rawURL)
	}

	return code, query.Get("state"), nil
}

// RandomState creates a random 16-byte hex string for the
// authorization-code flow's CSRF state parameter.
func RandomState() (string, error) {
	var buffer [16]byte
	if _, err := rand.Read(buffer[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buffer[:]), nil
}

// fetchToken performs a token endpoint request. The endpoint
// authenticates the application itself (HTTP Basic with the client
// credentials) rather than a bearer token, and takes a form body.
func fetchToken(ctx context.Context, options AuthOptions, creds Credentials, form url.Values) (Token, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, options.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, fmt.Errorf("spotify: creating token request: %w", err)
	}
	request.SetBasicAuth(creds.ID, creds.Secret)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")

	response, err := options.HTTPClient.Do(request)
	if err != nil {
		return Token{}, fmt.Errorf("spotify: token request: %w", err)
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return Token{}, fmt.Errorf("spotify: reading token response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return Token{}, parseAuthError(response.StatusCode, body)
	}

	var wire struct {
		AccessToken  string    `json:"access_token"`
		TokenType    string    `json:"token_type"`
		Scope        ScopeList `json:"scope"`
		ExpiresIn    int       `json:"expires_in"`
		RefreshToken string    `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return Token{}, fmt.Errorf("spotify: decoding token response: %w", err)
	}
	if wire.AccessToken == "" {
		return Token{}, fmt.Errorf("spotify: token endpoint returned no access token")
	}

	return Token{
		AccessToken:  wire.AccessToken,
		TokenType:    wire.TokenType,
		Scopes:       wire.Scope,
		ExpiresAt:    options.Clock.Now().Add(time.Duration(wire.ExpiresIn) * time.Second),
		RefreshToken: wire.RefreshToken,
	}, nil
}
