package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"calog/internal/config"
	"calog/internal/model"
)

// Scopes requested on sign-in: enough to resolve the user's email,
// display name and avatar.
var requiredScopes = []string{"openid", "email", "profile"}

// tokenFilePath returns the path to the stored token file.
func tokenFilePath() (string, error) {
	base, err := config.BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "auth", "tokens.json"), nil
}

// oauth2Config returns the oauth2.Config for the configured provider.
func oauth2Config(cfg config.OAuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID: cfg.ClientID,
		Scopes:   requiredScopes,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: cfg.DeviceAuthURL,
			TokenURL:      cfg.TokenURL,
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

// loadToken loads a previously saved token from disk.
func loadToken() (*oauth2.Token, error) {
	path, err := tokenFilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("corrupt token file (delete %s to re-authenticate): %w", path, err)
	}
	return &tok, nil
}

// saveToken persists a token to disk.
func saveToken(tok *oauth2.Token) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling token: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving token file: %w", err)
	}
	return nil
}

// savingTokenSource wraps a TokenSource and persists refreshed tokens.
type savingTokenSource struct {
	ts oauth2.TokenSource
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.ts.Token()
	if err != nil {
		return nil, err
	}
	// Best-effort save; ignore errors.
	_ = saveToken(tok)
	return tok, nil
}

// SignedIn reports whether a stored token exists, without refreshing it.
func SignedIn() bool {
	tok, err := loadToken()
	return err == nil && tok != nil
}

// SignOut removes the stored token, destroying the local identity.
func SignOut() error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

// GetToken loads saved tokens, refreshing them if needed, or initiates a new
// device code flow if no valid token is available. With interactive false it
// never starts a new flow and returns (nil, nil, nil) when signed out.
func GetToken(ctx context.Context, cfg config.OAuthConfig, interactive bool) (*oauth2.Token, *oauth2.Config, error) {
	oc := oauth2Config(cfg)

	tok, err := loadToken()
	if err != nil {
		// Corrupt token — warn and re-auth.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		tok = nil
	}

	if tok != nil && tok.Valid() {
		return tok, oc, nil
	}

	// Try to refresh.
	if tok != nil && tok.RefreshToken != "" {
		ts := oc.TokenSource(ctx, tok)
		refreshed, err := ts.Token()
		if err == nil {
			if err2 := saveToken(refreshed); err2 != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save refreshed token: %v\n", err2)
			}
			return refreshed, oc, nil
		}
		fmt.Fprintf(os.Stderr, "Token refresh failed (%v), re-authenticating...\n", err)
	}

	if !interactive {
		return nil, nil, nil
	}

	if cfg.ClientID == "" {
		return nil, nil, fmt.Errorf("no OAuth client ID configured (set oauth.client_id in config.json or CALOG_OAUTH_CLIENT_ID)")
	}

	// Device code flow.
	resp, err := oc.DeviceAuth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("device auth request failed: %w", err)
	}

	fmt.Println()
	fmt.Println("To sign in, use a web browser to open the page:")
	fmt.Printf("  %s\n", resp.VerificationURI)
	fmt.Printf("Enter the code: %s\n", resp.UserCode)
	fmt.Println()

	newTok, err := oc.DeviceAccessToken(ctx, resp)
	if err != nil {
		return nil, nil, fmt.Errorf("device authentication failed: %w", err)
	}

	if err := saveToken(newTok); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save token: %v\n", err)
	}

	return newTok, oc, nil
}

// FetchIdentity resolves the signed-in user via the provider's userinfo
// endpoint using an authenticated HTTP client.
func FetchIdentity(ctx context.Context, tok *oauth2.Token, oc *oauth2.Config, userInfoURL string) (*model.Identity, error) {
	client := oauth2.NewClient(ctx, &savingTokenSource{ts: oc.TokenSource(ctx, tok)})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating userinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading userinfo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo error %d: %s", resp.StatusCode, string(body))
	}

	var ident model.Identity
	if err := json.Unmarshal(body, &ident); err != nil {
		return nil, fmt.Errorf("decoding userinfo response: %w", err)
	}
	if ident.Email == "" {
		return nil, fmt.Errorf("userinfo response carries no email")
	}
	return &ident, nil
}

// ResolveIdentity is the non-interactive identity lookup used by gated
// commands: it returns nil (not an error) when no one is signed in.
func ResolveIdentity(ctx context.Context, cfg config.OAuthConfig) (*model.Identity, error) {
	tok, oc, err := GetToken(ctx, cfg, false)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	return FetchIdentity(ctx, tok, oc, cfg.UserInfoURL)
}
