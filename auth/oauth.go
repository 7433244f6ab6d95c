package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"github.com/devfolio/dashboard-backend/config"
	"github.com/devfolio/dashboard-backend/errs"
)

const (
	ProviderGitHub = "github"
	ProviderGoogle = "google"
)

// OAuthProvider wraps an oauth2 config plus the provider-specific profile
// endpoint needed to turn an access token into a Principal.
type OAuthProvider struct {
	Name       string
	Config     *oauth2.Config
	profileURL string
}

// NewProviders builds the sign-in providers that have credentials configured.
// A deployment may configure either or both of GitHub and Google.
func NewProviders(cfg map[string]string, callbackBase string) map[string]*OAuthProvider {
	providers := make(map[string]*OAuthProvider)

	if id := config.GetString(cfg, "GITHUB_ID", ""); id != "" {
		providers[ProviderGitHub] = &OAuthProvider{
			Name: ProviderGitHub,
			Config: &oauth2.Config{
				ClientID:     id,
				ClientSecret: config.GetString(cfg, "GITHUB_SECRET", ""),
				Endpoint:     github.Endpoint,
				RedirectURL:  fmt.Sprintf("%s/auth/%s/callback", callbackBase, ProviderGitHub),
				Scopes:       []string{"read:user", "user:email"},
			},
			profileURL: "https://api.github.com/user",
		}
	}

	if id := config.GetString(cfg, "GOOGLE_CLIENT_ID", ""); id != "" {
		providers[ProviderGoogle] = &OAuthProvider{
			Name: ProviderGoogle,
			Config: &oauth2.Config{
				ClientID:     id,
				ClientSecret: config.GetString(cfg, "GOOGLE_CLIENT_SECRET", ""),
				Endpoint:     google.Endpoint,
				RedirectURL:  fmt.Sprintf("%s/auth/%s/callback", callbackBase, ProviderGoogle),
				Scopes:       []string{"openid", "profile", "email"},
			},
			profileURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		}
	}

	return providers
}

// Exchange trades the authorization code for a token and fetches the user's
// profile from the provider.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*Principal, error) {
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, errs.NewUnauthorizedError("code exchange failed")
	}
	return p.fetchProfile(ctx, token)
}

func (p *OAuthProvider) fetchProfile(ctx context.Context, token *oauth2.Token) (*Principal, error) {
	client := p.Config.Client(ctx, token)

	resp, err := client.Get(p.profileURL)
	if err != nil {
		return nil, errs.NewInternalError("profile fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewUnauthorizedError(fmt.Sprintf("profile endpoint returned %d", resp.StatusCode))
	}

	switch p.Name {
	case ProviderGitHub:
		var profile struct {
			ID        int64  `json:"id"`
			Login     string `json:"login"`
			Name      string `json:"name"`
			Email     string `json:"email"`
			AvatarURL string `json:"avatar_url"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return nil, errs.NewInternalError("malformed profile response")
		}
		name := profile.Name
		if name == "" {
			name = profile.Login
		}
		return &Principal{
			Subject:   strconv.FormatInt(profile.ID, 10),
			Name:      name,
			Email:     profile.Email,
			AvatarURL: profile.AvatarURL,
			Provider:  ProviderGitHub,
		}, nil
	case ProviderGoogle:
		var profile struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Email   string `json:"email"`
			Picture string `json:"picture"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return nil, errs.NewInternalError("malformed profile response")
		}
		return &Principal{
			Subject:   profile.ID,
			Name:      profile.Name,
			Email:     profile.Email,
			AvatarURL: profile.Picture,
			Provider:  ProviderGoogle,
		}, nil
	}

	return nil, errs.NewInternalError("unknown provider")
}
