package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/dashboard-backend/auth"
	"github.com/devfolio/dashboard-backend/errs"
)

const stateCookieName = "oauth_state"

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	providers    map[string]*auth.OAuthProvider
	tokens       *auth.TokenService
	secureCookie bool
}

func newAuthHandler(providers map[string]*auth.OAuthProvider, tokens *auth.TokenService, secureCookie bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		providers:    providers,
		tokens:       tokens,
		secureCookie: secureCookie,
	}
}

func (h authHandler) provider(r *http.Request) (*auth.OAuthProvider, error) {
	name := chi.URLParam(r, "provider")
	provider, ok := h.providers[name]
	if !ok {
		return nil, errs.NewBadRequestError("unknown provider: " + name)
	}
	return provider, nil
}

// login redirects the browser to the provider's consent page, binding the
// round trip with a random state cookie.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, err := h.provider(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		state := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     stateCookieName,
			Value:    state,
			Path:     "/",
			MaxAge:   int((10 * time.Minute).Seconds()),
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, provider.Config.AuthCodeURL(state), http.StatusFound)
	}
}

// callback completes the OAuth flow: state check, code exchange, profile
// fetch, then a freshly minted session credential in both the body and the
// session cookie.
func (h authHandler) callback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, err := h.provider(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		stateCookie, cookieErr := r.Cookie(stateCookieName)
		if cookieErr != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
			h.responder.WriteError(w, errs.NewUnauthorizedError("state mismatch"))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing code"))
			return
		}

		principal, exchangeErr := provider.Exchange(r.Context(), code)
		if exchangeErr != nil {
			h.responder.WriteError(w, exchangeErr)
			return
		}

		token, mintErr := h.tokens.Mint(*principal, time.Now())
		if mintErr != nil {
			h.logger.Error().Err(mintErr).Msg("Failed to mint session token")
			h.responder.WriteError(w, errs.NewInternalError("could not create session"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int((24 * time.Hour).Seconds()),
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]any{
			"token": token,
			"user":  principal,
		})
	}
}

// me returns the principal behind the supplied credential
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := ctxGetPrincipal(r.Context())
		if principal == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		h.responder.WriteJSON(w, principal)
	}
}

// logout clears the session cookie
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
