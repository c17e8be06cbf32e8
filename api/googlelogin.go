package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/optimus-events/event-registration/registration"
	"google.golang.org/api/idtoken"
)

const googleAuthJWTCookieKey = "GOOGLE_AUTH_JWT"

func (a *API) PostGoogleLogin(ctx context.Context, request PostGoogleLoginRequestObject) (PostGoogleLoginResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		return PostGoogleLogin400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	jwtPayload, err := a.googleIdVerifier.Validate(ctx, request.Body.GoogleJWT, a.config.GoogleClientID)
	if err != nil {
		return PostGoogleLogin401JSONResponse{
			Message: "Invalid JWT",
			Code:    AuthError,
		}, nil
	}

	user := userFromPayload(jwtPayload)
	logger.Info("successful login", slog.String("user-id", user.ID), slog.String("email", user.Email))

	cookie := a.authCookie(request.Body.GoogleJWT, time.Unix(jwtPayload.Expires, 0))

	return PostGoogleLogin200Response{
		Headers: PostGoogleLogin200ResponseHeaders{
			SetCookie: cookie.String(),
		},
	}, nil
}

func (a *API) PostLogout(ctx context.Context, request PostLogoutRequestObject) (PostLogoutResponseObject, error) {
	cookie := a.authCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1

	return PostLogout200Response{
		Headers: PostLogout200ResponseHeaders{
			SetCookie: cookie.String(),
		},
	}, nil
}

func (a *API) authCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     googleAuthJWTCookieKey,
		Value:    value,
		Expires:  expires,
		Domain:   a.config.CookieDomain,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.config.Env == PROD,
		SameSite: http.SameSiteStrictMode,
	}
}

// tokenFromRequest prefers a bearer token over the login cookie.
func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if c, err := r.Cookie(googleAuthJWTCookieKey); err == nil {
		return c.Value
	}

	return ""
}

func userFromPayload(p *idtoken.Payload) registration.User {
	email, _ := p.Claims["email"].(string)
	return registration.User{
		ID:    p.Subject,
		Email: email,
	}
}
