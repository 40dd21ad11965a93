package handler

import (
	"net/http"

	"github.com/obazhan/sportclub/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. mediaDir is the
// directory uploaded media is served from under /media/.
func RegisterRoutes(
	mux *http.ServeMux,
	tokens *service.TokenService,
	auth *service.AuthService,
	messages *service.MessageService,
	limiter *service.TokenBucket,
	mediaDir string,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, limiter, cookieSecure)
	messageHandler := NewMessageHandler(messages)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(tokens, auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("PUT /api/auth/update-profile", protected(authHandler.HandleUpdateProfile))
	mux.Handle("GET /api/auth/check", protected(authHandler.HandleCheckAuth))

	mux.Handle("GET /api/messages/users", protected(messageHandler.HandleContacts))
	mux.Handle("GET /api/messages/{id}", protected(messageHandler.HandleGetMessages))
	mux.Handle("POST /api/messages/send/{id}", protected(messageHandler.HandleSendMessage))

	mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))
}
