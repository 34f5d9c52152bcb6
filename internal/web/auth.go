package web

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/controleapp/controle/internal/auth"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Entrar"})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Entrar",
			Error: "Informe usuário e senha.",
		})
		return
	}

	adminUser, hash, err := s.Store.AdminCredentials(r.Context())
	if err != nil || adminUser == "" || username != adminUser {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Entrar",
			Error: "Usuário ou senha incorretos.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		slog.Warn("login failed", "username", username, "remote", r.RemoteAddr)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Entrar",
			Error: "Usuário ou senha incorretos.",
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, adminUser)
	if err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Entrar",
			Error: "Erro ao entrar.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. The session token is revoked so it
// cannot be replayed from an old cookie.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.JWTSecret, cookie.Value); err == nil {
			if err := s.Store.RevokeToken(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				slog.Error("failed to revoke token on logout", "error", err)
			}
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
