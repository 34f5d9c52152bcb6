package web

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// SettingsPage handles GET /settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "settings.html", &PageData{Title: "Configurações", User: claims})
}

// SettingsSubmit handles POST /settings (password change).
func (s *Server) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	current := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	render := func(errMsg, successMsg string) {
		s.Templates.Render(w, "settings.html", &PageData{
			Title:   "Configurações",
			User:    claims,
			Error:   errMsg,
			Success: successMsg,
		})
	}

	if current == "" || newPassword == "" {
		render("Informe a senha atual e a nova senha.", "")
		return
	}
	if len(newPassword) < 8 {
		render("A nova senha deve ter pelo menos 8 caracteres.", "")
		return
	}
	if newPassword != confirm {
		render("As senhas não coincidem.", "")
		return
	}

	_, hash, err := s.Store.AdminCredentials(r.Context())
	if err != nil {
		slog.Error("failed to load admin credentials", "error", err)
		render("Erro interno.", "")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)); err != nil {
		render("Senha atual incorreta.", "")
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		render("Erro interno.", "")
		return
	}

	if err := s.Store.SetAdminPassword(r.Context(), string(newHash)); err != nil {
		slog.Error("failed to update password", "error", err)
		render("Erro interno.", "")
		return
	}

	slog.Info("user changed own password", "user", claims.Username)
	render("", "Senha alterada com sucesso.")
}
