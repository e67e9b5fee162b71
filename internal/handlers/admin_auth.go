package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/auth"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/middleware"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/transport"
)

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminLoginRequest
	if err := decodeJSONLenient(r, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	if s.Cfg.AdminPassword == "" && s.Cfg.AdminPasswordHash == "" {
		// Misconfiguration is reported per login attempt rather than
		// crashing the server at startup.
		log.Error("admin login: ADMIN_PASSWORD not configured")
		transport.WriteError(w, http.StatusInternalServerError, "admin not configured", nil)
		return
	}

	if !s.passwordMatches(req.Password) {
		log.Warn("admin login: invalid password")
		transport.WriteError(w, http.StatusUnauthorized, "invalid password", nil)
		return
	}

	token, err := s.Sessions.Issue()
	if err != nil {
		log.Error("admin login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("admin login: ok")
	transport.WriteJSON(w, http.StatusOK, AdminLoginResponse{Token: token})
}

func (s *Server) passwordMatches(password string) bool {
	if s.Cfg.AdminPasswordHash != "" {
		return auth.ComparePassword(s.Cfg.AdminPasswordHash, password) == nil
	}
	return auth.ComparePlain(s.Cfg.AdminPassword, password)
}

// AdminLogout revokes the presented token. Revoking an absent or unknown
// token is not an error, so logout always succeeds.
func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if token := middleware.BearerToken(r); token != "" {
		s.Sessions.Revoke(token)
	}
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
