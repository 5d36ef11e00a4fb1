package handlers

import (
	"errors"
	"net/http"

	"socialapi/dto"
	"socialapi/monitoring"
	"socialapi/services"
)

// AccountHandler handles registration and login.
type AccountHandler struct {
	Accounts *services.AccountService
}

func NewAccountHandler(accounts *services.AccountService) *AccountHandler {
	return &AccountHandler{Accounts: accounts}
}

// Register creates an account: 200 with the account, 409 for a taken
// username, 400 for invalid credentials.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body dto.AccountDTO
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		monitoring.RegisterFailure.WithLabelValues("invalid json").Inc()
		return
	}

	account, err := h.Accounts.Register(r.Context(), body.Model())
	switch {
	case errors.Is(err, services.ErrDuplicateUsername):
		http.Error(w, err.Error(), http.StatusConflict)
		monitoring.RegisterFailure.WithLabelValues("duplicate username").Inc()
	case errors.Is(err, services.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusBadRequest)
		monitoring.RegisterFailure.WithLabelValues("invalid credentials").Inc()
	case err != nil:
		writeStoreError(w, r, err)
		monitoring.RegisterFailure.WithLabelValues("store error").Inc()
	default:
		writeJSON(w, http.StatusOK, dto.FromAccount(account))
		monitoring.RegisterSuccess.Inc()
	}
}

// Login answers 200 with the account when username and password match,
// otherwise 401 with no body.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body dto.AccountDTO
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		monitoring.LoginFailure.WithLabelValues("invalid json").Inc()
		return
	}

	account, err := h.Accounts.Login(r.Context(), body.Username, body.Password)
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
		monitoring.LoginFailure.WithLabelValues("bad credentials").Inc()
	case err != nil:
		writeStoreError(w, r, err)
		monitoring.LoginFailure.WithLabelValues("store error").Inc()
	default:
		writeJSON(w, http.StatusOK, dto.FromAccount(account))
		monitoring.LoginSuccess.Inc()
	}
}
