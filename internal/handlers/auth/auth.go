package authhandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	serviceerrors "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service"
	authservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/auth"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

const StatusClientClosedRequest = 499

type AuthService interface {
	Register(ctx context.Context, username, password, confirm string) (models.User, error)
	Login(ctx context.Context, username, password string) (authservice.Session, error)
	Logout(token string)
}

type Handler struct {
	log      *slog.Logger
	service  AuthService
	validate *validator.Validate
}

func New(log *slog.Logger, service AuthService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Signup"
	log := h.log.With("op", op)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot unmarshal request body", sl.Err(err))
		http.Error(w, "Cannot unmarshal request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(req); err != nil {
		log.Warn("Failed to validate", sl.Err(err))
		http.Error(w, "Failed to validate", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password, req.Confirm)
	if err != nil {
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
			return
		} else if errors.Is(err, serviceerrors.ErrAlreadyExists) {
			http.Error(w, "Username already exists", http.StatusConflict)
			return
		} else if errors.Is(err, serviceerrors.ErrPasswordTooShort) {
			http.Error(w, serviceerrors.ErrPasswordTooShort.Error(), http.StatusBadRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrPasswordMismatch) {
			http.Error(w, serviceerrors.ErrPasswordMismatch.Error(), http.StatusBadRequest)
			return
		} else {
			log.Error("Failed to register user", sl.Err(err))
			http.Error(w, "Failed to register user", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(user); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := h.log.With("op", op)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Cannot unmarshal request body", sl.Err(err))
		http.Error(w, "Cannot unmarshal request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(req); err != nil {
		log.Warn("Failed to validate", sl.Err(err))
		http.Error(w, "Failed to validate", http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		var throttled *authservice.ThrottledError
		if errors.Is(err, serviceerrors.ErrContextCanceled) {
			log.Warn("Context canceled", sl.Err(serviceerrors.ErrContextCanceled))
			http.Error(w, "Context canceled", StatusClientClosedRequest)
			return
		} else if errors.Is(err, serviceerrors.ErrDeadlineExceeded) {
			log.Warn("Deadline exceeded", sl.Err(serviceerrors.ErrDeadlineExceeded))
			http.Error(w, "Deadline exceeded", http.StatusGatewayTimeout)
			return
		} else if errors.As(err, &throttled) {
			http.Error(w, throttled.Error(), http.StatusTooManyRequests)
			return
		} else if errors.Is(err, serviceerrors.ErrInvalidCredentials) {
			http.Error(w, "Invalid username or password", http.StatusUnauthorized)
			return
		} else {
			log.Error("Failed to log in", sl.Err(err))
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
			return
		}
	}

	if err := json.NewEncoder(w).Encode(session); err != nil {
		log.Error("Failed to write response", sl.Err(err))
		http.Error(w, "Failed to write response", http.StatusInternalServerError)
		return
	}
}

// POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := BearerToken(r)
	if token == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	h.service.Logout(token)
	w.WriteHeader(http.StatusNoContent)
}
