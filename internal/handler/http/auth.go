package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/MKhiriev/go-car-keeper/models"
)

const (
	userNameNotFoundMessage = "Username not found"
	passwordNotFoundMessage = "Password not found"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Str("user_name", user.UserName).Msg("user registration failed")
		return
	}

	h.writeToken(w, r, registeredUser)
}

// authorize checks a user name and passcode pair and answers with a fresh
// token. Unknown users and wrong passcodes get distinct plain-text answers.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("user_name", user.UserName).Msg("no user was found")
			http.Error(w, userNameNotFoundMessage, http.StatusNotFound)
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("user_name", user.UserName).Msg("wrong password")
			http.Error(w, passwordNotFoundMessage, http.StatusUnauthorized)
		default:
			status := writeError(w, err)
			log.Err(err).Int("status", status).Msg("unexpected error occurred during user login")
		}
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser)
}

// writeToken issues a token for user and sends it both as a JSON string body
// and in the Authorization response header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("%s %s", bearerScheme, token.SignedString))
	if _, err = utils.WriteJSON(w, token.SignedString, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token response")
	}
}
