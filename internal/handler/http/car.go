// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/go-chi/chi/v5"
)

// carRequest is the body accepted by create and update. The owner is never
// read from the body.
type carRequest struct {
	Make   string `json:"Make"`
	MakeID int64  `json:"Make_id"`
}

func (h *Handler) listCars(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoClaimsInContext)
		return
	}

	cars, err := h.services.CarService.ListCars(r.Context(), userID)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Int64("user_id", userID).Msg("listing cars failed")
		return
	}

	utils.WriteJSON(w, cars, http.StatusOK)
}

func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, carID, err := carScope(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	carMake, err := h.services.CarService.GetCarMake(r.Context(), userID, carID)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Int64("car_id", carID).Msg("getting car failed")
		return
	}

	utils.WriteJSON(w, carMake, http.StatusOK)
}

func (h *Handler) createCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoClaimsInContext)
		return
	}

	var req carRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.CarService.CreateCar(r.Context(), models.Car{
		Make:   req.Make,
		MakeID: req.MakeID,
		UserID: userID,
	})
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Int64("user_id", userID).Msg("creating car failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) updateCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, carID, err := carScope(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	var req carRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.CarService.UpdateCar(r.Context(), models.Car{
		ID:     carID,
		Make:   req.Make,
		UserID: userID,
	})
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Int64("car_id", carID).Msg("updating car failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, carID, err := carScope(r)
	if err != nil {
		log.Err(err).Send()
		writeError(w, err)
		return
	}

	result, err := h.services.CarService.DeleteCar(r.Context(), userID, carID)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Int64("car_id", carID).Msg("deleting car failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// carScope returns the caller's id from the verified claims and the car id
// from the route.
func carScope(r *http.Request) (userID, carID int64, err error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, ErrNoClaimsInContext
	}

	raw := chi.URLParam(r, "id")
	carID, err = strconv.ParseInt(raw, 10, 64)
	if err != nil || carID <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCarID, raw)
	}

	return userID, carID, nil
}
