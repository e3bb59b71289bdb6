package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// withRouteID sets the chi {id} parameter on a request that bypasses the
// router.
func withRouteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func carRequestFor(method, id, body string, userID int64) *http.Request {
	req := newJSONRequest(method, "/"+id, body)
	req = withTestClaims(req, userID)
	return withRouteID(req, id)
}

func TestListCars_ReturnsCallerCars(t *testing.T) {
	h, m := newMockedHandler(t)

	cars := []models.Car{
		{ID: 1, Make: "Volvo", MakeID: 10, UserID: 7},
		{ID: 2, Make: "Saab", MakeID: 11, UserID: 7},
	}
	m.cars.EXPECT().ListCars(gomock.Any(), int64(7)).Return(cars, nil)

	rr := httptest.NewRecorder()
	h.listCars(rr, withTestClaims(newJSONRequest(http.MethodGet, "/user-car", ""), 7))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`[{"ID":1,"Make":"Volvo","Make_id":10,"user_id":7},{"ID":2,"Make":"Saab","Make_id":11,"user_id":7}]`,
		rr.Body.String())
}

func TestListCars_EmptyIsArray(t *testing.T) {
	h, m := newMockedHandler(t)
	m.cars.EXPECT().ListCars(gomock.Any(), int64(3)).Return([]models.Car{}, nil)

	rr := httptest.NewRecorder()
	h.listCars(rr, withTestClaims(newJSONRequest(http.MethodGet, "/user-car", ""), 3))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestListCars_WithoutClaims(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := httptest.NewRecorder()
	h.listCars(rr, newJSONRequest(http.MethodGet, "/user-car", ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListCars_TransientFailure(t *testing.T) {
	h, m := newMockedHandler(t)
	m.cars.EXPECT().ListCars(gomock.Any(), int64(3)).
		Return(nil, fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrTransientInfra))

	rr := httptest.NewRecorder()
	h.listCars(rr, withTestClaims(newJSONRequest(http.MethodGet, "/user-car", ""), 3))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGetCar(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setup      func(m testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "owned car",
			id:   "4",
			setup: func(m testServices) {
				m.cars.EXPECT().GetCarMake(gomock.Any(), int64(7), int64(4)).Return(models.CarMake{Make: "Volvo"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"Make":"Volvo"}`,
		},
		{
			name: "missing or foreign car",
			id:   "99",
			setup: func(m testServices) {
				m.cars.EXPECT().GetCarMake(gomock.Any(), int64(7), int64(99)).
					Return(models.CarMake{}, fmt.Errorf("error getting car: %w", store.ErrCarNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "car not found",
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid car id",
		},
		{
			name:       "zero id",
			id:         "0",
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid car id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rr := httptest.NewRecorder()
			h.getCar(rr, carRequestFor(http.MethodGet, tt.id, "", 7))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestCreateCar_OwnerFromClaims(t *testing.T) {
	h, m := newMockedHandler(t)

	m.cars.EXPECT().
		CreateCar(gomock.Any(), models.Car{Make: "Volvo", MakeID: 10, UserID: 7}).
		Return(models.MutationResult{InsertID: 15, AffectedRows: 1}, nil)

	rr := httptest.NewRecorder()
	// user_id in the body must be ignored
	req := withTestClaims(newJSONRequest(http.MethodPost, "/", `{"Make":"Volvo","Make_id":10,"user_id":999}`), 7)
	h.createCar(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var result models.MutationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, models.MutationResult{InsertID: 15, AffectedRows: 1}, result)
}

func TestCreateCar_Errors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		h, _ := newMockedHandler(t)
		rr := httptest.NewRecorder()
		h.createCar(rr, withTestClaims(newJSONRequest(http.MethodPost, "/", `{"Make":`), 7))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid data", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.cars.EXPECT().CreateCar(gomock.Any(), gomock.Any()).Return(models.MutationResult{}, service.ErrInvalidDataProvided)

		rr := httptest.NewRecorder()
		h.createCar(rr, withTestClaims(newJSONRequest(http.MethodPost, "/", `{"Make":"Volvo"}`), 7))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("without claims", func(t *testing.T) {
		h, _ := newMockedHandler(t)
		rr := httptest.NewRecorder()
		h.createCar(rr, newJSONRequest(http.MethodPost, "/", `{"Make":"Volvo"}`))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateCar(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.cars.EXPECT().
			UpdateCar(gomock.Any(), models.Car{ID: 4, Make: "Saab", UserID: 7}).
			Return(models.MutationResult{AffectedRows: 1}, nil)

		rr := httptest.NewRecorder()
		h.updateCar(rr, carRequestFor(http.MethodPut, "4", `{"Make":"Saab"}`, 7))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"affectedRows":1}`, rr.Body.String())
	})

	t.Run("nothing updated", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.cars.EXPECT().UpdateCar(gomock.Any(), gomock.Any()).Return(models.MutationResult{}, store.ErrCarNotFound)

		rr := httptest.NewRecorder()
		h.updateCar(rr, carRequestFor(http.MethodPut, "4", `{"Make":"Saab"}`, 7))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newMockedHandler(t)
		rr := httptest.NewRecorder()
		h.updateCar(rr, carRequestFor(http.MethodPut, "4x", `{"Make":"Saab"}`, 7))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		h, _ := newMockedHandler(t)
		rr := httptest.NewRecorder()
		h.updateCar(rr, carRequestFor(http.MethodPut, "4", `Make=Saab`, 7))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteCar(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.cars.EXPECT().DeleteCar(gomock.Any(), int64(7), int64(4)).Return(models.MutationResult{AffectedRows: 1}, nil)

		rr := httptest.NewRecorder()
		h.deleteCar(rr, carRequestFor(http.MethodDelete, "4", "", 7))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"affectedRows":1}`, rr.Body.String())
	})

	t.Run("nothing deleted", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.cars.EXPECT().DeleteCar(gomock.Any(), int64(7), int64(4)).Return(models.MutationResult{}, store.ErrCarNotFound)

		rr := httptest.NewRecorder()
		h.deleteCar(rr, carRequestFor(http.MethodDelete, "4", "", 7))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("negative id", func(t *testing.T) {
		h, _ := newMockedHandler(t)
		rr := httptest.NewRecorder()
		h.deleteCar(rr, carRequestFor(http.MethodDelete, "-1", "", 7))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
