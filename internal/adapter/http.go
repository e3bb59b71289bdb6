package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/go-resty/resty/v2"
)

const bearerPrefix = "Bearer "

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// carPayload is the body accepted by the create and update routes.
type carPayload struct {
	Make   string `json:"Make"`
	MakeID int64  `json:"Make_id"`
}

// NewHTTPServerAdapter returns a [ServerAdapter] talking to the server at
// address. A missing scheme defaults to http. A zero timeout leaves
// requests unbounded.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	client.SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServerAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	return h.requestToken(ctx, "/registeruser", user)
}

func (h *httpServerAdapter) Authorize(ctx context.Context, user models.User) (string, error) {
	return h.requestToken(ctx, "/authorized", user)
}

// requestToken posts credentials and keeps the token from the
// Authorization response header.
func (h *httpServerAdapter) requestToken(ctx context.Context, path string, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, ok := strings.CutPrefix(resp.Header().Get("Authorization"), bearerPrefix)
	if !ok || token == "" {
		return "", ErrNoToken
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Str("user_name", user.UserName).Msg("token received")

	return token, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) ListCars(ctx context.Context) ([]models.Car, error) {
	resp, err := h.authedRequest(ctx).Get("/user-car")
	if err != nil {
		return nil, fmt.Errorf("list cars request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cars []models.Car
	if err = json.Unmarshal(resp.Body(), &cars); err != nil {
		return nil, fmt.Errorf("decode cars: %w", err)
	}

	return cars, nil
}

func (h *httpServerAdapter) GetCarMake(ctx context.Context, carID int64) (models.CarMake, error) {
	resp, err := h.authedRequest(ctx).Get(carPath(carID))
	if err != nil {
		return models.CarMake{}, fmt.Errorf("get car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CarMake{}, err
	}

	var carMake models.CarMake
	if err = json.Unmarshal(resp.Body(), &carMake); err != nil {
		return models.CarMake{}, fmt.Errorf("decode car make: %w", err)
	}

	return carMake, nil
}

func (h *httpServerAdapter) CreateCar(ctx context.Context, car models.Car) (models.MutationResult, error) {
	return h.mutate(h.authedRequest(ctx).SetBody(carPayload{Make: car.Make, MakeID: car.MakeID}), resty.MethodPost, "/")
}

func (h *httpServerAdapter) UpdateCar(ctx context.Context, car models.Car) (models.MutationResult, error) {
	return h.mutate(h.authedRequest(ctx).SetBody(carPayload{Make: car.Make, MakeID: car.MakeID}), resty.MethodPut, carPath(car.ID))
}

func (h *httpServerAdapter) DeleteCar(ctx context.Context, carID int64) (models.MutationResult, error) {
	return h.mutate(h.authedRequest(ctx), resty.MethodDelete, carPath(carID))
}

func (h *httpServerAdapter) mutate(req *resty.Request, method, path string) (models.MutationResult, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return models.MutationResult{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MutationResult{}, err
	}

	var result models.MutationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.MutationResult{}, fmt.Errorf("decode mutation result: %w", err)
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	if token := h.Token(); token != "" {
		return h.client.Authorized(token).SetContext(ctx)
	}
	return h.client.R().SetContext(ctx)
}

func carPath(carID int64) string {
	return "/" + strconv.FormatInt(carID, 10)
}
