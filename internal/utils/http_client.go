package utils

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client configured
// for the car-keeper JSON API.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000")
//	resp, err := client.Authorized(token).Get("/user-car")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient whose requests are
// resolved against baseURL and sent as JSON.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// Authorized returns a request that carries token in the
// "Authorization: Bearer <token>" header.
func (c *HTTPClient) Authorized(token string) *resty.Request {
	return c.R().SetHeader("Authorization", fmt.Sprintf("Bearer %s", token))
}
