package models

// Diagnostic is the static payload served by the public diagnostic route.
// It lets clients check that the API is reachable without credentials.
type Diagnostic struct {
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Age      int    `json:"age"`
}
