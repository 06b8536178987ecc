package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mistore/storefront/internal/middleware"
)

var errInvalidID = errors.New("invalid id")

// maxBodyBytes bounds request bodies; every payload here is a few fields
const maxBodyBytes = 1 << 16

// productIDParam parses a numeric product id from the URL
func productIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// decodeJSON reads a JSON body into v, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// sessionID returns the id resolved by the session middleware
func sessionID(r *http.Request) string {
	return middleware.GetSessionID(r.Context())
}
