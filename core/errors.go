package core

import (
	"errors"
	"net/http"
)

var ErrNotFound = errors.New("not found")

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// WriteError maps err to a plain-text response: 404 for anything wrapping
// ErrNotFound, 500 for the rest.
func WriteError(w http.ResponseWriter, err error) {
	if IsNotFoundError(err) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	http.Error(w, "Server error: "+err.Error(), http.StatusInternalServerError)
}
