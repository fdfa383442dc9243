package http

import (
	"net/http"

	"github.com/MKhiriev/veepo/internal/utils"
)

// notFound and methodNotAllowed answer unmatched requests with the JSON error
// body every other handler uses.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
