package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

const jsonContentType = "application/json; charset=utf-8"

const (
	msgNotFound = "Endpoint not found"
	msgInternal = "Internal server error"
)

// respond writes v as JSON, or as a protobuf Struct when the client asked
// for protobuf.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsProtobuf(r) {
		msg, err := toStruct(v)
		if err != nil {
			http.Error(w, "proto convert error", http.StatusInternalServerError)
			return
		}
		writeProto(w, status, msg)
		return
	}
	writeJSON(w, status, v)
}

// writeJSON writes v without a trailing newline.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "json marshal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusNotFound, types.ErrorResponse{Error: msgNotFound})
}

func writeInternalError(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusInternalServerError, types.ErrorResponse{Error: msgInternal})
}
