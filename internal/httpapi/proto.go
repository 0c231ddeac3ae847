package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

// maxRequestBody caps how much of a POST body is read.  Bodies are never
// acted on, so anything past the cap is dropped.
const maxRequestBody = 100 << 10

const protobufContentType = "application/x-protobuf"

func isProtobufType(v string) bool {
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return false
	}
	return mt == "application/x-protobuf" ||
		mt == "application/protobuf" ||
		mt == "application/octet-stream"
}

// isProtobuf returns true if the request body is a protobuf payload.
func isProtobuf(r *http.Request) bool {
	return isProtobufType(r.Header.Get("Content-Type"))
}

// wantsProtobuf returns true if the client asked for protobuf responses.
// JSON stays the default for everything else, including */*.
func wantsProtobuf(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		part = strings.TrimSpace(part)
		if part != "" && part != "application/octet-stream" && isProtobufType(part) {
			return true
		}
	}
	return false
}

// readScan decodes a submitted scan from a JSON or protobuf body.  An empty
// body is a zero scan.  Decode errors are returned alongside whatever was
// decoded so the caller can decide to ignore them.
func readScan(r *http.Request) (types.FingerprintScan, error) {
	var scan types.FingerprintScan
	if r.Body == nil {
		return scan, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return scan, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return scan, nil
	}

	if isProtobuf(r) {
		var msg structpb.Struct
		if err := proto.Unmarshal(body, &msg); err != nil {
			return scan, err
		}
		return scanFromStruct(&msg)
	}

	err = json.Unmarshal(body, &scan)
	return scan, err
}

// writeProto marshals msg and writes it with the given HTTP status.
func writeProto(w http.ResponseWriter, status int, msg proto.Message) {
	data, err := proto.Marshal(msg)
	if err != nil {
		// Fall back to a plain-text error if marshalling fails.
		http.Error(w, "proto marshal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", protobufContentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
