package httpapi

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

// The API has no generated message types.  Protobuf clients get the JSON
// payloads carried in a google.protobuf.Struct with identical field names.

// toStruct converts any JSON-encodable payload into a Struct.  Numbers
// become doubles and nil pointers become null values.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanFromStruct(s *structpb.Struct) (types.FingerprintScan, error) {
	var scan types.FingerprintScan
	data, err := protojson.Marshal(s)
	if err != nil {
		return scan, err
	}
	err = json.Unmarshal(data, &scan)
	return scan, err
}
