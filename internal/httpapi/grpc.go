package httpapi

import (
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/BrandonDHaskell/fingerlock/internal/fingerlock/types"
)

// DoorLockService is the gRPC health service name that tracks the device.
// The empty service name tracks the server process itself.
const DoorLockService = "fingerlock.DoorLock"

func newHealthServer(st types.DeviceStatus) *health.Server {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(DoorLockService, deviceServingStatus(st))
	return hs
}

func deviceServingStatus(st types.DeviceStatus) healthpb.HealthCheckResponse_ServingStatus {
	if st.IsOnline {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}

func newGRPCServer(hs *health.Server) *grpc.Server {
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	return gs
}

// isGRPC reports whether r is a gRPC call.  gRPC always runs over HTTP/2.
func isGRPC(r *http.Request) bool {
	return r.ProtoMajor == 2 &&
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc")
}
