// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"errors"
	"time"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultProbeTimeout = 5 * time.Second

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	probe        GatewayProbe
	probeTimeout time.Duration
	logger       *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler whose health follows the data gateway.
func NewExplorerHandler(probe GatewayProbe, logger *zap.Logger) (*ExplorerHandler, error) {
	if probe == nil {
		return nil, errors.New("gateway probe is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExplorerHandler{
		probe:        probe,
		probeTimeout: defaultProbeTimeout,
		logger:       logger.Named("explorer_handler"),
	}, nil
}

// Health reports server health. The server is healthy while the gateway
// serves the first transaction of the genesis block.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	if _, err := h.probe.FetchTransaction(ctx, 0, 0); err != nil {
		h.logger.Warn("data gateway probe failed", zap.Error(err))
		return nil, status.Error(codes.Unavailable, "data gateway unavailable")
	}

	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: "",
	}, nil
}
