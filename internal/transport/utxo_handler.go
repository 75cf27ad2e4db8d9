package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/verifier"
	"go.uber.org/zap"
)

// UTXOPattern is the route of the funding output lookup.
const UTXOPattern = "GET /v1/channels/{scid}/utxo"

const (
	codeInvalidSCID   = "invalid_scid"
	codeUnknownChain  = "unknown_chain"
	codeUnknownOutput = "unknown_output"
	codeInternal      = "internal"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UTXOHandler serves funding outputs referenced by short channel ids.
type UTXOHandler struct {
	resolver  Resolver
	describer OutputDescriber
	logger    *zap.Logger
}

// NewUTXOHandler wires the lookup endpoint.
func NewUTXOHandler(resolver Resolver, describer OutputDescriber, logger *zap.Logger) (*UTXOHandler, error) {
	if resolver == nil {
		return nil, errors.New("resolver is required")
	}
	if describer == nil {
		return nil, errors.New("output describer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UTXOHandler{
		resolver:  resolver,
		describer: describer,
		logger:    logger.Named("utxo_handler"),
	}, nil
}

// Register mounts the handler on mux.
func (h *UTXOHandler) Register(mux *http.ServeMux) {
	mux.Handle(UTXOPattern, h)
}

func (h *UTXOHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("scid")
	id, err := scid.Parse(raw)
	if err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Code: codeInvalidSCID, Message: err.Error()})
		return
	}

	funding, err := h.resolver.Lookup(r.Context(), id)
	switch {
	case err == nil:
	case errors.Is(err, verifier.ErrUnknownChain):
		writeJSON(w, h.logger, http.StatusNotFound, errorResponse{Code: codeUnknownChain, Message: err.Error()})
		return
	case errors.Is(err, verifier.ErrUnknownOutput):
		writeJSON(w, h.logger, http.StatusNotFound, errorResponse{Code: codeUnknownOutput, Message: err.Error()})
		return
	default:
		h.logger.Error("lookup failed", zap.Stringer("scid", id), zap.Error(err))
		writeJSON(w, h.logger, http.StatusInternalServerError, errorResponse{Code: codeInternal, Message: "lookup failed"})
		return
	}

	out, err := h.describer.Describe(funding)
	if err != nil {
		h.logger.Error("describe funding output", zap.Stringer("scid", id), zap.Error(err))
		writeJSON(w, h.logger, http.StatusInternalServerError, errorResponse{Code: codeInternal, Message: "describe failed"})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("write response", zap.Error(err))
	}
}
