package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/aman-zulfiqar/solana-holder-intel/internal/flags"
	"github.com/aman-zulfiqar/solana-holder-intel/internal/intel"
)

// maxSnapshotTokens bounds one snapshot request; each name is a paced
// outbound search.
const maxSnapshotTokens = 10

// HolderAnalyzer is the pipeline surface the API exposes. Satisfied by
// *intel.Analyzer; handler tests stub it.
type HolderAnalyzer interface {
	AnalyzeHolders(ctx context.Context, mint, displayName string) (*intel.Report, error)
	MarketSnapshot(ctx context.Context, names []string, chain string) ([]intel.SnapshotToken, error)
	TokenStats(ctx context.Context, address string) (*intel.TokenStats, error)
}

// Handlers contains all dependencies for API endpoint handlers
type Handlers struct {
	Analyzer HolderAnalyzer
	Flags    *flags.Store // Redis-backed feature flags (optional)
	DevMode  bool
	Logger   *logrus.Logger
}

// err returns a standardized JSON error response
// In dev mode, includes additional error details for debugging
func (h *Handlers) err(c echo.Context, code int, msg string, details any) error {
	resp := ErrorResponse{Error: msg, Code: code}
	if h.DevMode && details != nil {
		resp.Details = details
	}
	return c.JSON(code, resp)
}

// withTimeout creates a context with timeout, defaulting to 10 seconds if duration <= 0
func (h *Handlers) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(ctx, d)
}

// featureEnabled consults a kill switch, failing open when the flag store is
// absent or unreachable.
func (h *Handlers) featureEnabled(ctx context.Context, key string) bool {
	if h.Flags == nil {
		return true
	}
	on, err := h.Flags.Enabled(ctx, key, true)
	if err != nil {
		h.Logger.WithError(err).WithField("flag", key).Warn("flag lookup failed, failing open")
		return true
	}
	return on
}

// Health returns a simple health check endpoint
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// HolderReport runs the full holder intelligence pipeline for a mint.
// The run is long by design (paced enrichment), so the timeout covers the
// whole rate-limited loop.
func (h *Handlers) HolderReport(c echo.Context) error {
	mint := strings.TrimSpace(c.Param("mint"))
	if mint == "" {
		return h.err(c, http.StatusBadRequest, "mint is required", nil)
	}
	name := strings.TrimSpace(c.QueryParam("name"))

	if !h.featureEnabled(c.Request().Context(), flags.KeyAnalysisEnabled) {
		return h.err(c, http.StatusServiceUnavailable, "holder analysis is disabled", nil)
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 4*time.Minute)
	defer cancel()

	report, err := h.Analyzer.AnalyzeHolders(ctx, mint, name)
	if err != nil {
		switch {
		case errors.Is(err, intel.ErrInvalidMint):
			return h.err(c, http.StatusBadRequest, "invalid mint address", map[string]any{"mint": mint})
		case errors.Is(err, intel.ErrNoHolders):
			return h.err(c, http.StatusNotFound, "no qualifying holders for token", map[string]any{"mint": mint})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return h.err(c, http.StatusGatewayTimeout, "analysis timed out", nil)
		default:
			h.Logger.WithError(err).WithField("mint", mint).Error("holder analysis failed")
			return h.err(c, http.StatusBadGateway, "holder analysis failed", err.Error())
		}
	}

	return c.JSON(http.StatusOK, report)
}

// MarketSnapshot resolves market stats for a list of token names.
func (h *Handlers) MarketSnapshot(c echo.Context) error {
	var req SnapshotRequest
	if err := c.Bind(&req); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid json", nil)
	}
	if len(req.Tokens) == 0 {
		return h.err(c, http.StatusBadRequest, "tokens is required", nil)
	}
	if len(req.Tokens) > maxSnapshotTokens {
		return h.err(c, http.StatusBadRequest, "too many tokens", map[string]any{"max": maxSnapshotTokens})
	}

	if !h.featureEnabled(c.Request().Context(), flags.KeySnapshotEnabled) {
		return h.err(c, http.StatusServiceUnavailable, "market snapshot is disabled", nil)
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), time.Minute)
	defer cancel()

	tokens, err := h.Analyzer.MarketSnapshot(ctx, req.Tokens, req.Chain)
	if err != nil {
		h.Logger.WithError(err).Error("market snapshot failed")
		return h.err(c, http.StatusBadGateway, "market snapshot failed", err.Error())
	}

	return c.JSON(http.StatusOK, SnapshotResponse{Tokens: tokens})
}

// TokenStats returns the display stat block for one token address.
func (h *Handlers) TokenStats(c echo.Context) error {
	address := strings.TrimSpace(c.Param("address"))
	if address == "" {
		return h.err(c, http.StatusBadRequest, "address is required", nil)
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	stats, err := h.Analyzer.TokenStats(ctx, address)
	if err != nil {
		if errors.Is(err, intel.ErrNoPairs) {
			return h.err(c, http.StatusNotFound, "no pairs found for token", map[string]any{"address": address})
		}
		h.Logger.WithError(err).WithField("address", address).Error("token stats failed")
		return h.err(c, http.StatusBadGateway, "token stats failed", err.Error())
	}

	return c.JSON(http.StatusOK, stats)
}

// FlagsUpsert creates or updates a feature flag with the given key and value
func (h *Handlers) FlagsUpsert(c echo.Context) error {
	var req FlagUpsertRequest
	if err := c.Bind(&req); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid json", nil)
	}
	if err := flags.ValidateKey(req.Key); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid key", map[string]any{"key": "invalid format"})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	out, err := h.Flags.Upsert(ctx, req.Key, req.Value)
	if err != nil {
		return h.err(c, http.StatusInternalServerError, "failed to upsert flag", nil)
	}
	return c.JSON(http.StatusOK, out)
}

// FlagsUpdate updates an existing feature flag with the given key
func (h *Handlers) FlagsUpdate(c echo.Context) error {
	key := c.Param("key")
	if err := flags.ValidateKey(key); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid key", map[string]any{"key": "invalid format"})
	}
	var req FlagUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid json", nil)
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	out, err := h.Flags.Upsert(ctx, key, req.Value)
	if err != nil {
		return h.err(c, http.StatusInternalServerError, "failed to update flag", nil)
	}
	return c.JSON(http.StatusOK, out)
}

// FlagsGet retrieves a feature flag by its key, 404 when absent
func (h *Handlers) FlagsGet(c echo.Context) error {
	key := c.Param("key")
	if err := flags.ValidateKey(key); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid key", map[string]any{"key": "invalid format"})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	out, err := h.Flags.Get(ctx, key)
	if err != nil {
		if errors.Is(err, flags.ErrNotFound) {
			return h.err(c, http.StatusNotFound, "flag not found", nil)
		}
		return h.err(c, http.StatusInternalServerError, "failed to get flag", nil)
	}
	return c.JSON(http.StatusOK, out)
}

// FlagsList returns all feature flags in the system
func (h *Handlers) FlagsList(c echo.Context) error {
	ctx, cancel := h.withTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Flags.List(ctx)
	if err != nil {
		return h.err(c, http.StatusInternalServerError, "failed to list flags", nil)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// FlagsDelete removes a feature flag by its key
func (h *Handlers) FlagsDelete(c echo.Context) error {
	key := c.Param("key")
	if err := flags.ValidateKey(key); err != nil {
		return h.err(c, http.StatusBadRequest, "invalid key", map[string]any{"key": "invalid format"})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if err := h.Flags.Delete(ctx, key); err != nil {
		return h.err(c, http.StatusInternalServerError, "failed to delete flag", nil)
	}
	return c.NoContent(http.StatusNoContent)
}
