package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/hexstaking/hex-staking-indexer/internal/db"
	"github.com/hexstaking/hex-staking-indexer/internal/db/model"
	"github.com/hexstaking/hex-staking-indexer/internal/observability/metrics"
	"github.com/hexstaking/hex-staking-indexer/internal/payout"
	"github.com/hexstaking/hex-staking-indexer/internal/services"
	"github.com/hexstaking/hex-staking-indexer/internal/types"
	"github.com/hexstaking/hex-staking-indexer/pkg"
)

type handlerFunc func(r *http.Request) (any, *types.Error)

type Handler struct {
	service *services.Service
}

func NewHandler(service *services.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthcheck", h.wrap(h.healthCheck))
	r.Route("/v1", func(r chi.Router) {
		r.Get("/snapshot", h.wrap(h.getSnapshot))
		r.Get("/snapshot/cached", h.wrap(h.getCachedSnapshot))
		r.Get("/stakes/{owner}", h.wrap(h.getOwnerStakes))
		r.Get("/stakes/{owner}/cached", h.wrap(h.getCachedOwnerStakes))
		r.Get("/estimate", h.wrap(h.getEstimate))
	})
}

// wrap writes the handler result as json and records the request duration
// under the matched route pattern.
func (h *Handler) wrap(f handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		statusCode := http.StatusOK

		body, apiErr := f(r)
		if apiErr != nil {
			statusCode = apiErr.StatusCode
			body = ErrorResponse{
				ErrorCode: apiErr.ErrorCode.String(),
				Message:   apiErr.Error(),
			}
			event := log.Ctx(r.Context()).Warn()
			if statusCode >= http.StatusInternalServerError {
				event = log.Ctx(r.Context()).Error()
			}
			event.Err(apiErr).Str("path", r.URL.Path).Int("status", statusCode).Msg("Request failed")
		}

		if err := writeJSON(w, statusCode, body); err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
		}

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.RecordApiRequestDuration(time.Since(start), route, statusCode)
	}
}

func (h *Handler) healthCheck(r *http.Request) (any, *types.Error) {
	if err := h.service.Ping(r.Context()); err != nil {
		return nil, types.NewError(http.StatusServiceUnavailable, types.ServiceUnavailable, err)
	}
	return HealthResponse{Status: "ok"}, nil
}

func (h *Handler) getSnapshot(r *http.Request) (any, *types.Error) {
	snapshot, err := h.service.FetchSnapshot(r.Context())
	if err != nil {
		return nil, serviceError(err)
	}
	return newSnapshotResponse(snapshot, h.service.Params()), nil
}

func (h *Handler) getCachedSnapshot(r *http.Request) (any, *types.Error) {
	snapshot, err := h.service.GetCachedSnapshot(r.Context())
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "no chain snapshot stored yet")
		}
		return nil, serviceError(err)
	}
	return newSnapshotResponse(snapshot, h.service.Params()), nil
}

func (h *Handler) getOwnerStakes(r *http.Request) (any, *types.Error) {
	owner, err := pkg.ParseEthAddress(chi.URLParam(r, "owner"))
	if err != nil {
		return nil, types.NewBadRequestError(err.Error())
	}

	res, err := h.service.LoadOwnerStakes(r.Context(), owner)
	if err != nil {
		return nil, serviceError(err)
	}

	if err := h.service.TrackOwner(r.Context(), owner, model.TrackedOwnerSourceApi); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("owner", owner.Hex()).Msg("Failed to track owner")
	}

	return NewOwnerStakesResponse(res, h.service.Params()), nil
}

func (h *Handler) getCachedOwnerStakes(r *http.Request) (any, *types.Error) {
	owner, err := pkg.ParseEthAddress(chi.URLParam(r, "owner"))
	if err != nil {
		return nil, types.NewBadRequestError(err.Error())
	}

	res, err := h.service.GetCachedOwnerStakes(r.Context(), owner)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound,
				fmt.Sprintf("no stakes computed yet for %s", owner.Hex()))
		}
		return nil, serviceError(err)
	}

	return NewOwnerStakesResponse(res, h.service.Params()), nil
}

func (h *Handler) getEstimate(r *http.Request) (any, *types.Error) {
	query := r.URL.Query()

	hearts, err := sdkmath.ParseUint(query.Get("hearts"))
	if err != nil || hearts.IsZero() {
		return nil, types.NewBadRequestError("hearts must be a positive integer")
	}
	days, err := strconv.ParseUint(query.Get("days"), 10, 64)
	if err != nil || days < types.MinStakeDays || days > types.MaxStakeDays {
		return nil, types.NewBadRequestError(
			fmt.Sprintf("days must be between %d and %d", types.MinStakeDays, types.MaxStakeDays))
	}

	snapshot, err := h.service.FetchSnapshot(r.Context())
	if err != nil {
		return nil, serviceError(err)
	}

	shares, err := payout.EstimateShares(hearts, days, snapshot.Globals.ShareRate, h.service.Params())
	if err != nil {
		return nil, serviceError(err)
	}

	return EstimateResponse{
		StakedHearts: hearts,
		StakedDays:   days,
		ShareRate:    snapshot.Globals.ShareRate,
		StakeShares:  shares,
		CurrentDay:   snapshot.CurrentDay,
	}, nil
}

// serviceError maps service layer failures to api errors.
func serviceError(err error) *types.Error {
	if services.IsFetchFailureError(err) {
		return types.NewError(http.StatusServiceUnavailable, types.ServiceUnavailable, err)
	}
	return types.NewInternalServiceError(err)
}
