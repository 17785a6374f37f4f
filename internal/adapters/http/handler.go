package http

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/cardflip/internal/app"
	"github.com/randomtoy/cardflip/internal/domain"
)

type Handler struct {
	svc *app.DrawService
}

func NewHandler(svc *app.DrawService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/catalog", h.Catalog)
	e.GET("/v1/presets", h.Presets)
	e.GET("/v1/draw", h.DrawQuery)
	e.POST("/v1/draw", h.DrawBody)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Presets(c echo.Context) error {
	return c.JSON(http.StatusOK, PresetsResponse{Presets: h.svc.Presets()})
}

func (h *Handler) Catalog(c echo.Context) error {
	entries := h.svc.Catalog()
	items := make([]CatalogItemResp, len(entries))
	for i, e := range entries {
		items[i] = CatalogItemResp{
			ID:       e.Item.ID,
			Name:     e.Item.Name,
			Weight:   e.Item.Weight,
			Rarity:   e.Item.Rarity,
			Images:   e.Item.Images,
			Base:     e.Presentation.Base,
			Emphasis: e.Presentation.Emphasis,
			Odds:     e.Odds,
		}
	}
	return c.JSON(http.StatusOK, CatalogResponse{
		Enabled: h.svc.Enabled(),
		Items:   items,
		Presets: h.svc.Presets(),
	})
}

// DrawQuery handles GET /v1/draw?n=5. n defaults to the smallest preset.
func (h *Handler) DrawQuery(c echo.Context) error {
	n := slices.Min(h.svc.Presets())
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "n must be an integer"})
		}
		n = parsed
	}
	return h.draw(c, n)
}

// DrawBody handles POST /v1/draw with a JSON body.
func (h *Handler) DrawBody(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	return h.draw(c, req.Count)
}

func (h *Handler) draw(c echo.Context, n int) error {
	resp, err := h.svc.Draw(c.Request().Context(), app.DrawRequest{Count: n})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get(ctxRequestID).(string)

	return c.JSON(http.StatusOK, toResponse(resp, requestID))
}

func toResponse(r app.DrawResponse, requestID string) DrawResponse {
	cards := make([]CardResponse, len(r.Cards))
	for i, dc := range r.Cards {
		cards[i] = CardResponse{
			Position: dc.Position,
			ID:       dc.ID,
			Name:     dc.Name,
			Rarity:   dc.Rarity,
			Image:    dc.Image,
			Base:     dc.Presentation.Base,
			Emphasis: dc.Presentation.Emphasis,
			Classes:  dc.Presentation.Classes(),
		}
	}
	return DrawResponse{
		Requested: r.Requested,
		Cards:     cards,
		Meta:      MetaResp{RequestID: requestID},
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get(ctxRequestID).(string)

	switch {
	case errors.Is(err, domain.ErrInvalidPreset):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDrawDisabled):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
