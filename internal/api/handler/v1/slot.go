package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/slots-pg/dashboard-api/internal/api/handler/v1/request"
	"github.com/slots-pg/dashboard-api/internal/api/handler/v1/response"
	"github.com/slots-pg/dashboard-api/internal/domain"
	"github.com/slots-pg/dashboard-api/internal/service"
)

type SlotService interface {
	ListSlots(ctx context.Context, filter domain.SlotFilter) ([]domain.Slot, error)
	GetSlot(ctx context.Context, id uint) (domain.Slot, error)
	CreateSlot(ctx context.Context, slot domain.Slot) (domain.Slot, error)
	UpdateSlot(ctx context.Context, id uint, patch domain.SlotPatch) (domain.Slot, error)
	UpdatePlayers(ctx context.Context, id uint, jogadores int) (domain.Slot, error)
	DeleteSlot(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (domain.SlotStats, error)
}

type SlotHandler struct {
	svc SlotService
}

func NewSlotHandler(svc SlotService) *SlotHandler {
	return &SlotHandler{
		svc: svc,
	}
}

// parseSlotID reports false for anything that is not a positive integer. Such ids can never match a
// stored slot, so callers answer them with 404.
func parseSlotID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("slotID"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

func renderSlotErr(ctx *gin.Context, caller string, id any, err error) {
	switch {
	case errors.Is(err, service.ErrSlotNotFound):
		response.RenderErr(ctx, response.ErrNotFound("Slot", "id", id))
	case errors.Is(err, service.ErrSlotReactivation):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrSlotReactivation))
	case errors.Is(err, service.ErrInvalidSlot):
		response.RenderErr(ctx, response.ErrValidation(service.ErrInvalidSlot))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", caller, err)))
	}
}

// HandleGetSlots godoc
// @Summary      List active slots
// @Description  Returns the active slots in insertion order, optionally filtered.
// @Tags         slots
// @Produce      json
// @Param        busca      query     string  false  "case-insensitive name search"
// @Param        categoria  query     string  false  "category, 'todos' for all"
// @Param        status     query     string  false  "hot, active or cold"
// @Success      200  {array}   domain.Slot
// @Failure      500  {object}  response.Err
// @Router       /slots [get]
func (h *SlotHandler) HandleGetSlots(ctx *gin.Context) {
	filter := domain.SlotFilter{
		Search:    ctx.Query("busca"),
		Categoria: ctx.Query("categoria"),
		Status:    ctx.Query("status"),
	}

	slots, err := h.svc.ListSlots(ctx.Request.Context(), filter)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleGetSlots -> h.svc.ListSlots -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, slots)
}

// HandleGetSlot godoc
// @Summary      Get a slot
// @Description  Returns the slot whether it is active or soft-deleted.
// @Tags         slots
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      200  {object}  domain.Slot
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /slots/{slotID} [get]
func (h *SlotHandler) HandleGetSlot(ctx *gin.Context) {
	id, ok := parseSlotID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Slot", "id", ctx.Param("slotID")))
		return
	}

	slot, err := h.svc.GetSlot(ctx.Request.Context(), id)
	if err != nil {
		renderSlotErr(ctx, "v1.HandleGetSlot -> h.svc.GetSlot", id, err)
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// HandleCreateSlot godoc
// @Summary      Create a slot
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSlotRequest  true  "request body"
// @Success      201  {object}  domain.Slot
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /slots [post]
func (h *SlotHandler) HandleCreateSlot(ctx *gin.Context) {
	var req request.CreateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	slot, err := h.svc.CreateSlot(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderSlotErr(ctx, "v1.HandleCreateSlot -> h.svc.CreateSlot", 0, err)
		return
	}

	ctx.JSON(http.StatusCreated, slot)
}

// HandleUpdateSlot godoc
// @Summary      Update a slot
// @Description  Overwrites the slot fields. A soft-deleted slot cannot be set active again.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        slotID   path      int                        true  "Slot ID"
// @Param        request  body      request.UpdateSlotRequest  true  "request body"
// @Success      200  {object}  domain.Slot
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /slots/{slotID} [put]
func (h *SlotHandler) HandleUpdateSlot(ctx *gin.Context) {
	var req request.UpdateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	id, ok := parseSlotID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Slot", "id", ctx.Param("slotID")))
		return
	}

	slot, err := h.svc.UpdateSlot(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		renderSlotErr(ctx, "v1.HandleUpdateSlot -> h.svc.UpdateSlot", id, err)
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// HandleDeleteSlot godoc
// @Summary      Soft-delete a slot
// @Tags         slots
// @Produce      json
// @Param        slotID  path      int  true  "Slot ID"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /slots/{slotID} [delete]
func (h *SlotHandler) HandleDeleteSlot(ctx *gin.Context) {
	id, ok := parseSlotID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Slot", "id", ctx.Param("slotID")))
		return
	}

	if err := h.svc.DeleteSlot(ctx.Request.Context(), id); err != nil {
		renderSlotErr(ctx, "v1.HandleDeleteSlot -> h.svc.DeleteSlot", id, err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Slot deleted successfully"})
}

// HandleUpdatePlayers godoc
// @Summary      Set the player count of a slot
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        slotID   path      int                           true  "Slot ID"
// @Param        request  body      request.UpdatePlayersRequest  true  "request body"
// @Success      200  {object}  domain.Slot
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /slots/{slotID}/players [patch]
func (h *SlotHandler) HandleUpdatePlayers(ctx *gin.Context) {
	var req request.UpdatePlayersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(request.ErrInvalidPlayerCount))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, ok := parseSlotID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Slot", "id", ctx.Param("slotID")))
		return
	}

	slot, err := h.svc.UpdatePlayers(ctx.Request.Context(), id, *req.Jogadores)
	if err != nil {
		renderSlotErr(ctx, "v1.HandleUpdatePlayers -> h.svc.UpdatePlayers", id, err)
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// HandleGetCategories godoc
// @Summary      List slot categories
// @Tags         slots
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  response.Err
// @Router       /slots/categories [get]
func (h *SlotHandler) HandleGetCategories(ctx *gin.Context) {
	categories, err := h.svc.Categories(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleGetCategories -> h.svc.Categories -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleGetStats godoc
// @Summary      Catalog statistics
// @Description  Totals over the active slots.
// @Tags         slots
// @Produce      json
// @Success      200  {object}  domain.SlotStats
// @Failure      500  {object}  response.Err
// @Router       /slots/stats [get]
func (h *SlotHandler) HandleGetStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleGetStats -> h.svc.Stats -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
