package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/dto"
	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/mapper"
	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/middleware"
	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/validation"
	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
	"github.com/gnsaved/kanban-board-showcase/pkg/apierrors"
)

type BoardHandler struct {
	boardService ports.BoardService
}

func NewBoardHandler(boardService ports.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, mapper.ToBoardResponse(h.boardService.Snapshot(c.Request.Context(), filter)))
}

func (h *BoardHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	input, err := validation.BuildNewTaskInput(req)
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	task, err := h.boardService.AddTask(c.Request.Context(), input)
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *BoardHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	id := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}
	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if json.Unmarshal(body, &req) != nil || json.Unmarshal(body, &raw) != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	patch, err := validation.BuildTaskPatch(req, raw)
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	task, err := h.boardService.UpdateTask(c.Request.Context(), id, patch)
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *BoardHandler) DeleteTask(c *gin.Context) {
	if err := h.boardService.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailDeleteTask)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) MoveTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidColumn, lang)
		return
	}
	column, err := domain.ParseColumn(req.Column)
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailMoveTask)
		return
	}

	task, err := h.boardService.MoveTask(c.Request.Context(), c.Param("id"), column)
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailMoveTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *BoardHandler) CycleTask(c *gin.Context) {
	task, err := h.boardService.CycleTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailMoveTask)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// ReorderBoard reconciles the board with the arrangement left after a drag.
// The client sends the filter it was rendering with; a filtered view hides
// cards, so its arrangement is refused instead of being reconciled.
func (h *BoardHandler) ReorderBoard(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	if filter.Active() {
		writeError(c, http.StatusConflict, apierrors.MsgFilteredReorder, lang)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidOrderPayload, lang)
		return
	}
	var req dto.ReorderRequest
	var raw map[string]json.RawMessage
	if json.Unmarshal(body, &req) != nil || json.Unmarshal(body, &raw) != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidOrderPayload, lang)
		return
	}

	observed, err := validation.BuildObservedOrder(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidOrderPayload, lang)
		return
	}

	result, err := h.boardService.Reconcile(c.Request.Context(), observed)
	if err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailReorderBoard)
		return
	}
	if len(result.Unknown) > 0 {
		zap.L().Info("reorder referenced unknown tasks", zap.Strings("ids", result.Unknown))
	}

	c.JSON(http.StatusOK, mapper.ToBoardResponse(h.boardService.Snapshot(c.Request.Context(), domain.Filter{})))
}

func (h *BoardHandler) ResetBoard(c *gin.Context) {
	if err := h.boardService.Reset(c.Request.Context()); err != nil {
		h.writeDomainError(c, err, apierrors.MsgFailResetBoard)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBoardResponse(h.boardService.Snapshot(c.Request.Context(), domain.Filter{})))
}

func (h *BoardHandler) bindFilter(c *gin.Context) (domain.Filter, bool) {
	filter, err := domain.NewFilter(c.Query("q"), c.Query("priority"))
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPriority, middleware.GetLang(c))
		return domain.Filter{}, false
	}
	return filter, true
}

// writeDomainError maps engine errors to HTTP statuses. Anything unexpected
// is logged and reported with fallbackMsg.
func (h *BoardHandler) writeDomainError(c *gin.Context, err error, fallbackMsg string) {
	lang := middleware.GetLang(c)

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		writeError(c, http.StatusNotFound, apierrors.MsgTaskNotFound, lang)
	case errors.Is(err, domain.ErrInvalidColumn):
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidColumn, lang)
	case errors.Is(err, domain.ErrInvalidPriority):
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPriority, lang)
	case errors.Is(err, domain.ErrInvalidTask), errors.Is(err, validation.ErrInvalidTaskPayload):
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
	case errors.Is(err, domain.ErrInvalidObservation):
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidOrderPayload, lang)
	default:
		zap.L().Error("board operation failed", zap.String("path", c.FullPath()), zap.String("task_id", c.Param("id")), zap.Error(err))
		writeError(c, http.StatusInternalServerError, fallbackMsg, lang)
	}
}

func writeError(c *gin.Context, code int, msgKey, lang string) {
	c.JSON(code, apierrors.CreateError(code, msgKey, lang))
}
