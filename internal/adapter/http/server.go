package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/handlers"
	httpmiddleware "github.com/gnsaved/kanban-board-showcase/internal/adapter/http/middleware"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

// NewRouter builds the gin engine serving the board API.
func NewRouter(logger *zap.Logger, trustedProxies []string, store ports.BoardStore, boardService ports.BoardService) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}

	RegisterRoutes(r, handlers.NewHealthHandler(store), handlers.NewBoardHandler(boardService))
	return r, nil
}
