package server

import (
	"errors"
	"net/http"
	"strconv"

	"forest-guardians/internal/app"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/interfaces"
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
	"forest-guardians/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type buildRequest struct {
	TileID  *int   `json:"tile_id" binding:"required"`
	Element string `json:"element" binding:"required"`
}

type fusionRequest struct {
	A types.EntityID `json:"a" binding:"required"`
	B types.EntityID `json:"b" binding:"required"`
}

// SetupRouter собирает HTTP API поверх движка. hub может быть nil, тогда /ws не регистрируется.
func SetupRouter(engine interfaces.Engine, hub *Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	api := r.Group("/api")
	api.GET("/state", stateHandler(engine))
	api.POST("/towers", buildHandler(engine))
	api.POST("/towers/:id/upgrade", upgradeHandler(engine))
	api.POST("/fusions", fusionHandler(engine))
	api.POST("/waves", waveHandler(engine))
	api.POST("/reset", resetHandler(engine))

	if hub != nil {
		r.GET("/ws", HandleWebsocket(hub))
	}
	return r
}

func requestLogger() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		c.Next()
		log.WithField("method", c.Request.Method).
			WithField("path", c.FullPath()).
			WithField("status", c.Writer.Status()).
			Debug("request")
	}
}

func stateHandler(engine interfaces.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Snapshot())
	}
}

func buildHandler(engine interfaces.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req buildRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		element, err := defs.ParseElement(req.Element)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := engine.BuildTower(c.Request.Context(), board.TileID(*req.TileID), element)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func upgradeHandler(engine interfaces.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tower id"})
			return
		}
		if err := engine.UpgradeTower(c.Request.Context(), types.EntityID(id)); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, engine.Snapshot())
	}
}

func fusionHandler(engine interfaces.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req fusionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := engine.FuseTowers(c.Request.Context(), req.A, req.B)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func waveHandler(engine interfaces.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := engine.StartWave(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, engine.Snapshot())
	}
}

func resetHandler(engine interfaces.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := engine.Reset(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, engine.Snapshot())
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrInvalidPlacement), errors.Is(err, app.ErrInvalidFusion):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrInsufficientResources):
		return http.StatusPaymentRequired
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrMaxLevelReached),
		errors.Is(err, app.ErrWaveInProgress),
		errors.Is(err, app.ErrDefeated):
		return http.StatusConflict
	case errors.Is(err, app.ErrSessionClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithComponent("http").WithError(err).Error("command failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// HandleWebsocket подключает зрителя к hub. Входящие сообщения игнорируются,
// чтение нужно только чтобы заметить закрытие соединения.
func HandleWebsocket(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.WithComponent("ws").WithError(err).Warn("upgrade failed")
			return
		}
		hub.Register(conn)

		for {
			if _, _, err := conn.NextReader(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.WithComponent("ws").WithError(err).Debug("connection closed")
				}
				hub.Unregister(conn)
				return
			}
		}
	}
}
