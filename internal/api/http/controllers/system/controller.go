package system

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"keypadCalc/internal/ports"
)

// Controller: системные маршруты: liveness, readiness, метрики.
type Controller struct {
	repo ports.IEvaluationRepository
	log  *slog.Logger
}

// New создаёт системный контроллер. repo может быть nil (история выключена): тогда сервис всегда готов.
func New(repo ports.IEvaluationRepository, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{repo: repo, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if c.repo != nil {
		if err := c.repo.Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
