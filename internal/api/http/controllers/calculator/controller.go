package calculator

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

// Controller: маршруты калькулятора: сессии, клавиши, кнопки, история.
type Controller struct {
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.IKeypadUseCase, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/sessions", c.openSession)
	api.GET("/sessions/:id", c.screen)
	api.DELETE("/sessions/:id", c.closeSession)
	api.POST("/sessions/:id/keys", c.press)
	api.POST("/sessions/:id/buttons", c.push)
	api.GET("/history", c.history)
}

// @Summary Открыть сессию калькулятора
// @Tags calculator
// @Produce json
// @Success 201 {object} ScreenResponse "Новая сессия с экраном 0"
// @Router /api/v1/sessions [post]
func (c *Controller) openSession(ctx *gin.Context) {
	screen, err := c.uc.OpenSession(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "open session", err)
		return
	}
	ctx.JSON(http.StatusCreated, toScreen(screen))
}

// @Summary Текущий экран сессии
// @Tags calculator
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} ScreenResponse
// @Failure 404 {object} ErrorResponse "Сессия не найдена"
// @Router /api/v1/sessions/{id} [get]
func (c *Controller) screen(ctx *gin.Context) {
	screen, err := c.uc.Screen(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.fail(ctx, "screen", err)
		return
	}
	ctx.JSON(http.StatusOK, toScreen(screen))
}

// @Summary Закрыть сессию
// @Tags calculator
// @Param id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} ErrorResponse "Сессия не найдена"
// @Router /api/v1/sessions/{id} [delete]
func (c *Controller) closeSession(ctx *gin.Context) {
	if err := c.uc.CloseSession(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.fail(ctx, "close session", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Нажать клавишу
// @Description Клавиша как на клавиатуре: 0-9, ".", "+", "-", "*", "/", "Enter", "=", "Escape", "%", "p". Нераспознанная клавиша возвращает accepted=false.
// @Tags calculator
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body KeyRequest true "Клавиша"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 404 {object} ErrorResponse "Сессия не найдена"
// @Router /api/v1/sessions/{id}/keys [post]
func (c *Controller) press(ctx *gin.Context) {
	var req KeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("press bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	screen, err := c.uc.Press(ctx.Request.Context(), ctx.Param("id"), req.Key)
	if err != nil {
		c.fail(ctx, "press", err)
		return
	}
	ctx.JSON(http.StatusOK, toScreen(screen))
}

// @Summary Нажать экранную кнопку
// @Description action: digit, decimal, operator, equals, sign, percent, clear. value: цифра или символ оператора.
// @Tags calculator
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body ButtonRequest true "Кнопка"
// @Success 200 {object} ScreenResponse
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 404 {object} ErrorResponse "Сессия не найдена"
// @Router /api/v1/sessions/{id}/buttons [post]
func (c *Controller) push(ctx *gin.Context) {
	var req ButtonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("push bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	screen, err := c.uc.Push(ctx.Request.Context(), ctx.Param("id"), req.Action, req.Value)
	if err != nil {
		c.fail(ctx, "push", err)
		return
	}
	ctx.JSON(http.StatusOK, toScreen(screen))
}

// @Summary Получить историю вычислений
// @Description Последние вычисления всех сессий, новые первыми.
// @Tags calculator
// @Produce json
// @Param limit query int false "Сколько записей вернуть (по умолчанию 50, максимум 500)"
// @Success 200 {object} HistoryResponse "Список вычислений"
// @Failure 400 {object} ErrorResponse "Невалидный limit"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit: " + raw})
			return
		}
		limit = n
	}

	list, err := c.uc.History(ctx.Request.Context(), limit)
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	items := make([]HistoryItem, len(list))
	for i, ev := range list {
		items[i] = HistoryItem{
			ID:        ev.ID,
			SessionID: ev.SessionID,
			Operand1:  ev.Operand1,
			Operator:  ev.Operator,
			Operand2:  ev.Operand2,
			Result:    ev.Result,
			Display:   ev.Display,
			Error:     ev.Error,
			Timestamp: ev.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// fail переводит ошибку use case в HTTP-ответ.
func (c *Controller) fail(ctx *gin.Context, action string, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		c.log.Warn(action+" session not found", "error", err)
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.log.Error(action+" failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func toScreen(s *domain.Screen) ScreenResponse {
	if s == nil {
		return ScreenResponse{}
	}
	return ScreenResponse{SessionID: s.SessionID, Display: s.Display, Accepted: s.Accepted}
}
