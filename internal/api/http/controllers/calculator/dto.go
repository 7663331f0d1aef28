package calculator

import "time"

// KeyRequest: нажатие клавиши клавиатуры (для POST /api/v1/sessions/:id/keys).
type KeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// ButtonRequest: нажатие экранной кнопки (для POST /api/v1/sessions/:id/buttons).
// Value нужен только для digit и operator.
type ButtonRequest struct {
	Action string `json:"action" binding:"required"`
	Value  string `json:"value"`
}

// ScreenResponse: экран калькулятора после действия.
type ScreenResponse struct {
	SessionID string `json:"session_id"`
	Display   string `json:"display"`
	Accepted  bool   `json:"accepted"`
}

// HistoryItem: одна запись в истории (для GET /api/v1/history).
type HistoryItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Operand1  string    `json:"operand1"`
	Operator  string    `json:"operator"`
	Operand2  string    `json:"operand2"`
	Result    string    `json:"result,omitempty"`
	Display   string    `json:"display"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse: ответ со списком вычислений.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// ErrorResponse: тело ответа при ошибке.
type ErrorResponse struct {
	Error string `json:"error"`
}
