package handlers

import (
	"encoding/json"
	"fmt"

	"warren-server/pkg/api"
)

// TypedHandlerFunc - "чистый" хендлер, работающий с готовой структурой T.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер без данных (INIT, CONFIRM).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload оборачивает типизированный хендлер в стандартный HandlerFunc,
// забирая на себя распаковку JSON и валидацию. Отклоненный payload не
// доходит до игровой логики, поэтому не может потратить ход.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if len(raw) == 0 {
			return Result{}, fmt.Errorf("payload required")
		}

		var payload T
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// DTO, умеющие проверять себя, проверяются автоматически
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных: входящий JSON
// игнорируется целиком.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
