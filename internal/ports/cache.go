package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import "context"

// ICache: контракт кэша результатов вычислений. Ключ: операция ("1 + 2"), значение: каноническая запись результата.
type ICache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
