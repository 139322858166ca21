package entity

import "errors"

// Ошибки классификации. Каждая ошибка адаптера оборачивает ровно одну из них.
var (
	ErrUnsupportedEngine = errors.New("unsupported engine")
	ErrEngineUnavailable = errors.New("engine unavailable")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUpstreamFailure   = errors.New("upstream failure")
)

// ErrorKind возвращает вид ошибки классификации или nil, если ошибка не из таксономии
func ErrorKind(err error) error {
	for _, kind := range []error{ErrUnsupportedEngine, ErrEngineUnavailable, ErrInvalidInput, ErrUpstreamFailure} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
