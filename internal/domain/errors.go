package domain

import "errors"

var (
	// ErrInvalidDrawCount количество карт вне [1, размер колоды]
	ErrInvalidDrawCount = errors.New("draw count must be between 1 and deck size")
	// ErrCardCountMismatch количество вытянутых карт не совпадает с методом расклада
	ErrCardCountMismatch = errors.New("draw count does not match method card count")
	// ErrMethodNotFound неизвестный метод расклада
	ErrMethodNotFound = errors.New("divination method not found")
	// ErrProfileNotFound на устройстве нет сохранённого профиля
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrKeyNotFound ключ отсутствует в key-value хранилище
	ErrKeyNotFound = errors.New("key not found")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
