package domain

import "errors"

var (
	// ErrUserFileUnreadable - файл пользователей нельзя прочитать или разобрать. Фатально для запуска.
	ErrUserFileUnreadable = errors.New("user file unreadable")
	// ErrMalformedUserRecord - запись пользователя без id или name.
	ErrMalformedUserRecord = errors.New("malformed user record")
	// ErrMalformedInputFile - файл канала не является JSON-массивом.
	ErrMalformedInputFile = errors.New("malformed input file")
	// ErrInvalidTimestamp - ts отсутствует или не является числом.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
