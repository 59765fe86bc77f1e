package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
)

// classifyGetError переводит ошибку чтения в категорию ядра:
// отсутствие строки - NotFound, все остальное - недоступность хранилища
func classifyGetError(err error, notFoundMessage string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.New(apperrors.KindNotFound, notFoundMessage)
	}
	return apperrors.Wrap(apperrors.KindStorageUnavailable, "storage query failed", err)
}

// storageError помечает ошибку как транзиентную ошибку хранилища,
// единственный класс, который вызывающая сторона может повторять
func storageError(err error) error {
	return apperrors.Wrap(apperrors.KindStorageUnavailable, "storage query failed", err)
}

// isNoRows сообщает, что запрос не затронул ни одной строки
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation распознает нарушение уникального ограничения Postgres
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
