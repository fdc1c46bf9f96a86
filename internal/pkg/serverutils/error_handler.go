package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"proposal-eval-be/internal/pkg/apperrors"
)

// ErrorHandlerMiddleware maps classified errors onto HTTP statuses so
// controllers can simply return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		kind := apperrors.KindOf(err)
		status := statusForKind(kind)
		return ctx.Status(status).JSON(fiber.Map{
			"code":       status,
			"error_kind": string(kind),
			"message":    err.Error(),
			"retryable":  apperrors.Retryable(err),
		})
	}
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindExtraction:
		return fiber.StatusUnprocessableEntity
	case apperrors.KindCompletion, apperrors.KindRetrieval:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
