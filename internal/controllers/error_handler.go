package controllers

import (
	"bytes"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/pllus/videotube/internal/logger"
	"github.com/pllus/videotube/utils"
)

// ErrorHandler is the app-wide Fiber error handler. It renders APIError and
// fiber.Error as the error envelope; anything else is logged and becomes 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.StatusCode).JSON(apiErr)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(utils.NewAPIError(fe.Code, fe.Message))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.FromCtx(c).WithError(err).Warn("request timed out")
		return c.Status(fiber.StatusGatewayTimeout).JSON(utils.NewAPIError(fiber.StatusGatewayTimeout, "Request timed out"))
	}

	logger.FromCtx(c).WithError(errors.Cause(err)).Errorf("unhandled error: %+v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(utils.NewAPIError(fiber.StatusInternalServerError, "Something went wrong"))
}

// requestCtx bounds a handler's store calls by the configured timeout.
func requestCtx(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// parseBody decodes the request body into out. An empty body leaves out at its
// zero value so field validation reports what is missing.
func parseBody(c *fiber.Ctx, out any) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return utils.BadRequest("Invalid request body")
	}
	return nil
}
