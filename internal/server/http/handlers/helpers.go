package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/53400755Maria/taxi-service/internal/domain/errors"
	"github.com/53400755Maria/taxi-service/internal/server/http/dto"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: msg})
}

// writeDomainError maps business-rule failures to 4xx envelopes. Nothing is
// fatal to the process: unknown errors degrade to a generic 400 carrying the
// error's description.
func writeDomainError(c *gin.Context, err error) {
	var missing domainErrors.MissingFieldError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &missing),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrNoDriverAvailable):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusBadRequest, err.Error())
	}
}
