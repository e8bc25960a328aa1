package api

import (
	"strconv"

	"booking-gateway/internal/handler/middleware"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidID = errs.New("id must be a positive integer")

func viewer(c *gin.Context) (shared.Viewer, error) {
	v, ok := middleware.GetViewer(c)
	if !ok {
		return shared.Viewer{}, errNoSession
	}
	return v, nil
}

func int64Param(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errs.Mark(err, errInvalidID)
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func flowID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
