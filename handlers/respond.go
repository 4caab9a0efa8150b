package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"food-ordering-api/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// respondError maps a service error onto the catalogue envelope
// {code, message}. Anything that is not a catalogued AppError is logged
// with full context and surfaced as a generic 500 without leaking
// internals.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		log.WithFields(logrus.Fields{
			"error_key":  appErr.Entry.Key,
			"error_code": appErr.Entry.Code,
		}).Warn(appErr.PublicMessage())
		c.JSON(appErr.Entry.HTTPStatus, gin.H{
			"code":    appErr.Entry.Code,
			"message": appErr.PublicMessage(),
		})
		return
	}

	log.WithError(err).Error("Unhandled error")
	entry, _ := apperrors.Lookup(apperrors.InternalError)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    entry.Code,
		"message": entry.Message,
	})
}

// respondBindError answers a gin binding failure with the generic
// bad-request catalogue entry, carrying the binding detail.
func respondBindError(c *gin.Context, log *logrus.Entry, err error) {
	log.WithError(err).Debug("Request binding failed")
	entry, _ := apperrors.Lookup(apperrors.BadRequest)
	c.JSON(entry.HTTPStatus, gin.H{
		"code":    entry.Code,
		"message": err.Error(),
	})
}
