package handlers

import (
	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// respondError writes err with the status of its kind. Errors without a
// kind are not shown to the caller.
func respondError(c *drift.Context, err error) {
	kind := apierr.KindOf(err)
	if kind == apierr.KindUnknown {
		c.InternalServerError("internal server error")
		return
	}
	_ = c.JSON(kind.Status(), dto.ErrorResponse{Error: apierr.MessageOf(err)})
}
