package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint returns. Detail carries
// structured context such as the recurrence field that failed validation.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

func InternalError() Response {
	return newResponse(http.StatusInternalServerError, "Internal server error", nil)
}

// AbortWithError records err on the context for logging and writes the
// public envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}
	resp := newResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
