package api

import (
	"net/http"

	reqdto "groombook/internal/handler/dto/request"
	resdto "groombook/internal/handler/dto/response"
	"groombook/internal/handler/httperr"
	"groombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RecurrenceHandler struct {
	q queries.RecurrenceQueries
}

func NewRecurrenceHandler(q queries.RecurrenceQueries) *RecurrenceHandler {
	return &RecurrenceHandler{q: q}
}

// @Summary Preview recurrence
// @Description Expand a booking intent into its occurrence dates without booking anything
// @Tags recurrence
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecurrencePreviewRequest true "Booking intent"
// @Success 200 {object} resdto.RecurrencePreviewResponse
// @Failure 400 {object} httperr.Response
// @Router /recurrence/preview [post]
func (h *RecurrenceHandler) Preview(c *gin.Context) {
	var req reqdto.RecurrencePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	preview, err := h.q.Preview(req.ToIntent())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecurrencePreview(preview))
}
