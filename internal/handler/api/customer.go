package api

import (
	"net/http"

	resdto "groombook/internal/handler/dto/response"
	"groombook/internal/handler/httperr"
	"groombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	q queries.CustomerQueries
}

func NewCustomerHandler(q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{q: q}
}

// @Summary Search customers and pets
// @Description Case-insensitive match on customer name, phone, pet name and breed. An empty query lists every customer.
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Success 200 {object} resdto.CustomerSearchResponse
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}
	query := c.Query("q")
	candidates, err := h.q.Search(c.Request.Context(), tenantID, query)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCandidates(query, candidates))
}
