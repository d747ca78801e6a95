package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parishledger/internal/domain"
	"parishledger/internal/pkg/response"
)

// CelebrationSource is the read side of the celebration ledger.
type CelebrationSource interface {
	All() []domain.Celebration
}

type Handler struct {
	celebrations CelebrationSource
}

func NewHandler(celebrations CelebrationSource) *Handler {
	return &Handler{celebrations: celebrations}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
}

// Search answers the records-lookup page: one search mode per request.
func (h *Handler) Search(c *gin.Context) {
	by := c.Query("by")
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing search term")
		return
	}

	snapshot := h.celebrations.All()

	var results []domain.Celebration
	switch by {
	case "folio":
		if record, ok := ByFolio(snapshot, q); ok {
			results = []domain.Celebration{record}
		} else {
			results = []domain.Celebration{}
		}
	case "requester":
		results = ByRequester(snapshot, q)
	case "type":
		results = ByCelebrationType(snapshot, q)
	case "date":
		results = ByDate(snapshot, q)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown search mode")
		return
	}

	views := make([]Result, 0, len(results))
	for _, r := range results {
		views = append(views, newResult(r))
	}
	response.Success(c, http.StatusOK, gin.H{"results": views})
}

// Result is a celebration with the derived payment figures the search cards
// display.
type Result struct {
	domain.Celebration
	Status    domain.CelebrationStatus `json:"status"`
	TotalPaid float64                  `json:"total_paid"`
	Remaining float64                  `json:"remaining"`
}

func newResult(c domain.Celebration) Result {
	return Result{
		Celebration: c,
		Status:      c.Status(),
		TotalPaid:   c.TotalPaid(),
		Remaining:   c.Remaining(),
	}
}
