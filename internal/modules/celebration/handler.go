package celebration

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"parishledger/internal/domain"
	"parishledger/internal/modules/search"
	"parishledger/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/celebrations", h.Register)
	rg.POST("/celebrations/:folio/payments", h.AddPayment)
	rg.GET("/celebrations", h.List)
	rg.GET("/celebrations/:folio", h.GetByFolio)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterCelebrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	record, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid celebration data")
		case ErrDuplicateFolio:
			response.Error(c, http.StatusConflict, "DUPLICATE_FOLIO", "A celebration with that folio already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register celebration")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"folio":       record.Folio,
		"celebration": NewCelebrationView(*record),
	})
}

func (h *Handler) AddPayment(c *gin.Context) {
	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	record, err := h.service.AddPayment(c.Request.Context(), c.Param("folio"), req.Amount)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Payment amount must be positive")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No celebration with that folio")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"celebration": NewCelebrationView(*record)})
}

func (h *Handler) GetByFolio(c *gin.Context) {
	record, err := h.service.FindByFolio(c.Param("folio"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No celebration with that folio")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"celebration": NewCelebrationView(*record)})
}

// List returns every celebration, newest date first, as the all-celebrations
// view shows them.
func (h *Handler) List(c *gin.Context) {
	records := search.Chronological(h.service.All(), true)

	views := make([]CelebrationView, 0, len(records))
	for _, r := range records {
		views = append(views, NewCelebrationView(r))
	}
	response.Success(c, http.StatusOK, gin.H{"celebrations": views})
}

// CelebrationView is the wire shape of a celebration with its derived
// payment figures.
type CelebrationView struct {
	domain.Celebration
	Status    domain.CelebrationStatus `json:"status"`
	TotalPaid float64                  `json:"total_paid"`
	Remaining float64                  `json:"remaining"`
}

func NewCelebrationView(c domain.Celebration) CelebrationView {
	return CelebrationView{
		Celebration: c,
		Status:      c.Status(),
		TotalPaid:   round2(c.TotalPaid()),
		Remaining:   round2(c.Remaining()),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
