package intention

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"parishledger/internal/domain"
	"parishledger/internal/modules/search"
	"parishledger/internal/pkg/export"
	"parishledger/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/intentions", h.Register)
	rg.GET("/intentions", h.List)
	rg.GET("/intentions/export", h.Export)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterIntentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	record, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid intention data")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"intention": record,
		"receipt":   receiptText(*record),
	})
}

// List returns the intentions for one of the two mass slots, or all of them
// when no slot is given.
func (h *Handler) List(c *gin.Context) {
	records, ok := h.bySlotParam(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"intentions": records})
}

// Export renders the slot's intention list as a downloadable document.
func (h *Handler) Export(c *gin.Context) {
	records, ok := h.bySlotParam(c)
	if !ok {
		return
	}

	label := "Todos los horarios"
	if slot := domain.MassSlot(c.Query("slot")); slot.Valid() {
		label = slot.DisplayTime()
	}
	title := fmt.Sprintf("Intenciones de Misa - %s - %s", label, time.Now().Format("02/01/2006"))

	var b strings.Builder
	if len(records) == 0 {
		b.WriteString("<p>No hay intenciones registradas para este horario.</p>")
	} else {
		b.WriteString("<h3>Intenciones:</h3><ul>")
		for _, i := range records {
			fmt.Fprintf(&b, "<li><strong>%s</strong> para <strong>%s</strong> (Pago: $%.2f)</li>",
				template.HTMLEscapeString(string(i.IntentionType)),
				template.HTMLEscapeString(i.IntentionFor),
				i.Payment)
		}
		b.WriteString("</ul>")
	}

	doc, err := export.Render(title, template.HTML(b.String()))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render document")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.FileName(title))
	c.Data(http.StatusOK, export.ContentType, doc)
}

func (h *Handler) bySlotParam(c *gin.Context) ([]domain.Intention, bool) {
	raw := c.Query("slot")
	if raw == "" {
		return h.service.All(), true
	}
	slot := domain.MassSlot(raw)
	if !slot.Valid() {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown mass slot")
		return nil, false
	}
	return search.BySlot(h.service.All(), slot), true
}

func receiptText(i domain.Intention) string {
	return fmt.Sprintf(
		"RECIBO DE INTENCIÓN\n--------------------\nParroquia San Isidro Labrador\n\nFecha: %s\nIntención para: %s\nTipo: %s\nHorario: %s\nPago: $%.2f\n\nGracias por su cooperación.",
		i.Date.Format("02/01/2006"),
		i.IntentionFor,
		i.IntentionType,
		i.Slot.DisplayTime(),
		i.Payment,
	)
}
