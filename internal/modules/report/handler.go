package report

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

// CelebrationSource is the read side of the celebration ledger.
type CelebrationSource interface {
	All() []domain.Celebration
}

type Handler struct {
	celebrations CelebrationSource
	now          func() time.Time
}

func NewHandler(celebrations CelebrationSource) *Handler {
	return &Handler{celebrations: celebrations, now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/:period", h.Report)
	rg.GET("/reports/:period/export", h.Export)
}

type rowView struct {
	Date            string                   `json:"date"`
	CelebrationType string                   `json:"celebration_type"`
	RequesterName   string                   `json:"requester_name"`
	TotalCost       float64                  `json:"total_cost"`
	TotalPaid       float64                  `json:"total_paid"`
	Status          domain.CelebrationStatus `json:"status"`
}

func (h *Handler) Report(c *gin.Context) {
	filtered, totals, ok := h.build(c)
	if !ok {
		return
	}

	rows := make([]rowView, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, rowView{
			Date:            r.Date,
			CelebrationType: r.CelebrationType,
			RequesterName:   r.RequesterName,
			TotalCost:       r.TotalCost,
			TotalPaid:       r.TotalPaid(),
			Status:          r.Status(),
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"totals":       totals,
		"celebrations": rows,
	})
}

// Export renders the report as a downloadable document in the parish
// letterhead. Money is pre-formatted to two decimals here; the exporter
// itself does no formatting.
func (h *Handler) Export(c *gin.Context) {
	filtered, totals, ok := h.build(c)
	if !ok {
		return
	}

	period := c.Param("period")
	name := "Semanal"
	if period == PeriodMonthly {
		name = "Mensual"
	}
	title := "Reporte " + name

	var b strings.Builder
	b.WriteString("<h2>Resumen Financiero</h2>")
	fmt.Fprintf(&b, "<p><strong>Total Ingresado:</strong> $%.2f</p>", totals.TotalCollected)
	fmt.Fprintf(&b, "<p><strong>Costo Total de Celebraciones:</strong> $%.2f</p>", totals.TotalContracted)
	fmt.Fprintf(&b, "<p><strong>Monto Pendiente de Cobro:</strong> $%.2f</p>", totals.Outstanding)
	if totals.Outstanding > 0 {
		fmt.Fprintf(&b, `<p style="color: red;">Nota: Hay un monto pendiente de $%.2f</p>`, totals.Outstanding)
	}

	b.WriteString("<h2>Detalle de Celebraciones</h2><table><thead><tr>")
	b.WriteString("<th>Fecha</th><th>Celebración</th><th>Solicitante</th><th>Costo Total</th><th>Total Pagado</th><th>Estado</th>")
	b.WriteString("</tr></thead><tbody>")
	for _, r := range filtered {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>$%.2f</td><td>$%.2f</td><td>%s</td></tr>",
			r.Date,
			template.HTMLEscapeString(r.CelebrationType),
			template.HTMLEscapeString(r.RequesterName),
			r.TotalCost,
			r.TotalPaid(),
			r.Status(),
		)
	}
	b.WriteString("</tbody></table>")

	doc, err := export.Render(title, template.HTML(b.String()))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render document")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.FileName(title))
	c.Data(http.StatusOK, export.ContentType, doc)
}

func (h *Handler) build(c *gin.Context) ([]domain.Celebration, Totals, bool) {
	r, err := RangeFor(c.Param("period"), h.now())
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Report period must be weekly or monthly")
		return nil, Totals{}, false
	}

	filtered := search.Chronological(Filter(h.celebrations.All(), r), false)
	return filtered, Aggregate(filtered), true
}
