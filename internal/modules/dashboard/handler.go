package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parishledger/internal/domain"
	"parishledger/internal/modules/search"
	"parishledger/internal/pkg/response"
)

type CelebrationSource interface {
	All() []domain.Celebration
}

type IntentionSource interface {
	All() []domain.Intention
}

type Handler struct {
	celebrations CelebrationSource
	intentions   IntentionSource
	now          func() time.Time
}

func NewHandler(celebrations CelebrationSource, intentions IntentionSource) *Handler {
	return &Handler{celebrations: celebrations, intentions: intentions, now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}

// Dashboard returns the front-page counters and the next five celebrations.
func (h *Handler) Dashboard(c *gin.Context) {
	celebrations := h.celebrations.All()
	now := h.now()
	today := now.Format("2006-01-02")

	pending := 0
	todayCount := 0
	for _, record := range celebrations {
		if record.Status() == domain.CelebrationPending {
			pending++
		}
		if record.Date == today {
			todayCount++
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"total_celebrations":   len(celebrations),
		"pending_celebrations": pending,
		"celebrations_today":   todayCount,
		"total_intentions":     len(h.intentions.All()),
		"upcoming":             search.Upcoming(celebrations, now, 5),
	})
}
