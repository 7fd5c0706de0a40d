package v1

import (
	"net/http"
	"time"

	"github.com/form3115-prep/backend/internal/httputil"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterStatsRoutes registers the dashboard statistics route with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
}

// RecentFiling is a compact list entry for the most recently updated
// filings.
type RecentFiling struct {
	ID              uuid.UUID           `json:"id" example:"2f1f209d-7f57-4b27-9b6b-6f3a1457c4a2"` // ID of the filing
	ClientName      string              `json:"clientName" example:"Acme Manufacturing Inc"`       // Name of the owning client
	TaxYearOfChange int                 `json:"taxYearOfChange" example:"2025"`                    // Tax year the change takes effect in
	Status          models.FilingStatus `json:"status" example:"in_progress"`                      // Workflow status
	UpdatedAt       time.Time           `json:"updatedAt" example:"2025-06-01T14:43:27.000Z"`      // Last change to the filing
}

type Stats struct {
	TotalClients  int64          `json:"totalClients" example:"12"` // Number of clients
	TotalFilings  int64          `json:"totalFilings" example:"30"` // Number of filings across all clients
	InProgress    int64          `json:"inProgress" example:"4"`    // Filings currently being prepared
	Completed     int64          `json:"completed" example:"21"`    // Filings marked completed
	RecentFilings []RecentFiling `json:"recentFilings"`             // The five most recently updated filings
}

type StatsResponse struct {
	Data  *Stats  `json:"data"`                              // The dashboard statistics
	Error *string `json:"error" example:"an error occurred"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns dashboard statistics over the user's clients and filings
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
func GetStats(c *gin.Context) {
	user := currentUser(c)

	var stats Stats

	err := models.DB.
		Model(&models.Client{}).
		Where(&models.Client{UserID: user}).
		Count(&stats.TotalClients).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &s,
		})
		return
	}

	counts := []struct {
		status models.FilingStatus
		target *int64
	}{
		{"", &stats.TotalFilings},
		{models.FilingStatusInProgress, &stats.InProgress},
		{models.FilingStatusCompleted, &stats.Completed},
	}

	for _, count := range counts {
		q := models.UserFilings(models.DB, user)
		if count.status != "" {
			q = q.Where("filings.status = ?", count.status)
		}

		if err := q.Count(count.target).Error; err != nil {
			s := err.Error()
			c.JSON(status(err), StatsResponse{
				Error: &s,
			})
			return
		}
	}

	var recent []models.Filing
	err = models.UserFilings(models.DB, user).
		Preload("Client").
		Order("filings.updated_at DESC").
		Limit(5).
		Find(&recent).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{
			Error: &s,
		})
		return
	}

	stats.RecentFilings = make([]RecentFiling, 0, len(recent))
	for _, filing := range recent {
		stats.RecentFilings = append(stats.RecentFilings, RecentFiling{
			ID:              filing.ID,
			ClientName:      filing.Client.Name,
			TaxYearOfChange: filing.TaxYearOfChange,
			Status:          filing.Status,
			UpdatedAt:       filing.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}
