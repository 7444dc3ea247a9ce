package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/reconcile-backend/internal/adapters/extraction"
	"github.com/platewise/reconcile-backend/internal/api/dto"
	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
	"github.com/platewise/reconcile-backend/internal/infrastructure/storage"
)

func (s *Server) reconcile(c *gin.Context) {
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError(err))
		return
	}

	extracted, err := extraction.Parse(req.Extracted)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid extraction payload: "+err.Error()))
		return
	}

	s.runReconcile(c, req.Form, extracted, req.Timezone)
}

func (s *Server) reconcileReceipt(c *gin.Context) {
	var req dto.ReconcileReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError(err))
		return
	}

	receiptID := c.Param("id")
	extracted, err := s.extraction.Fetch(c.Request.Context(), receiptID)
	if err != nil {
		s.logger.Error("extraction fetch failed", "receipt_id", receiptID, "error", err)
		c.JSON(http.StatusBadGateway, dto.UpstreamError("extraction"))
		return
	}

	s.runReconcile(c, req.Form, extracted, req.Timezone)
}

// runReconcile runs the engine with an optional per-request timezone,
// records the run, and writes the report response.
func (s *Server) runReconcile(c *gin.Context, form reconcile.FormRecord, extracted reconcile.ExtractedRecord, timezone string) {
	engine := s.engine
	zone := s.tz.Location().String()
	if timezone != "" {
		tz, err := reconcile.NewTimezoneResolver(timezone)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.BadRequestError("unknown timezone: "+timezone))
			return
		}
		engine = reconcile.NewEngine(tz, s.scorer, s.engCfg)
		zone = timezone
	}

	report := engine.Reconcile(form, extracted)

	run := &storage.RunRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Timezone:  zone,
	}
	if err := run.SetReport(&report); err == nil {
		if err := s.repo.SaveRun(run); err != nil {
			// History is best-effort; the report is still valid.
			s.logger.Error("failed to save run", "run_id", run.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{
		RunID:  run.ID,
		Report: report,
	})
}

func (s *Server) applySuggestion(c *gin.Context) {
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError(err))
		return
	}

	value, ok := reconcile.ApplySuggestion(req.Field, req.Report)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundError("suggestion for "+string(req.Field)))
		return
	}

	c.JSON(http.StatusOK, dto.ApplyResponse{
		Field: req.Field,
		Value: value,
	})
}

func (s *Server) getRestaurant(c *gin.Context) {
	id := c.Param("id")

	restaurant, err := s.places.Lookup(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("restaurant lookup failed", "restaurant_id", id, "error", err)
		c.JSON(http.StatusBadGateway, dto.UpstreamError("restaurant lookup"))
		return
	}
	if restaurant == nil {
		c.JSON(http.StatusNotFound, dto.NotFoundError("restaurant"))
		return
	}

	c.JSON(http.StatusOK, dto.NewRestaurantResponse(id, restaurant))
}

func (s *Server) listRuns(c *gin.Context) {
	params := dto.DefaultRunListParams()
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError(err))
		return
	}

	runs, total, err := s.repo.ListRuns(storage.RunFilters{
		Overall: params.Overall,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
	if err != nil {
		s.logger.Error("failed to list runs", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	resp := dto.RunListResponse{
		Runs:  make([]dto.RunSummary, 0, len(runs)),
		Total: total,
	}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, dto.NewRunSummary(run))
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) getRun(c *gin.Context) {
	id := c.Param("id")

	run, err := s.repo.GetRun(id)
	if err != nil {
		s.logger.Error("failed to get run", "run_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, dto.NotFoundError("run"))
		return
	}

	report, err := run.Report()
	if err != nil {
		s.logger.Error("failed to decode stored report", "run_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, dto.RunDetailResponse{
		RunSummary: dto.NewRunSummary(run),
		Report:     report,
	})
}

func (s *Server) getStats(c *gin.Context) {
	stats, err := s.repo.GetStats()
	if err != nil {
		s.logger.Error("failed to get stats", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, stats)
}
