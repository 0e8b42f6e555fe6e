package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrail/jobtrail-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job application records.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /v1/jobs.
//
// @Summary      List the caller's jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listJobsResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	resp := listJobsResponse{Jobs: make([]jobResponse, 0, len(jobs))}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(j))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/jobs. Ownership always comes from the
// authenticated identity; any owner or id in the payload is ignored by
// the schema.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job fields"
// @Success      201   {object}  jobEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), identity, ports.CreateJobInput{
		Company: req.Company,
		Role:    req.Role,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, jobEnvelope{Job: toJobResponse(job)})
}

// Update handles PATCH /v1/jobs/:id with a partial merge.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to merge"
// @Success      200   {object}  jobEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/jobs/{id} [patch]
func (h *JobHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), ports.UpdateJobInput{
		Company: req.Company,
		Role:    req.Role,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobEnvelope{Job: toJobResponse(job)})
}

// Delete handles DELETE /v1/jobs/:id. A second delete of the same id
// reports not-found.
//
// @Summary      Delete a job
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
