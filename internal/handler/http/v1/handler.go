package v1

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/coverage_map/internal/config"
	"github.com/shenikar/coverage_map/internal/models"
	"github.com/shenikar/coverage_map/internal/refresh"
	"github.com/shenikar/coverage_map/internal/service"
)

const errNotLoaded = "coverage data is not loaded yet"

type Handler struct {
	coverageService service.CoverageService
	projectService  service.ProjectService
	publisher       refresh.Publisher
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	coverageService service.CoverageService,
	projectService service.ProjectService,
	publisher refresh.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		coverageService: coverageService,
		projectService:  projectService,
		publisher:       publisher,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Get the uninsured ratio ranking
// @Description Regions ordered by uninsured ratio ascending. Regions with zero population are listed in excluded.
// @Tags Coverage
// @Produce json
// @Success 200 {object} RankingResponse
// @Failure 503 {object} map[string]string "Data not loaded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coverage/ranking [get]
func (h *Handler) getRanking(c *gin.Context) {
	log := h.logger.WithField("method", "getRanking")

	ranking, err := h.coverageService.Ranking(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}
		log.WithError(err).Error("Failed to get ranking from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToRankingResponse(ranking))
}

// @Summary Get normalized insured ratios
// @Description Insured ratio of every rated region rescaled to [0,1].
// @Tags Coverage
// @Produce json
// @Success 200 {object} map[string]float64
// @Failure 503 {object} map[string]string "Data not loaded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coverage/normalized [get]
func (h *Handler) getNormalized(c *gin.Context) {
	log := h.logger.WithField("method", "getNormalized")

	normalized, err := h.coverageService.Normalized(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}
		log.WithError(err).Error("Failed to get normalized ratios from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, normalized)
}

// @Summary Get column chart data
// @Description Categories and total/uninsured series ordered by uninsured ratio. ready is false until the population dataset is loaded.
// @Tags Coverage
// @Produce json
// @Success 200 {object} ChartResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coverage/chart [get]
func (h *Handler) getChart(c *gin.Context) {
	log := h.logger.WithField("method", "getChart")

	data, err := h.coverageService.Chart(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			c.JSON(http.StatusOK, ChartResponse{Ready: false, Categories: []string{}, Series: []SeriesResponse{}})
			return
		}
		log.WithError(err).Error("Failed to get chart from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToChartResponse(data))
}

// @Summary Get column chart image
// @Description Stacked bar chart rendered as PNG.
// @Tags Coverage
// @Produce png
// @Success 200 {file} binary
// @Failure 503 {object} map[string]string "Data not loaded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coverage/chart.png [get]
func (h *Handler) getChartPNG(c *gin.Context) {
	log := h.logger.WithField("method", "getChartPNG")

	var buf bytes.Buffer
	if err := h.coverageService.ChartPNG(c.Request.Context(), &buf); err != nil {
		if errors.Is(err, service.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}
		log.WithError(err).Error("Failed to render chart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// @Summary Get map overlay data
// @Description One polygon per region with stroke and fill styling. ready is false until both datasets are loaded.
// @Tags Coverage
// @Produce json
// @Success 200 {object} MapResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coverage/map [get]
func (h *Handler) getMap(c *gin.Context) {
	log := h.logger.WithField("method", "getMap")

	data, err := h.coverageService.Map(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			c.JSON(http.StatusOK, MapResponse{Ready: false, Polygons: []PolygonResponse{}, Skipped: []string{}})
			return
		}
		log.WithError(err).Error("Failed to get map from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToMapResponse(data))
}

// @Summary Get map overlay as GeoJSON
// @Description The map polygons as a GeoJSON FeatureCollection.
// @Tags Coverage
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string "Data not loaded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /coverage/map.geojson [get]
func (h *Handler) getMapGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "getMapGeoJSON")

	fc, err := h.coverageService.MapGeoJSON(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotLoaded})
			return
		}
		log.WithError(err).Error("Failed to get map GeoJSON from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	raw, err := fc.MarshalJSON()
	if err != nil {
		log.WithError(err).Error("Failed to marshal feature collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", raw)
}

// @Summary Queue a dataset refresh
// @Description Enqueue a reload of the population dataset, the outline dataset or both. Requires API key.
// @Tags Datasets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RefreshRequest true "Dataset to refresh"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /datasets/refresh [post]
func (h *Handler) refreshDatasets(c *gin.Context) {
	var input RefreshRequest
	log := h.logger.WithField("method", "refreshDatasets")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := refresh.RefreshEvent{
		Dataset:     input.Dataset,
		RequestedBy: c.ClientIP(),
		Timestamp:   time.Now().UTC(),
	}
	if err := h.publisher.Publish(c.Request.Context(), event); err != nil {
		log.WithError(err).Error("Failed to queue refresh")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "dataset": input.Dataset})
}

// @Summary Create a showcase project
// @Description Add a project to the showcase. Requires API key.
// @Tags Projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param project body CreateProjectRequest true "Project creation request"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [post]
func (h *Handler) createProject(c *gin.Context) {
	var input CreateProjectRequest
	log := h.logger.WithField("method", "createProject")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := DTOToProjectModel(input)
	if err != nil {
		log.WithError(err).Warn("Invalid media")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.projectService.CreateProject(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrInvalidMedia) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to create project in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToProjectResponse(model))
}

// @Summary List showcase projects
// @Description Get a paginated list of projects.
// @Tags Projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ProjectResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	log := h.logger.WithField("method", "listProjects")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	projects, err := h.projectService.ListProjects(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list projects from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToProjectResponses(projects))
}

// @Summary Get project details
// @Description Get a project with its media fragment rendered for the modal.
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} ProjectDetailsResponse
// @Failure 400 {object} map[string]string "Invalid project ID"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /projects/{id} [get]
func (h *Handler) getProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	log := h.logger.WithField("method", "getProject").WithField("id", id)

	project, media, err := h.projectService.ProjectDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			log.WithError(err).Warn("Project not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		log.WithError(err).Error("Failed to get project details from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ProjectDetailsResponse{
		ProjectResponse: *ModelToProjectResponse(project),
		MediaHTML:       string(media),
	})
}

// @Summary Health check
// @Description Service status and versions of the loaded datasets.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Snapshots: h.coverageService.Status(),
	})
}
