package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gin-gonic/gin"

	"github.com/exotravel/exotravel/internal/database/planets"
	"github.com/exotravel/exotravel/internal/entities"
)

// minOpaqueIDLength guards the id routes against junk path segments;
// real identifiers are UUIDs.
const minOpaqueIDLength = 10

// ListPlanetsResponse is one catalog page.
type ListPlanetsResponse struct {
	Items      []entities.Exoplanet `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	Total      int64                `json:"total"`
	TotalPages int                  `json:"totalPages"`
}

// PlanetsController serves the exoplanet catalog.
type PlanetsController struct {
	repo *planets.Repository
}

func NewPlanetsController(repo *planets.Repository) *PlanetsController {
	return &PlanetsController{repo: repo}
}

// RegisterRoutes registers the catalog endpoints on the router.
func (pc *PlanetsController) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/exoplanets", pc.List)
	router.GET("/api/exoplanets/:id", pc.Get)
}

// List returns a filtered, sorted catalog page.
func (pc *PlanetsController) List(c *gin.Context) {
	query, errs := parseListQuery(c)
	if len(errs) > 0 {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid query parameters", errs)
		return
	}

	items, total, err := pc.repo.List(query)
	if err != nil {
		respondInternalError(c, err, "list exoplanets")
		return
	}
	if items == nil {
		items = []entities.Exoplanet{}
	}

	totalPages := int(math.Ceil(float64(total) / float64(query.PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, ListPlanetsResponse{
		Items:      items,
		Page:       query.Page,
		PageSize:   query.PageSize,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Get returns one planet by id.
func (pc *PlanetsController) Get(c *gin.Context) {
	id := c.Param("id")
	if len(id) < minOpaqueIDLength {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid exoplanet id", nil)
		return
	}

	planet, err := pc.repo.GetByID(id)
	if err != nil {
		respondInternalError(c, err, "get exoplanet")
		return
	}
	if planet == nil {
		respondNotFound(c, "Exoplanet")
		return
	}

	c.JSON(http.StatusOK, planet)
}

// parseListQuery coerces and validates the catalog query parameters,
// collecting one message per invalid field.
func parseListQuery(c *gin.Context) (planets.ListQuery, validation.Errors) {
	errs := validation.Errors{}
	query := planets.ListQuery{
		Page:     1,
		PageSize: 20,
		Sort:     "distance",
		Order:    "asc",
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			errs["page"] = errors.New("must be an integer no less than 1")
		} else {
			query.Page = page
		}
	}

	if raw := c.Query("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > 100 {
			errs["pageSize"] = errors.New("must be an integer between 1 and 100")
		} else {
			query.PageSize = size
		}
	}

	if raw := strings.TrimSpace(c.Query("q")); raw != "" {
		if len(raw) > 100 {
			errs["q"] = errors.New("the length must be no more than 100")
		} else {
			query.Query = raw
		}
	}

	if raw := strings.TrimSpace(c.Query("vibe")); raw != "" {
		if len(raw) > 60 {
			errs["vibe"] = errors.New("the length must be no more than 60")
		} else {
			query.Vibe = raw
		}
	}

	query.MinDistance = parseDistanceParam(c, "minDistance", errs)
	query.MaxDistance = parseDistanceParam(c, "maxDistance", errs)

	if raw := c.Query("sort"); raw != "" {
		if _, ok := planets.SortColumn(raw); !ok {
			errs["sort"] = errors.New("must be one of: distance, discoveryYear, name")
		} else {
			query.Sort = raw
		}
	}

	if raw := c.Query("order"); raw != "" {
		if raw != "asc" && raw != "desc" {
			errs["order"] = errors.New("must be asc or desc")
		} else {
			query.Order = raw
		}
	}

	return query, errs
}

func parseDistanceParam(c *gin.Context, name string, errs validation.Errors) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		errs[name] = errors.New("must be a number no less than 0")
		return nil
	}
	return &value
}
