package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ukpostcodes/internal/postcode"
)

const maxBatchSize = 1000

var errInvalidRequest = errors.New("invalid request")

type Handler struct {
	checker *postcode.Checker
	log     zerolog.Logger
}

func NewHandler(checker *postcode.Checker, log zerolog.Logger) *Handler {
	return &Handler{
		checker: checker,
		log:     log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	postcodes := r.Group("/postcodes")
	{
		postcodes.GET("/normalize", h.normalize)
		postcodes.GET("/validate", h.validateOne)
		postcodes.POST("/validate", h.validateBatch)
	}
}

func (h *Handler) normalize(c *gin.Context) {
	raw, ok := c.GetQuery("postcode")
	if !ok {
		h.handleError(c, fmt.Errorf("%w: postcode query parameter is required", errInvalidRequest))
		return
	}

	normalized, err := postcode.Normalize(raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"raw":        raw,
		"normalized": normalized,
	}))
}

func (h *Handler) validateOne(c *gin.Context) {
	raw, ok := c.GetQuery("postcode")
	if !ok {
		h.handleError(c, fmt.Errorf("%w: postcode query parameter is required", errInvalidRequest))
		return
	}

	c.JSON(http.StatusOK, successResponse(h.checker.Check(raw)))
}

type batchResponse struct {
	Results []postcode.Result `json:"results"`
	Valid   int               `json:"valid"`
	Invalid int               `json:"invalid"`
}

func (h *Handler) validateBatch(c *gin.Context) {
	var req struct {
		Postcodes []string `json:"postcodes" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, fmt.Errorf("%w: %v", errInvalidRequest, err))
		return
	}
	if len(req.Postcodes) > maxBatchSize {
		h.handleError(c, fmt.Errorf("%w: at most %d postcodes per request", errInvalidRequest, maxBatchSize))
		return
	}

	resp := batchResponse{Results: make([]postcode.Result, 0, len(req.Postcodes))}
	for _, raw := range req.Postcodes {
		res := h.checker.Check(raw)
		if res.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
		resp.Results = append(resp.Results, res)
	}

	c.JSON(http.StatusOK, successResponse(resp))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidRequest), errors.Is(err, postcode.ErrMalformedInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
