// Package httpapi exposes the directory as JSON over HTTP.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/krisalay/simple-nav/directory"
	"github.com/krisalay/simple-nav/types"
)

// Handler holds what the routes need.
type Handler struct {
	dir     *directory.Directory
	board   *directory.AnnouncementBoard
	metrics http.Handler
	logger  types.Logger
}

// NewHandler wires a Handler. metricsHandler may be nil to leave /metrics unmounted.
func NewHandler(dir *directory.Directory, board *directory.AnnouncementBoard, metricsHandler http.Handler, logger types.Logger) *Handler {
	if logger == nil {
		logger = types.DefaultLogger()
	}
	return &Handler{dir: dir, board: board, metrics: metricsHandler, logger: logger}
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.health)

	api := r.Group("/api")
	api.GET("/sites", h.allSites)
	api.GET("/search", h.search)
	api.GET("/hot", h.hotSites)
	api.GET("/categories", h.categories)
	api.GET("/categories/:id/sites", h.categorySites)
	api.GET("/announcements", h.announcements)
	api.POST("/announcements/dismiss", h.dismissAnnouncements)
	api.GET("/ads", h.ads)
	api.GET("/stats", h.stats)
	api.DELETE("/cache", h.clearCache)

	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics))
	}
}

// NewRouter returns a gin engine with recovery and request logging and every route mounted.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.Register(r)
	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) allSites(c *gin.Context) {
	sites, err := h.dir.AllSites(c.Request.Context())
	if err != nil {
		h.fail(c, "load sites", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sites": sites, "count": len(sites)})
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	results, err := h.dir.Search(c.Request.Context(), query)
	if err != nil {
		h.fail(c, "search", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": results, "count": len(results)})
}

func (h *Handler) hotSites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sites": h.dir.HotSites()})
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.dir.Categories()})
}

func (h *Handler) categorySites(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category id must be an integer"})
		return
	}
	sites, ok := h.dir.CategorySites(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoryId": id, "sites": sites})
}

func (h *Handler) announcements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"visible":       h.board.Visible(visitorID(c)),
		"announcements": h.dir.Announcements(),
	})
}

func (h *Handler) dismissAnnouncements(c *gin.Context) {
	if err := h.board.Dismiss(visitorID(c)); err != nil {
		h.fail(c, "dismiss announcements", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"images": h.dir.AdImages()})
}

func (h *Handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"totalSites": h.dir.TotalSites(),
		"categories": len(h.dir.Categories()),
	})
}

func (h *Handler) clearCache(c *gin.Context) {
	h.dir.ClearCache()
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, what string, err error) {
	h.logger.Printf("%s failed: %v", what, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": what + " failed"})
}
