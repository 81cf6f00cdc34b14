package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mwaniki-news/pkg/config"
	"mwaniki-news/pkg/models"
	"mwaniki-news/pkg/services"
)

var (
	store  *services.Store
	logger = zap.NewNop()
)

// Init wires the handlers to their article store. Must run before any
// route is served.
func Init(s *services.Store, log *zap.Logger) {
	store = s
	if log != nil {
		logger = log
	}
}

// loadCollection fetches the current collection or answers 503 so pages
// can show a retry-capable "content unavailable" state instead of
// mistaking a load failure for an empty site.
func loadCollection(c *gin.Context) ([]models.Article, bool) {
	articles, err := store.LoadAll()
	if err != nil {
		logger.Error("loading articles", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Content unavailable, please retry"})
		return nil, false
	}
	return articles, true
}

// resolveCategory turns the category query param into a canonical display
// name. Absent or "all" means unfiltered.
func resolveCategory(c *gin.Context) (string, bool) {
	slug := c.Query("category")
	if slug == "" || strings.EqualFold(slug, "all") {
		return services.CategoryAll, true
	}
	name, ok := services.CategoryBySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category: " + slug})
		return "", false
	}
	return name, true
}

// GetArticles returns the whole collection; the first call seeds the
// writable copy from the bundled default.
func GetArticles(c *gin.Context) {
	articles, ok := loadCollection(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, articles)
}

// UpdateArticles replaces the whole collection (admin save path).
func UpdateArticles(c *gin.Context) {
	var articles []models.Article
	if err := c.ShouldBindJSON(&articles); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := store.ReplaceAll(articles); err != nil {
		if errors.Is(err, models.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("replacing articles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Articles updated"})
}

// SaveArticle upserts a single record by id.
func SaveArticle(c *gin.Context) {
	var art models.Article
	if err := c.ShouldBindJSON(&art); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := store.Upsert(art); err != nil {
		if errors.Is(err, models.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("saving article", zap.Int("id", art.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// DeleteArticle removes a single record by id.
func DeleteArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	if err := store.Remove(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		logger.Error("deleting article", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetArticle returns one article with its body rendered to HTML.
func GetArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := store.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		logger.Error("loading article", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Content unavailable, please retry"})
		return
	}

	html, err := services.RenderBody(article.Content)
	if err != nil {
		logger.Warn("rendering article body", zap.Int("id", id), zap.Error(err))
		html = ""
	}
	slug, _ := services.SlugForCategory(article.Category)

	c.JSON(http.StatusOK, gin.H{
		"article":      article,
		"html":         html,
		"categorySlug": slug,
	})
}

// GetFeed serves the home and category listings: filter, date order,
// pagination window.
func GetFeed(c *gin.Context) {
	category, ok := resolveCategory(c)
	if !ok {
		return
	}
	articles, ok := loadCollection(c)
	if !ok {
		return
	}

	posts := services.SortByDateDescending(services.FilterByCategory(articles, category))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(config.FeedPageSize)))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = config.FeedPageSize
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"total":    len(posts),
		"page":     page,
		"articles": services.Paginate(posts, (page-1)*size, size),
	})
}

// SearchArticles combines the text query with an optional category
// filter, both narrowing.
func SearchArticles(c *gin.Context) {
	category, ok := resolveCategory(c)
	if !ok {
		return
	}
	articles, ok := loadCollection(c)
	if !ok {
		return
	}

	posts := services.FilterByCategory(articles, category)
	posts = services.SortByDateDescending(services.Search(posts, c.Query("q")))
	c.JSON(http.StatusOK, posts)
}

// GetBreaking feeds the ticker: breaking-news headlines, newest first.
func GetBreaking(c *gin.Context) {
	articles, ok := loadCollection(c)
	if !ok {
		return
	}

	breaking := services.SortByDateDescending(
		services.FilterByCategory(articles, services.CategoryBreaking))

	type tickerItem struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Date     string `json:"date"`
	}
	items := make([]tickerItem, 0, len(breaking))
	for _, a := range breaking {
		items = append(items, tickerItem{a.ID, a.Title, a.Category, a.Date})
	}
	c.JSON(http.StatusOK, items)
}

// GetHome returns the home page buckets: featured, trending (excluding
// the featured block) and the latest window.
func GetHome(c *gin.Context) {
	articles, ok := loadCollection(c)
	if !ok {
		return
	}

	featured := services.SelectFeatured(articles, limitQuery(c, "featured", config.FeaturedLimit))
	exclude := make([]int, 0, len(featured))
	for _, a := range featured {
		exclude = append(exclude, a.ID)
	}
	trending := services.SelectTrending(articles, exclude, limitQuery(c, "trending", config.TrendingLimit))
	latest := services.Paginate(services.SortByDateDescending(articles), 0, config.FeedPageSize)

	c.JSON(http.StatusOK, gin.H{
		"featured": featured,
		"trending": trending,
		"latest":   latest,
	})
}

func limitQuery(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v >= 0 {
		return v
	}
	return fallback
}

// GetCategories lists the canonical vocabulary with its URL slugs.
func GetCategories(c *gin.Context) {
	type categoryItem struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	items := make([]categoryItem, 0)
	for _, name := range services.Categories() {
		slug, _ := services.SlugForCategory(name)
		items = append(items, categoryItem{Slug: slug, Name: name})
	}
	c.JSON(http.StatusOK, items)
}

// GetSiteConfig serves the site metadata (title, tagline, ticker interval).
func GetSiteConfig(c *gin.Context) {
	cfg, err := services.LoadSiteConfig(config.SiteDir)
	if err != nil {
		logger.Error("loading site config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse site config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
