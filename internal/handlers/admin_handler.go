package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rahulsingh558/the-piquant-pan/internal/catalog"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
	"github.com/rahulsingh558/the-piquant-pan/internal/services"
)

// AdminHandler serves the admin panel API: login, menu CRUD, seeding and
// dashboard metrics.
type AdminHandler struct {
	authService      services.AuthService
	menuRepo         repository.MenuRepository
	dashboardService services.DashboardService
}

func NewAdminHandler(
	authService services.AuthService,
	menuRepo repository.MenuRepository,
	dashboardService services.DashboardService,
) *AdminHandler {
	return &AdminHandler{
		authService:      authService,
		menuRepo:         menuRepo,
		dashboardService: dashboardService,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter username and password"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "username": req.Username})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context(), SessionToken(c))
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AdminHandler) ListMenuItems(c *gin.Context) {
	items, err := h.menuRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *AdminHandler) GetMenuItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}
	item, err := h.menuRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

type menuItemRequest struct {
	Name      string  `json:"name"`
	Subtitle  string  `json:"subtitle"`
	BasePrice float64 `json:"basePrice"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
}

func (r menuItemRequest) toItem() (models.AdminMenuItem, string) {
	if r.Name == "" || r.BasePrice <= 0 {
		return models.AdminMenuItem{}, "Name and a positive base price are required"
	}
	foodType := models.FoodType(r.Type)
	if !foodType.Valid() {
		return models.AdminMenuItem{}, "Type must be veg, egg or nonveg"
	}
	category := models.Category(r.Category)
	if !category.Valid() {
		return models.AdminMenuItem{}, "Unknown category"
	}
	return models.AdminMenuItem{
		Name:      r.Name,
		Subtitle:  r.Subtitle,
		BasePrice: r.BasePrice,
		Type:      foodType,
		Category:  category,
		Image:     r.Image,
	}, ""
}

func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	item, msg := req.toItem()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	created, err := h.menuRepo.Add(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": created})
}

func (h *AdminHandler) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	item, msg := req.toItem()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	item.ID = id

	if err := h.menuRepo.Update(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}
	if err := h.menuRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SeedMenu populates the admin store with the full printed menu. It is a
// no-op when the store already has items.
func (h *AdminHandler) SeedMenu(c *gin.Context) {
	if err := h.menuRepo.SeedIfEmpty(c.Request.Context(), catalog.SeedMenu()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed menu"})
		return
	}
	items, err := h.menuRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items)})
}

func (h *AdminHandler) ClearMenu(c *gin.Context) {
	if err := h.menuRepo.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	metrics, err := h.dashboardService.Metrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// SessionToken extracts the admin session token from the Authorization
// header ("Bearer <token>") or the X-Admin-Token header.
func SessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader("X-Admin-Token")
}
