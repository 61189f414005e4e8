package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/services"
)

// StorefrontHandler serves the shopper-facing API: menu browsing, addon
// customization, cart, checkout and wishlist.
type StorefrontHandler struct {
	menuService     services.MenuService
	cartService     services.CartService
	checkoutService services.CheckoutService
	wishlistService services.WishlistService
}

func NewStorefrontHandler(
	menuService services.MenuService,
	cartService services.CartService,
	checkoutService services.CheckoutService,
	wishlistService services.WishlistService,
) *StorefrontHandler {
	return &StorefrontHandler{
		menuService:     menuService,
		cartService:     cartService,
		checkoutService: checkoutService,
		wishlistService: wishlistService,
	}
}

func (h *StorefrontHandler) GetMenu(c *gin.Context) {
	foods, err := h.menuService.FilteredFoods(c.Request.Context(), c.Query("type"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

func (h *StorefrontHandler) GetFoodAddons(c *gin.Context) {
	food, ok := h.findFood(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"free":    services.FreeAddons(*food),
		"premium": services.PremiumAddons(*food),
	})
}

func (h *StorefrontHandler) GetCart(c *gin.Context) {
	items, err := h.cartService.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"count":       len(items),
		"grand_total": services.GrandTotal(items),
	})
}

type addCartItemRequest struct {
	FoodID int64 `json:"food_id" binding:"required"`
	// nil keeps every free addon selected (the default); an explicit list
	// keeps exactly those ids.
	FreeAddonIDs    *[]int `json:"free_addon_ids"`
	PremiumAddonIDs []int  `json:"premium_addon_ids"`
}

func (h *StorefrontHandler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	food, ok := h.lookupFood(c, req.FoodID)
	if !ok {
		return
	}

	session := services.NewAddonSession(*food)

	if req.FreeAddonIDs != nil {
		wanted := make(map[int]bool, len(*req.FreeAddonIDs))
		for _, id := range *req.FreeAddonIDs {
			wanted[id] = true
		}
		for _, addon := range services.FreeAddons(*food) {
			if !wanted[addon.ID] {
				session.ToggleFree(addon)
			}
		}
	}

	premium := services.PremiumAddons(*food)
	for _, id := range req.PremiumAddonIDs {
		addon, found := addonByID(premium, id)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown premium addon for this item"})
			return
		}
		session.TogglePremium(addon)
	}

	line, err := session.Confirm()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build cart line"})
		return
	}
	if err := h.cartService.Add(c.Request.Context(), line); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	count, _ := h.cartService.Count(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"line": line, "count": count})
}

func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

type checkoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *StorefrontHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer := models.Customer{Name: req.Name, Phone: req.Phone, Address: req.Address}
	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), customer)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrder) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *StorefrontHandler) GetOrders(c *gin.Context) {
	orders, err := h.checkoutService.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *StorefrontHandler) GetWishlist(c *gin.Context) {
	entries, err := h.wishlistService.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": entries, "count": len(entries)})
}

func (h *StorefrontHandler) ToggleWishlist(c *gin.Context) {
	var req struct {
		FoodID int64 `json:"food_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	food, ok := h.lookupFood(c, req.FoodID)
	if !ok {
		return
	}
	if err := h.wishlistService.Toggle(c.Request.Context(), *food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	wishlisted, _ := h.wishlistService.IsWishlisted(c.Request.Context(), food.ID)
	c.JSON(http.StatusOK, gin.H{"food_id": food.ID, "wishlisted": wishlisted})
}

func (h *StorefrontHandler) findFood(c *gin.Context) (*models.DisplayFood, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
		return nil, false
	}
	return h.lookupFood(c, id)
}

func (h *StorefrontHandler) lookupFood(c *gin.Context, id int64) (*models.DisplayFood, bool) {
	foods, err := h.menuService.LoadMenu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return nil, false
	}
	for i := range foods {
		if foods[i].ID == id {
			return &foods[i], true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
	return nil, false
}

func addonByID(addons []models.Addon, id int) (models.Addon, bool) {
	for _, a := range addons {
		if a.ID == id {
			return a, true
		}
	}
	return models.Addon{}, false
}
