package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// orderItemRequest is one line of an incoming order payload.
type orderItemRequest struct {
	ProductID     string   `json:"product_id" binding:"required"`
	Name          string   `json:"name"`
	Qty           int      `json:"qty" binding:"required,min=1"`
	Price         *float64 `json:"price"`
	ProviderPrice *float64 `json:"provider_price"`
}

// RecordOrder persists a captured order. Item prices are resolved
// through the prioritized chain (catalog, provider payload, client
// value) and the confirmation email is best-effort: a mail failure
// never fails the order.
func RecordOrder(c *gin.Context) {
	utils.LogInfo("RecordOrder called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	var req struct {
		OrderID         string             `json:"order_id"`
		Status          string             `json:"status"`
		Items           []orderItemRequest `json:"items" binding:"required,min=1,dive"`
		Shipping        float64            `json:"shipping"`
		Discount        float64            `json:"discount"`
		CouponCode      string             `json:"coupon_code"`
		CustomerEmail   string             `json:"customer_email"`
		CustomerName    string             `json:"customer_name"`
		Provider        string             `json:"provider"`
		ProviderPayload models.JSONMap     `json:"provider_payload"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order payload for user %s: %v", user.ID, err)
		utils.BadRequest(c, "Invalid order payload", err.Error())
		return
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = "HG-" + uuid.New().String()
	}
	status := req.Status
	if status == "" {
		status = models.OrderStatusPaid
	}

	var items models.OrderItems
	var subtotal float64
	for _, line := range req.Items {
		product, err := ProductRepo.GetByID(c.Request.Context(), line.ProductID)
		if err != nil {
			utils.LogDebug("No catalog row for item %s: %v", line.ProductID, err)
			product = nil
		}

		price, source, err := ResolveUnitPrice(product, line.ProviderPrice, line.Price)
		if err != nil {
			utils.LogError("Price resolution failed for item %s: %v", line.ProductID, err)
			utils.BadRequest(c, fmt.Sprintf("Invalid product or price for %s", line.ProductID), nil)
			return
		}
		utils.LogDebug("Resolved price for %s: %.2f (source: %s)", line.ProductID, price, source)

		name := line.Name
		if product != nil && product.Name != "" {
			name = product.Name
		}
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      name,
			Price:     price,
			Qty:       line.Qty,
		})
		subtotal += price * float64(line.Qty)
	}

	order := models.Order{
		ID:              orderID,
		UserID:          user.ID,
		Status:          status,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        req.Shipping,
		Discount:        req.Discount,
		Total:           subtotal + req.Shipping - req.Discount,
		CouponCode:      req.CouponCode,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		Provider:        req.Provider,
		ProviderPayload: req.ProviderPayload,
	}
	if err := OrderRepo.Create(c.Request.Context(), &order); err != nil {
		utils.LogError("Failed to save order %s for user %s: %v", orderID, user.ID, err)
		utils.InternalServerError(c, "Failed to save order", err.Error())
		return
	}
	utils.LogInfo("Recorded order %s for user %s - total: %.2f", orderID, user.ID, order.Total)

	email := req.CustomerEmail
	if email == "" {
		email = user.Email
	}
	var emailItems []utils.OrderEmailItem
	for _, item := range items {
		emailItems = append(emailItems, utils.OrderEmailItem{Name: item.Name, Qty: item.Qty, Price: item.Price})
	}
	if err := utils.SendOrderConfirmation(email, orderID, order.Total, emailItems); err != nil {
		utils.LogError("Failed to send confirmation email for order %s: %v", orderID, err)
	}

	utils.Created(c, "Order recorded", gin.H{
		"order": order,
	})
}

// ListOrders returns a page of the user's orders, newest first.
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	pagination := utils.NewPagination(c)
	orders, total, err := OrderRepo.ListByUser(c.Request.Context(), user.ID, pagination.Offset, pagination.Limit)
	if err != nil {
		utils.LogError("Failed to list orders for user %s: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved", orders, total, pagination.Page, pagination.Limit)
}

// GetOrder fetches one of the user's orders by id.
func GetOrder(c *gin.Context) {
	utils.LogInfo("GetOrder called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	order, err := OrderRepo.GetByID(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		utils.LogError("Order %s not found for user %s: %v", c.Param("id"), user.ID, err)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order retrieved", gin.H{
		"order": order,
	})
}
