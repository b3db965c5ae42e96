package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice generates and returns a PDF receipt for the order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("Unauthorized invoice download attempt - no user found in context")
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.BadRequest(c, "Invalid user in context", nil)
		return
	}

	orderID := c.Param("id")
	utils.LogInfo("Processing invoice download for order ID: %s", orderID)

	order, err := OrderRepo.GetByID(c.Request.Context(), orderID, user.ID)
	if err != nil {
		utils.LogError("Order not found for invoice download - Order ID: %s, User ID: %s", orderID, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Hagi Aesthetics")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "support@hagiaesthetics.com")
	pdf.Ln(12)

	// Invoice title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(90, 8, "Order ID: "+order.ID)
	pdf.Cell(90, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(90, 8, "Status: "+order.Status)
	if order.Provider != "" {
		pdf.Cell(90, 8, "Paid via: "+order.Provider)
	}
	pdf.Ln(12)

	// Customer info
	if order.CustomerName != "" || order.CustomerEmail != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Billed To:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		if order.CustomerName != "" {
			pdf.Cell(100, 8, order.CustomerName)
			pdf.Ln(6)
		}
		if order.CustomerEmail != "" {
			pdf.Cell(100, 8, order.CustomerEmail)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	// Items table
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(35, 8, "Price")
	pdf.Cell(35, 8, "Total")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.Cell(90, 8, item.Name)
		pdf.Cell(25, 8, fmt.Sprintf("%d", item.Qty))
		pdf.Cell(35, 8, fmt.Sprintf("$%.2f", item.Price))
		pdf.Cell(35, 8, fmt.Sprintf("$%.2f", item.Price*float64(item.Qty)))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	// Totals
	pdf.Cell(115, 8, "")
	pdf.Cell(35, 8, "Subtotal:")
	pdf.Cell(35, 8, fmt.Sprintf("$%.2f", order.Subtotal))
	pdf.Ln(7)
	if order.Shipping > 0 {
		pdf.Cell(115, 8, "")
		pdf.Cell(35, 8, "Shipping:")
		pdf.Cell(35, 8, fmt.Sprintf("$%.2f", order.Shipping))
		pdf.Ln(7)
	}
	if order.Discount > 0 {
		pdf.Cell(115, 8, "")
		pdf.Cell(35, 8, "Discount:")
		pdf.Cell(35, 8, fmt.Sprintf("-$%.2f", order.Discount))
		pdf.Ln(7)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(115, 8, "")
	pdf.Cell(35, 8, "Total:")
	pdf.Cell(35, 8, fmt.Sprintf("$%.2f", order.Total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate invoice PDF for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", err.Error())
		return
	}

	utils.LogInfo("Generated invoice PDF for order %s", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoice-"+order.ID+".pdf"))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
