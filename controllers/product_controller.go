package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// ListProducts returns all active catalog rows.
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	products, err := ProductRepo.ListActive(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to list products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Products retrieved", gin.H{
		"products": products,
	})
}

// GetProduct returns a single catalog row by slug.
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")

	product, err := ProductRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.LogDebug("Product not found: %s", c.Param("id"))
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved", gin.H{
		"product": product,
	})
}
