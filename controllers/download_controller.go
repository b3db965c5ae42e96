package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

// VendorListPDFPath is where the gated asset lives on disk, outside any
// publicly served directory. Set from config at startup.
var VendorListPDFPath = "private/" + utils.GatedPDFFilename

// DenialReason identifies why a download was refused.
type DenialReason string

// Denial reasons, in priority order.
const (
	DenialNotAuthenticated DenialReason = "NOT_AUTHENTICATED"
	DenialNotPurchased     DenialReason = "NOT_PURCHASED"
	DenialExpired          DenialReason = "EXPIRED"
)

// AuthorizeDownload decides whether the user may stream the gated PDF.
// Exactly one reason is returned on deny; allow implies no reason. No
// mutation happens here.
func AuthorizeDownload(ctx context.Context, userID string) (bool, DenialReason) {
	if userID == "" {
		return false, DenialNotAuthenticated
	}

	ent := CachedEntitlement(ctx, userID)
	if !ent.HasPurchased {
		return false, DenialNotPurchased
	}
	if ent.IsExpired {
		return false, DenialExpired
	}
	return true, ""
}

// DownloadVendorList streams the vendor-list PDF to an entitled user.
// A missing file is reported as 404, kept strictly apart from the 403
// entitlement denials so operators can tell "customer shouldn't have
// this" from a deployment bug.
func DownloadVendorList(c *gin.Context) {
	utils.LogInfo("DownloadVendorList called")

	if c.Param("product") != utils.GatedProductSlug {
		utils.NotFound(c, utils.ErrUnknownProduct)
		return
	}

	var userID string
	if userVal, exists := c.Get("user"); exists {
		if user, ok := userVal.(models.User); ok {
			userID = user.ID
		}
	}

	allow, reason := AuthorizeDownload(c.Request.Context(), userID)
	if !allow {
		utils.LogInfo("Download denied for user %q - reason: %s", userID, reason)
		switch reason {
		case DenialNotAuthenticated:
			utils.Unauthorized(c, utils.ErrUnauthorized)
		case DenialNotPurchased:
			utils.Forbidden(c, utils.ErrNotPurchased)
		case DenialExpired:
			utils.Forbidden(c, utils.ErrAccessExpired)
		}
		return
	}

	info, err := os.Stat(VendorListPDFPath)
	if err != nil {
		utils.LogError("Gated PDF missing at %s: %v", VendorListPDFPath, err)
		utils.NotFound(c, utils.ErrFileMissing)
		return
	}

	file, err := os.Open(VendorListPDFPath)
	if err != nil {
		utils.LogError("Failed to open gated PDF at %s: %v", VendorListPDFPath, err)
		utils.NotFound(c, utils.ErrFileMissing)
		return
	}
	defer file.Close()

	utils.LogInfo("Streaming vendor list PDF to user %s (%d bytes)", userID, info.Size())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", utils.GatedPDFFilename))
	c.Header("Cache-Control", "private, max-age=3600")
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", file, nil)
}
