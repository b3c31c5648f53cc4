package handlers

import (
	"fmt"
	"net/http"

	"quicktransit/internal/domain"
	"quicktransit/internal/http/middleware"
	"quicktransit/internal/repositories"
	"quicktransit/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/generate-receipt/:bookingId returns the plain-text receipt for any booking.
func GenerateReceipt(c *gin.Context) {
	bookingID, ok := ParamID(c, "bookingId")
	if !ok {
		return
	}

	svc := services.ReceiptService{
		SiteName:  siteName,
		LogoPath:  logoPath,
		RequestID: middleware.GetRequestID(c),
	}
	text, err := svc.GenerateText(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

// GET /api/receipt/:bookingId downloads the PDF, own bookings only. A booking
// someone else owns reads as not found.
func DownloadReceipt(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	bookingID, ok := ParamID(c, "bookingId")
	if !ok {
		return
	}

	if _, err := (repositories.BookingRepo{}).GetOwned(bookingID, customerID); err != nil {
		if domain.IsNotFound(err) {
			RespondDomainError(c, err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load booking", err)
		return
	}

	svc := services.ReceiptService{
		SiteName:  siteName,
		LogoPath:  logoPath,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GeneratePDF(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
