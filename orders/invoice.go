package orders

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"brookside/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// invoicePayload returns "orderid|userid|signature" so the QR can be
// verified against the signing key later.
func (h *Handler) invoicePayload(orderID, userID string) string {
	data := fmt.Sprintf("%s|%s", orderID, userID)
	mac := hmac.New(sha256.New, h.invoiceKey)
	mac.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/orders/:id/invoice  (owner or admin)
func (h *Handler) PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, status, msg := h.loadOwned(r, ps.ByName("id"))
	if order == nil {
		utils.RespondWithError(w, status, msg)
		return
	}

	qrPNG, err := qrcode.Encode(h.invoicePayload(order.OrderID, order.UserID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Brookside Dairy - Order Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Ship to: %s", order.ShippingAddress))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 8, "Product")
	pdf.Cell(30, 8, "Qty")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.Cell(100, 8, item.ProductID)
		pdf.Cell(30, 8, fmt.Sprintf("%d", item.Quantity))
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", order.TotalAmount))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
