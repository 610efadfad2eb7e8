package api

import (
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/payfast"
	"github.com/conectone/platform/pkg/result"
)

// CheckoutRequest starts a gateway checkout for a pending booking.
type CheckoutRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// CheckoutResponse carries the hosted payment page URL and the signed,
// ordered form fields the client must POST to it.
type CheckoutResponse struct {
	PaymentID  string          `json:"payment_id"`
	ProcessURL string          `json:"process_url"`
	Fields     []payfast.Field `json:"fields"`
}

// listPayments handles GET /api/v1/payments
// @Summary List payments
// @Description Page through the tenant's payments, newest first, bookings loaded
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param status query string false "Filter by status"
// @Success 200 {object} result.PaginatedResult[models.Payment] "Page of payments"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /payments [get]
func (s *Server) listPayments(c echo.Context) error {
	page, err := s.storage.PagePayments(c.Request().Context(), s.authMiddle.Tenant(c),
		c.QueryParam("status"), parseParams(c))
	if err != nil {
		return InternalError("Failed to list payments", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getPayment handles GET /api/v1/payments/:id
// @Summary Get payment
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} result.Result[models.Payment] "Payment"
// @Failure 404 {object} APIError "Not found"
// @Router /payments/{id} [get]
func (s *Server) getPayment(c echo.Context) error {
	id := c.Param("id")
	p, err := s.storage.GetPayment(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Payment", id)
	}
	return c.JSON(http.StatusOK, result.Ok(p))
}

// checkout handles POST /api/v1/payments/checkout
// @Summary Start checkout
// @Description Create a payment record for a pending booking and return the signed PayFast form fields
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkout body CheckoutRequest true "Checkout request"
// @Success 201 {object} CheckoutResponse "Checkout payload"
// @Failure 400 {object} APIError "Booking is not pending"
// @Failure 404 {object} APIError "Booking not found"
// @Router /payments/checkout [post]
func (s *Server) checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}
	if req.BookingID == "" {
		return BadRequestError("Missing booking", "booking_id is required")
	}

	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	booking, err := s.storage.GetBooking(ctx, tenant, req.BookingID)
	if err != nil {
		return storageError(err, "Booking", req.BookingID)
	}
	if booking.Status != models.BookingStatusPending {
		return BadRequestError("Cannot checkout", "booking is not pending payment")
	}

	now := time.Now()
	payment := &models.Payment{
		ID:                models.GenerateID("payment"),
		TenantID:          tenant,
		BookingID:         booking.ID,
		Gateway:           "payfast",
		MerchantPaymentID: models.GenerateID("mp"),
		Amount:            booking.TotalAmount,
		Currency:          booking.Currency,
		Status:            models.PaymentStatusCreated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.storage.CreatePayment(ctx, payment); err != nil {
		return storageError(err, "Payment", payment.ID)
	}

	itemName := "Booking " + booking.ID
	if booking.Property != nil {
		itemName = booking.Property.Name
	}
	fields := s.payfast.Checkout(payfast.CheckoutRequest{
		MerchantPaymentID: payment.MerchantPaymentID,
		Amount:            payment.Amount,
		ItemName:          itemName,
		ItemDesc:          booking.CheckIn.Format("2006-01-02") + " to " + booking.CheckOut.Format("2006-01-02"),
		EmailAddr:         booking.GuestEmail,
		CustomStr1:        booking.ID,
	})

	return c.JSON(http.StatusCreated, CheckoutResponse{
		PaymentID:  payment.ID,
		ProcessURL: s.payfast.ProcessURL(),
		Fields:     fields,
	})
}

// paymentNotify handles POST /api/v1/payments/notify
// @Summary PayFast ITN webhook
// @Description Receive an instant transaction notification from the gateway. Authenticated by the ITN signature, not a bearer token. Always answers 200 once the payload parses so the gateway stops retrying.
// @Tags Payments
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Success 200 {object} MessageResponse "Acknowledged"
// @Failure 400 {object} APIError "Malformed notification"
// @Router /payments/notify [post]
func (s *Server) paymentNotify(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return BadRequestError("Cannot read notification", err.Error())
	}

	itn, err := payfast.ParseITN(string(body))
	if err != nil {
		return BadRequestError("Malformed notification", err.Error())
	}

	merchantPaymentID := itn.Get("m_payment_id")
	if merchantPaymentID == "" {
		return BadRequestError("Malformed notification", "missing m_payment_id")
	}

	ctx := c.Request().Context()
	payment, err := s.storage.GetPaymentByMerchantID(ctx, merchantPaymentID)
	if err != nil {
		return storageError(err, "Payment", merchantPaymentID)
	}

	host, _, splitErr := net.SplitHostPort(c.Request().RemoteAddr)
	if splitErr != nil {
		host = c.Request().RemoteAddr
	}
	var sourceHost string
	if names, lookupErr := net.LookupAddr(host); lookupErr == nil && len(names) > 0 {
		sourceHost = names[0]
	}

	if err := s.payfast.VerifyITN(itn, payfast.VerifyOptions{
		SourceHost:     sourceHost,
		ExpectedAmount: payment.Amount,
	}); err != nil {
		s.debugLog("ITN verification failed for %s: %v", merchantPaymentID, err)
		payment.Status = models.PaymentStatusFailed
		payment.RawITN = string(body)
		if uerr := s.storage.UpdatePayment(ctx, payment); uerr != nil {
			return InternalError("Failed to record payment", uerr.Error())
		}
		return BadRequestError("Verification failed", err.Error())
	}

	payment.GatewayPaymentID = itn.Get("pf_payment_id")
	payment.Status = itn.Get("payment_status")
	payment.RawITN = string(body)
	if err := s.storage.UpdatePayment(ctx, payment); err != nil {
		return InternalError("Failed to record payment", err.Error())
	}

	if payment.Status == models.PaymentStatusComplete {
		booking, err := s.storage.ConfirmBooking(ctx, payment.TenantID, payment.BookingID, payment.ID)
		if err != nil {
			// Already-confirmed bookings are fine: ITNs can be redelivered
			s.debugLog("booking confirmation after ITN: %v", err)
		} else {
			s.broadcast(payment.TenantID, "booking", EventConfirmed, booking)
		}
		s.broadcast(payment.TenantID, "payment", EventPaid, payment)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "notification processed", ID: payment.ID})
}
