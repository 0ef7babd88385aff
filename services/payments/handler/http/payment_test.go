package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/payments"
	"github.com/swarajreddy10/bg-removal-server/services/payments/mocks"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestInitiateRazorpay_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/razorpay",
		`{"clerk_id":"user_2abc","plan_id":"Basic"}`)

	mockUC.EXPECT().
		InitiateRazorpayPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.PaymentRequest) (*models.RazorpayOrder, error) {
			assert.Equal(t, "user_2abc", req.ClerkID)
			assert.Equal(t, "Basic", req.PlanID)
			return &models.RazorpayOrder{
				ID:       "order_123",
				Amount:   1000,
				Currency: "USD",
				Receipt:  "txn-1",
				Status:   "created",
			}, nil
		})

	// Act
	err := handler.InitiateRazorpay(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	order := data["order"].(map[string]interface{})
	assert.Equal(t, "order_123", order["id"])
	assert.Equal(t, float64(1000), order["amount"])
}

func TestInitiateRazorpay_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/razorpay",
		`{"clerk_id":"","plan_id":"Basic"}`)

	mockUC.EXPECT().
		InitiateRazorpayPayment(gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrInvalidCredentials)

	// Act
	err := handler.InitiateRazorpay(c)

	// Assert: a business decline keeps HTTP 200 with success=false
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid Credentials", response["message"])
}

func TestInitiateRazorpay_PlanNotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/razorpay",
		`{"clerk_id":"user_2abc","plan_id":"Platinum"}`)

	mockUC.EXPECT().
		InitiateRazorpayPayment(gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrPlanNotFound)

	// Act
	err := handler.InitiateRazorpay(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Plan not found", response["message"])
}

func TestInitiateRazorpay_GatewayError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/razorpay",
		`{"clerk_id":"user_2abc","plan_id":"Basic"}`)

	mockUC.EXPECT().
		InitiateRazorpayPayment(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("failed to create razorpay order: 503"))

	// Act
	err := handler.InitiateRazorpay(c)

	// Assert: infrastructure failures are HTTP 500
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
}

func TestVerifyRazorpay_Credited(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/razorpay/verify",
		`{"razorpay_order_id":"order_123"}`)

	mockUC.EXPECT().
		VerifyRazorpayPayment(gomock.Any(), "order_123").
		Return(&models.ReconcileResult{Credited: true, Message: models.MsgCreditsAdded}, nil)

	// Act
	err := handler.VerifyRazorpay(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Credits Added", response["message"])
}

func TestVerifyRazorpay_AlreadyVerified(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/razorpay/verify",
		`{"razorpay_order_id":"order_123"}`)

	mockUC.EXPECT().
		VerifyRazorpayPayment(gomock.Any(), "order_123").
		Return(&models.ReconcileResult{Credited: false, Message: models.MsgAlreadyVerified}, nil)

	// Act
	err := handler.VerifyRazorpay(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Payment Already Verified", response["message"])
}

func TestVerifyRazorpay_MissingOrderID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/razorpay/verify", `{}`)

	// Act
	err := handler.VerifyRazorpay(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitiateStripe_ForwardsOrigin(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/stripe",
		`{"clerk_id":"user_2abc","plan_id":"Advanced"}`)
	c.Request().Header.Set("Origin", "https://app.example.com")

	mockUC.EXPECT().
		InitiateStripePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.PaymentRequest) (*models.CheckoutSession, error) {
			assert.Equal(t, "https://app.example.com", req.Origin)
			return &models.CheckoutSession{ID: "cs_123", URL: "https://checkout.stripe.com/cs_123"}, nil
		})

	// Act
	err := handler.InitiateStripe(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "https://checkout.stripe.com/cs_123", data["session_url"])
}

func TestVerifyStripe_ClaimedSuccessString(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/stripe/verify",
		`{"transactionId":"txn-1","success":"true"}`)

	mockUC.EXPECT().
		VerifyStripePayment(gomock.Any(), "txn-1", true).
		Return(&models.ReconcileResult{Credited: true, Message: models.MsgCreditsAdded}, nil)

	// Act
	err := handler.VerifyStripe(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
}

func TestVerifyStripe_ClaimedFailureString(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/stripe/verify",
		`{"transactionId":"txn-1","success":"false"}`)

	// Anything other than the literal "true" is treated as a failed claim
	mockUC.EXPECT().
		VerifyStripePayment(gomock.Any(), "txn-1", false).
		Return(&models.ReconcileResult{Credited: false, Message: models.MsgPaymentFailed}, nil)

	// Act
	err := handler.VerifyStripe(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Payment Failed", response["message"])
}

func TestVerifyStripe_UnknownTransaction(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/api/payments/stripe/verify",
		`{"transactionId":"txn-missing","success":"true"}`)

	mockUC.EXPECT().
		VerifyStripePayment(gomock.Any(), "txn-missing", true).
		Return(nil, payments.ErrTransactionNotFound)

	// Act
	err := handler.VerifyStripe(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Transaction not found", response["message"])
}

func TestListPlans_ReturnsStaticTable(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/api/payments/plans", "")

	// Act
	err := handler.ListPlans(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	plans := data["plans"].([]interface{})
	assert.Len(t, plans, 3)

	first := plans[0].(map[string]interface{})
	assert.Equal(t, "Basic", first["id"])
	assert.Equal(t, float64(100), first["credits"])
	assert.Equal(t, float64(10), first["amount"])
}

func TestListTransactions_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/api/payments/transactions?clerk_id=user_2abc", "")

	mockUC.EXPECT().
		ListTransactions(gomock.Any(), "user_2abc").
		Return([]*models.Transaction{
			{ID: "txn-2", ExternalUserID: "user_2abc", PlanID: "Basic", Paid: true},
		}, nil)

	// Act
	err := handler.ListTransactions(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	txns := data["transactions"].([]interface{})
	assert.Len(t, txns, 1)
}

func TestListTransactions_MissingID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/api/payments/transactions", "")

	// Act
	err := handler.ListTransactions(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
