package routes

import (
	"billing_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFullBill = "/fullBill"
	PathBills    = "/bills"
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, billHandler *handlers.BillHandler, paymentHandler *handlers.BillPaymentHandler) {
	bills := rg.Group(PathBills)
	{
		bills.POST("", billHandler.ComposeBill)
		bills.GET("", billHandler.ListBills)
		bills.GET("/:id", billHandler.GetBill)
		bills.GET("/:id/full", billHandler.GetFullBill)

		bills.POST("/:id"+PathPayments, paymentHandler.PayBill)
		bills.GET("/:id"+PathPayments, paymentHandler.GetLatestPayment)
	}
}
