package services

import (
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, posthogClient *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Business service comes first since every other service authorizes
	// through it.
	container.Business = NewBusinessService(repos.BusinessRepo, repos.AccountRepo)

	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.JournalRepo,
		repos.AuditRepo,
		container.Business,
	)

	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.AccountRepo,
		repos.SequenceRepo,
		repos.AuditRepo,
		container.Business,
	)

	// Document bridges post through the journal service so documents and
	// their ledger entries commit together.
	container.Invoice = NewInvoiceService(
		repos.InvoiceRepo,
		repos.PaymentRepo,
		repos.AccountRepo,
		repos.SequenceRepo,
		repos.AuditRepo,
		container.Journal,
		container.Business,
	)
	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		repos.InvoiceRepo,
		repos.AccountRepo,
		repos.SequenceRepo,
		repos.TransactionRepo,
		repos.AuditRepo,
		container.Journal,
		container.Business,
		posthogClient,
	)
	container.Inventory = NewInventoryService(
		repos.StockRepo,
		repos.AccountRepo,
		container.Journal,
		container.Business,
	)
	container.PurchaseInvoice = NewPurchaseInvoiceService(
		repos.PurchaseInvoiceRepo,
		repos.AccountRepo,
		repos.SequenceRepo,
		repos.AuditRepo,
		container.Journal,
		container.Business,
	)

	container.User = NewUserService(repos.UserRepo)
	container.Audit = NewAuditService(repos.AuditRepo, container.Business)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade         = (*accountService)(nil)
	_ portssvc.JournalSvcFacade         = (*journalService)(nil)
	_ portssvc.InvoiceSvcFacade         = (*invoiceService)(nil)
	_ portssvc.PaymentSvcFacade         = (*paymentService)(nil)
	_ portssvc.InventorySvcFacade       = (*inventoryService)(nil)
	_ portssvc.PurchaseInvoiceSvcFacade = (*purchaseInvoiceService)(nil)
	_ portssvc.BusinessSvcFacade        = (*businessService)(nil)
	_ portssvc.UserSvcFacade            = (*userService)(nil)
	_ portssvc.AuditSvcFacade           = (*auditService)(nil)
)
