package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo         AccountRepositoryWithTx
	JournalRepo         JournalRepositoryWithTx
	SequenceRepo        SequenceRepository
	InvoiceRepo         InvoiceRepositoryWithTx
	PaymentRepo         PaymentRepositoryWithTx
	PurchaseInvoiceRepo PurchaseInvoiceRepositoryWithTx
	StockRepo           StockRepositoryWithTx
	TransactionRepo     TransactionRepository
	AuditRepo           AuditRepository
	BusinessRepo        BusinessRepositoryWithTx
	UserRepo            UserRepositoryFacade
}
