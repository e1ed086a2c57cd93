package domain

// Well-known account codes the document bridges post against. Seeded for every
// business; looked up by code at posting time, never by ID.
const (
	CodeCash               = "101"
	CodeBank               = "102"
	CodeMobileMoney        = "103"
	CodeInventory          = "104"
	CodeAccountsReceivable = "105"
	CodeAccountsPayable    = "201"
	CodeVATCollected       = "202"
	CodeSalesRevenue       = "401"
	CodeCostOfGoodsSold    = "501"
)

// SeedAccount describes one entry of the default chart of accounts.
type SeedAccount struct {
	Code        string
	Name        string
	Type        AccountType
	Description string
}

// DefaultChartOfAccounts is seeded into every new business. Codes 1xx are
// assets, 2xx liabilities, 3xx equity, 4xx income, 5xx expenses.
var DefaultChartOfAccounts = []SeedAccount{
	{Code: CodeCash, Name: "Cash", Type: Asset, Description: "Cash on hand"},
	{Code: CodeBank, Name: "Bank", Type: Asset, Description: "Bank account balance"},
	{Code: CodeMobileMoney, Name: "Mobile Money (MTN)", Type: Asset, Description: "Mobile money wallet balance"},
	{Code: CodeInventory, Name: "Inventory", Type: Asset, Description: "Goods held for sale"},
	{Code: CodeAccountsReceivable, Name: "Accounts Receivable", Type: Asset, Description: "Amounts owed by customers"},
	{Code: CodeAccountsPayable, Name: "Accounts Payable", Type: Liability, Description: "Amounts owed to vendors"},
	{Code: CodeVATCollected, Name: "VAT Collected", Type: Liability, Description: "Value-added tax collected on sales"},
	{Code: "301", Name: "Owner's Equity", Type: Equity, Description: "Owner contributions"},
	{Code: "302", Name: "Retained Earnings", Type: Equity, Description: "Accumulated profits"},
	{Code: CodeSalesRevenue, Name: "Sales Revenue", Type: Income, Description: "Revenue from sales"},
	{Code: "402", Name: "Other Income", Type: Income, Description: "Miscellaneous income"},
	{Code: CodeCostOfGoodsSold, Name: "Cost of Goods Sold", Type: Expense, Description: "Direct cost of goods sold"},
	{Code: "502", Name: "Rent Expense", Type: Expense, Description: "Premises rent"},
	{Code: "503", Name: "Utilities Expense", Type: Expense, Description: "Electricity, water, internet"},
	{Code: "504", Name: "Salaries Expense", Type: Expense, Description: "Employee salaries and wages"},
	{Code: "505", Name: "Transport Expense", Type: Expense, Description: "Transport and delivery costs"},
	{Code: "506", Name: "Other Expenses", Type: Expense, Description: "Miscellaneous expenses"},
}

// SettlementCodeForMethod maps a payment method to the asset account code that
// the cash side of the posting hits.
func SettlementCodeForMethod(m PaymentMethod) string {
	switch m {
	case MethodBank, MethodCheck:
		return CodeBank
	case MethodMobileMoney:
		return CodeMobileMoney
	default:
		return CodeCash
	}
}
