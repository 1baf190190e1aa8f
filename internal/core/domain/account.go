package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset   AccountType = "ASSET"
	Income  AccountType = "INCOME"
	Expense AccountType = "EXPENSE"
)

// Account codes of the fixed chart of accounts. The set is closed: accounts
// are seeded once at bootstrap and never created at runtime.
const (
	CodeCashOperating      = "1100"
	CodeCashReserve        = "1110"
	CodeARJacketBuyers     = "1200"
	CodeIncomeSchoolBudget = "4100"
	CodeIncomeReserveIn    = "4110"
	CodeIncomeStudentDues  = "4120"
	CodeExpenseGeneral     = "5100"
	CodeExpenseJacket      = "5110"
)

// Account represents one postable account of the chart of accounts.
// Rows are globally shared, read-mostly and immutable after seeding.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
}

// SeedAccount is one row of the fixed seed table.
type SeedAccount struct {
	Code string
	Name string
	Type AccountType
}

// AccountSeed is the fixed 8-row chart of accounts. Seeding is idempotent;
// codes are unique and never reused for a different type.
var AccountSeed = []SeedAccount{
	{CodeCashOperating, "Cash:Operating", Asset},
	{CodeCashReserve, "Cash:Reserve", Asset},
	{CodeARJacketBuyers, "AR:JacketBuyers", Asset},
	{CodeIncomeSchoolBudget, "Income:SchoolBudget", Income},
	{CodeIncomeReserveIn, "Income:ReserveIn", Income},
	{CodeIncomeStudentDues, "Income:StudentDues", Income},
	{CodeExpenseGeneral, "Expense:General", Expense},
	{CodeExpenseJacket, "Expense:JacketMaking", Expense},
}
