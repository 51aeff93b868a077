package domain

import "time"

type LoanType string

const (
	LoanQuick       LoanType = "QuickLoan"
	LoanAuto        LoanType = "AutoLoan"
	LoanInstallment LoanType = "Installment"
)

func (t LoanType) Valid() bool {
	switch t {
	case LoanQuick, LoanAuto, LoanInstallment:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyGEL Currency = "GEL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyGEL, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

type LoanStatus string

const (
	StatusInProcess LoanStatus = "InProcess"
	StatusApproved  LoanStatus = "Approved"
	StatusRejected  LoanStatus = "Rejected"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case StatusInProcess, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Loan 始终归属唯一用户；UpdatedAt 初始为空，仓储层在每次变更时打点
type Loan struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	LoanType  LoanType   `gorm:"size:20;not null" json:"loanType"`
	Amount    float64    `gorm:"not null" json:"amount"`
	Currency  Currency   `gorm:"size:3;not null" json:"currency"`
	Period    int        `gorm:"not null" json:"period"`
	Status    LoanStatus `gorm:"size:20;not null;default:InProcess" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	UserID    uint       `gorm:"index;not null" json:"userId"`
}

func (Loan) TableName() string { return "loans" }

type LoanRepository interface {
	Create(l *Loan) error
	FindByID(id uint) (*Loan, error)
	FindByUser(userID uint) ([]Loan, error)
	FindAll() ([]Loan, error)
	Update(l *Loan) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}
