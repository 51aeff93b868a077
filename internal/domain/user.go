package domain

import "time"

// Role 闭合角色枚举，避免裸字符串比较
type Role string

const (
	RoleUser       Role = "User"
	RoleAccountant Role = "Accountant"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAccountant }

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"size:100;not null" json:"firstName"`
	LastName      string    `gorm:"size:100;not null" json:"lastName"`
	Username      string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Age           int       `gorm:"not null" json:"age"`
	Email         string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	MonthlyIncome float64   `gorm:"not null" json:"monthlyIncome"`
	IsBlocked     bool      `gorm:"not null;default:false" json:"isBlocked"`
	PasswordHash  string    `gorm:"size:100;not null" json:"-"`
	Role          Role      `gorm:"size:20;not null;default:User" json:"role"`
	CreatedAt     time.Time `json:"createdAt"`

	// 一对多：用户删除时级联删贷款
	Loans []Loan `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
}
