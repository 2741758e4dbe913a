package account

import (
	"github.com/fundwit/go-commons/types"
)

type User struct {
	ID       types.ID `json:"id" gorm:"primary_key"`
	Name     string   `json:"name"`
	Nickname string   `json:"nickname"`
	Secret   string   `json:"-"`

	Role       string          `json:"role"`
	HourlyRate float64         `json:"hourlyRate" sql:"type:DECIMAL(10,2)"`
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (u *User) TableName() string {
	return "users"
}

type UserInfo struct {
	ID         types.ID `json:"id"`
	Name       string   `json:"name"`
	Nickname   string   `json:"nickname"`
	Role       string   `json:"role"`
	HourlyRate float64  `json:"hourlyRate"`
}

type UserCreation struct {
	Name       string  `json:"name" binding:"required"`
	Secret     string  `json:"secret" binding:"required,gte=6"`
	Nickname   string  `json:"nickname"`
	Role       string  `json:"role" binding:"omitempty,oneof=employer employee"`
	HourlyRate float64 `json:"hourlyRate" binding:"omitempty,gte=0"`
}

type HourlyRateUpdating struct {
	HourlyRate float64 `json:"hourlyRate" binding:"required,gt=0"`
}

type HourlyRateDetail struct {
	HourlyRate float64 `json:"hourlyRate"`
}
