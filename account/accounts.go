package account

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"shiftpay/bizerror"
	"shiftpay/idgen"
	"shiftpay/persistence"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

// DefaultHourlyRate applies when registration omits a rate.
const DefaultHourlyRate = 10.50

var (
	userIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	RegisterUserFunc     = RegisterUser
	DetailHourlyRateFunc = DetailHourlyRate
	UpdateHourlyRateFunc = UpdateHourlyRate
)

func HashSha256(raw string) string {
	h := sha256.New()
	h.Write([]byte(raw))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

func RegisterUser(c *UserCreation, ctx context.Context) (*UserInfo, error) {
	role := c.Role
	if role == "" {
		role = session.RoleEmployee
	}
	rate := c.HourlyRate
	if rate == 0 {
		rate = DefaultHourlyRate
	}
	nickname := c.Nickname
	if nickname == "" {
		nickname = c.Name
	}

	user := User{ID: idgen.NextID(userIdWorker), Name: c.Name, Nickname: nickname,
		Secret: HashSha256(c.Secret), Role: role, HourlyRate: rate, CreateTime: types.CurrentTimestamp()}
	if err := persistence.ActiveDataSourceManager.GormDB(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &UserInfo{ID: user.ID, Name: user.Name, Nickname: user.Nickname, Role: user.Role, HourlyRate: user.HourlyRate}, nil
}

func DetailHourlyRate(userId types.ID, sec *session.Context, ctx context.Context) (*HourlyRateDetail, error) {
	if userId != sec.Identity.ID && !sec.IsEmployer() {
		return nil, bizerror.ErrForbidden
	}

	user := User{}
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Where(&User{ID: userId}).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, bizerror.ErrNotFound
		}
		return nil, err
	}
	return &HourlyRateDetail{HourlyRate: user.HourlyRate}, nil
}

// UpdateHourlyRate is allowed for the user itself and for employers.
// Rate changes only affect earnings of shifts approved afterwards.
func UpdateHourlyRate(userId types.ID, u *HourlyRateUpdating, sec *session.Context, ctx context.Context) error {
	if userId != sec.Identity.ID && !sec.IsEmployer() {
		return bizerror.ErrForbidden
	}

	return persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		user := User{ID: userId}
		if err := tx.Where(&user).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return bizerror.ErrNotFound
			}
			return err
		}
		return tx.Model(&user).Update("hourly_rate", u.HourlyRate).Error
	})
}
