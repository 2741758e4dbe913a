package notification

import (
	"context"
	"shiftpay/bizerror"
	"shiftpay/idgen"
	"shiftpay/persistence"
	"shiftpay/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

const (
	TypeShiftApproved = "shift_approved"
	TypeShiftRejected = "shift_rejected"
)

type Notification struct {
	ID      types.ID `json:"id" gorm:"primary_key"`
	UserID  types.ID `json:"userId"`
	ShiftID types.ID `json:"shiftId"`

	Type    string `json:"type"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (n *Notification) TableName() string {
	return "notifications"
}

var (
	notificationIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	// CreateNotificationFunc is the seam the shift workflow calls, inside
	// its own transaction, exactly once per successful transition.
	CreateNotificationFunc = CreateNotification

	QueryNotificationsFunc   = QueryNotifications
	MarkNotificationReadFunc = MarkNotificationRead
)

func CreateNotification(userId, shiftId types.ID, notificationType, message string, tx *gorm.DB) error {
	record := Notification{
		ID:         idgen.NextID(notificationIdWorker),
		UserID:     userId,
		ShiftID:    shiftId,
		Type:       notificationType,
		Message:    message,
		CreateTime: types.CurrentTimestamp(),
	}
	return tx.Create(&record).Error
}

// QueryNotifications returns the session user's notifications, newest
// first, capped at 20.
func QueryNotifications(sec *session.Context, ctx context.Context) ([]Notification, error) {
	var records []Notification
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Where(&Notification{UserID: sec.Identity.ID}).
		Order("create_time DESC").Limit(20).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// MarkNotificationRead is idempotent, re-marking a read notification is
// not an error.
func MarkNotificationRead(id types.ID, sec *session.Context, ctx context.Context) error {
	return persistence.ActiveDataSourceManager.GormDB(ctx).Transaction(func(tx *gorm.DB) error {
		record := Notification{}
		if err := tx.Where(&Notification{ID: id, UserID: sec.Identity.ID}).First(&record).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return bizerror.ErrNotFound
			}
			return err
		}
		return tx.Model(&record).Update("is_read", true).Error
	})
}
