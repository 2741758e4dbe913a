package bill

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

type Bill struct {
	ID     types.ID `json:"id" gorm:"primary_key"`
	Name   string   `json:"name"`
	Amount float64  `json:"amount" sql:"type:DECIMAL(10,2)"`
	UserID types.ID `json:"userId"`
}

func (b *Bill) TableName() string {
	return "bills"
}

type BillCreation struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BillList struct {
	Bills []Bill  `json:"bills"`
	Total float64 `json:"total"`
}

var (
	billIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	QueryBillsFunc = QueryBills
	AddBillFunc    = AddBill
	DeleteBillFunc = DeleteBill
)

func checkOwner(userId types.ID, sec *session.Context) error {
	if userId != sec.Identity.ID {
		return bizerror.ErrForbidden
	}
	return nil
}

// QueryBills returns the user's bills plus their exact sum, recomputed
// on every call.
func QueryBills(userId types.ID, sec *session.Context, ctx context.Context) (*BillList, error) {
	if err := checkOwner(userId, sec); err != nil {
		return nil, err
	}

	var bills []Bill
	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	if err := db.Where(&Bill{UserID: userId}).Find(&bills).Error; err != nil {
		return nil, err
	}

	total := 0.0
	for _, b := range bills {
		total += b.Amount
	}
	return &BillList{Bills: bills, Total: total}, nil
}

func AddBill(userId types.ID, c *BillCreation, sec *session.Context, ctx context.Context) (*Bill, error) {
	if err := checkOwner(userId, sec); err != nil {
		return nil, err
	}

	record := Bill{ID: idgen.NextID(billIdWorker), Name: c.Name, Amount: c.Amount, UserID: userId}
	if err := persistence.ActiveDataSourceManager.GormDB(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func DeleteBill(userId, billId types.ID, sec *session.Context, ctx context.Context) error {
	if err := checkOwner(userId, sec); err != nil {
		return err
	}

	db := persistence.ActiveDataSourceManager.GormDB(ctx)
	query := db.Delete(Bill{}, "id = ? AND user_id = ?", billId, userId)
	if err := query.Error; err != nil {
		return err
	}
	if query.RowsAffected != 1 {
		return bizerror.ErrNotFound
	}
	return nil
}

// TotalBills sums a user's bill amounts on the given db handle; callers
// inside a transaction pass their tx.
func TotalBills(userId types.ID, db *gorm.DB) (float64, error) {
	row := struct{ Total float64 }{}
	if err := db.Model(&Bill{}).Select("IFNULL(SUM(amount),0) as total").
		Where("user_id = ?", userId).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}
