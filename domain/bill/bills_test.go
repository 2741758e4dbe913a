package bill_test

import (
	"context"
	"shiftpay/bizerror"
	"shiftpay/domain/bill"
	"shiftpay/persistence"
	"shiftpay/session"
	"shiftpay/testinfra"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func setup(t *testing.T, testDatabase **testinfra.TestDatabase) {
	db := testinfra.StartMysqlTestDatabase("shiftpay")
	*testDatabase = db
	Expect(db.DS.GormDB(context.Background()).AutoMigrate(&bill.Bill{}).Error).To(BeNil())

	persistence.ActiveDataSourceManager = db.DS
}

func teardown(t *testing.T, testDatabase *testinfra.TestDatabase) {
	if testDatabase != nil {
		testinfra.StopMysqlTestDatabase(testDatabase)
	}
}

func TestBills(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("bills are strictly private, even to employers", func(t *testing.T) {
		employerCtx := testinfra.BuildSecCtx(10, "ann", session.RoleEmployer)

		list, err := bill.QueryBills(20, employerCtx, context.Background())
		Expect(list).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrForbidden))

		record, err := bill.AddBill(20, &bill.BillCreation{Name: "rent", Amount: 200}, employerCtx, context.Background())
		Expect(record).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrForbidden))

		Expect(bill.DeleteBill(20, 1, employerCtx, context.Background())).To(Equal(bizerror.ErrForbidden))
	})

	t.Run("should keep the total exact", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		sec := testinfra.BuildSecCtx(20, "bob", session.RoleEmployee)
		_, err := bill.AddBill(20, &bill.BillCreation{Name: "rent", Amount: 200.00}, sec, context.Background())
		Expect(err).To(BeNil())
		second, err := bill.AddBill(20, &bill.BillCreation{Name: "utilities", Amount: 150.50}, sec, context.Background())
		Expect(err).To(BeNil())

		list, err := bill.QueryBills(20, sec, context.Background())
		Expect(err).To(BeNil())
		Expect(len(list.Bills)).To(Equal(2))
		Expect(list.Total).To(Equal(350.50))

		Expect(bill.DeleteBill(20, second.ID, sec, context.Background())).To(BeNil())

		list, err = bill.QueryBills(20, sec, context.Background())
		Expect(err).To(BeNil())
		Expect(len(list.Bills)).To(Equal(1))
		Expect(list.Total).To(Equal(200.00))
	})

	t.Run("deleting a missing bill is not found", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		sec := testinfra.BuildSecCtx(20, "bob", session.RoleEmployee)
		Expect(bill.DeleteBill(20, 404, sec, context.Background())).To(Equal(bizerror.ErrNotFound))
	})

	t.Run("TotalBills sums on the caller's handle", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)

		sec := testinfra.BuildSecCtx(20, "bob", session.RoleEmployee)
		_, err := bill.AddBill(20, &bill.BillCreation{Name: "rent", Amount: 321.75}, sec, context.Background())
		Expect(err).To(BeNil())

		total, err := bill.TotalBills(20, persistence.ActiveDataSourceManager.GormDB(context.Background()))
		Expect(err).To(BeNil())
		Expect(total).To(Equal(321.75))

		total, err = bill.TotalBills(types.ID(999), persistence.ActiveDataSourceManager.GormDB(context.Background()))
		Expect(err).To(BeNil())
		Expect(total).To(Equal(0.0))
	})
}
