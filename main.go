package main

import (
	"context"
	"net/http"
	"shiftpay/account"
	"shiftpay/bizerror"
	"shiftpay/common"
	"shiftpay/domain"
	"shiftpay/domain/bill"
	"shiftpay/domain/payroll"
	"shiftpay/domain/roster"
	"shiftpay/domain/shift"
	"shiftpay/infra/tracing"
	"shiftpay/notification"
	"shiftpay/persistence"
	"shiftpay/servehttp"
	"shiftpay/session"
	"shiftpay/sessions"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Infoln("service start")

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		logrus.Fatalf("parse database config failed %v\n", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			logrus.Fatalf("failed to prepare database %v\n", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		logrus.Fatalf("database connection failed %v\n", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB(context.Background()).AutoMigrate(
		&account.User{},
		&domain.Shift{},
		&notification.Notification{},
		&bill.Bill{},
		&payroll.DailyEarning{},
		&payroll.WeeklyEarning{},
		&payroll.MonthlySalary{},
	).Error
	if err != nil {
		logrus.Fatalf("database migration failed %v\n", err)
	}

	tracingCloser, err := tracing.InitTracer(common.ServiceName)
	if err != nil {
		logrus.Fatalf("failed to init tracer %v\n", err)
	}
	defer func() {
		_ = tracingCloser.Close()
	}()

	engine := gin.Default()
	engine.Use(bizerror.ErrorHandling(), tracing.TracingIngress())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, common.ServiceName)
	})

	sessions.RegisterSessionsHandler(engine)
	sessions.RegisterSessionHandler(engine, session.SimpleAuthFilter())

	account.RegisterUsersRestAPI(engine, session.SimpleAuthFilter())
	shift.RegisterShiftsRestAPI(engine, session.SimpleAuthFilter())
	roster.RegisterRosterRestAPI(engine, session.SimpleAuthFilter())
	bill.RegisterBillsRestAPI(engine, session.SimpleAuthFilter())
	payroll.RegisterPayrollRestAPI(engine, session.SimpleAuthFilter())
	notification.RegisterNotificationsRestAPI(engine, session.SimpleAuthFilter())

	servehttp.StartHTTPServer(engine)
}
