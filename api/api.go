package api

import (
	"github.com/gin-gonic/gin"

	"github.com/teller-ledger/teller"
	"github.com/teller-ledger/teller/api/middleware"
	"github.com/teller-ledger/teller/config"
)

type Api struct {
	teller *teller.Teller
	router *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/accounts", a.CreateAccount)
	router.GET("/accounts", a.GetAllAccounts)
	router.GET("/accounts/:name", a.GetAccount)

	router.POST("/accounts/:name/deposits", a.RecordDeposit)
	router.POST("/accounts/:name/withdrawals", a.RecordWithdrawal)

	return a.router
}

func NewAPI(t *teller.Teller) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RateLimitMiddleware(conf))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{teller: t, router: r}
}
