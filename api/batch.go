package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type calculateBatchRequest struct {
	Type                           string    `json:"type"`
	StockPrices                    []float64 `json:"stock_prices"`
	StrikePrices                   []float64 `json:"strike_prices"`
	Volatilities                   []float64 `json:"volatilities"`
	RiskFreeRates                  []float64 `json:"risk_free_rates"`
	TimeToMaturities               []float64 `json:"time_to_maturities"`
	HoldingPeriods                 []float64 `json:"holding_periods"`
	VolatilityAroundHoldingPeriods []float64 `json:"volatility_around_holding_periods"`
}

type batchResult struct {
	Type   string    `json:"type"`
	Values []float64 `json:"values"`
}

type batchField struct {
	name   string
	values []float64
}

// sameLength checks the arrays in declaration order, so the first mismatched
// field is the one reported.
func sameLength(n int, fields []batchField) error {
	for _, f := range fields {
		if f.values == nil {
			return fmt.Errorf("Missing required field: %s", f.name)
		}
		if len(f.values) != n {
			return fmt.Errorf("Field %s must have the same length as stock_prices", f.name)
		}
	}
	return nil
}

func (req *calculateBatchRequest) validate() error {
	if len(req.StockPrices) == 0 {
		return fmt.Errorf("Missing required field: stock_prices")
	}
	n := len(req.StockPrices)
	common := []batchField{
		{name: "strike_prices", values: req.StrikePrices},
		{name: "volatilities", values: req.Volatilities},
		{name: "risk_free_rates", values: req.RiskFreeRates},
	}
	if err := sameLength(n, common); err != nil {
		return err
	}
	switch req.Type {
	case typeRegular, typeBinary:
		return sameLength(n, []batchField{{name: "time_to_maturities", values: req.TimeToMaturities}})
	case typeRandomExpirationCall, typeRandomExpirationBinaryCall:
		if err := sameLength(n, []batchField{{name: "holding_periods", values: req.HoldingPeriods}}); err != nil {
			return err
		}
		if req.VolatilityAroundHoldingPeriods == nil {
			req.VolatilityAroundHoldingPeriods = req.HoldingPeriods
			return nil
		}
		return sameLength(n, []batchField{{name: "volatility_around_holding_periods", values: req.VolatilityAroundHoldingPeriods}})
	case "":
		return fmt.Errorf("Missing required field: type")
	default:
		return fmt.Errorf("Field type must be either 'regular', 'binary', 'randomExpirationCall', or 'randomExpirationBinaryCall'")
	}
}

func (server *Server) calculateBatch(c *gin.Context) {
	var req calculateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(bindErrorMessage(err), http.StatusBadRequest))
		return
	}
	if err := req.validate(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	eng := server.engine()
	defer server.release(eng)

	var result batchResult
	switch req.Type {
	case typeRegular:
		result.Type = "regular"
		result.Values = eng.CallMany(req.StockPrices, req.StrikePrices, req.TimeToMaturities, req.Volatilities, req.RiskFreeRates)
	case typeBinary:
		result.Type = "binary"
		result.Values = eng.DigitalMany(req.StockPrices, req.StrikePrices, req.TimeToMaturities, req.Volatilities, req.RiskFreeRates)
	case typeRandomExpirationCall:
		result.Type = "random_expiration"
		result.Values = eng.RandomExpirationCallMany(req.StockPrices, req.StrikePrices, req.Volatilities, req.RiskFreeRates,
			req.HoldingPeriods, req.VolatilityAroundHoldingPeriods)
	case typeRandomExpirationBinaryCall:
		result.Type = "random_expiration_binary"
		result.Values = eng.RandomExpirationDigitalMany(req.StockPrices, req.StrikePrices, req.Volatilities, req.RiskFreeRates,
			req.HoldingPeriods, req.VolatilityAroundHoldingPeriods)
	}
	c.JSON(http.StatusOK, successResponse(result))
}
