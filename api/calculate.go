package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/banachtech/randexp/bs"
	"github.com/gin-gonic/gin"
)

const (
	typeRegular                    = "regular"
	typeBinary                     = "binary"
	typeRandomExpirationCall       = "randomExpirationCall"
	typeRandomExpirationBinaryCall = "randomExpirationBinaryCall"
)

type calculateRequest struct {
	Type                          string   `json:"type"`
	StockPrice                    *float64 `json:"stock_price"`
	StrikePrice                   *float64 `json:"strike_price"`
	Volatility                    *float64 `json:"volatility"`
	RiskFreeRate                  *float64 `json:"risk_free_rate"`
	TimeToMaturity                *float64 `json:"time_to_maturity"`
	HoldingPeriod                 *float64 `json:"holding_period"`
	VolatilityAroundHoldingPeriod *float64 `json:"volatility_around_holding_period"`
}

type callOption struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type randomExpirationOption struct {
	Type                          string  `json:"type"`
	Value                         float64 `json:"value"`
	HoldingPeriod                 float64 `json:"holding_period"`
	VolatilityAroundHoldingPeriod float64 `json:"volatility_around_holding_period"`
}

// bindErrorMessage turns a JSON binding failure into the boundary's error
// vocabulary: a value of the wrong type on a known numeric field names the
// field, anything else is reported as malformed JSON.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" && typeErr.Field != "type" {
		return fmt.Sprintf("Field %s must be numeric", typeErr.Field)
	}
	return "Invalid JSON format"
}

func requirePositive(field string, v *float64) error {
	if v == nil {
		return fmt.Errorf("Missing required field: %s", field)
	}
	if *v <= 0 {
		return fmt.Errorf("Field %s must be positive", field)
	}
	return nil
}

// validate mirrors the request contract of the pricing boundary: presence and
// positivity checks happen here, field by field; the engine only ever sees
// validated numbers. volatility_around_holding_period defaults to the holding
// period when absent.
func (req *calculateRequest) validate() error {
	if err := requirePositive("stock_price", req.StockPrice); err != nil {
		return err
	}
	if err := requirePositive("strike_price", req.StrikePrice); err != nil {
		return err
	}
	if err := requirePositive("volatility", req.Volatility); err != nil {
		return err
	}
	if req.RiskFreeRate == nil {
		return fmt.Errorf("Missing required field: risk_free_rate")
	}
	switch req.Type {
	case typeRegular, typeBinary:
		return requirePositive("time_to_maturity", req.TimeToMaturity)
	case typeRandomExpirationCall, typeRandomExpirationBinaryCall:
		if err := requirePositive("holding_period", req.HoldingPeriod); err != nil {
			return err
		}
		if req.VolatilityAroundHoldingPeriod == nil {
			req.VolatilityAroundHoldingPeriod = req.HoldingPeriod
			return nil
		}
		return requirePositive("volatility_around_holding_period", req.VolatilityAroundHoldingPeriod)
	case "":
		return fmt.Errorf("Missing required field: type")
	default:
		return fmt.Errorf("Field type must be either 'regular', 'binary', 'randomExpirationCall', or 'randomExpirationBinaryCall'")
	}
}

func (server *Server) calculate(c *gin.Context) {
	var req calculateRequest
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

	switch req.Type {
	case typeRegular:
		v := bs.Call(*req.StockPrice, *req.StrikePrice, *req.TimeToMaturity, *req.Volatility, *req.RiskFreeRate)
		c.JSON(http.StatusOK, successResponse(callOption{Type: "regular", Value: v}))
	case typeBinary:
		v := bs.Digital(*req.StockPrice, *req.StrikePrice, *req.TimeToMaturity, *req.Volatility, *req.RiskFreeRate)
		c.JSON(http.StatusOK, successResponse(callOption{Type: "binary", Value: v}))
	case typeRandomExpirationCall:
		v := eng.RandomExpirationCall(*req.StockPrice, *req.StrikePrice, *req.Volatility, *req.RiskFreeRate,
			*req.HoldingPeriod, *req.VolatilityAroundHoldingPeriod)
		c.JSON(http.StatusOK, successResponse(randomExpirationOption{
			Type:                          "random_expiration",
			Value:                         v,
			HoldingPeriod:                 *req.HoldingPeriod,
			VolatilityAroundHoldingPeriod: *req.VolatilityAroundHoldingPeriod,
		}))
	case typeRandomExpirationBinaryCall:
		v := eng.RandomExpirationDigital(*req.StockPrice, *req.StrikePrice, *req.Volatility, *req.RiskFreeRate,
			*req.HoldingPeriod, *req.VolatilityAroundHoldingPeriod)
		c.JSON(http.StatusOK, successResponse(randomExpirationOption{
			Type:                          "random_expiration_binary",
			Value:                         v,
			HoldingPeriod:                 *req.HoldingPeriod,
			VolatilityAroundHoldingPeriod: *req.VolatilityAroundHoldingPeriod,
		}))
	}
}
