package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/banachtech/randexp/bs"
	"github.com/stretchr/testify/require"
)

func TestCalculateBatch(t *testing.T) {
	server := NewServer()

	testCases := []struct {
		name          string
		body          string
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK_REGULAR",
			body: `{"type":"regular","stock_prices":[100,120],"strike_prices":[95,100],"time_to_maturities":[0.25,1],"volatilities":[0.2,0.3],"risk_free_rates":[0.05,0.05]}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				env := decode(t, recorder)
				require.True(t, env.Success)
				require.Equal(t, "regular", env.Data["type"])
				values, ok := env.Data["values"].([]interface{})
				require.True(t, ok)
				require.Len(t, values, 2)
				require.InDelta(t, bs.Call(100, 95, 0.25, 0.2, 0.05), values[0], 1e-12)
				require.InDelta(t, bs.Call(120, 100, 1, 0.3, 0.05), values[1], 1e-12)
			},
		},
		{
			name: "OK_RANDOM_EXPIRATION",
			body: `{"type":"randomExpirationCall","stock_prices":[100],"strike_prices":[100],"volatilities":[0.9],"risk_free_rates":[0.05],"holding_periods":[5],"volatility_around_holding_periods":[5]}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				env := decode(t, recorder)
				require.Equal(t, "random_expiration", env.Data["type"])
				values := env.Data["values"].([]interface{})
				require.Len(t, values, 1)
				require.InDelta(t, 60.75, values[0], 0.01)
			},
		},
		{
			name: "LENGTH_MISMATCH",
			body: `{"type":"regular","stock_prices":[100,120],"strike_prices":[95],"time_to_maturities":[0.25,1],"volatilities":[0.2,0.3],"risk_free_rates":[0.05,0.05]}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				env := decode(t, recorder)
				require.False(t, env.Success)
				require.Equal(t, "Field strike_prices must have the same length as stock_prices", env.Error)
			},
		},
		{
			name: "LENGTH_MISMATCH_REPORTS_FIRST_FIELD",
			body: `{"type":"regular","stock_prices":[100,120],"strike_prices":[95],"time_to_maturities":[0.25],"volatilities":[0.2],"risk_free_rates":[0.05]}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				// Several arrays are short at once; the error must name the
				// first one in declaration order every time.
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				env := decode(t, recorder)
				require.Equal(t, "Field strike_prices must have the same length as stock_prices", env.Error)
			},
		},
		{
			name: "WRONG_TYPE_FIELD",
			body: `{"type":"regular","stock_prices":"abc"}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				env := decode(t, recorder)
				require.Equal(t, "Field stock_prices must be numeric", env.Error)
			},
		},
		{
			name: "EMPTY",
			body: `{"type":"regular","stock_prices":[]}`,
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				env := decode(t, recorder)
				require.Equal(t, "Missing required field: stock_prices", env.Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := postJSON(t, server, "/api/calculate/batch", tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}
