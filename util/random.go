package util

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var src = rand.NewSource(uint64(time.Now().UnixNano()))

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	u := distuv.Uniform{Min: min, Max: max, Src: src}
	return u.Rand()
}

// RandomSpot generates a random stock price
func RandomSpot() float64 {
	return RandomFloat(1.0, 500.0)
}

// RandomStrike generates a random strike near a given spot
func RandomStrike(spot float64) float64 {
	return spot * RandomFloat(0.5, 1.5)
}

// RandomVol generates a random annualized volatility
func RandomVol() float64 {
	return RandomFloat(0.05, 1.5)
}

// RandomRate generates a random risk-free rate
func RandomRate() float64 {
	return RandomFloat(-0.05, 0.15)
}

// RandomMaturity generates a random time to maturity in years
func RandomMaturity() float64 {
	return RandomFloat(0.02, 10.0)
}
