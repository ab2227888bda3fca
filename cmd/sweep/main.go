// Command sweep prices a grid of random-expiration scenarios and writes the
// table as CSV, for eyeballing how the value moves with the holding period
// and its dispersion.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/banachtech/randexp/bs"
	"github.com/schollz/progressbar/v3"
)

func main() {
	spot := flag.Float64("spot", 100.0, "stock price")
	strike := flag.Float64("strike", 100.0, "strike price")
	vol := flag.Float64("vol", 0.2, "annualized volatility")
	rate := flag.Float64("rate", 0.05, "risk-free rate")
	hMin := flag.Float64("hmin", 0.25, "smallest holding period in years")
	hMax := flag.Float64("hmax", 5.0, "largest holding period in years")
	hSteps := flag.Int("hsteps", 20, "holding period grid points")
	cvMax := flag.Float64("cvmax", 2.0, "largest dispersion as a multiple of the holding period")
	cvSteps := flag.Int("cvsteps", 20, "dispersion grid points")
	out := flag.String("o", "sweep.csv", "output CSV path")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"holding_period", "volatility_around_holding_period", "call", "digital"}); err != nil {
		log.Fatal(err)
	}

	eng := bs.New()
	bar := progressBar(*hSteps * *cvSteps)
	for i := 0; i < *hSteps; i++ {
		h := *hMin + (*hMax-*hMin)*float64(i)/float64(*hSteps-1)
		bar.Describe(fmt.Sprintf("Pricing H=%.2f\t", h))
		for j := 0; j < *cvSteps; j++ {
			volH := h * *cvMax * float64(j) / float64(*cvSteps-1)
			call := eng.RandomExpirationCall(*spot, *strike, *vol, *rate, h, volH)
			digital := eng.RandomExpirationDigital(*spot, *strike, *vol, *rate, h, volH)
			rec := []string{
				strconv.FormatFloat(h, 'g', -1, 64),
				strconv.FormatFloat(volH, 'g', -1, 64),
				strconv.FormatFloat(call, 'g', -1, 64),
				strconv.FormatFloat(digital, 'g', -1, 64),
			}
			if err := w.Write(rec); err != nil {
				log.Fatal(err)
			}
			bar.Add(1)
		}
	}
}

// progress bar initialization
func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
