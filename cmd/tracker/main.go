package main

import (
	"fmt"
	"log"

	"github.com/Gen121/Activity-Tracker/internal/report"
	"github.com/Gen121/Activity-Tracker/internal/sensor"
)

func main() {
	packages := []sensor.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	for _, pkg := range packages {
		w, err := sensor.ReadPackage(pkg.Type, pkg.Data)
		if err != nil {
			log.Fatalf("read package: %v", err)
		}
		fmt.Println(report.New(w))
	}
}
