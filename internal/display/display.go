//go:build pi

package display

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/svanberg/segclock/internal/sevseg"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func init() {
	if _, err := host.Init(); err != nil {
		log.Fatalln("Unable to initialize periph:", err)
	}
}

// Open wires up the configured GPIO lines and initializes the controller.
func Open(c Config) (Display, error) {
	log.Infoln("Initializing seven segment display")

	data, err := pinByName(c.DataPin)
	if err != nil {
		return nil, err
	}
	clk, err := pinByName(c.ClockPin)
	if err != nil {
		return nil, err
	}
	sel, err := pinByName(c.SelectPin)
	if err != nil {
		return nil, err
	}

	return sevseg.New(data, clk, sel, c.Digits)
}

func pinByName(name string) (gpio.PinOut, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("display: unknown pin %q", name)
	}
	return p, nil
}
