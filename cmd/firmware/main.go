//go:build tinygo

// Package main is the device firmware: samples arrive on UART0, the
// compiled-in network classifies them and results are printed on the same
// UART.
//
// Build with: tinygo flash -target=<board> ./cmd/firmware
package main

import (
	"context"
	"machine"
	"time"

	"github.com/born-ml/drnet/internal/cycles"
	"github.com/born-ml/drnet/internal/engine"
	"github.com/born-ml/drnet/internal/intake"
	"github.com/born-ml/drnet/internal/model"
	"github.com/born-ml/drnet/internal/report"
)

const (
	baudRate = 115200
	// drainInterval is how often the receive ring is emptied into the intake.
	drainInterval = time.Millisecond
)

func main() {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: baudRate})

	in := intake.New(model.InputSize)
	eng := engine.New(model.Network(), model.Classes(), engine.Options{
		Counter:  cycles.NewClock(cycles.DeviceHz),
		Reporter: report.NewText(uart),
		Banner:   model.Banner(),

		// Bytes that arrived during the pass belong to a dropped sample.
		BeforeRelease: func() { discard(uart) },
	})

	go receive(uart, in)

	// Serve only returns after a fault, and the background context is never
	// cancelled, so this blocks forever.
	_ = eng.Serve(context.Background(), in)
}

// receive moves bytes from the UART ring buffer, filled by the receive
// interrupt, into the intake. Bytes arriving while a sample is pending are
// dropped by the intake.
func receive(uart *machine.UART, in *intake.Intake) {
	for {
		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			in.OnByte(b)
		}
		time.Sleep(drainInterval)
	}
}

// discard empties the receive ring. The scheduler is cooperative and a pass
// never yields, so bytes received while a sample was pending are still in the
// ring when the pass ends and must not reach the next sample.
func discard(uart *machine.UART) {
	for uart.Buffered() > 0 {
		if _, err := uart.ReadByte(); err != nil {
			return
		}
	}
}
