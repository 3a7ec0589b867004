// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bus

import (
	"github.com/db47h/tqvsim"
	"github.com/db47h/tqvsim/hwlib"
)

// A Model is a peripheral state value. Tick returns the state after the next
// rising clock edge and the outputs driven during the cycle; Outputs returns
// the same outputs without advancing.
//
type Model[M any] interface {
	Tick(in Inputs) (M, Outputs)
	Outputs(in Inputs) Outputs
}

// Pin names shared by both peripheral interfaces.
//
const (
	PinRstN      = "rst_n"
	PinUiIn      = "ui_in"
	PinUoOut     = "uo_out"
	PinAddress   = "address"
	PinDataIn    = "data_in"
	PinDataOut   = "data_out"
	PinWriteN    = "data_write_n"
	PinReadN     = "data_read_n"
	PinWrite     = "data_write"
	PinDataReady = "data_ready"
	PinInterrupt = "user_interrupt"
)

// FullPart returns a part mounting a full peripheral model. The model state
// starts at init and advances on each rising edge of Clk.
//
//	Inputs: rst_n, ui_in[8], address[6], data_in[32], data_write_n[2], data_read_n[2]
//	Outputs: uo_out[8], data_out[32], data_ready, user_interrupt
//
func FullPart[M Model[M]](name string, init M) tqvsim.NewPartFn {
	return (&tqvsim.PartSpec{
		Name:    name,
		Inputs:  tqvsim.IO("rst_n, ui_in[8], address[6], data_in[32], data_write_n[2], data_read_n[2]"),
		Outputs: tqvsim.IO("uo_out[8], data_out[32], data_ready, user_interrupt"),
		Mount: func(s *tqvsim.Socket) []tqvsim.Component {
			rst, ui := s.Pin(PinRstN), s.Bus(PinUiIn, 8)
			addr, din := s.Bus(PinAddress, 6), s.Bus(PinDataIn, 32)
			wr, rd := s.Bus(PinWriteN, 2), s.Bus(PinReadN, 2)
			uo, dout := s.Bus(PinUoOut, 8), s.Bus(PinDataOut, 32)
			ready, intr := s.Pin(PinDataReady), s.Pin(PinInterrupt)
			st := init
			return []tqvsim.Component{
				func(c *tqvsim.Circuit) {
					in := Inputs{
						RstN:    c.Get(rst),
						UiIn:    uint8(hwlib.Uint64(c, ui)),
						Address: uint32(hwlib.Uint64(c, addr)),
						DataIn:  uint32(hwlib.Uint64(c, din)),
						Write:   Width(hwlib.Uint64(c, wr)),
						Read:    Width(hwlib.Uint64(c, rd)),
					}
					if c.AtTick() {
						st, _ = st.Tick(in)
					}
					out := st.Outputs(in)
					hwlib.SetUint64(c, uo, uint64(out.UoOut))
					hwlib.SetUint64(c, dout, uint64(out.DataOut))
					c.Set(ready, out.DataReady)
					c.Set(intr, out.Interrupt)
				},
			}
		}}).NewPart
}

// SimplePart returns a part mounting a simple peripheral model.
//
//	Inputs: rst_n, ui_in[8], address[4], data_in[8], data_write
//	Outputs: uo_out[8], data_out[8], user_interrupt
//
func SimplePart[M Model[M]](name string, init M) tqvsim.NewPartFn {
	return (&tqvsim.PartSpec{
		Name:    name,
		Inputs:  tqvsim.IO("rst_n, ui_in[8], address[4], data_in[8], data_write"),
		Outputs: tqvsim.IO("uo_out[8], data_out[8], user_interrupt"),
		Mount: func(s *tqvsim.Socket) []tqvsim.Component {
			rst, ui := s.Pin(PinRstN), s.Bus(PinUiIn, 8)
			addr, din, wr := s.Bus(PinAddress, 4), s.Bus(PinDataIn, 8), s.Pin(PinWrite)
			uo, dout, intr := s.Bus(PinUoOut, 8), s.Bus(PinDataOut, 8), s.Pin(PinInterrupt)
			st := init
			return []tqvsim.Component{
				func(c *tqvsim.Circuit) {
					in := Inputs{
						RstN:    c.Get(rst),
						UiIn:    uint8(hwlib.Uint64(c, ui)),
						Address: uint32(hwlib.Uint64(c, addr)),
						DataIn:  uint32(hwlib.Uint64(c, din)),
						Write:   None,
						Read:    None,
					}
					if c.Get(wr) {
						in.Write = Byte
					}
					if c.AtTick() {
						st, _ = st.Tick(in)
					}
					out := st.Outputs(in)
					hwlib.SetUint64(c, uo, uint64(out.UoOut))
					hwlib.SetUint64(c, dout, uint64(out.DataOut&0xff))
					c.Set(intr, out.Interrupt)
				},
			}
		}}).NewPart
}
