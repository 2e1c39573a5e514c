// This file is part of Beam2600.
//
// Beam2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Beam2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Beam2600.  If not, see <https://www.gnu.org/licenses/>.

// Package disassembly represents the disassembly of a 6507 binary. The
// decode is a single linear pass over the cartridge, starting at the
// address in the reset vector. Bytes that do not decode to a documented
// instruction are shown as data.
//
// Operands that refer to a hardware register are shown with the register's
// name rather than its address.
package disassembly

import (
	"fmt"
	"io"

	"github.com/kalfield/beam2600/cartridgeloader"
	"github.com/kalfield/beam2600/hardware/cpu/instructions"
	"github.com/kalfield/beam2600/hardware/memory/addresses"
	"github.com/kalfield/beam2600/hardware/memory/cartridge"
)

// Entry is a single decoded instruction or data byte.
type Entry struct {
	// address of the first byte of the instruction
	Address uint16

	// the bytes that make up the instruction
	Bytes []uint8

	// empty if the entry is a data byte
	Mnemonic string
	Operand  string
}

func (e *Entry) String() string {
	if e.Mnemonic == "" {
		return fmt.Sprintf("%#04x .byte $%02x", e.Address, e.Bytes[0])
	}
	if e.Operand == "" {
		return fmt.Sprintf("%#04x %s", e.Address, e.Mnemonic)
	}
	return fmt.Sprintf("%#04x %s %s", e.Address, e.Mnemonic, e.Operand)
}

// Disassembly represents the disassembly of a 6507 binary.
type Disassembly struct {
	Entries []*Entry
}

// FromCartridge disassembles the cartridge attached through the supplied
// loader.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	if err := cartload.Load(); err != nil {
		return nil, err
	}

	cart := cartridge.NewCartridge()
	if err := cart.Attach(cartload.Data); err != nil {
		return nil, err
	}

	return FromMemory(cart)
}

// FromMemory disassembles an attached cartridge directly.
func FromMemory(cart *cartridge.Cartridge) (*Disassembly, error) {
	dsm := &Disassembly{}
	defns := instructions.GetDefinitions()

	read := func(address uint16) uint8 {
		v, _ := cart.Read(address)
		return v
	}

	// decode begins at the address in the reset vector and ends at the
	// vectors themselves
	origin := uint16(read(addresses.Reset)) | (uint16(read(addresses.Reset+1)) << 8)
	address := origin

	for address >= origin && address < addresses.NMI {
		opcode := read(address)
		defn := defns[opcode]

		if defn == nil {
			dsm.Entries = append(dsm.Entries, &Entry{
				Address: address,
				Bytes:   []uint8{opcode},
			})
			address++
			continue
		}

		length := 1 + operandLength(defn.AddressingMode)
		if int(address)+length > int(addresses.NMI) {
			// instruction runs into the vectors
			dsm.Entries = append(dsm.Entries, &Entry{
				Address: address,
				Bytes:   []uint8{opcode},
			})
			address++
			continue
		}

		e := &Entry{
			Address:  address,
			Bytes:    []uint8{opcode},
			Mnemonic: defn.Mnemonic,
		}
		for i := 1; i < length; i++ {
			e.Bytes = append(e.Bytes, read(address+uint16(i)))
		}
		e.Operand = operandString(defn, e)

		dsm.Entries = append(dsm.Entries, e)
		address += uint16(length)
	}

	return dsm, nil
}

// Write the entire disassembly to the supplied io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func operandLength(mode instructions.AddressingMode) int {
	switch mode {
	case instructions.Implied:
		return 0
	case instructions.Accumulator:
		return 0
	case instructions.Absolute, instructions.Indirect,
		instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		return 2
	}
	return 1
}

// registerName returns the name of the hardware register at the address, or
// the empty string.
func registerName(defn *instructions.Definition, address uint16) string {
	if address >= addresses.SWCHA && address <= addresses.T1024T {
		if name, ok := addresses.RIOTSymbols[address]; ok {
			return name
		}
		return ""
	}
	if address > addresses.CXCLR {
		return ""
	}
	if defn.Effect == instructions.Write {
		return addresses.TIAWriteSymbols[address]
	}
	return addresses.TIAReadSymbols[address]
}

func operandString(defn *instructions.Definition, e *Entry) string {
	switch defn.AddressingMode {
	case instructions.Implied:
		return ""

	case instructions.Accumulator:
		return "A"

	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", e.Bytes[1])

	case instructions.Relative:
		target := e.Address + 2 + uint16(int16(int8(e.Bytes[1])))
		return fmt.Sprintf("$%04x", target)

	case instructions.ZeroPage:
		if name := registerName(defn, uint16(e.Bytes[1])); name != "" {
			return name
		}
		return fmt.Sprintf("$%02x", e.Bytes[1])

	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", e.Bytes[1])

	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", e.Bytes[1])

	case instructions.Absolute:
		address := uint16(e.Bytes[1]) | (uint16(e.Bytes[2]) << 8)
		if name := registerName(defn, address); name != "" {
			return name
		}
		return fmt.Sprintf("$%04x", address)

	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", uint16(e.Bytes[1])|(uint16(e.Bytes[2])<<8))

	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", uint16(e.Bytes[1])|(uint16(e.Bytes[2])<<8))

	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", uint16(e.Bytes[1])|(uint16(e.Bytes[2])<<8))

	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", e.Bytes[1])

	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", e.Bytes[1])
	}

	return ""
}
