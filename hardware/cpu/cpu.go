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

// Package cpu emulates the 6507 found in the Atari VCS. The emulation is
// driven one colour-clock-derived cycle at a time with the Cycle() function;
// an instruction that needs more cycles than have elapsed simply suspends
// and resumes on the next call. The package does not need to know where the
// clock comes from. In the VCS it is the TIA that divides its oscillator by
// three and calls Cycle() with the result.
//
// Instructions are decoded with the table in the instructions package.
// Decoding takes no cycles; the time cost of an instruction comes entirely
// from the bus accesses its procedure performs. The first cycle of every
// procedure is the opcode fetch. For most instructions that fetch has
// already happened, overlapped with the final cycle of the previous
// instruction, and the first cycle does no bus work at all.
//
// The 6507 has no decimal mode circuitry disabled but BCD arithmetic is
// unimplemented in this emulation. An ADC or SBC with the decimal flag set
// is a fatal error.
package cpu

import (
	"fmt"

	"github.com/kalfield/beam2600/curated"
	"github.com/kalfield/beam2600/hardware/cpu/instructions"
	"github.com/kalfield/beam2600/hardware/cpu/registers"
	"github.com/kalfield/beam2600/hardware/memory/cpubus"
)

// sentinal error messages returned by the CPU.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at %#04x"
	UnsupportedDecimalMode   = "cpu: decimal mode is not supported (%s at %#04x)"
)

// interrupt and reset vectors. the 6507 has no NMI pin.
const (
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// procedure is the state of the instruction currently being executed. one
// exists for the duration of the instruction and is stepped once per cycle.
// tmp0, tmp1 and tmpAddr carry intermediate results between cycles.
type procedure struct {
	defn *instructions.Definition

	// address the opcode was read from. used for error messages.
	opcodeAddr uint16

	cycle   int
	done    bool
	tmp0    uint8
	tmp1    uint8
	tmpAddr uint16
}

// CPU implements the 6507 found in the Atari VCS.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.Status

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// RdyFlg mirrors the RDY pin. the TIA holds it low between a write to
	// WSYNC and the start of the next scanline; while low the CPU does
	// nothing at all.
	RdyFlg bool

	// the opcode fetched during the final cycle of the previous
	// instruction. valid only when prefetched is true.
	prefetch   uint8
	prefetched bool

	proc *procedure
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Note that the CPU will be initialised in a random state.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		instructions: instructions.GetDefinitions(),
	}
	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(0)
	mc.Status = registers.NewStatus()
	mc.RdyFlg = true
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset CPU to its power-on state. The reset vector is not read; use
// LoadPCIndirect() with the Reset address for that.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.RdyFlg = true
	mc.prefetched = false
	mc.proc = nil
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return err
	}
	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return err
	}
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
	return nil
}

// Executing returns true if the CPU is part-way through an instruction. The
// converse, an instruction boundary, is when a disassembly or a peek at the
// registers gives a coherent picture.
func (mc *CPU) Executing() bool {
	return mc.proc != nil
}

// Cycle advances the CPU by one cycle of its clock. If the RDY pin is being
// held low the cycle is consumed doing nothing.
func (mc *CPU) Cycle() error {
	if !mc.RdyFlg {
		return nil
	}

	if mc.proc == nil {
		// if the previous instruction did not overlap a fetch with its
		// final cycle then the fetch must happen now. it counts as the
		// first cycle of the new instruction.
		if !mc.prefetched {
			if err := mc.prefetchNext(); err != nil {
				return err
			}
		}

		opcode := mc.prefetch
		mc.prefetched = false

		// the opcode was fetched from the address one before the current PC
		opcodeAddr := mc.PC.Address() - 1

		defn := mc.instructions[opcode]
		if defn == nil {
			return curated.Errorf(UnimplementedInstruction, opcode, opcodeAddr)
		}

		// decoding consumes no cycles
		mc.proc = &procedure{
			defn:       defn,
			opcodeAddr: opcodeAddr,
			cycle:      1,
		}
	}

	p := mc.proc
	err := mc.step(p)
	p.cycle++
	if p.done {
		mc.proc = nil
	}

	return err
}

// fetch a byte from the address pointed to by the PC, advancing the PC.
func (mc *CPU) fetch() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	return v, err
}

// prefetchNext reads the next opcode, overlapping with the current cycle.
func (mc *CPU) prefetchNext() error {
	v, err := mc.fetch()
	mc.prefetch = v
	mc.prefetched = true
	return err
}

func (mc *CPU) push(data uint8) error {
	err := mc.mem.Write(mc.SP.Address(), data)
	mc.SP.Bump(false)
	return err
}

func (mc *CPU) pop() (uint8, error) {
	mc.SP.Bump(true)
	return mc.mem.Read(mc.SP.Address())
}

func (mc *CPU) setNZ(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

func addrConcat(hi, lo uint8) uint16 {
	return (uint16(hi) << 8) | uint16(lo)
}

// step performs one cycle of the current instruction procedure.
func (mc *CPU) step(p *procedure) error {
	switch p.defn.Operator {
	case instructions.Lda, instructions.Ldx, instructions.Ldy,
		instructions.Adc, instructions.Sbc,
		instructions.And, instructions.Ora, instructions.Eor, instructions.Bit,
		instructions.Cmp, instructions.Cpx, instructions.Cpy:
		return mc.stepRead(p)

	case instructions.Sta, instructions.Stx, instructions.Sty:
		return mc.stepWrite(p)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		if p.defn.AddressingMode == instructions.Accumulator {
			return mc.stepAccumulator(p)
		}
		return mc.stepModify(p)

	case instructions.Inc, instructions.Dec:
		return mc.stepModify(p)

	case instructions.Bcc, instructions.Bcs, instructions.Beq, instructions.Bmi,
		instructions.Bne, instructions.Bpl, instructions.Bvc, instructions.Bvs:
		return mc.stepBranch(p)

	case instructions.Pha, instructions.Php:
		return mc.stepPush(p)

	case instructions.Pla, instructions.Plp:
		return mc.stepPull(p)

	case instructions.Jmp:
		return mc.stepJmp(p)

	case instructions.Jsr:
		return mc.stepJsr(p)

	case instructions.Rts:
		return mc.stepRts(p)

	case instructions.Rti:
		return mc.stepRti(p)

	case instructions.Brk:
		return mc.stepBrk(p)
	}

	// every remaining operator works on registers alone
	return mc.stepImplied(p)
}

// stepRead is the cycle template for every instruction that reads its
// operand and leaves memory untouched. The data read, the operation on it
// and the prefetch of the next opcode all share the final cycle.
func (mc *CPU) stepRead(p *procedure) error {
	addr, resolved, err := mc.effectiveAddress(p)
	if err != nil {
		return err
	}
	if !resolved {
		return nil
	}

	data, err := mc.mem.Read(addr)
	if err != nil {
		return err
	}

	switch p.defn.Operator {
	case instructions.Lda:
		mc.A.Load(data)
		mc.setNZ(mc.A.Value())
	case instructions.Ldx:
		mc.X.Load(data)
		mc.setNZ(mc.X.Value())
	case instructions.Ldy:
		mc.Y.Load(data)
		mc.setNZ(mc.Y.Value())
	case instructions.Adc:
		if mc.Status.DecimalMode {
			return curated.Errorf(UnsupportedDecimalMode, p.defn.Mnemonic, p.opcodeAddr)
		}
		carry, overflow := mc.A.Add(data, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.setNZ(mc.A.Value())
	case instructions.Sbc:
		if mc.Status.DecimalMode {
			return curated.Errorf(UnsupportedDecimalMode, p.defn.Mnemonic, p.opcodeAddr)
		}
		carry, overflow := mc.A.Subtract(data, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.setNZ(mc.A.Value())
	case instructions.And:
		mc.A.AND(data)
		mc.setNZ(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(data)
		mc.setNZ(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(data)
		mc.setNZ(mc.A.Value())
	case instructions.Bit:
		d := registers.NewRegister(data, "BIT")
		mc.Status.Zero = mc.A.Value()&data == 0
		mc.Status.Sign = d.IsNegative()
		mc.Status.Overflow = d.IsBitV()
	case instructions.Cmp:
		cmp := registers.NewRegister(mc.A.Value(), "CMP")
		carry, _ := cmp.Subtract(data, true)
		mc.Status.Carry = carry
		mc.setNZ(cmp.Value())
	case instructions.Cpx:
		cmp := registers.NewRegister(mc.X.Value(), "CPX")
		carry, _ := cmp.Subtract(data, true)
		mc.Status.Carry = carry
		mc.setNZ(cmp.Value())
	case instructions.Cpy:
		cmp := registers.NewRegister(mc.Y.Value(), "CPY")
		carry, _ := cmp.Subtract(data, true)
		mc.Status.Carry = carry
		mc.setNZ(cmp.Value())
	}

	p.done = true
	return mc.prefetchNext()
}

// stepWrite is the cycle template for the store instructions. The write
// occupies the final cycle so there is no room for an overlapped fetch; the
// next instruction pays for its own.
func (mc *CPU) stepWrite(p *procedure) error {
	addr, resolved, err := mc.effectiveAddress(p)
	if err != nil {
		return err
	}
	if !resolved {
		return nil
	}

	var data uint8
	switch p.defn.Operator {
	case instructions.Sta:
		data = mc.A.Value()
	case instructions.Stx:
		data = mc.X.Value()
	case instructions.Sty:
		data = mc.Y.Value()
	}

	p.done = true
	return mc.mem.Write(addr, data)
}

// stepModify is the cycle template for the read-modify-write instructions.
// Like the real 6507 the unmodified value is written back one cycle before
// the modified value. No overlapped fetch.
func (mc *CPU) stepModify(p *procedure) error {
	addr, resolved, err := mc.readModifyWrite(p)
	if err != nil {
		return err
	}
	if !resolved {
		return nil
	}

	r := registers.NewRegister(p.tmp0, "RMW")
	switch p.defn.Operator {
	case instructions.Asl:
		mc.Status.Carry = r.ASL()
		mc.setNZ(r.Value())
	case instructions.Lsr:
		mc.Status.Carry = r.LSR()
		mc.setNZ(r.Value())
	case instructions.Rol:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setNZ(r.Value())
	case instructions.Ror:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setNZ(r.Value())
	case instructions.Inc:
		r.Load(r.Value() + 1)
		mc.setNZ(r.Value())
	case instructions.Dec:
		r.Load(r.Value() - 1)
		mc.setNZ(r.Value())
	}

	p.done = true
	return mc.mem.Write(addr, r.Value())
}

// stepAccumulator handles the accumulator form of the shift and rotate
// instructions. Two cycles, like any other register-only instruction.
func (mc *CPU) stepAccumulator(p *procedure) error {
	if p.cycle != 2 {
		return nil
	}

	switch p.defn.Operator {
	case instructions.Asl:
		mc.Status.Carry = mc.A.ASL()
	case instructions.Lsr:
		mc.Status.Carry = mc.A.LSR()
	case instructions.Rol:
		mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
	case instructions.Ror:
		mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
	}
	mc.setNZ(mc.A.Value())

	p.done = true
	return mc.prefetchNext()
}

// stepImplied handles every instruction that works on registers alone.
func (mc *CPU) stepImplied(p *procedure) error {
	if p.cycle != 2 {
		return nil
	}

	switch p.defn.Operator {
	case instructions.Nop:
		// nothing to do
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A.Value())
	case instructions.Txs:
		// TXS is the one transfer that touches no flags
		mc.SP.Load(mc.X.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A.Value())
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setNZ(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setNZ(mc.Y.Value())
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	}

	p.done = true
	return mc.prefetchNext()
}

// stepPush handles PHA and PHP. Three cycles.
func (mc *CPU) stepPush(p *procedure) error {
	switch p.cycle {
	case 2:
		// discarded read of the byte after the opcode
		_, err := mc.mem.Read(mc.PC.Address())
		return err
	case 3:
		var data uint8
		if p.defn.Operator == instructions.Pha {
			data = mc.A.Value()
		} else {
			// the pushed copy of the status register always has the break
			// bit set
			data = mc.Status.Value() | 0x10
		}
		if err := mc.push(data); err != nil {
			return err
		}
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// stepPull handles PLA and PLP. Four cycles.
func (mc *CPU) stepPull(p *procedure) error {
	switch p.cycle {
	case 2:
		// discarded read of the byte after the opcode
		_, err := mc.mem.Read(mc.PC.Address())
		return err
	case 3:
		// stack pointer increment occupies this cycle
		return nil
	case 4:
		data, err := mc.pop()
		if err != nil {
			return err
		}
		if p.defn.Operator == instructions.Pla {
			mc.A.Load(data)
			mc.setNZ(mc.A.Value())
		} else {
			mc.Status.Load(data)
		}
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// stepBranch handles the eight branch instructions. Two cycles if the
// branch is not taken, three if it is, four if the destination is in a
// different page.
func (mc *CPU) stepBranch(p *procedure) error {
	var taken bool
	switch p.defn.Operator {
	case instructions.Bcc:
		taken = !mc.Status.Carry
	case instructions.Bcs:
		taken = mc.Status.Carry
	case instructions.Beq:
		taken = mc.Status.Zero
	case instructions.Bmi:
		taken = mc.Status.Sign
	case instructions.Bne:
		taken = !mc.Status.Zero
	case instructions.Bpl:
		taken = !mc.Status.Sign
	case instructions.Bvc:
		taken = !mc.Status.Overflow
	case instructions.Bvs:
		taken = mc.Status.Overflow
	}

	switch p.cycle {
	case 2:
		v, err := mc.fetch()
		if err != nil {
			return err
		}
		p.tmp0 = v
		if !taken {
			p.done = true
			return mc.prefetchNext()
		}
	case 3:
		// the offset is signed
		p.tmpAddr = mc.PC.Address() + uint16(int16(int8(p.tmp0)))
		if mc.PC.Address()&0xff00 == p.tmpAddr&0xff00 {
			mc.PC.Load(p.tmpAddr)
			p.done = true
			return mc.prefetchNext()
		}
	case 4:
		mc.PC.Load(p.tmpAddr)
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// stepJmp handles both forms of JMP. Three cycles for the absolute form,
// five for the indirect form.
func (mc *CPU) stepJmp(p *procedure) error {
	if p.defn.AddressingMode == instructions.Absolute {
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return err
			}
			p.tmp0 = v
		case 3:
			hi, err := mc.mem.Read(mc.PC.Address())
			if err != nil {
				return err
			}
			mc.PC.Load(addrConcat(hi, p.tmp0))
			p.done = true
			return mc.prefetchNext()
		}
		return nil
	}

	// indirect
	switch p.cycle {
	case 2:
		v, err := mc.fetch()
		if err != nil {
			return err
		}
		p.tmp0 = v
	case 3:
		v, err := mc.fetch()
		if err != nil {
			return err
		}
		p.tmp1 = v
	case 4:
		p.tmpAddr = addrConcat(p.tmp1, p.tmp0)
		v, err := mc.mem.Read(p.tmpAddr)
		if err != nil {
			return err
		}
		p.tmp0 = v
	case 5:
		// the 6507 never carries into the high byte when reading the
		// second byte of the vector. a vector at the end of a page reads
		// its high byte from the start of the same page.
		hiAddr := (p.tmpAddr & 0xff00) | ((p.tmpAddr + 1) & 0x00ff)
		v, err := mc.mem.Read(hiAddr)
		if err != nil {
			return err
		}
		p.tmp1 = v
		mc.PC.Load(addrConcat(p.tmp1, p.tmp0))
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// stepJsr handles JSR. Six cycles. The pushed address is that of the last
// byte of the JSR instruction; RTS corrects for it.
func (mc *CPU) stepJsr(p *procedure) error {
	switch p.cycle {
	case 2:
		v, err := mc.fetch()
		if err != nil {
			return err
		}
		p.tmp0 = v
	case 3:
		// discarded stack read
		_, err := mc.mem.Read(mc.SP.Address())
		return err
	case 4:
		return mc.push(uint8(mc.PC.Address() >> 8))
	case 5:
		return mc.push(uint8(mc.PC.Address() & 0x00ff))
	case 6:
		v, err := mc.fetch()
		if err != nil {
			return err
		}
		p.tmp1 = v
		mc.PC.Load(addrConcat(p.tmp1, p.tmp0))
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// stepRts handles RTS. Six cycles.
func (mc *CPU) stepRts(p *procedure) error {
	switch p.cycle {
	case 2:
		// discarded read of the byte after the opcode
		_, err := mc.mem.Read(mc.PC.Address())
		return err
	case 3:
		// stack pointer increment occupies this cycle
		return nil
	case 4:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		p.tmp0 = v
	case 5:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		p.tmp1 = v
	case 6:
		mc.PC.Load(addrConcat(p.tmp1, p.tmp0))
		mc.PC.Add(1)
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// stepRti handles RTI. Six cycles. Unlike RTS the popped address needs no
// correction.
func (mc *CPU) stepRti(p *procedure) error {
	switch p.cycle {
	case 2:
		// discarded read of the byte after the opcode
		_, err := mc.mem.Read(mc.PC.Address())
		return err
	case 3:
		// stack pointer increment occupies this cycle
		return nil
	case 4:
		data, err := mc.pop()
		if err != nil {
			return err
		}
		mc.Status.Load(data)
	case 5:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		p.tmp0 = v
	case 6:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		p.tmp1 = v
		mc.PC.Load(addrConcat(p.tmp1, p.tmp0))
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// stepBrk handles BRK. Seven cycles. The pushed PC skips the byte after the
// opcode, making BRK effectively a two byte instruction.
func (mc *CPU) stepBrk(p *procedure) error {
	switch p.cycle {
	case 2:
		// padding byte. read and discarded but the PC moves past it.
		_, err := mc.fetch()
		return err
	case 3:
		return mc.push(uint8(mc.PC.Address() >> 8))
	case 4:
		return mc.push(uint8(mc.PC.Address() & 0x00ff))
	case 5:
		if err := mc.push(mc.Status.Value() | 0x10); err != nil {
			return err
		}
		mc.Status.InterruptDisable = true
	case 6:
		v, err := mc.mem.Read(IRQ)
		if err != nil {
			return err
		}
		p.tmp0 = v
	case 7:
		v, err := mc.mem.Read(IRQ + 1)
		if err != nil {
			return err
		}
		p.tmp1 = v
		mc.PC.Load(addrConcat(p.tmp1, p.tmp0))
		p.done = true
		return mc.prefetchNext()
	}
	return nil
}

// effectiveAddress steps the address resolution of the non-flow addressing
// modes. It returns resolved=true on the cycle the address is available;
// until then the caller has nothing to do.
//
// For the read instructions the indexed modes take one cycle fewer when the
// indexing stays within a page. The store instructions always pay the full
// price, with a discarded read at the not-yet-carried address.
func (mc *CPU) effectiveAddress(p *procedure) (uint16, bool, error) {
	write := p.defn.Effect == instructions.Write

	switch p.defn.AddressingMode {
	case instructions.Immediate:
		if p.cycle == 2 {
			addr := mc.PC.Address()
			mc.PC.Add(1)
			return addr, true, nil
		}

	case instructions.ZeroPage:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			return uint16(p.tmp0), true, nil
		}

	case instructions.Absolute:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp1 = v
		case 4:
			return addrConcat(p.tmp1, p.tmp0), true, nil
		}

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			// discarded read at the unindexed address
			_, err := mc.mem.Read(uint16(p.tmp0))
			if err != nil {
				return 0, false, err
			}
		case 4:
			// indexing wraps within the zero page
			var idx uint8
			if p.defn.AddressingMode == instructions.ZeroPageIndexedX {
				idx = mc.X.Value()
			} else {
				idx = mc.Y.Value()
			}
			return uint16(p.tmp0 + idx), true, nil
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp1 = v
		case 4:
			var idx uint8
			if p.defn.AddressingMode == instructions.AbsoluteIndexedX {
				idx = mc.X.Value()
			} else {
				idx = mc.Y.Value()
			}
			base := addrConcat(p.tmp1, p.tmp0)
			eff := base + uint16(idx)
			if !write && base&0xff00 == eff&0xff00 {
				return eff, true, nil
			}

			// discarded read at the address before the carry into the high
			// byte has happened
			_, err := mc.mem.Read((base & 0xff00) | (eff & 0x00ff))
			if err != nil {
				return 0, false, err
			}
			p.tmpAddr = eff
		case 5:
			return p.tmpAddr, true, nil
		}

	case instructions.IndexedIndirect:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			// discarded read at the unindexed pointer
			_, err := mc.mem.Read(uint16(p.tmp0))
			if err != nil {
				return 0, false, err
			}
		case 4:
			v, err := mc.mem.Read(uint16(p.tmp0 + mc.X.Value()))
			if err != nil {
				return 0, false, err
			}
			p.tmp1 = v
		case 5:
			hi, err := mc.mem.Read(uint16(p.tmp0 + mc.X.Value() + 1))
			if err != nil {
				return 0, false, err
			}
			p.tmpAddr = addrConcat(hi, p.tmp1)
		case 6:
			return p.tmpAddr, true, nil
		}

	case instructions.IndirectIndexed:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			v, err := mc.mem.Read(uint16(p.tmp0))
			if err != nil {
				return 0, false, err
			}
			p.tmp1 = v
		case 4:
			hi, err := mc.mem.Read(uint16(p.tmp0 + 1))
			if err != nil {
				return 0, false, err
			}
			p.tmpAddr = addrConcat(hi, p.tmp1)
		case 5:
			eff := p.tmpAddr + mc.Y.Address()
			if !write && p.tmpAddr&0xff00 == eff&0xff00 {
				return eff, true, nil
			}

			// discarded read at the address before the carry into the high
			// byte has happened
			_, err := mc.mem.Read((p.tmpAddr & 0xff00) | (eff & 0x00ff))
			if err != nil {
				return 0, false, err
			}
			p.tmpAddr = eff
		case 6:
			return p.tmpAddr, true, nil
		}
	}

	return 0, false, nil
}

// readModifyWrite steps the address resolution and operand read of the
// read-modify-write instructions. On the cycle before resolution the
// unmodified operand is written back to the effective address. The operand
// is left in tmp0 for the caller to modify.
func (mc *CPU) readModifyWrite(p *procedure) (uint16, bool, error) {
	switch p.defn.AddressingMode {
	case instructions.ZeroPage:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmpAddr = uint16(v)
		case 3:
			v, err := mc.mem.Read(p.tmpAddr)
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 4:
			if err := mc.mem.Write(p.tmpAddr, p.tmp0); err != nil {
				return 0, false, err
			}
		case 5:
			return p.tmpAddr, true, nil
		}

	case instructions.Absolute:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp1 = v
		case 4:
			p.tmpAddr = addrConcat(p.tmp1, p.tmp0)
			v, err := mc.mem.Read(p.tmpAddr)
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 5:
			if err := mc.mem.Write(p.tmpAddr, p.tmp0); err != nil {
				return 0, false, err
			}
		case 6:
			return p.tmpAddr, true, nil
		}

	case instructions.ZeroPageIndexedX:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp1 = v
		case 3:
			// discarded read at the unindexed address
			_, err := mc.mem.Read(uint16(p.tmp1))
			if err != nil {
				return 0, false, err
			}
		case 4:
			p.tmpAddr = uint16(p.tmp1 + mc.X.Value())
			v, err := mc.mem.Read(p.tmpAddr)
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 5:
			if err := mc.mem.Write(p.tmpAddr, p.tmp0); err != nil {
				return 0, false, err
			}
		case 6:
			return p.tmpAddr, true, nil
		}

	case instructions.AbsoluteIndexedX:
		switch p.cycle {
		case 2:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 3:
			v, err := mc.fetch()
			if err != nil {
				return 0, false, err
			}
			p.tmp1 = v
		case 4:
			base := addrConcat(p.tmp1, p.tmp0)
			p.tmpAddr = base + mc.X.Address()

			// discarded read at the address before the carry into the high
			// byte has happened. always, even when there is no carry.
			_, err := mc.mem.Read((base & 0xff00) | (p.tmpAddr & 0x00ff))
			if err != nil {
				return 0, false, err
			}
		case 5:
			v, err := mc.mem.Read(p.tmpAddr)
			if err != nil {
				return 0, false, err
			}
			p.tmp0 = v
		case 6:
			if err := mc.mem.Write(p.tmpAddr, p.tmp0); err != nil {
				return 0, false, err
			}
		case 7:
			return p.tmpAddr, true, nil
		}
	}

	return 0, false, nil
}
