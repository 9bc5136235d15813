package sysreg

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/utils"
)

// A simulated register file, keyed by register architectural name. It stands in for the
// registers of one execution context when the code does not run on the real hardware.
// Registers never written read as zero
type Bank struct {
	name   string
	mutex  sync.Mutex
	values map[string]uint64
	logger *slog.Logger
	tracer Tracer
}

type BankOption func(*Bank)

// Traces all bank accesses through the given logger, at debug level
func WithLogger(logger *slog.Logger) BankOption {
	return func(b *Bank) {
		b.logger = logger
	}
}

// Saves a trace of all bank accesses
func WithTracer(tracer Tracer) BankOption {
	return func(b *Bank) {
		b.tracer = tracer
	}
}

func NewBank(name string, options ...BankOption) *Bank {
	bank := &Bank{
		name:   name,
		values: make(map[string]uint64),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(bank)
	}

	return bank
}

func (b *Bank) Name() string {
	return b.name
}

// Returns the current value of a register
func (b *Bank) Load(register string) uint64 {
	b.mutex.Lock()
	value := b.values[register]
	b.mutex.Unlock()

	b.trace(TraceOperation_Read, register, value)

	return value
}

// Replaces the value of a register
func (b *Bank) Store(register string, value uint64) {
	b.mutex.Lock()
	b.values[register] = value
	b.mutex.Unlock()

	b.trace(TraceOperation_Write, register, value)
}

// Sets all registers back to zero
func (b *Bank) Reset() {
	b.mutex.Lock()
	clear(b.values)
	b.mutex.Unlock()

	b.logger.Debug("bank reset", slog.String("bank", b.name))
}

// Returns a copy of all the registers written so far
func (b *Bank) Snapshot() map[string]uint64 {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	snapshot := make(map[string]uint64, len(b.values))

	for register, value := range b.values {
		snapshot[register] = value
	}

	return snapshot
}

func (b *Bank) String() string {
	snapshot := b.Snapshot()

	return fmt.Sprintf("%v {%v}", b.name, utils.FormatSlice(utils.Map(utils.SortedKeys(snapshot), func(register string) string {
		return fmt.Sprintf("%v: %v", register, utils.FormatUintHex(snapshot[register], 16))
	}), ", "))
}

func (b *Bank) trace(operation TraceOperation, register string, value uint64) {
	b.logger.Debug("register access",
		slog.String("bank", b.name),
		slog.String("operation", operation.String()),
		slog.String("register", register),
		slog.String("value", utils.FormatUintHex(value, 16)))

	if b.tracer != nil {
		b.tracer.SaveTrace(&Trace{
			Bank:      b.name,
			Operation: operation,
			Register:  register,
			Value:     value,
		})
	}
}

// Returns a source reading the given bank register. Values are truncated to the register width
func BankSource[T bitfield.Width](bank *Bank, register string) Source[T] {
	return func() T {
		return T(bank.Load(register))
	}
}

// Returns a sink writing the given bank register
func BankSink[T bitfield.Width](bank *Bank, register string) Sink[T] {
	return func(value T) {
		bank.Store(register, uint64(value))
	}
}

// Returns a read only accessor bound to the bank register named after the layout
func BankReadOnly[T bitfield.Width](bank *Bank, layout *bitfield.Layout[T]) ReadOnly[T] {
	return NewReadOnly(layout, BankSource[T](bank, mustLayout(layout).Name))
}

// Returns a write only accessor bound to the bank register named after the layout
func BankWriteOnly[T bitfield.Width](bank *Bank, layout *bitfield.Layout[T]) WriteOnly[T] {
	return NewWriteOnly(layout, BankSink[T](bank, mustLayout(layout).Name))
}

// Returns a read write accessor bound to the bank register named after the layout
func BankReadWrite[T bitfield.Width](bank *Bank, layout *bitfield.Layout[T]) ReadWrite[T] {
	name := mustLayout(layout).Name
	return NewReadWrite(layout, BankSource[T](bank, name), BankSink[T](bank, name))
}
