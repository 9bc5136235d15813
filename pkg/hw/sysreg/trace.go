package sysreg

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Manu343726/sysregs/pkg/utils"
)

type TraceOperation uint

const (
	TraceOperation_Read TraceOperation = iota
	TraceOperation_Write
)

func (op TraceOperation) String() string {
	switch op {
	case TraceOperation_Read:
		return "Read"
	case TraceOperation_Write:
		return "Write"
	}

	return "??"
}

// A single register access
type Trace struct {
	Bank      string
	Operation TraceOperation
	Register  string
	Value     uint64
}

func (t *Trace) String() string {
	arrow := "->"
	if t.Operation == TraceOperation_Write {
		arrow = "<-"
	}

	return fmt.Sprintf("%v %v.%v %v %v", t.Operation, t.Bank, t.Register, arrow, utils.FormatUintHex(t.Value, 16))
}

type Tracer interface {
	SaveTrace(t *Trace)
}

// A tracer that keeps all the traces in memory, in access order
type TraceLog struct {
	mutex  sync.Mutex
	traces []Trace
}

func (l *TraceLog) SaveTrace(t *Trace) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.traces = append(l.traces, *t)
}

// Returns a copy of the saved traces
func (l *TraceLog) Traces() []Trace {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return append([]Trace{}, l.traces...)
}

// Returns the saved traces of the given operation
func (l *TraceLog) Filter(operation TraceOperation) []Trace {
	return utils.Filter(l.Traces(), func(t Trace) bool { return t.Operation == operation })
}

func (l *TraceLog) Clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.traces = nil
}

func (l *TraceLog) String() string {
	var builder strings.Builder

	for _, t := range l.Traces() {
		builder.WriteString(t.String())
		builder.WriteString("\n")
	}

	return builder.String()
}
