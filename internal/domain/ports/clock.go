package ports

import "time"

// Clock abstrai o relógio para permitir testes determinísticos
type Clock interface {
	Now() time.Time
}

// ClockFunc adapta uma função para Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock usa o relógio do sistema
var SystemClock Clock = ClockFunc(time.Now)
