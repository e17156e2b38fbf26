//go:build js
// +build js

package web

import (
	"fmt"
	"strings"

	"github.com/gopherjs/gopherjs/js"
)

// ConsoleLogger writes to the browser console.
type ConsoleLogger struct {
	Prefix string
}

func (c ConsoleLogger) format(msg interface{}, keyvals []interface{}) string {
	var b strings.Builder
	if c.Prefix != "" {
		b.WriteString(c.Prefix)
		b.WriteString(": ")
	}
	fmt.Fprint(&b, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	if len(keyvals)%2 == 1 {
		fmt.Fprintf(&b, " %v", keyvals[len(keyvals)-1])
	}
	return b.String()
}

func (c ConsoleLogger) Debug(msg interface{}, keyvals ...interface{}) {
	js.Global.Get("console").Call("log", c.format(msg, keyvals))
}

func (c ConsoleLogger) Info(msg interface{}, keyvals ...interface{}) {
	js.Global.Get("console").Call("info", c.format(msg, keyvals))
}

func (c ConsoleLogger) Warn(msg interface{}, keyvals ...interface{}) {
	js.Global.Get("console").Call("warn", c.format(msg, keyvals))
}

func (c ConsoleLogger) Error(msg interface{}, keyvals ...interface{}) {
	js.Global.Get("console").Call("error", c.format(msg, keyvals))
}
