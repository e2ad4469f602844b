// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package smp

import (
	"fmt"
	"strings"
)

// FormatResponse formats a decoded response into a human-readable line
// for diagnostics output.
func FormatResponse(r *Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (0x%02X) id=0x%02X len=%d", r.Cmd, uint8(r.Cmd), r.ModuleID, len(r.Data))

	switch {
	case r.IsAck():
		b.WriteString(" OK")
	case r.Cmd == CmdGetState && len(r.Data) >= 14:
		pos, _ := r.FloatAt(0)
		vel, _ := r.FloatAt(4)
		cur, _ := r.FloatAt(8)
		fmt.Fprintf(&b, " pos=%.4f vel=%.4f cur=%.4f status=[%s] fault=%s",
			pos, vel, cur, DecodeStatus(r.Data[12]), FaultCode(r.Data[13]))
	case r.Cmd == CmdPosReached && len(r.Data) >= 4:
		pos, _ := r.FloatAt(0)
		fmt.Fprintf(&b, " pos=%.4f", pos)
	case len(r.Data) > 0:
		fmt.Fprintf(&b, " %s", FormatBytes(r.Data))
	}

	return b.String()
}

// FormatBytes renders raw frame bytes as spaced hex.
func FormatBytes(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}
