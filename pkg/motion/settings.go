// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package motion

import (
	"bytes"
	"fmt"

	"github.com/Thermoquad/schunkctl/pkg/smp"
)

// getConfig issues GET CONFIG for one sub-command and checks that the
// reply echoes it before handing back the value bytes.
func (m *Module) getConfig(sub uint8) (*smp.Response, error) {
	resp, err := m.exchange(smp.NewGetConfig(m.id, sub), smp.CmdGetConfig)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) < 2 || resp.Data[0] != sub {
		return nil, fmt.Errorf("%w: config reply does not echo sub-command 0x%02X",
			smp.ErrMalformedFrame, sub)
	}
	return resp, nil
}

// ConfigUint8 reads a one-byte configuration value (2.5.3).
func (m *Module) ConfigUint8(sub uint8) (uint8, error) {
	resp, err := m.getConfig(sub)
	if err != nil {
		return 0, err
	}
	return resp.Data[1], nil
}

// ConfigUint16 reads a two-byte configuration value.
func (m *Module) ConfigUint16(sub uint8) (uint16, error) {
	resp, err := m.getConfig(sub)
	if err != nil {
		return 0, err
	}
	return resp.Uint16At(1)
}

// ConfigUint32 reads a four-byte configuration value.
func (m *Module) ConfigUint32(sub uint8) (uint32, error) {
	resp, err := m.getConfig(sub)
	if err != nil {
		return 0, err
	}
	return resp.Uint32At(1)
}

// ConfigFloat reads a float configuration value.
func (m *Module) ConfigFloat(sub uint8) (float64, error) {
	resp, err := m.getConfig(sub)
	if err != nil {
		return 0, err
	}
	return resp.FloatAt(1)
}

// EEPROM dumps the raw configuration EEPROM.
func (m *Module) EEPROM() ([]byte, error) {
	resp, err := m.getConfig(smp.ConfEEPROM)
	if err != nil {
		return nil, err
	}
	return resp.Data[1:], nil
}

var unitSystemNames = map[uint8]string{
	0: "mm",
	1: "m",
	2: "Inch",
	3: "rad",
	4: "Degree",
	5: "Intern",
	6: "µm",
	7: "µDegree",
	8: "µInch",
	9: "Milli-degree",
}

// UnitSystem reports the measurement unit all positions, velocities and
// accelerations are expressed in.
func (m *Module) UnitSystem() (string, error) {
	v, err := m.ConfigUint8(smp.ConfUnitSystem)
	if err != nil {
		return "", err
	}
	name, ok := unitSystemNames[v]
	if !ok {
		return "", fmt.Errorf("unknown unit system 0x%02X", v)
	}
	return name, nil
}

var commModeNames = map[uint8]string{
	0: "AUTO",
	1: "RS232",
	2: "CAN",
	3: "Profibus DPV0",
	4: "RS232 Silent",
}

// CommMode reports the configured communication interface.
func (m *Module) CommMode() (string, error) {
	v, err := m.ConfigUint8(smp.ConfCommMode)
	if err != nil {
		return "", err
	}
	name, ok := commModeNames[v]
	if !ok {
		return "", fmt.Errorf("unknown communication mode 0x%02X", v)
	}
	return name, nil
}

// SetModuleID reassigns the module address (2.5.4, Profi level). On
// success the Module switches to the new address for subsequent calls.
func (m *Module) SetModuleID(newID uint8) error {
	req := smp.NewSetConfig(m.id, smp.ConfModuleID, smp.Uint8(newID))
	resp, err := m.exchange(req, smp.CmdSetConfig)
	if err != nil {
		return err
	}
	if !bytes.Equal(resp.Data, []byte{'O', 'K', smp.ConfModuleID}) {
		return fmt.Errorf("%w: unexpected set-config reply % X", smp.ErrMalformedFrame, resp.Data)
	}
	m.id = newID
	return nil
}

// ModuleInfo is the static identity record of a module.
type ModuleInfo struct {
	ModuleType      string
	OrderNumber     uint32
	FirmwareVersion uint16
	ProtocolVersion uint16
	HardwareVersion uint16
	FirmwareDate    string
}

// GetModuleInfo reads the identity block with a bare GET CONFIG. The
// reply is an 8-byte module type, the order number, three version
// words and the firmware build date. The manual specifies a 21-byte
// date string but some modules pad it further, so everything after the
// version words is taken as the date.
func (m *Module) GetModuleInfo() (ModuleInfo, error) {
	var info ModuleInfo

	resp, err := m.exchange(smp.NewGetConfig(m.id), smp.CmdGetConfig)
	if err != nil {
		return info, err
	}
	if len(resp.Data) < 18 {
		return info, fmt.Errorf("%w: module info reply carries %d bytes, want at least 18",
			smp.ErrMalformedFrame, len(resp.Data))
	}
	info.ModuleType = string(bytes.TrimRight(resp.Data[:8], "\x00"))
	info.OrderNumber, _ = resp.Uint32At(8)
	info.FirmwareVersion, _ = resp.Uint16At(12)
	info.ProtocolVersion, _ = resp.Uint16At(14)
	info.HardwareVersion, _ = resp.Uint16At(16)
	info.FirmwareDate = string(bytes.TrimRight(resp.Data[18:], "\x00"))
	return info, nil
}
