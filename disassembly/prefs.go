// This file is part of hrdisasm.
//
// hrdisasm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hrdisasm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with hrdisasm.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/m68k"
	"github.com/hrdb/hrdisasm/paths"
	"github.com/hrdb/hrdisasm/prefs"
)

// Sentinel error patterns.
const (
	CPUTypeError  = "disassembly: unknown cpu type (%s)"
	MaxLinesError = "disassembly: max lines cannot be negative (%d)"
)

// Preferences for disassembly output.
type Preferences struct {
	dsk *prefs.Disk

	// the 68k CPU type. one of the strings accepted by m68k.ParseCPUType()
	CPU prefs.String

	// print signed displacements as hexadecimal
	HexNumerics prefs.Bool

	// maximum number of lines in a block. zero means no limit
	MaxLines prefs.Int

	// include instruction bytes in the output
	Bytecode prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// an empty string is the result of a reset and means the default CPU
	p.CPU.SetHookPre(func(v prefs.Value) error {
		if s := v.(string); s != "" {
			if _, ok := m68k.ParseCPUType(s); !ok {
				return curated.Errorf(CPUTypeError, s)
			}
		}
		return nil
	})

	p.MaxLines.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 0 {
			return curated.Errorf(MaxLinesError, n)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("disassembly.cpu", &p.CPU)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("disassembly.hexNumerics", &p.HexNumerics)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("disassembly.maxLines", &p.MaxLines)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("disassembly.bytecode", &p.Bytecode)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.CPU.Set(m68k.CPU68000.String())
	p.HexNumerics.Set(true)
	p.MaxLines.Set(0)
	p.Bytecode.Set(false)
}

// Load disassembly preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current disassembly preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Settings68 returns the 68k decoder settings from the preferences.
func (p *Preferences) Settings68() m68k.Settings {
	cpu, _ := m68k.ParseCPUType(p.CPU.Get().(string))
	return m68k.Settings{CPU: cpu}
}
