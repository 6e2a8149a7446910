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

// Package prefs facilitates the storage of preferential values in the
// disassembler. Values are typed (Bool, String, Int, Float) and safe to access
// from more than one goroutine.
//
// Values are grouped for storage with the Disk type:
//
//	var hex prefs.Bool
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("disassembly.hexNumerics", &hex)
//	dsk.Load()
//
// Preferences can also be set on the command line. The PushCommandLineStack()
// function takes a string of key/value pairs that override the values in the
// prefs file the next time Load() is called.
//
// The prefs file is plain text, one key and value per line after the
// WarningBoilerPlate line.
package prefs
