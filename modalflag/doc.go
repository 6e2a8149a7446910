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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("68K", "DSP")
//	_, _ = md.Parse()
//
// If the first argument after the flags is one of the sub-modes then the
// Mode() function returns that sub-mode. Otherwise it returns the first
// sub-mode in the list. Sub-mode comparisons are case insensitive.
//
// A mode can then add its own flags after a call to NewMode():
//
//	switch md.Mode() {
//	case "DSP":
//		md.NewMode()
//		maxLines := md.AddInt("max", 0, "maximum number of lines")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		disassembleDSP(md.RemainingArgs(), *maxLines)
//	}
//
// Non-flag arguments are retrieved with the RemainingArgs() or GetArg()
// functions.
package modalflag
