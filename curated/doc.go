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


// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern identifies the error. Is() checks the outermost pattern and
// Has() checks every curated error in the chain:
//
//	e := curated.Errorf(symbols.SymbolsFileError, err)
//	f := curated.Errorf("load: %v", e)
//
//	curated.Is(f, symbols.SymbolsFileError)  // false
//	curated.Has(f, symbols.SymbolsFileError) // true
//
// IsAny() reports whether an error was created by Errorf() at all. Errors that
// are not curated can be treated as unexpected.
//
// The message returned by Error() is normalised so that the chain does not
// contain duplicate adjacent parts. Parts of a chain are separated by ": ".
// Wrapping an error at every level with the same pattern therefore does not
// repeat the pattern text:
//
//	e := curated.Errorf("write: %v", io.ErrShortWrite)
//	f := curated.Errorf("write: %v", e)
//
//	fmt.Println(f) // write: short write
//
// Sentinel patterns are stored as exported const strings next to the code
// that produces them. For example, the prefs package exports NoPrefsFile and
// the annotate package exports ScriptError.
//
// Curated errors also implement Unwrap() so the errors package in the standard
// library can inspect the first error value wrapped by the pattern.
package curated
