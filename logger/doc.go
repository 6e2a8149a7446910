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

// Package logger is the central log for the disassembler. Entries are tagged
// with a short string describing the source of the entry.
//
// Log entries are only made if the Permission argument allows it. The Allow
// value always allows logging.
//
// Repeated entries are collapsed into a single entry with a repeat count. The
// central log keeps only the most recent entries.
package logger
