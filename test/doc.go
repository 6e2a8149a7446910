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

// Package test contains helper functions to remove common boilerplate from
// the tests in the rest of the module.
//
// The Expect*() functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand*() functions are the same except that they
// report with t.Fatalf(). Use a Demand*() function when later parts of the
// test depend on the result being correct.
//
// ExpectSuccess() and ExpectFailure() test for success or failure in a way
// that is suitable for the type of the value. The nil value counts as success
// because that is how the error type indicates no error. Supported types are:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The optional tags argument to all functions is printed before the failure
// message. This is useful when the test is one of many in a loop.
//
// CompareWriter, CappedWriter and RingWriter implement io.Writer and are used
// to capture output for comparison.
package test
