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

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/test"
)

const loadError = "load: %v"
const readError = "read: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(loadError, "file not found")
	test.ExpectEquality(t, e.Error(), "load: file not found")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(loadError, e)
	test.ExpectEquality(t, f.Error(), "load: file not found")

	// duplicates deeper in the chain are dropped too
	g := curated.Errorf(readError, f)
	h := curated.Errorf(readError, g)
	test.ExpectEquality(t, h.Error(), "read: load: file not found")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(loadError, "file not found")
	test.ExpectSuccess(t, curated.Is(e, loadError))
	test.ExpectFailure(t, curated.Is(e, readError))

	f := curated.Errorf(readError, e)
	test.ExpectFailure(t, curated.Is(f, loadError))
	test.ExpectSuccess(t, curated.Is(f, readError))
	test.ExpectSuccess(t, curated.IsAny(f))

	// plain errors are not curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, loadError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(loadError, "file not found")
	f := curated.Errorf(readError, e)
	test.ExpectSuccess(t, curated.Has(f, loadError))
	test.ExpectSuccess(t, curated.Has(f, readError))
	test.ExpectFailure(t, curated.Has(e, readError))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(loadError, os.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, os.ErrNotExist))

	f := curated.Errorf(readError, "no error value")
	test.ExpectFailure(t, errors.Is(f, os.ErrNotExist))
}
