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

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is the address the stats server listens on if no other
// address is given to Launch().
const DefaultAddress = "localhost:12680"

const url = "/debug/statsview"

// Launch a new goroutine running the statsview. An empty address means
// DefaultAddress. The returned string is the full URL of the stats page.
func Launch(output io.Writer, address string) string {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()
	go mgr.Start()

	u := fmt.Sprintf("http://%s%s", address, url)
	if output != nil {
		output.Write([]byte(fmt.Sprintf("stats server available at %s\n", u)))
	}
	return u
}
