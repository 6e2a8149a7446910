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

package annotate

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/logger"
)

// Sentinel error patterns.
const (
	ScriptError = "annotate: %v"
)

// the name of the Lua function called for every line.
const entryPoint = "annotate"

// Script is a Lua program that adds comments to lines of disassembly. The
// program must define a global function:
//
//	function annotate(address, text)
//
// The address argument is a number and the text argument is the terse text
// of the instruction. The function returns the comment or nil.
type Script struct {
	crit  sync.Mutex
	state *lua.LState
}

// NewScript compiles and runs the Lua source.
func NewScript(source string) (*Script, error) {
	scr := newScript()
	if err := scr.state.DoString(source); err != nil {
		scr.state.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	return scr.check()
}

// LoadScript compiles and runs the Lua source in the named file.
func LoadScript(filename string) (*Script, error) {
	scr := newScript()
	if err := scr.state.DoFile(filename); err != nil {
		scr.state.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	logger.Logf(logger.Allow, "annotate", "loaded %s", filename)
	return scr.check()
}

func newScript() *Script {
	scr := &Script{
		state: lua.NewState(),
	}

	// hex(n) formats a number in the same style as the disassembly
	scr.state.SetGlobal("hex", scr.state.NewFunction(func(L *lua.LState) int {
		n := L.CheckNumber(1)
		L.Push(lua.LString(fmt.Sprintf("$%x", uint32(n))))
		return 1
	}))

	return scr
}

// check that the entry point has been defined.
func (scr *Script) check() (*Script, error) {
	if scr.state.GetGlobal(entryPoint).Type() != lua.LTFunction {
		scr.state.Close()
		return nil, curated.Errorf(ScriptError, fmt.Sprintf("no %s() function", entryPoint))
	}
	return scr, nil
}

// Comment calls the script's annotate function. A result that is not a
// string is an empty comment.
func (scr *Script) Comment(address uint32, text string) (string, error) {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	err := scr.state.CallByParam(lua.P{
		Fn:      scr.state.GetGlobal(entryPoint),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(address), lua.LString(text))
	if err != nil {
		return "", curated.Errorf(ScriptError, err)
	}

	ret := scr.state.Get(-1)
	scr.state.Pop(1)

	if s, ok := ret.(lua.LString); ok {
		return string(s), nil
	}
	return "", nil
}

// Close the Lua state. The script can not be used after it has been closed.
func (scr *Script) Close() {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.state.Close()
}
