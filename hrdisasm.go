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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
	"github.com/hrdb/hrdisasm/annotate"
	"github.com/hrdb/hrdisasm/curated"
	"github.com/hrdb/hrdisasm/disassembly"
	"github.com/hrdb/hrdisasm/disassembly/symbols"
	"github.com/hrdb/hrdisasm/dsp56"
	"github.com/hrdb/hrdisasm/easyterm"
	"github.com/hrdb/hrdisasm/format"
	"github.com/hrdb/hrdisasm/logger"
	"github.com/hrdb/hrdisasm/m68k"
	"github.com/hrdb/hrdisasm/modalflag"
	"github.com/hrdb/hrdisasm/paths"
	"github.com/hrdb/hrdisasm/prefs"
	"github.com/hrdb/hrdisasm/statsview"
	"github.com/hrdb/hrdisasm/version"
	"golang.org/x/term"
)

const (
	loadError  = "load: %v"
	inputError = "input: %v"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md))
}

// launch parses the top level mode and returns the value to use with
// os.Exit().
func launch(md *modalflag.Modes) int {
	md.NewMode()
	md.AddSubModes("68K", "DSP", "SYMBOLS")
	ver := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return 10
	}

	if *ver {
		fmt.Fprintln(md.Output, version.String())
		return 0
	}

	switch md.Mode() {
	case "68K":
		err = disasm(md, false)

	case "DSP":
		err = disasm(md, true)

	case "SYMBOLS":
		err = listSymbols(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to both disassembly modes.
type options struct {
	base     *uint32
	start    *uint32
	offset   *int
	max      *int
	hex      *bool
	bytecode *bool
	terse    *bool
	arrows   *bool
	symbols  *string
	hw       *bool
	lua      *string
	dump     *bool
	dot      *string
	log      *bool
	prefs    *string
	save     *bool
	stats    *bool
	page     *bool

	// 68k only
	cpu  *string
	fill *int
}

func addOptions(md *modalflag.Modes, dsp bool) *options {
	opt := &options{}
	opt.base = md.AddAddress("base", 0, "address of first byte (68k) or word (DSP) in the file")
	opt.start = md.AddAddress("start", 0, "begin output at this address")
	opt.offset = md.AddInt("offset", 0, "skip this many bytes of the file")
	opt.max = md.AddInt("max", 0, "maximum number of lines. zero means no limit")
	opt.hex = md.AddBool("hex", true, "print signed displacements in hexadecimal")
	opt.bytecode = md.AddBool("bytecode", false, "include bytecode in disassembly")
	opt.terse = md.AddBool("terse", false, "single column output")
	opt.arrows = md.AddBool("arrows", false, "draw branch arrows in the gutter")
	opt.symbols = md.AddString("symbols", "", "symbols file")
	opt.hw = md.AddBool("hw", false, "add hardware register symbols")
	opt.lua = md.AddString("lua", "", "lua script providing an annotate(address, text) function")
	opt.dump = md.AddBool("dump", false, "dump decoded lines instead of disassembly")
	opt.dot = md.AddString("dot", "", "write a graphviz map of decoded lines to file. auto picks a unique filename")
	opt.log = md.AddBool("log", false, "echo log to stderr")
	opt.prefs = md.AddString("prefs", "", "preference overrides (key::value; key::value)")
	opt.save = md.AddBool("save", false, "save preferences after applying flags")
	opt.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	opt.page = md.AddBool("page", false, "page output when writing to a terminal")

	if !dsp {
		opt.cpu = md.AddString("cpu", "", "68000, 68010, 68020 or 68030")
		opt.fill = md.AddInt("fill", 0, "disassemble this many nop instructions instead of a file")
	}

	return opt
}

func disasm(md *modalflag.Modes, dsp bool) error {
	md.NewMode()
	opt := addOptions(md, dsp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	set := make(map[string]bool)
	md.Visit(func(flag string) {
		set[flag] = true
	})

	if *opt.dot == "auto" {
		*opt.dot = paths.UniqueFilename(version.ApplicationName, strings.ToLower(md.Mode())) + ".dot"
	}

	if *opt.log {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	if *opt.prefs != "" {
		prefs.PushCommandLineStack(*opt.prefs)
		defer prefs.PopCommandLineStack()
	}

	dprefs, err := disassembly.NewPreferences()
	if err != nil {
		return curated.Errorf(loadError, err)
	}

	if set["cpu"] {
		if err := dprefs.CPU.Set(*opt.cpu); err != nil {
			return err
		}
	}
	if set["hex"] {
		if err := dprefs.HexNumerics.Set(*opt.hex); err != nil {
			return err
		}
	}
	if set["bytecode"] {
		if err := dprefs.Bytecode.Set(*opt.bytecode); err != nil {
			return err
		}
	}
	if set["max"] {
		if err := dprefs.MaxLines.Set(*opt.max); err != nil {
			return err
		}
	}

	if *opt.save {
		if err := dprefs.Save(); err != nil {
			return err
		}
	}

	data, err := input(md, opt, dsp)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: dprefs.Bytecode.Get().(bool),
		Terse:    *opt.terse,
		Style:    format.Decimal,
		Arrows:   *opt.arrows,
	}
	if dprefs.HexNumerics.Get().(bool) {
		attr.Style = format.Hex
	}

	attr.Symbols, err = loadSymbols(*opt.symbols, *opt.hw)
	if err != nil {
		return err
	}

	if *opt.lua != "" {
		scr, err := annotate.LoadScript(*opt.lua)
		if err != nil {
			return curated.Errorf(loadError, err)
		}
		defer scr.Close()
		attr.Annotator = scr
	}

	if *opt.stats {
		statsview.Launch(md.Output, "")
	}

	output := md.Output
	maxLines := dprefs.MaxLines.Get().(int)

	// a terminal either pages or limits output to a single screen
	if outputIsTerminal(md.Output) {
		var trm easyterm.Terminal
		if err := trm.Initialise(os.Stdin, os.Stdout); err == nil {
			defer trm.CleanUp()
			if *opt.page {
				output = easyterm.NewPager(&trm, md.Output)
			} else if maxLines == 0 {
				maxLines = int(trm.Geometry().Rows) - 1
			}
		}
	}

	if dsp {
		err = output56(output, data, opt, set, maxLines, attr)
	} else {
		err = output68(output, data, dprefs.Settings68(), opt, set, maxLines, attr)
	}
	if err != nil {
		return err
	}

	if *opt.stats {
		fmt.Fprintln(md.Output, "ctrl-c to end stats server")
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		<-intChan
	}

	return nil
}

func output68(output io.Writer, data []byte, s m68k.Settings, opt *options, set map[string]bool, maxLines int, attr disassembly.WriteAttr) error {
	var lines []disassembly.Line68

	if set["start"] {
		itr := disassembly.NewIterator68(data, s, *opt.base)
		l, ok := itr.Start(*opt.start)
		for ok && (maxLines <= 0 || len(lines) < maxLines) {
			lines = append(lines, l)
			l, ok = itr.Next()
		}
	} else {
		lines = disassembly.Block68(data, s, *opt.base, maxLines)
	}

	return emit(output, lines, opt, attr)
}

func output56(output io.Writer, data []byte, opt *options, set map[string]bool, maxLines int, attr disassembly.WriteAttr) error {
	var lines []disassembly.Line56
	s := dsp56.Settings{}

	if set["start"] {
		itr := disassembly.NewIterator56(data, s, *opt.base)
		l, ok := itr.Start(*opt.start)
		for ok && (maxLines <= 0 || len(lines) < maxLines) {
			lines = append(lines, l)
			l, ok = itr.Next()
		}
	} else {
		lines = disassembly.Block56(data, s, *opt.base, maxLines)
	}

	return emit(output, lines, opt, attr)
}

// emit decoded lines in the form requested by the options.
func emit[L disassembly.Line68 | disassembly.Line56](output io.Writer, lines []L, opt *options, attr disassembly.WriteAttr) error {
	if *opt.dot != "" {
		f, err := os.Create(*opt.dot)
		if err != nil {
			return err
		}
		memviz.Map(f, &lines)
		if err := f.Close(); err != nil {
			return err
		}
	}

	if *opt.dump {
		spew.Fdump(output, lines)
		return nil
	}

	return disassembly.Write(output, lines, attr)
}

// input returns the data to disassemble. the file named by the first
// argument is read and the offset skipped.
func input(md *modalflag.Modes, opt *options, dsp bool) ([]byte, error) {
	if !dsp && *opt.fill > 0 {
		if len(md.RemainingArgs()) > 0 {
			return nil, curated.Errorf(inputError, "fill does not take a file")
		}
		return disassembly.Fill68(*opt.fill), nil
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf(inputError, fmt.Sprintf("file required for %s mode", md))
	case 1:
	default:
		return nil, curated.Errorf(inputError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, curated.Errorf(loadError, err)
	}

	if *opt.offset < 0 || *opt.offset > len(data) {
		return nil, curated.Errorf(inputError, fmt.Sprintf("offset out of range (%d)", *opt.offset))
	}

	logger.Logf(logger.Allow, "hrdisasm", "loaded %s (%d bytes)", md.GetArg(0), len(data))

	return data[*opt.offset:], nil
}

// loadSymbols returns nil if no symbols have been requested.
func loadSymbols(filename string, hw bool) (*symbols.Table, error) {
	var tbl *symbols.Table

	if filename != "" {
		var err error
		tbl, err = symbols.ReadSymbolsFile(filename)
		if err != nil {
			return nil, err
		}
	}

	if hw {
		if tbl == nil {
			tbl = symbols.NewTable()
		}
		tbl.AddHardware()
	}

	return tbl, nil
}

func listSymbols(md *modalflag.Modes) error {
	md.NewMode()
	hw := md.AddBool("hw", false, "include hardware register symbols")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		if !*hw {
			return curated.Errorf(inputError, fmt.Sprintf("symbols file required for %s mode", md))
		}
	case 1:
		filename = md.GetArg(0)
	default:
		return curated.Errorf(inputError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	tbl, err := loadSymbols(filename, *hw)
	if err != nil {
		return err
	}
	tbl.Write(md.Output)

	return nil
}

func outputIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
