// Package loader runs Lua edit scripts against a save document. Scripts
// never touch the document directly: every global appends an effect, and
// the collected effects are validated and handed back to the engine.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/pokesave/engine/codec"
	"github.com/nathoo/pokesave/types"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates effect tables and print output during execution.
type collector struct {
	effects []rawEffect
	output  []string
	file    string
}

// rawEffect is an effect table as a script built it, before compilation.
type rawEffect struct {
	file  string
	table *lua.LTable
}

func (c *collector) add(tbl *lua.LTable) {
	c.effects = append(c.effects, rawEffect{file: c.file, table: tbl})
}

// Script is the result of running one or more edit scripts.
type Script struct {
	Effects  []types.Effect
	Output   []string
	Warnings []string
}

// Load runs the script at path against doc and returns the effects it
// queued. See Run.
func Load(path string, doc types.Document) ([]types.Effect, error) {
	s, err := Run(path, doc)
	if err != nil {
		return nil, err
	}
	return s.Effects, nil
}

// Run executes a .lua file, or every .lua file in a directory in name
// order, in a sandboxed VM. Get reads from a snapshot of doc taken before
// the first file runs. The VM is discarded after loading.
func Run(path string, doc types.Document) (*Script, error) {
	files, err := luaFiles(path)
	if err != nil {
		return nil, err
	}

	snapshot, err := codec.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("snapshotting document: %w", err)
	}

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll, snapshot)

	for _, f := range files {
		coll.file = filepath.Base(f)
		if err := L.DoFile(f); err != nil {
			return nil, fmt.Errorf("executing %s: %w", coll.file, err)
		}
	}

	effs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling edit script: %w", err)
	}

	warnings, err := validate(effs)
	if err != nil {
		return nil, err
	}

	return &Script{Effects: effs, Output: coll.output, Warnings: warnings}, nil
}

// luaFiles resolves path to the list of scripts to run.
func luaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading script directory %s: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", path)
	}
	sort.Strings(names)

	files := make([]string, len(names))
	for i, n := range names {
		files[i] = filepath.Join(path, n)
	}
	return files, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	// Table library (table.insert, table.sort, etc.)
	lua.OpenTable(L)
	// String library (string.format, string.sub, etc.)
	lua.OpenString(L)
	// Math library (math.floor, math.max, etc.)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed so scripts stay deterministic.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
