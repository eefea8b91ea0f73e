package loader

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// LuaLoader loads theme documents from Lua scripts. The script runs in
// a sandboxed state with no io or os access and must return a table of
// theme overrides:
//
//	return {
//	    background = "black",
//	    font = { size = 18 },
//	}
type LuaLoader struct {
	fs   FileSystem
	path string
}

// NewLuaLoader creates a new Lua loader for the given path.
func NewLuaLoader(path string) *LuaLoader {
	return &LuaLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewLuaLoaderWithFS creates a Lua loader with a custom file system.
func NewLuaLoaderWithFS(fs FileSystem, path string) *LuaLoader {
	return &LuaLoader{
		fs:   fs,
		path: path,
	}
}

// Load reads a theme script from the configured path.
func (l *LuaLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads a theme script from a specific path.
func (l *LuaLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading theme script %s: %w", path, err)
	}

	return l.eval(path, string(data))
}

// LoadFromString evaluates an in-memory theme script.
func (l *LuaLoader) LoadFromString(script string) (map[string]any, error) {
	return l.eval("<string>", script)
}

// eval runs the script in a sandboxed state and converts the returned
// table to a map.
func (l *LuaLoader) eval(source, script string) (map[string]any, error) {
	L := newSandboxedState()
	defer L.Close()

	if err := L.DoString(script); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}

	ret := L.Get(-1)
	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Path:    source,
			Message: fmt.Sprintf("theme script must return a table, got %s", ret.Type()),
		}
	}

	doc, ok := tableToGo(table, make(map[*lua.LTable]bool)).(map[string]any)
	if !ok {
		return nil, &ParseError{
			Path:    source,
			Message: "theme script must return a table with string keys",
		}
	}
	return doc, nil
}

// newSandboxedState opens only the safe libraries and strips the
// loaders that could reach the file system.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "print"} {
		L.SetGlobal(name, lua.LNil)
	}

	return L
}

// luaToGo converts a Lua value to its Go equivalent, tracking visited
// tables to break circular references.
func luaToGo(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		// Integral numbers decode as int64 so integer fields do not
		// round-trip through float truncation.
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil // Break circular reference
		}
		visited[v] = true
		return tableToGo(v, visited)
	default:
		return nil
	}
}

// tableToGo converts a Lua table to either a map or a slice. A table
// with contiguous integer keys starting at 1 becomes a slice.
func tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	isArray := true
	maxN := 0
	count := 0
	t.ForEach(func(k, _ lua.LValue) {
		count++
		if kn, ok := k.(lua.LNumber); ok {
			n := int(kn)
			if float64(n) == float64(kn) && n > 0 {
				if n > maxN {
					maxN = n
				}
				return
			}
		}
		isArray = false
	})

	if isArray && maxN > 0 && count == maxN {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = luaToGo(t.RawGetInt(i), visited)
		}
		return arr
	}

	m := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		default:
			key = k.String()
		}
		m[key] = luaToGo(v, visited)
	})
	return m
}
