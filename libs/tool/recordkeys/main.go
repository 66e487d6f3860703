// recordkeys scans the event schema package for event structs and emits
// the sorted record key constants used by the codec. Event structs are the
// exported structs carrying both TsEvent and TsInit fields; every other
// exported field contributes one snake_case key.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "recordkeys: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	srcFlag := flag.String("schema", "./internal/schema", "package directory holding the event structs")
	outFlag := flag.String("out", "./internal/codec/keys_gen.go", "output file")
	flag.Parse()

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, *srcFlag)
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		return errors.New("no packages found")
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return fmt.Errorf("type check failed: %s", pkg.Errors[0])
	}

	keys, err := collectKeys(pkg.Types)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return errors.New("no event structs found")
	}

	out, err := render(keys)
	if err != nil {
		return err
	}

	outPath := *outFlag
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}

func collectKeys(pkg *types.Package) (map[string]string, error) {
	keys := map[string]string{
		"KeyType": "type",
	}
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() {
			continue
		}
		st, ok := obj.Type().Underlying().(*types.Struct)
		if !ok || !isEventStruct(st) {
			continue
		}
		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if !field.Exported() {
				continue
			}
			constName := "Key" + field.Name()
			key := snakeCase(field.Name())
			if prev, ok := keys[constName]; ok && prev != key {
				return nil, fmt.Errorf("conflicting key for %s: %q vs %q", constName, prev, key)
			}
			keys[constName] = key
		}
	}
	return keys, nil
}

func isEventStruct(st *types.Struct) bool {
	var hasTsEvent, hasTsInit bool
	for i := 0; i < st.NumFields(); i++ {
		switch st.Field(i).Name() {
		case "TsEvent":
			hasTsEvent = true
		case "TsInit":
			hasTsInit = true
		}
	}
	return hasTsEvent && hasTsInit
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 &&
				(!unicode.IsUpper(runes[i-1]) ||
					(i+1 < len(runes) && !unicode.IsUpper(runes[i+1])))
			if boundary {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func render(keys map[string]string) ([]byte, error) {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by recordkeys; DO NOT EDIT.\n\n")
	buf.WriteString("package codec\n\n")
	buf.WriteString("const (\n")
	for _, name := range names {
		fmt.Fprintf(&buf, "\t%s = %q\n", name, keys[name])
	}
	buf.WriteString(")\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return out, nil
}
