package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unsafe"
)

// ReflectProvider implements Provider on top of the reflect package.
//
// Go has no runtime doc/source metadata, so the mapping is necessarily
// partial: struct fields and methods are enumerated, string-keyed map
// entries appear as members, and doc/source lookup works for function
// values when the defining source file is readable on disk.
//
// Unexported struct fields are surfaced under a leading-underscore alias
// (field "count" appears as "_count") so the public/private partition
// used by the browser stays meaningful for Go values. Their values are
// read through an addressable copy, the same trick pretty-printers use.
type ReflectProvider struct {
	// MaxMapEntries caps how many map keys are listed as members.
	MaxMapEntries int

	sources *SourceIndex
}

// NewReflectProvider returns a provider with default limits.
func NewReflectProvider() *ReflectProvider {
	return &ReflectProvider{
		MaxMapEntries: 256,
		sources:       NewSourceIndex(),
	}
}

func (p *ReflectProvider) Members(value any) []string {
	if value == nil {
		return nil
	}
	seen := make(map[string]bool)
	names := make([]string, 0, 16)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	t := reflect.TypeOf(value)
	for i := 0; i < t.NumMethod(); i++ {
		add(t.Method(i).Name)
	}
	// Pointer-receiver methods are only in the pointer type's method set.
	if t.Kind() != reflect.Pointer {
		pt := reflect.PointerTo(t)
		for i := 0; i < pt.NumMethod(); i++ {
			add(pt.Method(i).Name)
		}
	}

	elem := deref(reflect.ValueOf(value))
	switch elem.Kind() {
	case reflect.Struct:
		et := elem.Type()
		for i := 0; i < et.NumField(); i++ {
			f := et.Field(i)
			if f.IsExported() {
				add(f.Name)
			} else {
				add("_" + f.Name)
			}
		}
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			keys := make([]string, 0, elem.Len())
			for _, k := range elem.MapKeys() {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			if p.MaxMapEntries > 0 && len(keys) > p.MaxMapEntries {
				keys = keys[:p.MaxMapEntries]
			}
			for _, k := range keys {
				add(k)
			}
		}
	}
	return names
}

func (p *ReflectProvider) Member(value any, name string) (result any, err error) {
	if value == nil {
		return nil, fmt.Errorf("member %q of nil: %w", name, ErrNoMember)
	}
	// Fetching a member may dereference nil pointers or invoke reflect in
	// ways that panic; report those as a failed fetch, not a crash.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("member %q: fetch panicked: %v", name, r)
		}
	}()

	rv := reflect.ValueOf(value)
	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface(), nil
	}
	if rv.Kind() != reflect.Pointer {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		if m := pv.MethodByName(name); m.IsValid() {
			return m.Interface(), nil
		}
	}

	elem := deref(rv)
	switch elem.Kind() {
	case reflect.Struct:
		fieldName := name
		if strings.HasPrefix(name, "_") {
			fieldName = strings.TrimPrefix(name, "_")
		}
		if f, ok := elem.Type().FieldByName(fieldName); ok && len(f.Index) == 1 {
			return fieldValue(elem, f.Index[0])
		}
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			mv := elem.MapIndex(reflect.ValueOf(name).Convert(elem.Type().Key()))
			if mv.IsValid() {
				return mv.Interface(), nil
			}
		}
	}
	return nil, fmt.Errorf("member %q of %s: %w", name, rv.Type(), ErrNoMember)
}

func (p *ReflectProvider) TypeOf(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

func (p *ReflectProvider) DocOf(value any) (string, bool) {
	pc, ok := funcEntry(value)
	if !ok {
		return "", false
	}
	return p.sources.FuncDoc(pc)
}

func (p *ReflectProvider) SourceOf(value any) (string, bool) {
	pc, ok := funcEntry(value)
	if !ok {
		return "", false
	}
	return p.sources.FuncSource(pc)
}

func funcEntry(value any) (uintptr, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return 0, false
	}
	return rv.Pointer(), true
}

// deref unwraps pointers and interfaces down to the underlying value.
// Nil pointers stop the walk so callers see an invalid-kind value.
func deref(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// fieldValue reads field idx of a struct value, including unexported
// fields, which require an addressable copy and a reconstructed pointer.
func fieldValue(structVal reflect.Value, idx int) (any, error) {
	f := structVal.Field(idx)
	if f.CanInterface() {
		return f.Interface(), nil
	}
	if !f.CanAddr() {
		cp := reflect.New(structVal.Type()).Elem()
		cp.Set(structVal)
		f = cp.Field(idx)
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem().Interface(), nil
}
