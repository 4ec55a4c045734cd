// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package program

import "sort"

// Function is a harvested function definition. Its body is stored exactly as
// written; nested scopes are expanded only when the function is called.
type Function struct {
	Name   string
	Params []string
	Body   []string
}

// Table maps function names to their definitions.
type Table struct {
	funcs map[string]*Function
}

// NewTable creates an empty function table.
func NewTable() *Table {
	return &Table{funcs: make(map[string]*Function)}
}

// Clear drops every definition.
func (t *Table) Clear() {
	clear(t.funcs)
}

// Define stores a definition, replacing any earlier one with the same name.
func (t *Table) Define(fn *Function) {
	t.funcs[fn.Name] = fn
}

// Lookup returns the definition stored under name.
func (t *Table) Lookup(name string) (*Function, bool) {
	fn, ok := t.funcs[name]
	return fn, ok
}

// Len returns the number of definitions.
func (t *Table) Len() int { return len(t.funcs) }

// Names returns the defined function names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load clears the table and harvests every top-level FUNCTION scope in list.
// The scan resumes after each definition's closer, so definitions nested in a
// function body are not visible at the top level.
func (t *Table) Load(list []string) error {
	t.Clear()
	i := 0
	for i < len(list) {
		if Classify(list[i]) != KindFunction {
			i++
			continue
		}
		name, params, err := ParseSignature(list[i])
		if err != nil {
			return err
		}
		end, _ := FindClose(list, i)
		t.Define(&Function{
			Name:   name,
			Params: params,
			Body:   append([]string(nil), list[i+1:end]...),
		})
		i = end + 1
	}
	return nil
}

// Collect builds a new table from list.
func Collect(list []string) (*Table, error) {
	t := NewTable()
	if err := t.Load(list); err != nil {
		return nil, err
	}
	return t, nil
}
