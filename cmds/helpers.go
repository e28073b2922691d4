package cmds

// Var defines name taking one argument, and name+"." resetting to zero.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))
	return value
}

// Switch defines name setting true, and "!"+name setting false.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}))
	Define("!"+name, Func(func() {
		*value = false
	}))
	return value
}

// Collect defines name appending one argument per use, and name+"." clearing the list.
func Collect[T any](name string) *[]T {
	value := new([]T)
	Define(name, Func(func(v T) {
		*value = append(*value, v)
	}))
	Define(name+".", Func(func() {
		*value = nil
	}))
	return value
}
