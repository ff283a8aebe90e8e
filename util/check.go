package util

// Check enforces that its argument is nil, panicking otherwise.
func Check(err interface{}) {
	if err != nil {
		panic(err)
	}
}

// Assert is used to enforce a condition is true.
func Assert(cond bool) {
	if !cond {
		panic("assertion failure")
	}
}
