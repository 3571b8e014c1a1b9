package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// CheckWitnessWithPanic checks witness of the passed caller. It panics with
// the given message on fail.
func CheckWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
