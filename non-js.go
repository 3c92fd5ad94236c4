//go:build !(js && wasm)

package main

import (
	"github.com/pkg/profile"
)

var Debug = true

func ProfileStart() func() {
	return profile.Start(profile.CPUProfile, profile.NoShutdownHook).Stop
}
