// b24cam - a perceptually-uniform Base24 terminal colour scheme generator
//
// b24cam takes a background and foreground anchor colour and solves for a
// full 24-slot Base24 palette using a CAM16-HF colour appearance model and
// APCA contrast targets.
//
// Copyright (c) 2024 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/b24cam/internal/cli"

func main() {
	cli.Execute()
}
