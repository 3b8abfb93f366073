package tui

import "go.trai.ch/breeze/internal/core/ports"

// MsgBuildStart is sent when an entry starts building.
type MsgBuildStart struct {
	Input string
}

// MsgBuildComplete is sent when an entry finished building.
type MsgBuildComplete struct {
	Report ports.BuildReport
	Err    error
}

type msgTick struct{}
