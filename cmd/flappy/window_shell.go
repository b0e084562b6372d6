//go:build window

package main

// Register the desktop window shell
import _ "github.com/vovakirdan/tui-flappy/internal/platform/window"
