//go:build windows

package core

const targetPlatform = Windows
