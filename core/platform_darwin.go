//go:build darwin

package core

const targetPlatform = Mac
